// Package validator builds declarative validation out of small Rule values.
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Apply evaluates rules in order and aggregates failures into a
// ValidationErrors slice that satisfies the error interface:
//
//	err := validator.Apply(
//		validator.ValidEmail("email", email).WithMessage("Email is invalid"),
//		validator.Required("password", password),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs.Has("email") {
//		// show errs.First("email") next to the input
//	}
//
// ApplyFirst stops at the first failing rule, which suits forms that report a
// single problem at a time.
//
// The package holds no state and is safe for concurrent use.
package validator
