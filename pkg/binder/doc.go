// Package binder binds HTTP request data to tagged Go structs.
//
// Two binders are provided: Form for url-encoded and multipart bodies, and
// Query for URL query parameters. Each binder only touches fields carrying its
// own tag, so several binders can be chained over one request struct without
// overwriting each other:
//
//	type Credentials struct {
//		Email      string `form:"email"`
//		Password   string `form:"password"`
//		RedirectTo string `form:"redirectTo" query:"redirectTo"`
//	}
//
//	handler.Wrap(submit, handler.WithBinders[handler.Context, Credentials](
//		binder.Query(),
//		binder.Form(),
//	))
//
// Form reports ErrBinderNotApplicable for requests that carry no body (GET,
// HEAD, OPTIONS) and handler.Wrap skips such binders silently. All other
// failures wrap one of the package errors, which callers match with
// errors.Is.
//
// Supported field types are strings, signed and unsigned integers, floats,
// bools (lenient: on/off, yes/no), pointers to those for optional fields and
// slices for multi-value fields.
package binder
