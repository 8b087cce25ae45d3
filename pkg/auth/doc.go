// Package auth provides password-based authentication for the console.
//
// The package is built around three small interfaces:
//
//   - Verifier checks an email and password pair at sign-in.
//   - Registrar creates new password accounts.
//   - UserGetter loads a user by id for session-backed requests.
//
// PasswordService implements all three on top of a PasswordStorage and
// bcrypt. Two storage implementations ship with the module: MemoryStorage in
// this package, used for development and tests, and the Postgres store in
// svc/userstore.
//
// # Error contract
//
// Verify returns ErrInvalidCredentials whenever the pair does not identify a
// user, whether the email is unknown or the password is wrong. Failures of the
// storage itself are joined with ErrUnavailable so callers can report an
// outage instead of a credentials problem:
//
//	user, err := svc.Verify(ctx, email, password)
//	switch {
//	case errors.Is(err, auth.ErrInvalidCredentials):
//		// show "Invalid email or password"
//	case err != nil:
//		// service unavailable
//	}
//
// Register returns validator.ValidationErrors for malformed input and
// ErrEmailAlreadyExists when the address is taken.
//
// # Context
//
// WithUser and UserFromContext carry the signed-in user through a request.
package auth
