// Package account serves sign-in, sign-up and sign-out, and provides the
// middleware that routes visitors by session state.
//
// Submit and SubmitRegistration hold the form pipeline. They are pure
// functions of their inputs and return a Result instead of failing:
//
//  1. redirectTo is sanitized to a same-origin path, "/" otherwise;
//  2. the email must be longer than three characters and contain "@";
//  3. the password must be non-empty;
//  4. the verifier (or registrar) is called.
//
// Invalid credentials are a 400 with an email field error. Any other verifier
// failure, including a timeout, is a 503 with a form-level message, never the
// invalid-credentials message.
//
// Service renders the Result three ways: JSON for clients that ask for it, a
// DataStar patch of the form, or the full page. Success starts a session and
// redirects.
//
// Guard sends signed-in users away from the auth pages. RequireUser sends
// anonymous users to /login?redirectTo=<path> and puts the auth.User in the
// request context.
package account
