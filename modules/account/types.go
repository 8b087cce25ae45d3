package account

import (
	"net/http"

	"github.com/dmitrymomot/acmeconsole/pkg/auth"
)

// Credentials is one login or registration submission. RedirectTo may also
// arrive on the query string of the page that rendered the form.
type Credentials struct {
	Email      string `form:"email"`
	Password   string `form:"password"`
	RedirectTo string `form:"redirectTo" query:"redirectTo"`
}

// FormErrors holds at most one message per field. A nil field has no error
// and encodes as JSON null.
type FormErrors struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Empty reports whether no field has an error.
func (e FormErrors) Empty() bool {
	return e.Email == nil && e.Password == nil
}

func (e FormErrors) email() string    { return deref(e.Email) }
func (e FormErrors) password() string { return deref(e.Password) }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Result is the outcome of a submission. User is set only on success.
type Result struct {
	Status     int
	Errors     FormErrors
	Message    string // form-level message, set when the service is unavailable
	RedirectTo string // sanitized; where to go after success
	User       *auth.User
}

// OK reports a successful submission.
func (r Result) OK() bool {
	return r.User != nil
}

const (
	MsgEmailInvalid       = "Email is invalid"
	MsgPasswordRequired   = "Password is required"
	MsgInvalidCredentials = "Invalid email or password"
	MsgEmailTaken         = "A user already exists with this email"
	MsgUnavailable        = "We can't reach the sign-in service right now. Please try again in a moment."
	MsgSignedOut          = "You have been signed out."
)

func fieldError(email, password string) FormErrors {
	var e FormErrors
	if email != "" {
		e.Email = &email
	}
	if password != "" {
		e.Password = &password
	}
	return e
}

func failure(status int, redirectTo string, errs FormErrors) Result {
	return Result{Status: status, Errors: errs, RedirectTo: redirectTo}
}

func unavailable(redirectTo string) Result {
	return Result{Status: http.StatusServiceUnavailable, Message: MsgUnavailable, RedirectTo: redirectTo}
}
