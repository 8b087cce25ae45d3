package account

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/acmeconsole/pkg/auth"
	"github.com/dmitrymomot/acmeconsole/pkg/sanitizer"
	"github.com/dmitrymomot/acmeconsole/pkg/validator"
)

// DefaultRedirect is where a successful sign-in lands when no usable redirectTo was given.
const DefaultRedirect = "/"

// Submit runs a sign-in attempt: sanitize the redirect target, validate the
// email then the password, and ask the verifier. Only the first failing check
// is reported. Verifier errors other than auth.ErrInvalidCredentials become
// the 503 unavailable outcome.
func Submit(ctx context.Context, verifier auth.Verifier, c Credentials) Result {
	redirectTo := safeTarget(c.RedirectTo)

	if res, ok := validateCredentials(c, redirectTo); !ok {
		return res
	}

	user, err := verifier.Verify(ctx, c.Email, c.Password)
	switch {
	case err == nil && user != nil:
		return Result{Status: http.StatusOK, RedirectTo: redirectTo, User: user}
	case err == nil, errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrUserNotFound):
		return failure(http.StatusBadRequest, redirectTo, fieldError(MsgInvalidCredentials, ""))
	default:
		return unavailable(redirectTo)
	}
}

// SubmitRegistration validates like Submit and then creates the account.
func SubmitRegistration(ctx context.Context, registrar auth.Registrar, c Credentials) Result {
	redirectTo := safeTarget(c.RedirectTo)

	if res, ok := validateCredentials(c, redirectTo); !ok {
		return res
	}

	user, err := registrar.Register(ctx, c.Email, c.Password)
	switch {
	case err == nil && user != nil:
		return Result{Status: http.StatusOK, RedirectTo: redirectTo, User: user}
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return failure(http.StatusBadRequest, redirectTo, fieldError(MsgEmailTaken, ""))
	case validator.IsValidationError(err):
		errs := validator.ExtractValidationErrors(err)
		if errs.Has("email") {
			return failure(http.StatusBadRequest, redirectTo, fieldError(MsgEmailInvalid, ""))
		}
		return failure(http.StatusBadRequest, redirectTo, fieldError("", "Password "+errs.First("password")))
	default:
		return unavailable(redirectTo)
	}
}

// validateCredentials reports the first failing field check.
func validateCredentials(c Credentials, redirectTo string) (Result, bool) {
	err := validator.ApplyFirst(
		validator.ValidEmail("email", c.Email).WithMessage(MsgEmailInvalid),
		validator.Required("password", c.Password).WithMessage(MsgPasswordRequired),
	)
	if err == nil {
		return Result{}, true
	}

	errs := validator.ExtractValidationErrors(err)
	return failure(http.StatusBadRequest, redirectTo, fieldError(errs.First("email"), errs.First("password"))), false
}

func safeTarget(raw string) string {
	return sanitizer.SafeRedirect(raw, DefaultRedirect)
}

// loginPath builds the sign-in URL that returns to target afterwards.
func loginPath(target string) string {
	target = sanitizer.SafeRedirect(target, "")
	if target == "" || target == DefaultRedirect || strings.HasPrefix(target, "/login") {
		return "/login"
	}
	return "/login?redirectTo=" + url.QueryEscape(target)
}
