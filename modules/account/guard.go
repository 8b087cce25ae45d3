package account

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/acmeconsole/handler"
	"github.com/dmitrymomot/acmeconsole/pkg/auth"
	"github.com/dmitrymomot/acmeconsole/pkg/logger"
	"github.com/dmitrymomot/acmeconsole/pkg/session"
)

// AuthenticatedHome is where signed-in visitors of the auth pages are sent.
const AuthenticatedHome = "/"

// Guard keeps signed-in users away from the auth pages by redirecting them
// to AuthenticatedHome before the page handler runs. Anonymous requests pass
// through. A resolver failure is logged and the request is treated as
// anonymous, so the guard never fails a request itself.
func Guard(resolver session.Resolver, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok, err := resolver.Resolve(r.Context(), r)
			if err != nil {
				log.WarnContext(r.Context(), "session resolution failed, treating request as anonymous",
					logger.Error(err),
					logger.Component("account"),
				)
			}
			if ok {
				redirect(w, r, AuthenticatedHome)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser admits only signed-in users and puts their auth.User into the
// request context. Anonymous visitors are redirected to the login page with a
// redirectTo pointing back at the requested path. A session whose user no
// longer exists counts as anonymous. Backend failures reach errorHandler as
// handler.ErrServiceUnavailable; a nil errorHandler uses handler.NewErrorHandler.
func RequireUser(resolver session.Resolver, users auth.UserGetter, errorHandler handler.ErrorHandler[handler.Context], log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok, err := resolver.Resolve(r.Context(), r)
			if err != nil {
				errorHandler(handler.NewContext(w, r), errors.Join(handler.ErrServiceUnavailable, err))
				return
			}
			if !ok {
				redirect(w, r, loginPath(r.URL.RequestURI()))
				return
			}

			user, err := users.GetUser(r.Context(), userID)
			switch {
			case errors.Is(err, auth.ErrUserNotFound):
				log.InfoContext(r.Context(), "session for unknown user",
					logger.Subject(userID),
					logger.Component("account"),
				)
				redirect(w, r, loginPath(r.URL.RequestURI()))
				return
			case err != nil:
				errorHandler(handler.NewContext(w, r), errors.Join(handler.ErrServiceUnavailable, fmt.Errorf("load user: %w", err)))
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
		})
	}
}

// redirect answers with 303, or with an SSE redirect for DataStar requests.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	_ = handler.Redirect(target).Render(w, r)
}
