package app

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/acmeconsole/handler"
	"github.com/dmitrymomot/acmeconsole/modules/account"
	"github.com/dmitrymomot/acmeconsole/modules/dashboard"
	"github.com/dmitrymomot/acmeconsole/pkg/auth"
	"github.com/dmitrymomot/acmeconsole/pkg/clientip"
	"github.com/dmitrymomot/acmeconsole/pkg/cookie"
	"github.com/dmitrymomot/acmeconsole/pkg/environment"
	"github.com/dmitrymomot/acmeconsole/pkg/httpserver"
	"github.com/dmitrymomot/acmeconsole/pkg/logger"
	"github.com/dmitrymomot/acmeconsole/pkg/requestid"
	"github.com/dmitrymomot/acmeconsole/pkg/session"
	"github.com/dmitrymomot/acmeconsole/views"
)

// Users is everything the pages need from the account backend.
// *auth.PasswordService implements it.
type Users interface {
	auth.Verifier
	auth.Registrar
	auth.UserGetter
}

// Deps are the collaborators New wires into the router.
type Deps struct {
	Log       *slog.Logger
	Env       environment.Environment
	Sessions  *session.Manager
	Users     Users
	Flash     *cookie.Manager // optional; enables the signed-out notice
	Dashboard dashboard.DataSource
	Account   account.Config

	// TrustProxy makes client IP resolution honor forwarding headers.
	TrustProxy bool

	// Checks back /readyz, one per external store.
	Checks           []httpserver.Check
	ReadinessTimeout time.Duration
}

// New builds the HTTP handler for the whole console.
func New(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.ReadinessTimeout <= 0 {
		d.ReadinessTimeout = 2 * time.Second
	}

	errorHandler := handler.NewErrorHandler(d.Log, handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage,
		ErrorToast: views.ErrorToast,
	})

	accountOpts := []account.Option{
		account.WithLogger(d.Log),
		account.WithErrorHandler(errorHandler),
	}
	if d.Flash != nil {
		accountOpts = append(accountOpts, account.WithFlash(d.Flash))
	}
	accounts := account.NewService(d.Account, d.Users, d.Users, d.Sessions, accountOpts...)
	overview := dashboard.NewService(d.Dashboard,
		dashboard.WithLogger(d.Log),
		dashboard.WithErrorHandler(errorHandler),
	)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(d.TrustProxy),
		environment.Middleware(d.Env),
		logger.Middleware(d.Log),
		middleware.Recoverer,
	)

	// probes stay outside session handling
	r.Get("/healthz", httpserver.Liveness())
	r.Get("/readyz", httpserver.Readiness(d.Log, d.ReadinessTimeout, d.Checks...))

	r.Group(func(r chi.Router) {
		r.Use(d.Sessions.Middleware)

		r.Get("/", home(d.Sessions, d.Log))
		accounts.Routes(r)

		r.With(account.RequireUser(d.Sessions, d.Users, errorHandler, d.Log)).
			Mount("/dashboard", overview.Handle())

		r.Get("/terms", static(views.TermsPage(), errorHandler))
		r.Get("/privacy", static(views.PrivacyPage(), errorHandler))
	})

	r.NotFound(handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	}, handler.WithErrorHandler[handler.Context, struct{}](errorHandler)))

	r.MethodNotAllowed(handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrMethodNotAllowed)
	}, handler.WithErrorHandler[handler.Context, struct{}](errorHandler)))

	return r
}

// home sends signed-in users to the dashboard and everyone else to login.
func home(resolver session.Resolver, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := "/login"
		_, ok, err := resolver.Resolve(r.Context(), r)
		if err != nil {
			log.WarnContext(r.Context(), "session resolution failed on home",
				logger.Error(err),
				logger.Component("app"),
			)
		}
		if ok {
			target = "/dashboard"
		}
		_ = handler.Redirect(target).Render(w, r)
	}
}

func static(page templ.Component, errorHandler handler.ErrorHandler[handler.Context]) http.HandlerFunc {
	return handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Templ(page)
	}, handler.WithErrorHandler[handler.Context, struct{}](errorHandler))
}
