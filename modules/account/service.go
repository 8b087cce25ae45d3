package account

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/acmeconsole/handler"
	"github.com/dmitrymomot/acmeconsole/pkg/auth"
	"github.com/dmitrymomot/acmeconsole/pkg/binder"
	"github.com/dmitrymomot/acmeconsole/pkg/cookie"
	"github.com/dmitrymomot/acmeconsole/pkg/logger"
	"github.com/dmitrymomot/acmeconsole/pkg/session"
	"github.com/dmitrymomot/acmeconsole/views"
)

// SessionManager is the part of session.Manager the account pages use.
type SessionManager interface {
	session.Resolver
	Authenticate(ctx context.Context, w http.ResponseWriter, r *http.Request, userID uuid.UUID) (*session.Session, error)
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

const flashNotice = "notice"

// Service serves the login, registration and logout endpoints.
type Service struct {
	cfg          Config
	verifier     auth.Verifier
	registrar    auth.Registrar
	sessions     SessionManager
	flash        *cookie.Manager
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithFlash enables the one-shot notice shown on the login page after logout.
func WithFlash(m *cookie.Manager) Option {
	return func(s *Service) {
		s.flash = m
	}
}

func NewService(cfg Config, verifier auth.Verifier, registrar auth.Registrar, sessions SessionManager, opts ...Option) *Service {
	if cfg.VerifyTimeout <= 0 {
		cfg.VerifyTimeout = DefaultConfig().VerifyTimeout
	}
	s := &Service{
		cfg:       cfg,
		verifier:  verifier,
		registrar: registrar,
		sessions:  sessions,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			ErrorPage:  views.ErrorPage,
			ErrorToast: views.ErrorToast,
		})
	}
	return s
}

// Handle returns a router serving only the account routes.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	s.Routes(r)
	return r
}

// Routes registers /login, /register and /logout on r. The first two sit
// behind Guard.
func (s *Service) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(Guard(s.sessions, s.log))

		// GET renders the page, POST submits the form
		r.HandleFunc("/login", handler.Wrap(s.login,
			handler.WithBinders[handler.Context, Credentials](
				binder.Query(), // Always works
				binder.Form(),  // Skipped for GET, applied for POST
			),
			handler.WithErrorHandler[handler.Context, Credentials](s.errorHandler),
		))

		r.HandleFunc("/register", handler.Wrap(s.register,
			handler.WithBinders[handler.Context, Credentials](
				binder.Query(),
				binder.Form(),
			),
			handler.WithErrorHandler[handler.Context, Credentials](s.errorHandler),
		))
	})

	r.Post("/logout", handler.Wrap(s.logout,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
}

func (s *Service) login(ctx handler.Context, req Credentials) handler.Response {
	r := ctx.Request()
	if r.Method != http.MethodPost {
		return s.page(ctx, loginForm, req.Email, Result{Status: http.StatusOK, RedirectTo: safeTarget(req.RedirectTo)})
	}

	vctx, cancel := context.WithTimeout(ctx, s.cfg.VerifyTimeout)
	defer cancel()

	res := Submit(vctx, s.verifier, req)
	s.logOutcome(ctx, "login", req.Email, res)
	return s.finish(ctx, loginForm, req.Email, res)
}

func (s *Service) register(ctx handler.Context, req Credentials) handler.Response {
	r := ctx.Request()
	if r.Method != http.MethodPost {
		return s.page(ctx, registerForm, req.Email, Result{Status: http.StatusOK, RedirectTo: safeTarget(req.RedirectTo)})
	}

	vctx, cancel := context.WithTimeout(ctx, s.cfg.VerifyTimeout)
	defer cancel()

	res := SubmitRegistration(vctx, s.registrar, req)
	s.logOutcome(ctx, "register", req.Email, res)
	return s.finish(ctx, registerForm, req.Email, res)
}

func (s *Service) logout(ctx handler.Context, _ struct{}) handler.Response {
	if err := s.sessions.Destroy(ctx, ctx.ResponseWriter(), ctx.Request()); err != nil {
		s.log.ErrorContext(ctx, "failed to destroy session",
			logger.Error(err),
			logger.Component("account"),
		)
	}
	if s.flash != nil {
		if err := s.flash.SetFlash(ctx.ResponseWriter(), flashNotice, MsgSignedOut); err != nil {
			s.log.WarnContext(ctx, "failed to set flash", logger.Error(err))
		}
	}
	return handler.Redirect("/login")
}

// finish establishes the session after a successful submission and renders the result.
func (s *Service) finish(ctx handler.Context, f form, email string, res Result) handler.Response {
	if res.OK() {
		if _, err := s.sessions.Authenticate(ctx, ctx.ResponseWriter(), ctx.Request(), res.User.ID); err != nil {
			s.log.ErrorContext(ctx, "failed to start session",
				logger.Subject(res.User.ID),
				logger.Error(err),
				logger.Component("account"),
			)
			res = unavailable(res.RedirectTo)
		}
	}

	if res.OK() {
		if handler.WantsJSON(ctx.Request()) {
			return handler.JSON(map[string]string{"redirectTo": res.RedirectTo})
		}
		return handler.Redirect(res.RedirectTo)
	}

	if handler.WantsJSON(ctx.Request()) {
		return handler.JSON(errorBody{Errors: res.Errors, Message: res.Message}, handler.WithJSONStatus(res.Status))
	}
	return s.page(ctx, f, email, res)
}

type errorBody struct {
	Errors  FormErrors `json:"errors"`
	Message string     `json:"message,omitempty"`
}

// page renders the form state: the whole page for regular requests, a patch
// of the form for DataStar.
func (s *Service) page(ctx handler.Context, f form, email string, res Result) handler.Response {
	r := ctx.Request()
	state := views.AuthFormState{
		Email:         email,
		RedirectTo:    res.RedirectTo,
		EmailError:    res.Errors.email(),
		PasswordError: res.Errors.password(),
		Message:       res.Message,
	}
	if r.Method != http.MethodPost && s.flash != nil {
		var notice string
		if err := s.flash.GetFlash(ctx.ResponseWriter(), r, flashNotice, &notice); err == nil {
			state.Notice = notice
		}
	}

	return handler.TemplPartial(
		f.form(state),
		f.page(r.URL.Path, state),
		handler.WithTarget("#"+f.id),
	).WithStatus(res.Status)
}

func (s *Service) logOutcome(ctx context.Context, action, email string, res Result) {
	switch {
	case res.OK():
		s.log.InfoContext(ctx, action+" succeeded",
			logger.Subject(res.User.ID),
			logger.Component("account"),
			logger.Event(action),
		)
	case res.Status >= http.StatusInternalServerError:
		s.log.ErrorContext(ctx, action+" unavailable",
			logger.Email(email),
			slog.Int("status", res.Status),
			logger.Component("account"),
			logger.Event(action),
		)
	default:
		s.log.InfoContext(ctx, action+" rejected",
			logger.Email(email),
			slog.Int("status", res.Status),
			logger.Component("account"),
			logger.Event(action),
		)
	}
}

type form struct {
	id   string
	form func(views.AuthFormState) templ.Component
	page func(string, views.AuthFormState) templ.Component
}

var (
	loginForm    = form{id: "login-form", form: views.LoginForm, page: views.LoginPage}
	registerForm = form{id: "register-form", form: views.RegisterForm, page: views.RegisterPage}
)
