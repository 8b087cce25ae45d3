package dashboard

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/acmeconsole/handler"
	"github.com/dmitrymomot/acmeconsole/pkg/auth"
	"github.com/dmitrymomot/acmeconsole/svc/dashboard"
	"github.com/dmitrymomot/acmeconsole/views"
)

// DataSource provides the figures shown on the overview page.
type DataSource interface {
	Overview(ctx context.Context) dashboard.Overview
}

// Service renders the analytics dashboard for the user RequireUser placed in
// the request context.
type Service struct {
	data         DataSource
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

func NewService(data DataSource, opts ...Option) *Service {
	s := &Service{
		data: data,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
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

// Handle returns the dashboard routes. Mount them behind account.RequireUser.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", handler.Wrap(s.overview,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	return r
}

func (s *Service) overview(ctx handler.Context, _ struct{}) handler.Response {
	user, ok := auth.UserFromContext(ctx)
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}

	menu := views.UserMenu{Name: user.Name, Email: user.Email}
	return handler.Templ(views.DashboardPage(menu, s.data.Overview(ctx)))
}
