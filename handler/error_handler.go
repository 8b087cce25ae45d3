package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/acmeconsole/pkg/logger"
	"github.com/dmitrymomot/acmeconsole/pkg/requestid"
)

// ErrorPageParams contains data for rendering error pages
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams contains data for rendering error toasts
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig configures the default error handler
type ErrorHandlerConfig struct {
	// ErrorPage renders full error page for regular HTTP requests
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders toast notification for DataStar requests
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget specifies where to render toast notifications (default: "#toast-container")
	ToastTarget string

	// ToastMode specifies how to render toasts (default: PatchPrepend)
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

const genericErrorMessage = "An error occurred processing your request"

func asHTTPError(err error) (HTTPError, bool) {
	var httpErr HTTPError
	ok := errors.As(err, &httpErr)
	return httpErr, ok
}

// classifyError analyzes the error and returns structured error information.
// Only HTTPError keys reach the client; other error texts stay in the logs.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    genericErrorMessage,
	}

	if httpErr, ok := asHTTPError(err); ok {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	switch {
	case info.StatusCode >= http.StatusInternalServerError:
		info.Type, info.LogLevel = "error", slog.LevelError
	case info.StatusCode >= http.StatusBadRequest:
		info.Type, info.LogLevel = "warning", slog.LevelWarn
	default:
		info.Type, info.LogLevel = "info", slog.LevelInfo
	}

	return info
}

type errorHandler struct {
	log *slog.Logger
	cfg ErrorHandlerConfig
}

// NewErrorHandler creates the default error handler that adapts to request type.
// DataStar requests get a toast patched into ToastTarget, clients asking for
// JSON get a JSON error body, everyone else gets the error page.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	if log == nil {
		log = slog.Default()
	}

	h := &errorHandler{log: log, cfg: cfg}
	return h.handle
}

func (h *errorHandler) handle(ctx Context, err error) {
	r := ctx.Request()
	info := classifyError(err)
	requestID := requestid.FromContext(r.Context())

	h.log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
		logger.Component("error_handler"),
	)

	switch {
	case IsDataStar(r):
		h.renderToast(ctx, info, requestID)
	case WantsJSON(r):
		h.render(ctx, JSONError(err))
	default:
		h.renderPage(ctx, info, requestID)
	}
}

func (h *errorHandler) renderToast(ctx Context, info ErrorInfo, requestID string) {
	if h.cfg.ErrorToast == nil {
		h.log.WarnContext(ctx, "no error toast component configured for DataStar request",
			logger.Component("error_handler"),
		)
		return
	}

	toast := h.cfg.ErrorToast(ErrorToastParams{
		Message:   info.Message,
		Type:      info.Type,
		RequestID: requestID,
	})
	h.render(ctx, Templ(toast, WithTarget(h.cfg.ToastTarget), WithPatchMode(h.cfg.ToastMode)))
}

func (h *errorHandler) renderPage(ctx Context, info ErrorInfo, requestID string) {
	if h.cfg.ErrorPage == nil {
		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
		return
	}

	page := h.cfg.ErrorPage(ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  requestID,
		RetryURL:   ctx.Request().URL.Path,
	})
	if err := Templ(page).WithStatus(info.StatusCode).Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		h.log.ErrorContext(ctx, "failed to render error page",
			logger.Error(err),
			logger.Event("render_error_page"),
		)
		http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *errorHandler) render(ctx Context, resp Response) {
	if err := resp.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		h.log.ErrorContext(ctx, "failed to render error response",
			logger.Error(err),
			logger.Event("render_error_response"),
		)
	}
}
