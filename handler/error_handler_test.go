package handler_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/acmeconsole/handler"
	"github.com/dmitrymomot/acmeconsole/pkg/requestid"
)

func mockErrorPage(params handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "Error: %s (%d) req=%s", params.Error, params.StatusCode, params.RequestID)
		return err
	})
}

func mockErrorToast(params handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="toast %s">%s</div>`, params.Type, params.Message)
		return err
	})
}

func newErrorHandler(buf *bytes.Buffer) handler.ErrorHandler[handler.Context] {
	log := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  mockErrorPage,
		ErrorToast: mockErrorToast,
	})
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("generic error renders 500 page without details", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		eh := newErrorHandler(&logs)

		r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		r = r.WithContext(requestid.WithContext(r.Context(), "req-42"))
		w := httptest.NewRecorder()

		eh(handler.NewContext(w, r), errors.New("db password leaked"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "An error occurred processing your request")
		assert.Contains(t, w.Body.String(), "req=req-42")
		assert.NotContains(t, w.Body.String(), "leaked")
		assert.Contains(t, logs.String(), `"level":"ERROR"`)
		assert.Contains(t, logs.String(), "db password leaked")
	})

	t.Run("http error uses its status and logs at warn", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		eh := newErrorHandler(&logs)

		w := httptest.NewRecorder()
		eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/nope", nil)), handler.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Error: not_found (404)")
		assert.Contains(t, logs.String(), `"level":"WARN"`)
	})

	t.Run("datastar request gets a toast", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		eh := newErrorHandler(&logs)

		w := httptest.NewRecorder()
		eh(handler.NewContext(w, datastarRequest(http.MethodPost, "/login")), handler.ErrBadRequest)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "#toast-container")
		assert.Contains(t, body, `<div class="toast warning">bad_request</div>`)
	})

	t.Run("json client gets json error", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		eh := newErrorHandler(&logs)

		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		r.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, r), errors.Join(handler.ErrBadRequest, errors.New("bad form")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":{"code":"bad_request","message":"Bad Request"}}`, w.Body.String())
	})

	t.Run("falls back to plain text without error page", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), handler.ErrorHandlerConfig{})

		w := httptest.NewRecorder()
		eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrForbidden)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "forbidden")
	})

	t.Run("failing error page falls back to 500", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), handler.ErrorHandlerConfig{
			ErrorPage: func(handler.ErrorPageParams) templ.Component {
				return templ.ComponentFunc(func(context.Context, io.Writer) error { return errors.New("broken") })
			},
		})

		w := httptest.NewRecorder()
		eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrNotFound)
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
