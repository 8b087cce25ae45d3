package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/acmeconsole/pkg/environment"
	"github.com/dmitrymomot/acmeconsole/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("level gates records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("static attributes and extractors", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(slog.String("svc", "console")),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				v, ok := ctx.Value(ctxKey{}).(string)
				return slog.String("trace", v), ok
			}),
		)
		log.InfoContext(context.WithValue(context.Background(), ctxKey{}, "t-1"), "hello")

		entry := decode(t, buf)
		assert.Equal(t, "console", entry["svc"])
		assert.Equal(t, "t-1", entry["trace"])
	})

	t.Run("production environment", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment(environment.Production, "acme"),
			logger.WithOutput(buf),
		)
		log.Debug("dropped")
		log.Info("kept")

		entry := decode(t, buf)
		assert.Equal(t, "acme", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("development environment", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("", "acme"), logger.WithOutput(buf))
		log.Debug("debug line")
		assert.Contains(t, buf.String(), "env=development")
		assert.Contains(t, buf.String(), "debug line")
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("error", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
		assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)
	})

	t.Run("subject hides identifier", func(t *testing.T) {
		attr := logger.Subject("550e8400-e29b-41d4-a716-446655440000")
		assert.Equal(t, "subject", attr.Key)
		assert.Len(t, attr.Value.String(), 12)
		assert.NotContains(t, attr.Value.String(), "550e8400")
		assert.Equal(t, attr.Value.String(), logger.Subject("550e8400-e29b-41d4-a716-446655440000").Value.String())
		assert.NotEqual(t, attr.Value.String(), logger.Subject("another").Value.String())
		assert.Equal(t, slog.Attr{}, logger.Subject(nil))
	})

	t.Run("email masked", func(t *testing.T) {
		assert.Equal(t, "s****@acme.com", logger.Email("sofia@acme.com").Value.String())
	})

	t.Run("request id", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.RequestID(""))
		assert.Equal(t, "abc", logger.RequestID("abc").Value.String())
	})

	t.Run("group", func(t *testing.T) {
		g := logger.Group("http", logger.Component("router"))
		assert.Equal(t, slog.KindGroup, g.Value.Kind())
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		level  string
	}{
		{"ok", http.StatusOK, "INFO"},
		{"client error", http.StatusBadRequest, "WARN"},
		{"server error", http.StatusServiceUnavailable, "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(logger.WithOutput(buf))

			h := logger.Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/login", nil))

			entry := decode(t, buf)
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "POST", entry["method"])
			assert.Equal(t, "/login", entry["path"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.EqualValues(t, 4, entry["bytes"])
			assert.True(t, strings.HasPrefix(entry["msg"].(string), "http"))
		})
	}
}
