package dashboard_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/acmeconsole/modules/dashboard"
	"github.com/dmitrymomot/acmeconsole/pkg/auth"
	dataset "github.com/dmitrymomot/acmeconsole/svc/dashboard"
)

type staticData dataset.Overview

func (s staticData) Overview(context.Context) dataset.Overview {
	return dataset.Overview(s)
}

func TestService_Overview(t *testing.T) {
	t.Parallel()

	h := dashboard.NewService(dataset.MustNew()).Handle()

	t.Run("renders for signed-in user", func(t *testing.T) {
		t.Parallel()
		user := &auth.User{ID: uuid.New(), Name: "Sofia Davis", Email: "sofia.davis@acme.com"}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(auth.WithUser(req.Context(), user))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		body := rec.Body.String()
		assert.Contains(t, body, "sofia.davis@acme.com")
		assert.Contains(t, body, "Total Revenue")
		assert.Contains(t, body, "Olivia Martin")
		assert.Contains(t, body, `id="overview-chart"`)
		assert.Contains(t, body, `action="/logout"`)
	})

	t.Run("no user in context", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Total Revenue")
	})
}

func TestService_UsesDataSource(t *testing.T) {
	t.Parallel()

	data := staticData{
		Stats: []dataset.Stat{{Title: "Active Now", Value: "+7", Change: "+1 since last hour", Icon: "activity"}},
	}
	h := dashboard.NewService(data).Handle()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(auth.WithUser(req.Context(), &auth.User{ID: uuid.New(), Name: "Jackson Lee"}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "+1 since last hour")
	assert.Contains(t, rec.Body.String(), "JL")
}
