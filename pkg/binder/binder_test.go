package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/acmeconsole/pkg/binder"
)

type credentials struct {
	Email      string `form:"email"`
	Password   string `form:"password"`
	RedirectTo string `form:"redirectTo" query:"redirectTo"`
	Remember   bool   `form:"remember"`
	Ignored    string `form:"-"`
	Untagged   string
}

func formRequest(method, target string, values url.Values) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("binds url-encoded body", func(t *testing.T) {
		t.Parallel()
		r := formRequest(http.MethodPost, "/login", url.Values{
			"email":      {"a@b.com"},
			"password":   {"secret"},
			"redirectTo": {"/settings"},
			"remember":   {"on"},
			"Ignored":    {"x"},
			"untagged":   {"y"},
		})

		var got credentials
		require.NoError(t, binder.Form()(r, &got))
		assert.Equal(t, credentials{
			Email:      "a@b.com",
			Password:   "secret",
			RedirectTo: "/settings",
			Remember:   true,
		}, got)
	})

	t.Run("binds multipart body", func(t *testing.T) {
		t.Parallel()
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("email", "a@b.com"))
		require.NoError(t, mw.WriteField("password", "secret"))
		require.NoError(t, mw.Close())

		r := httptest.NewRequest(http.MethodPost, "/login", &body)
		r.Header.Set("Content-Type", mw.FormDataContentType())

		var got credentials
		require.NoError(t, binder.Form()(r, &got))
		assert.Equal(t, "a@b.com", got.Email)
		assert.Equal(t, "secret", got.Password)
	})

	t.Run("not applicable to GET", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/login", nil)
		var got credentials
		assert.ErrorIs(t, binder.Form()(r, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=a"))
		var got credentials
		assert.ErrorIs(t, binder.Form()(r, &got), binder.ErrMissingContentType)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "application/json")
		var got credentials
		assert.ErrorIs(t, binder.Form()(r, &got), binder.ErrUnsupportedMediaType)
	})

	t.Run("invalid field value", func(t *testing.T) {
		t.Parallel()
		r := formRequest(http.MethodPost, "/login", url.Values{"remember": {"maybe"}})
		var got credentials
		err := binder.Form()(r, &got)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
		assert.Contains(t, err.Error(), "remember")
	})

	t.Run("rejects non-pointer target", func(t *testing.T) {
		t.Parallel()
		r := formRequest(http.MethodPost, "/login", url.Values{"email": {"a@b.com"}})
		err := binder.Form()(r, credentials{})
		assert.ErrorIs(t, err, binder.ErrInvalidTarget)
	})

	t.Run("ignores query string", func(t *testing.T) {
		t.Parallel()
		r := formRequest(http.MethodPost, "/login?email=query@b.com", url.Values{"password": {"secret"}})
		var got credentials
		require.NoError(t, binder.Form()(r, &got))
		assert.Empty(t, got.Email)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	t.Run("binds only query-tagged fields", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/login?redirectTo=%2Fdashboard&password=leak&email=x", nil)

		var got credentials
		require.NoError(t, binder.Query()(r, &got))
		assert.Equal(t, credentials{RedirectTo: "/dashboard"}, got)
	})

	t.Run("slices and pointers", func(t *testing.T) {
		t.Parallel()
		type filter struct {
			Tags  []string `query:"tags"`
			Page  *int     `query:"page"`
			Limit uint     `query:"limit"`
		}
		r := httptest.NewRequest(http.MethodGet, "/?tags=a,b&tags=c&page=2&limit=10", nil)

		var got filter
		require.NoError(t, binder.Query()(r, &got))
		assert.Equal(t, []string{"a", "b", "c"}, got.Tags)
		require.NotNil(t, got.Page)
		assert.Equal(t, 2, *got.Page)
		assert.Equal(t, uint(10), got.Limit)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		type filter struct {
			Page int `query:"page"`
		}
		r := httptest.NewRequest(http.MethodGet, "/?page=two", nil)
		var got filter
		assert.ErrorIs(t, binder.Query()(r, &got), binder.ErrInvalidQuery)
	})

	t.Run("form binder keeps query value when body omits it", func(t *testing.T) {
		t.Parallel()
		r := formRequest(http.MethodPost, "/login?redirectTo=%2Freports", url.Values{"email": {"a@b.com"}})

		var got credentials
		require.NoError(t, binder.Query()(r, &got))
		require.NoError(t, binder.Form()(r, &got))
		assert.Equal(t, "/reports", got.RedirectTo)
		assert.Equal(t, "a@b.com", got.Email)
	})
}
