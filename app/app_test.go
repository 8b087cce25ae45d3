package app_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/acmeconsole/app"
	"github.com/dmitrymomot/acmeconsole/modules/account"
	"github.com/dmitrymomot/acmeconsole/pkg/auth"
	"github.com/dmitrymomot/acmeconsole/pkg/cookie"
	"github.com/dmitrymomot/acmeconsole/pkg/environment"
	"github.com/dmitrymomot/acmeconsole/pkg/httpserver"
	"github.com/dmitrymomot/acmeconsole/pkg/pg"
	"github.com/dmitrymomot/acmeconsole/pkg/requestid"
	"github.com/dmitrymomot/acmeconsole/pkg/session"
	"github.com/dmitrymomot/acmeconsole/svc/dashboard"
)

const (
	email    = "sofia.davis@acme.com"
	password = "Passw0rd!"
)

func newApp(t *testing.T, checks ...httpserver.Check) http.Handler {
	t.Helper()

	cookieMgr, err := cookie.New([]string{"test-secret-key-that-is-long-enough"})
	require.NoError(t, err)

	sessions := session.New(
		session.WithCookieManager(cookieMgr),
		session.WithStore(session.NewMemoryStore(0)),
	)
	t.Cleanup(func() { _ = sessions.Close() })

	users := auth.NewPasswordService(auth.NewMemoryStorage(), auth.WithBcryptCost(bcrypt.MinCost))
	require.NoError(t, app.Seed(context.Background(), users, email, password))

	return app.New(app.Deps{
		Env:       environment.Development,
		Sessions:  sessions,
		Users:     users,
		Flash:     cookieMgr,
		Dashboard: dashboard.MustNew(),
		Account:   account.DefaultConfig(),
		Checks:    checks,
	})
}

func get(h http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func signIn(t *testing.T, h http.Handler, redirectTo string) (*httptest.ResponseRecorder, *http.Cookie) {
	t.Helper()
	form := url.Values{"email": {email}, "password": {password}, "redirectTo": {redirectTo}}
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "sid" && c.Value != "" {
			return rec, c
		}
	}
	require.Fail(t, "no session cookie after sign-in", "status %d", rec.Code)
	return rec, nil
}

func TestHome(t *testing.T) {
	t.Parallel()
	h := newApp(t)

	rec := get(h, "/")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	_, sid := signIn(t, h, "")
	rec = get(h, "/", sid)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestDashboardRequiresUser(t *testing.T) {
	t.Parallel()
	h := newApp(t)

	rec := get(h, "/dashboard")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirectTo=%2Fdashboard", rec.Header().Get("Location"))
}

func TestSignInFlow(t *testing.T) {
	t.Parallel()
	h := newApp(t)

	// the login page keeps the target from the guard redirect
	page := get(h, "/login?redirectTo=%2Fdashboard")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), `name="redirectTo" value="/dashboard"`)

	rec, sid := signIn(t, h, "/dashboard")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	dash := get(h, "/dashboard", sid)
	require.Equal(t, http.StatusOK, dash.Code)
	body := dash.Body.String()
	assert.Contains(t, body, "Sofia Davis")
	assert.Contains(t, body, email)
	assert.Contains(t, body, "Recent Sales")

	for _, path := range []string{"/login", "/register"} {
		rec := get(h, path, sid)
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/", rec.Header().Get("Location"), path)
	}

	logout := httptest.NewRequest(http.MethodPost, "/logout", nil)
	logout.AddCookie(sid)
	out := httptest.NewRecorder()
	h.ServeHTTP(out, logout)
	assert.Equal(t, http.StatusSeeOther, out.Code)
	assert.Equal(t, "/login", out.Header().Get("Location"))

	after := get(h, "/dashboard", sid)
	assert.Equal(t, http.StatusSeeOther, after.Code)
	assert.Equal(t, "/login?redirectTo=%2Fdashboard", after.Header().Get("Location"))
}

func TestStaticPages(t *testing.T) {
	t.Parallel()
	h := newApp(t)

	for path, title := range map[string]string{"/terms": "Terms of Service", "/privacy": "Privacy Policy"} {
		rec := get(h, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), title, path)
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()
	h := newApp(t)

	rec := get(h, "/does-not-exist")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestRequestID(t *testing.T) {
	t.Parallel()
	h := newApp(t)

	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.Header.Set(requestid.Header, "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	assert.Equal(t, "req-123", rec.Header().Get(requestid.Header))
	assert.NotEmpty(t, get(h, "/healthz").Header().Get(requestid.Header))
}

func TestProbes(t *testing.T) {
	t.Parallel()

	h := newApp(t)
	assert.Equal(t, "ALIVE", get(h, "/healthz").Body.String())
	assert.Equal(t, "READY", get(h, "/readyz").Body.String())

	down := newApp(t, httpserver.Check{Name: "redis", Fn: func(context.Context) error { return errors.New("down") }})
	rec := get(down, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, http.StatusOK, get(down, "/healthz").Code)
}

func TestSeed(t *testing.T) {
	t.Parallel()

	users := auth.NewPasswordService(auth.NewMemoryStorage(), auth.WithBcryptCost(bcrypt.MinCost))
	ctx := context.Background()

	require.NoError(t, app.Seed(ctx, users, "", ""))
	require.NoError(t, app.Seed(ctx, users, email, password))
	require.NoError(t, app.Seed(ctx, users, email, "Different1"), "existing account is kept")

	_, err := users.Verify(ctx, email, password)
	assert.NoError(t, err)

	assert.Error(t, app.Seed(ctx, users, "other@acme.com", "weak"))
}

func TestOpenStores(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sessions, err := app.OpenSessionStore(ctx, app.StoreMemory, session.DefaultConfig(), redisConfig(""))
	require.NoError(t, err)
	assert.Nil(t, sessions.Check)
	sessions.Close()

	_, err = app.OpenSessionStore(ctx, "memcached", session.DefaultConfig(), redisConfig(""))
	assert.ErrorIs(t, err, app.ErrUnknownStore)

	users, err := app.OpenUserStorage(ctx, "", pg.Config{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &auth.MemoryStorage{}, users.Store)

	_, err = app.OpenUserStorage(ctx, "sqlite", pg.Config{}, nil)
	assert.ErrorIs(t, err, app.ErrUnknownStore)
}

func TestOpenRedisSessionStore(t *testing.T) {
	t.Parallel()
	mr := miniredisAddr(t)

	b, err := app.OpenSessionStore(context.Background(), app.StoreRedis, session.DefaultConfig(), redisConfig("redis://"+mr+"/0"))
	require.NoError(t, err)
	defer b.Close()

	require.NotNil(t, b.Check)
	assert.Equal(t, "redis", b.Check.Name)
	assert.NoError(t, b.Check.Fn(context.Background()))

	s := session.NewSession("token", uuid.New(), time.Hour)
	require.NoError(t, b.Store.Create(context.Background(), s))
	got, err := b.Store.Get(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, s.UserID, got.UserID)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := app.Config{SessionStore: app.StoreMemory, UserStore: app.StorePostgres, BcryptCost: 10}
	require.NoError(t, valid.Validate())

	t.Run("bcrypt cost out of range", func(t *testing.T) {
		t.Parallel()
		cfg := valid
		cfg.BcryptCost = 40
		assert.ErrorIs(t, cfg.Validate(), auth.ErrInvalidBcryptCost)
	})

	t.Run("unknown session store", func(t *testing.T) {
		t.Parallel()
		cfg := valid
		cfg.SessionStore = "memcached"
		assert.ErrorIs(t, cfg.Validate(), app.ErrUnknownStore)
	})

	t.Run("unknown user store", func(t *testing.T) {
		t.Parallel()
		cfg := valid
		cfg.UserStore = "mysql"
		assert.ErrorIs(t, cfg.Validate(), app.ErrUnknownStore)
	})
}
