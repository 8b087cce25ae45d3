package session_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/acmeconsole/pkg/cookie"
	"github.com/dmitrymomot/acmeconsole/pkg/session"
)

func testConfig() session.Config {
	return session.Config{
		CookieName:              "test-sid",
		IdleTimeout:             2 * time.Hour,
		MaxLifetime:             24 * time.Hour,
		ActivityUpdateThreshold: 5 * time.Minute,
		CleanupInterval:         0,
	}
}

func setupManager(t *testing.T, opts ...session.Option) (*session.Manager, *session.MemoryStore) {
	t.Helper()
	cookieMgr, err := cookie.New([]string{"test-secret-key-that-is-long-enough"})
	require.NoError(t, err)

	store := session.NewMemoryStore(0)
	m := session.New(append([]session.Option{
		session.WithCookieManager(cookieMgr),
		session.WithStore(store),
		session.WithConfig(testConfig()),
	}, opts...)...)
	t.Cleanup(func() { _ = m.Close() })
	return m, store
}

// withCookies builds a request carrying the cookies set on w.
func withCookies(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew_PanicsWithoutTransport(t *testing.T) {
	assert.Panics(t, func() { session.New() })
}

func TestManager_Authenticate(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()
	userID := uuid.New()

	w := httptest.NewRecorder()
	sess, err := m.Authenticate(ctx, w, httptest.NewRequest(http.MethodPost, "/login", nil), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, sess.UserID)
	assert.NotEmpty(t, sess.Token)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), sess.ExpiresAt, time.Minute)
	assert.Equal(t, 1, store.Len())

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "test-sid", cookies[0].Name)
	assert.NotContains(t, cookies[0].Value, sess.Token)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)

	t.Run("rotates token on repeated sign in", func(t *testing.T) {
		w2 := httptest.NewRecorder()
		r := withCookies(w)
		r.Method = http.MethodPost
		again, err := m.Authenticate(ctx, w2, r, userID)
		require.NoError(t, err)
		assert.NotEqual(t, sess.Token, again.Token)
		assert.Equal(t, 1, store.Len())

		_, err = store.Get(ctx, sess.Token)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestManager_Resolve(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()

	t.Run("anonymous without cookie", func(t *testing.T) {
		id, ok, err := m.Resolve(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, uuid.Nil, id)
	})

	t.Run("anonymous with undecryptable cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "test-sid", Value: "garbage"})
		_, ok, err := m.Resolve(ctx, r)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("signed in user", func(t *testing.T) {
		userID := uuid.New()
		w := httptest.NewRecorder()
		_, err := m.Authenticate(ctx, w, httptest.NewRequest(http.MethodPost, "/login", nil), userID)
		require.NoError(t, err)

		id, ok, err := m.Resolve(ctx, withCookies(w))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, userID, id)
	})

	t.Run("anonymous when session deleted server side", func(t *testing.T) {
		w := httptest.NewRecorder()
		sess, err := m.Authenticate(ctx, w, httptest.NewRequest(http.MethodPost, "/login", nil), uuid.New())
		require.NoError(t, err)
		require.NoError(t, store.Delete(ctx, sess.Token))

		_, ok, err := m.Resolve(ctx, withCookies(w))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("uses session from context", func(t *testing.T) {
		userID := uuid.New()
		sess := session.NewSession("ctx-token", userID, time.Hour)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		id, ok, err := m.Resolve(session.WithSession(ctx, sess), r)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, userID, id)
	})
}

type failingStore struct{ session.Store }

var errStoreDown = errors.New("connection refused")

func (failingStore) Get(context.Context, string) (*session.Session, error) {
	return nil, errStoreDown
}

func TestManager_Resolve_StoreFailure(t *testing.T) {
	m, _ := setupManager(t, session.WithStore(failingStore{}))

	good, _ := setupManager(t)
	w := httptest.NewRecorder()
	_, err := good.Authenticate(context.Background(), w, httptest.NewRequest(http.MethodPost, "/login", nil), uuid.New())
	require.NoError(t, err)

	_, ok, err := m.Resolve(context.Background(), withCookies(w))
	assert.False(t, ok)
	assert.ErrorIs(t, err, session.ErrStore)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestManager_Destroy(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	_, err := m.Authenticate(ctx, w, httptest.NewRequest(http.MethodPost, "/login", nil), uuid.New())
	require.NoError(t, err)

	w2 := httptest.NewRecorder()
	require.NoError(t, m.Destroy(ctx, w2, withCookies(w)))
	assert.Equal(t, 0, store.Len())

	cookies := w2.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)

	t.Run("without session only clears cookie", func(t *testing.T) {
		w3 := httptest.NewRecorder()
		require.NoError(t, m.Destroy(ctx, w3, httptest.NewRequest(http.MethodPost, "/logout", nil)))
		assert.Len(t, w3.Result().Cookies(), 1)
	})
}

func TestManager_ActivityUpdate(t *testing.T) {
	cfg := testConfig()
	cfg.ActivityUpdateThreshold = 0

	cookieMgr, err := cookie.New([]string{"test-secret-key-that-is-long-enough"})
	require.NoError(t, err)
	store := session.NewMemoryStore(0)
	m := session.New(
		session.WithCookieManager(cookieMgr),
		session.WithStore(store),
		session.WithConfig(cfg),
	)

	ctx := context.Background()
	w := httptest.NewRecorder()
	sess, err := m.Authenticate(ctx, w, httptest.NewRequest(http.MethodPost, "/login", nil), uuid.New())
	require.NoError(t, err)

	h := m.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), withCookies(w))

	// Close drains the queue before returning.
	require.NoError(t, m.Close())

	got, err := store.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.True(t, got.LastActivityAt.After(sess.LastActivityAt) || got.LastActivityAt.Equal(sess.LastActivityAt))
	assert.False(t, got.ExpiresAt.Before(sess.ExpiresAt))
}

func TestSession_NextExpiry(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := &session.Session{CreatedAt: created}

	assert.Equal(t, created.Add(3*time.Hour), s.NextExpiry(created.Add(time.Hour), 2*time.Hour, 24*time.Hour))
	assert.Equal(t, created.Add(24*time.Hour), s.NextExpiry(created.Add(23*time.Hour), 2*time.Hour, 24*time.Hour))
}
