package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/acmeconsole/pkg/cookie"
	"github.com/dmitrymomot/acmeconsole/pkg/logger"
)

// Manager issues, resolves and destroys authenticated sessions.
type Manager struct {
	store         Store
	transport     Transport
	config        Config
	log           *slog.Logger
	cookieManager *cookie.Manager
	cookieOptions []cookie.Option

	activity  chan activityUpdate
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

type activityUpdate struct {
	token     string
	at        time.Time
	expiresAt time.Time
}

// New creates a new session manager with the given options.
// It panics when neither a transport nor a cookie manager is configured.
func New(opts ...Option) *Manager {
	m := &Manager{
		config:   DefaultConfig(),
		log:      slog.Default(),
		activity: make(chan activityUpdate, 1000),
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}

	if m.transport == nil {
		if m.cookieManager == nil {
			panic("session: cookie manager is required when using default cookie transport")
		}
		m.transport = NewCookieTransport(m.cookieManager, m.config.CookieName, m.cookieOptions...)
	}

	m.wg.Add(1)
	go m.activityWorker()

	return m
}

// Get returns the session attached to the request. A session already placed
// in the context by Middleware is reused.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	if s, ok := FromContext(ctx); ok {
		return s, nil
	}

	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, err
	}

	s, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if s.IsExpired() {
		return nil, ErrSessionExpired
	}
	return s, nil
}

// Resolve reports the user the request is signed in as. A missing, expired
// or unreadable session is the anonymous case and yields ok == false with a
// nil error; only store failures are returned as errors.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (uuid.UUID, bool, error) {
	s, err := m.Get(ctx, r)
	switch {
	case err == nil:
		return s.UserID, true, nil
	case isAnonymous(err):
		return uuid.Nil, false, nil
	default:
		return uuid.Nil, false, errors.Join(ErrStore, err)
	}
}

// Authenticate starts a session for userID. Any session presented with the
// request is discarded first so a token is never reused across sign-ins.
func (m *Manager) Authenticate(ctx context.Context, w http.ResponseWriter, r *http.Request, userID uuid.UUID) (*Session, error) {
	if token, err := m.transport.GetToken(r); err == nil {
		if err := m.store.Delete(ctx, token); err != nil {
			m.log.WarnContext(ctx, "failed to drop previous session",
				logger.Error(err),
				logger.Component("session"),
			)
		}
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	s := NewSession(token, userID, m.config.IdleTimeout)
	s.ExpiresAt = s.NextExpiry(s.CreatedAt, m.config.IdleTimeout, m.config.MaxLifetime)

	if err := m.store.Create(ctx, s); err != nil {
		return nil, errors.Join(ErrStore, err)
	}

	// the cookie outlives idle periods; the store enforces the idle timeout
	if err := m.transport.SetToken(w, s.Token, m.config.MaxLifetime); err != nil {
		_ = m.store.Delete(ctx, s.Token)
		return nil, err
	}

	m.log.InfoContext(ctx, "session started",
		logger.Subject(userID),
		logger.Component("session"),
		logger.Event("session_started"),
	)

	return s, nil
}

// Destroy deletes the session and clears the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	defer m.transport.ClearToken(w)

	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil
	}
	if err := m.store.Delete(ctx, token); err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}

// Close stops the activity worker after flushing queued updates.
func (m *Manager) Close() error {
	m.closeOnce.Do(func() {
		close(m.done)
		m.wg.Wait()
		if c, ok := m.store.(interface{ Close() error }); ok {
			_ = c.Close()
		}
	})
	return nil
}

func isAnonymous(err error) bool {
	return errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrSessionExpired) ||
		errors.Is(err, ErrInvalidSession)
}

func (m *Manager) shouldUpdateActivity(s *Session) bool {
	return time.Since(s.LastActivityAt) >= m.config.ActivityUpdateThreshold
}

// queueActivityUpdate never blocks; updates are dropped when the queue is full.
func (m *Manager) queueActivityUpdate(s *Session) {
	now := time.Now()
	update := activityUpdate{
		token:     s.Token,
		at:        now,
		expiresAt: s.NextExpiry(now, m.config.IdleTimeout, m.config.MaxLifetime),
	}
	select {
	case m.activity <- update:
	default:
	}
}

func (m *Manager) activityWorker() {
	defer m.wg.Done()
	for {
		select {
		case u := <-m.activity:
			m.touch(u)
		case <-m.done:
			for {
				select {
				case u := <-m.activity:
					m.touch(u)
				default:
					return
				}
			}
		}
	}
}

func (m *Manager) touch(u activityUpdate) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.store.Touch(ctx, u.token, u.at, u.expiresAt); err != nil && !isAnonymous(err) {
		m.log.Warn("failed to record session activity",
			logger.Error(err),
			logger.Subject(u.token),
			logger.Component("session"),
		)
	}
}

// generateToken creates a cryptographically secure token
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
