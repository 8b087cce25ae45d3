package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated browser session. Anonymous visitors have no
// session record at all.
type Session struct {
	ID             uuid.UUID `json:"id"`
	Token          string    `json:"token"`
	UserID         uuid.UUID `json:"user_id"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewSession creates a session for userID that expires after ttl.
func NewSession(token string, userID uuid.UUID, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:             uuid.New(),
		Token:          token,
		UserID:         userID,
		ExpiresAt:      now.Add(ttl),
		LastActivityAt: now,
		CreatedAt:      now,
	}
}

// IsExpired returns true if the session has expired
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// NextExpiry returns the expiry after activity at now: the idle deadline,
// capped by the session's maximum lifetime.
func (s *Session) NextExpiry(now time.Time, idle, maxLifetime time.Duration) time.Time {
	idleExpiry := now.Add(idle)
	maxExpiry := s.CreatedAt.Add(maxLifetime)
	if maxExpiry.Before(idleExpiry) {
		return maxExpiry
	}
	return idleExpiry
}
