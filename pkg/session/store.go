package session

import (
	"context"
	"time"
)

// Store persists sessions keyed by token.
type Store interface {
	// Create stores a new session.
	Create(ctx context.Context, s *Session) error

	// Get returns the session for token, ErrSessionNotFound when there is
	// none and ErrSessionExpired when it has lapsed.
	Get(ctx context.Context, token string) (*Session, error)

	// Touch records activity and moves the expiry of an existing session.
	Touch(ctx context.Context, token string, lastActivity, expiresAt time.Time) error

	// Delete removes a session by token. Deleting a missing session is not an error.
	Delete(ctx context.Context, token string) error
}
