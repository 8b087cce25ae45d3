package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Resolver maps a request to the signed-in user, if any.
// ok is false for anonymous requests; err is reserved for infrastructure failures.
type Resolver interface {
	Resolve(ctx context.Context, r *http.Request) (userID uuid.UUID, ok bool, err error)
}

var _ Resolver = (*Manager)(nil)
