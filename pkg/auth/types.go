package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents a console account.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string // display name, derived from the email when not provided
	CreatedAt time.Time
}
