package auth

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

type memoryRecord struct {
	user User
	hash []byte
}

// MemoryStorage is an in-process PasswordStorage.
type MemoryStorage struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*memoryRecord
	byEmail map[string]uuid.UUID
}

var _ PasswordStorage = (*MemoryStorage)(nil)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		byID:    make(map[uuid.UUID]*memoryRecord),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (m *MemoryStorage) CreateUser(_ context.Context, user *User, passwordHash []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[user.Email]; ok {
		return ErrEmailAlreadyExists
	}

	m.byID[user.ID] = &memoryRecord{user: *user, hash: slices.Clone(passwordHash)}
	m.byEmail[user.Email] = user.ID
	return nil
}

func (m *MemoryStorage) GetUserByID(_ context.Context, id uuid.UUID) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	user := rec.user
	return &user, nil
}

func (m *MemoryStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.RLock()
	id, ok := m.byEmail[email]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrUserNotFound
	}
	return m.GetUserByID(ctx, id)
}

func (m *MemoryStorage) GetPasswordHash(_ context.Context, userID uuid.UUID) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.byID[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return slices.Clone(rec.hash), nil
}
