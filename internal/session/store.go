package session

import (
	"context"
	"sync"

	"github.com/ayush/inventory-tracker/internal/models"
)

// Store maps an opaque session id to the full user record. An unknown id
// resolves to (nil, nil), not an error.
type Store interface {
	Put(ctx context.Context, sessionID string, user *models.User) error
	Get(ctx context.Context, sessionID string) (*models.User, error)
}

// MemoryStore is the default backend: a mutex-guarded in-process map.
// Sessions live until the process exits; there is no expiry.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*models.User)}
}

// Put inserts or overwrites the mapping. Uniqueness of sessionID is the
// caller's responsibility.
func (s *MemoryStore) Put(_ context.Context, sessionID string, user *models.User) error {
	s.mu.Lock()
	s.users[sessionID] = user
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[sessionID], nil
}
