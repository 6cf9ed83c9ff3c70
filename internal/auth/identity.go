package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/ayush/inventory-tracker/internal/models"
	"github.com/ayush/inventory-tracker/internal/session"
)

// SessionCookie is the cookie carrying the session id.
const SessionCookie = "uid"

// Service mints session ids and resolves them back to users.
type Service struct {
	sessions session.Store
}

func NewService(sessions session.Store) *Service {
	return &Service{sessions: sessions}
}

// RegisterSession stores a fresh random session id for the user and returns
// it. Ids are 128-bit random UUIDs; there is no collision check, a collision
// would silently overwrite the older session.
func (s *Service) RegisterSession(ctx context.Context, user *models.User) (string, error) {
	sid := uuid.New().String()
	if err := s.sessions.Put(ctx, sid, user); err != nil {
		return "", err
	}
	return sid, nil
}

// Resolve returns the user for a session id, or nil when unknown.
func (s *Service) Resolve(ctx context.Context, sessionID string) (*models.User, error) {
	return s.sessions.Get(ctx, sessionID)
}
