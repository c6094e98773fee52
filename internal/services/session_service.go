package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

// SessionServiceImpl implements domain.SessionService over the session store.
// There is no in-process cache: every validation round-trips to the store so
// revocation and expiry are always fresh.
type SessionServiceImpl struct {
	sessionRepo domain.SessionRepository
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo domain.SessionRepository) domain.SessionService {
	return &SessionServiceImpl{sessionRepo: sessionRepo}
}

// Issue implements domain.SessionService. Tokens are opaque 128-bit random
// UUID strings. Persistence failure yields no token and is not retried.
func (s *SessionServiceImpl) Issue(ctx context.Context, userID uint) (string, error) {
	session := &domain.Session{
		Token:    uuid.NewString(),
		UserID:   userID,
		IssuedAt: time.Now().UTC(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return session.Token, nil
}

// Validate implements domain.SessionService
func (s *SessionServiceImpl) Validate(ctx context.Context, token string, userID uint) bool {
	if token == "" {
		return false
	}

	session, err := s.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		return false
	}

	return session.UserID == userID
}

// Revoke implements domain.SessionService
func (s *SessionServiceImpl) Revoke(ctx context.Context, token string) error {
	return s.sessionRepo.Delete(ctx, token)
}

// RevokeAll implements domain.SessionService
func (s *SessionServiceImpl) RevokeAll(ctx context.Context, userID uint) error {
	return s.sessionRepo.DeleteByUser(ctx, userID)
}

// Sweep implements domain.SessionService. Scheduled from the app, never
// invoked per-request.
func (s *SessionServiceImpl) Sweep(ctx context.Context) error {
	return s.sessionRepo.DeleteExpired(ctx)
}
