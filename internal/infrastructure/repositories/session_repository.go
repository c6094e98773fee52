package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

// SessionRepositoryImpl implements domain.SessionRepository using Redis.
// Sessions live under session:<token>; a per-user index set under
// user_sessions:<id> supports revoking every session a user holds.
type SessionRepositoryImpl struct {
	client    *redis.Client
	prefix    string
	setPrefix string
	ttl       time.Duration
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(client *redis.Client, ttl time.Duration) domain.SessionRepository {
	return &SessionRepositoryImpl{
		client:    client,
		prefix:    "session:",
		setPrefix: "user_sessions:",
		ttl:       ttl,
	}
}

// Create implements domain.SessionRepository
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *domain.Session) error {
	key := r.prefix + session.Token
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return err
	}

	setKey := r.userSetKey(session.UserID)
	if err := r.client.SAdd(ctx, setKey, session.Token).Err(); err != nil {
		return err
	}
	// Keep the index alive at least as long as the newest session
	return r.client.Expire(ctx, setKey, r.ttl).Err()
}

// FindByToken implements domain.SessionRepository
func (r *SessionRepositoryImpl) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, r.prefix+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	// Redis TTL reclaims keys on its own; the age check guards against a
	// TTL raised between deploys
	if time.Since(session.IssuedAt) > r.ttl {
		r.client.Del(ctx, r.prefix+token)
		return nil, domain.ErrSessionExpired
	}

	return &session, nil
}

// Delete implements domain.SessionRepository
func (r *SessionRepositoryImpl) Delete(ctx context.Context, token string) error {
	session, err := r.FindByToken(ctx, token)
	if err == nil {
		r.client.SRem(ctx, r.userSetKey(session.UserID), token)
	}
	return r.client.Del(ctx, r.prefix+token).Err()
}

// DeleteByUser implements domain.SessionRepository
func (r *SessionRepositoryImpl) DeleteByUser(ctx context.Context, userID uint) error {
	setKey := r.userSetKey(userID)
	tokens, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil && err != redis.Nil {
		return err
	}

	for _, token := range tokens {
		if err := r.client.Del(ctx, r.prefix+token).Err(); err != nil {
			return err
		}
	}
	return r.client.Del(ctx, setKey).Err()
}

// DeleteExpired implements domain.SessionRepository. Session keys expire via
// Redis TTL; the sweep trims index-set members whose session key is gone.
func (r *SessionRepositoryImpl) DeleteExpired(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.setPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		setKey := iter.Val()
		tokens, err := r.client.SMembers(ctx, setKey).Result()
		if err != nil {
			return err
		}
		for _, token := range tokens {
			exists, err := r.client.Exists(ctx, r.prefix+token).Result()
			if err != nil {
				return err
			}
			if exists == 0 {
				r.client.SRem(ctx, setKey, token)
			}
		}
	}
	return iter.Err()
}

func (r *SessionRepositoryImpl) userSetKey(userID uint) string {
	return fmt.Sprintf("%s%d", r.setPrefix, userID)
}
