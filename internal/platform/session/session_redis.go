// Package session provides SessionRepository implementations.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"research_backend/internal/feature/session/domain/entity"
	"research_backend/internal/feature/session/usecase"
)

// DefaultTTL is how long a research session is kept before Redis expires it.
const DefaultTTL = 24 * time.Hour

// SessionRedis implements usecase.SessionRepository using Redis.
type SessionRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ usecase.SessionRepository = (*SessionRedis)(nil)

// NewSessionRedis creates a new SessionRedis instance.
// If ttl is 0 or negative, DefaultTTL is used.
func NewSessionRedis(client *redis.Client, prefix string, ttl time.Duration) *SessionRedis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SessionRedis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// sessionKey returns the Redis key for a session.
func (r *SessionRedis) sessionKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// Save persists a session to Redis with the configured TTL.
func (r *SessionRedis) Save(ctx context.Context, session *entity.ResearchSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.client.Set(ctx, r.sessionKey(session.ID), data, r.ttl).Err()
}

// FindByID retrieves a session by its ID.
func (r *SessionRedis) FindByID(ctx context.Context, id string) (*entity.ResearchSession, error) {
	data, err := r.client.Get(ctx, r.sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	var session entity.ResearchSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes a session. Expiration is otherwise handled by Redis TTL.
func (r *SessionRedis) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.sessionKey(id)).Err()
}
