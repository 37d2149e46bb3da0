package di

import (
	"github.com/redis/go-redis/v9"

	"research_backend/internal/feature/session/usecase"
	"research_backend/internal/platform/session"
)

// NewSessionRepository creates a SessionRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to an in-process store.
func NewSessionRepository(rdb *redis.Client) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "research_session", session.DefaultTTL)
	}
	return session.NewSessionMemory(session.DefaultTTL)
}
