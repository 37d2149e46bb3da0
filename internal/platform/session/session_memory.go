package session

import (
	"context"
	"sync"
	"time"

	"research_backend/internal/feature/session/domain/entity"
	"research_backend/internal/feature/session/usecase"
)

// SessionMemory implements usecase.SessionRepository with an in-process map.
// Used when Redis is not configured; sessions do not survive a restart.
type SessionMemory struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
}

type memoryEntry struct {
	session   *entity.ResearchSession
	expiresAt time.Time
}

var _ usecase.SessionRepository = (*SessionMemory)(nil)

// NewSessionMemory creates a new SessionMemory instance.
// If ttl is 0 or negative, DefaultTTL is used.
func NewSessionMemory(ttl time.Duration) *SessionMemory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SessionMemory{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
	}
}

// Save stores a session, replacing any existing session with the same ID.
func (m *SessionMemory) Save(ctx context.Context, session *entity.ResearchSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = memoryEntry{
		session:   session,
		expiresAt: time.Now().Add(m.ttl),
	}
	return nil
}

// FindByID retrieves a session by its ID. Expired entries are dropped lazily.
func (m *SessionMemory) FindByID(ctx context.Context, id string) (*entity.ResearchSession, error) {
	m.mu.RLock()
	entry, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, usecase.ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, usecase.ErrSessionNotFound
	}
	return entry.session, nil
}

// Delete removes a session.
func (m *SessionMemory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
