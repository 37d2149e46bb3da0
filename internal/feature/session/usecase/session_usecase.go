package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	researchentity "research_backend/internal/feature/research/domain/entity"
	"research_backend/internal/feature/session/domain/entity"
)

// SessionRepository persists research sessions.
// Following Go convention, the interface is defined on the consumer (usecase) side.
type SessionRepository interface {
	// Save persists a session, replacing any existing session with the same ID.
	Save(ctx context.Context, session *entity.ResearchSession) error
	// FindByID retrieves a session by its ID, or ErrSessionNotFound.
	FindByID(ctx context.Context, id string) (*entity.ResearchSession, error)
	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}

// sessionUsecase manages the lifecycle of research sessions.
type sessionUsecase struct {
	repo SessionRepository
}

// NewSessionUsecase creates a new sessionUsecase instance.
func NewSessionUsecase(repo SessionRepository) *sessionUsecase {
	return &sessionUsecase{repo: repo}
}

// SaveResults stores a batch result table under a fresh session ID and
// returns the created session.
func (u *sessionUsecase) SaveResults(ctx context.Context, results researchentity.ResultTable) (*entity.ResearchSession, error) {
	session := &entity.ResearchSession{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Results:   results,
	}
	if err := u.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// Results returns the result table stored under the given session ID.
func (u *sessionUsecase) Results(ctx context.Context, id string) (researchentity.ResultTable, error) {
	session, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return session.Results, nil
}
