// Package entity defines the domain model for research sessions.
package entity

import (
	"time"

	researchentity "research_backend/internal/feature/research/domain/entity"
)

// ResearchSession holds the results researched in one UI session.
// It replaces the original application's process-wide session state with an
// explicit object owned by the caller, so pipelines stay independently testable.
type ResearchSession struct {
	ID        string                     `json:"id"`
	CreatedAt time.Time                  `json:"created_at"`
	Results   researchentity.ResultTable `json:"results"`
}
