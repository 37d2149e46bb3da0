// Package usecase implements the business logic for the session feature.
package usecase

import "errors"

var (
	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")
)
