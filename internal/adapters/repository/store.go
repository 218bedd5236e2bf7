// Package repository defines read access to sessions, candidates, and scores.
package repository

import (
	"context"

	"github.com/okian/recruitiq/internal/domain/model"
)

// Store provides read-only access to evaluation data. The engine never
// mutates sessions, candidates, or scores; ownership stays with the store.
type Store interface {
	// ListSessions returns all sessions. An empty slice is not an error.
	ListSessions(ctx context.Context) ([]model.Session, error)

	// ListCandidates returns the candidates of a session in listing order.
	// Returns ErrSessionNotFound for an unknown session id.
	ListCandidates(ctx context.Context, sessionID string) ([]model.Candidate, error)

	// ScoresForCandidate returns one candidate's scores.
	// Returns ErrCandidateNotFound for an unknown candidate id.
	ScoresForCandidate(ctx context.Context, candidateID string) ([]model.Score, error)

	// ScoresForSession returns all scores of a session in one call, keyed by
	// candidate id. This is the form the engines use: one round trip per
	// request, partitioned in memory, instead of one fetch per candidate.
	ScoresForSession(ctx context.Context, sessionID string) (map[string][]model.Score, error)

	// CountScores returns the total number of scores across all sessions.
	// Used for reporting only, never for ranking logic.
	CountScores(ctx context.Context) (int, error)
}
