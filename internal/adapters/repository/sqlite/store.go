// Package sqlite provides a SQLite-backed read-only score store.
//
// The schema (sessions, candidates, scores) is owned by the external
// administration flow; this package only reads it and never creates or
// migrates tables.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/okian/recruitiq/internal/adapters/repository"
	"github.com/okian/recruitiq/internal/domain/model"
)

// Store reads evaluation data from a SQLite database.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the SQLite database at path for reading.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ListSessions implements repository.Store.
func (s *Store) ListSessions(ctx context.Context) ([]model.Session, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, interviewer, date FROM sessions ORDER BY date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []model.Session
	for rows.Next() {
		var sess model.Session
		if err := rows.Scan(&sess.ID, &sess.Name, &sess.Interviewer, &sess.Date); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return out, nil
}

// ListCandidates implements repository.Store. Candidates come back in
// insertion order (rowid), which is the listing order the tie-break uses.
func (s *Store) ListCandidates(ctx context.Context, sessionID string) ([]model.Candidate, error) {
	if err := s.sessionExists(ctx, sessionID); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, session_id, name, COALESCE(email, ''), COALESCE(position, ''),
		        COALESCE(experience_years, 0)
		 FROM candidates WHERE session_id = ? ORDER BY rowid`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var out []model.Candidate
	for rows.Next() {
		var c model.Candidate
		if err := rows.Scan(&c.ID, &c.SessionID, &c.Name, &c.Email, &c.Position, &c.ExperienceYears); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return out, nil
}

// ScoresForCandidate implements repository.Store.
func (s *Store) ScoresForCandidate(ctx context.Context, candidateID string) ([]model.Score, error) {
	var exists int
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM candidates WHERE id = ?`, candidateID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check candidate: %w", err)
	}
	if exists == 0 {
		return nil, repository.ErrCandidateNotFound
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT candidate_id, metric, value FROM scores WHERE candidate_id = ? ORDER BY rowid`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("scores for candidate: %w", err)
	}
	defer rows.Close()
	return scanScores(rows)
}

// ScoresForSession implements repository.Store. One query fetches every
// score in the session; the result is partitioned by candidate in memory.
func (s *Store) ScoresForSession(ctx context.Context, sessionID string) (map[string][]model.Score, error) {
	if err := s.sessionExists(ctx, sessionID); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT sc.candidate_id, sc.metric, sc.value
		 FROM scores sc JOIN candidates c ON c.id = sc.candidate_id
		 WHERE c.session_id = ? ORDER BY sc.rowid`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("scores for session: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]model.Score)
	for rows.Next() {
		var sc model.Score
		if err := rows.Scan(&sc.CandidateID, &sc.Metric, &sc.Value); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		out[sc.CandidateID] = append(out[sc.CandidateID], sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores for session: %w", err)
	}
	return out, nil
}

// CountScores implements repository.Store.
func (s *Store) CountScores(ctx context.Context) (int, error) {
	var n int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(1) FROM scores`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count scores: %w", err)
	}
	return n, nil
}

func (s *Store) sessionExists(ctx context.Context, sessionID string) error {
	var exists int
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM sessions WHERE id = ?`, sessionID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if exists == 0 {
		return repository.ErrSessionNotFound
	}
	return nil
}

func scanScores(rows *sql.Rows) ([]model.Score, error) {
	var out []model.Score
	for rows.Next() {
		var sc model.Score
		if err := rows.Scan(&sc.CandidateID, &sc.Metric, &sc.Value); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan scores: %w", err)
	}
	return out, nil
}
