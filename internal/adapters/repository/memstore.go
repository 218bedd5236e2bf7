package repository

import (
	"context"
	"sync"

	"github.com/okian/recruitiq/internal/domain/model"
)

// MemStore is an in-memory Store. It preserves insertion order for sessions
// and candidates; that order is what the ranking tie-break preserves.
//
// MemStore is the default backing when no database is configured, and the
// target of the demo-data generator.
type MemStore struct {
	mu sync.RWMutex

	sessions         []model.Session
	candidates       map[string][]model.Candidate // session id -> candidates, listing order
	scores           map[string][]model.Score     // candidate id -> scores
	sessionIDs       map[string]bool
	candidateSession map[string]string // candidate id -> owning session
}

// MemOption applies a configuration option to the MemStore.
type MemOption func(*MemStore)

// WithSessions preloads sessions in the given order.
func WithSessions(sessions ...model.Session) MemOption {
	return func(s *MemStore) {
		for _, sess := range sessions {
			s.putSession(sess)
		}
	}
}

// WithCandidates preloads candidates; each is appended to its session's list.
func WithCandidates(candidates ...model.Candidate) MemOption {
	return func(s *MemStore) {
		for _, c := range candidates {
			s.putCandidate(c)
		}
	}
}

// WithScores preloads scores; a later score for the same (candidate, metric)
// pair replaces the earlier one.
func WithScores(scores ...model.Score) MemOption {
	return func(s *MemStore) {
		for _, sc := range scores {
			s.putScore(sc)
		}
	}
}

// NewMemStore creates an empty in-memory store and applies the options.
func NewMemStore(opts ...MemOption) *MemStore {
	s := &MemStore{
		candidates:       make(map[string][]model.Candidate),
		scores:           make(map[string][]model.Score),
		sessionIDs:       make(map[string]bool),
		candidateSession: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddSession appends a session. An existing id is overwritten in place.
func (s *MemStore) AddSession(sess model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putSession(sess)
}

// AddCandidate appends a candidate to its session's listing.
func (s *MemStore) AddCandidate(c model.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putCandidate(c)
}

// AddScore records a score, replacing any earlier value for the same
// (candidate, metric) pair.
func (s *MemStore) AddScore(sc model.Score) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putScore(sc)
}

func (s *MemStore) putSession(sess model.Session) {
	if s.sessionIDs[sess.ID] {
		for i := range s.sessions {
			if s.sessions[i].ID == sess.ID {
				s.sessions[i] = sess
				return
			}
		}
	}
	s.sessionIDs[sess.ID] = true
	s.sessions = append(s.sessions, sess)
}

func (s *MemStore) putCandidate(c model.Candidate) {
	s.candidates[c.SessionID] = append(s.candidates[c.SessionID], c)
	s.candidateSession[c.ID] = c.SessionID
}

func (s *MemStore) putScore(sc model.Score) {
	list := s.scores[sc.CandidateID]
	for i := range list {
		if list[i].Metric == sc.Metric {
			list[i].Value = sc.Value
			return
		}
	}
	s.scores[sc.CandidateID] = append(list, sc)
}

// ListSessions implements Store.
func (s *MemStore) ListSessions(_ context.Context) ([]model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Session, len(s.sessions))
	copy(out, s.sessions)
	return out, nil
}

// ListCandidates implements Store.
func (s *MemStore) ListCandidates(_ context.Context, sessionID string) ([]model.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.sessionIDs[sessionID] {
		return nil, ErrSessionNotFound
	}
	list := s.candidates[sessionID]
	out := make([]model.Candidate, len(list))
	copy(out, list)
	return out, nil
}

// ScoresForCandidate implements Store.
func (s *MemStore) ScoresForCandidate(_ context.Context, candidateID string) ([]model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.candidateSession[candidateID]; !ok {
		return nil, ErrCandidateNotFound
	}
	list := s.scores[candidateID]
	out := make([]model.Score, len(list))
	copy(out, list)
	return out, nil
}

// ScoresForSession implements Store.
func (s *MemStore) ScoresForSession(_ context.Context, sessionID string) (map[string][]model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.sessionIDs[sessionID] {
		return nil, ErrSessionNotFound
	}
	out := make(map[string][]model.Score)
	for _, c := range s.candidates[sessionID] {
		if list := s.scores[c.ID]; len(list) > 0 {
			cp := make([]model.Score, len(list))
			copy(cp, list)
			out[c.ID] = cp
		}
	}
	return out, nil
}

// CountScores implements Store.
func (s *MemStore) CountScores(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int
	for _, list := range s.scores {
		n += len(list)
	}
	return n, nil
}
