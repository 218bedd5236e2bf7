// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
//
// Every operation is a complete, self-contained batch computation: the
// service fetches a session's data, builds the score table, runs the
// requested engine, and discards the intermediates. Nothing is cached
// across requests.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/recruitiq/internal/adapters/repository"
	"github.com/okian/recruitiq/internal/domain/aggregate"
	"github.com/okian/recruitiq/internal/domain/model"
	"github.com/okian/recruitiq/internal/domain/ranking"
	"github.com/okian/recruitiq/internal/domain/registry"
	"github.com/okian/recruitiq/pkg/logger"
	"github.com/okian/recruitiq/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultMaxTopN = 100
)

// Service implements the evaluation engine operations over a score store.
type Service struct {
	store   repository.Store
	metrics *registry.Registry
	maxTopN int
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithMaxTopN caps the top_n parameter accepted by Ranking.
func WithMaxTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxTopN = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service reading from store, evaluating against the given
// metric registry.
func New(store repository.Store, metrics *registry.Registry, opts ...Option) *Service {
	s := &Service{
		store:   store,
		metrics: metrics,
		maxTopN: defaultMaxTopN,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Sessions lists all interview sessions. An empty list is a valid,
// informational result, not an error.
func (s *Service) Sessions(ctx context.Context) ([]model.Session, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// Overview is the aggregation output for one session: summary statistics
// plus the candidate-by-metric table with explicit missing markers.
type Overview struct {
	SessionID     string               `json:"session_id"`
	Stats         aggregate.Stats      `json:"stats"`
	ActiveMetrics []string             `json:"active_metrics"`
	Table         aggregate.ExportView `json:"table"`
}

// Overview builds the aggregation view of a session.
func (s *Service) Overview(ctx context.Context, sessionID string) (Overview, error) {
	table, err := s.buildTable(ctx, sessionID)
	if err != nil {
		return Overview{}, err
	}
	return Overview{
		SessionID:     sessionID,
		Stats:         table.Stats(),
		ActiveMetrics: table.ActiveMetrics(),
		Table:         table.Export(),
	}, nil
}

// Ranking computes the configured ranking over a session's candidates.
// top_n values above the service cap are rejected; values above the
// candidate count are clamped by the engine.
func (s *Service) Ranking(ctx context.Context, sessionID string, cfg ranking.Config) ([]ranking.Entry, error) {
	if cfg.TopN > s.maxTopN {
		metrics.RecordConfigError()
		return nil, &ranking.ConfigError{
			Field:  "top_n",
			Reason: fmt.Sprintf("must not exceed %d", s.maxTopN),
		}
	}

	table, err := s.buildTable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	entries, err := ranking.Rank(table, cfg)
	if err != nil {
		metrics.RecordConfigError()
		return nil, err
	}
	metrics.RecordRankingLatency(float64(time.Since(start).Milliseconds()))
	metrics.RecordRankingComputed(string(cfg.Method))

	s.logger.Debug(ctx, "ranking computed",
		logger.String("session", sessionID),
		logger.String("method", string(cfg.Method)),
		logger.Int("entries", len(entries)),
	)
	return entries, nil
}

// Export builds the row-oriented export view of a session: one row per
// candidate, metric columns in registry order, nil for missing cells.
func (s *Service) Export(ctx context.Context, sessionID string) (aggregate.ExportView, error) {
	table, err := s.buildTable(ctx, sessionID)
	if err != nil {
		return aggregate.ExportView{}, err
	}
	return table.Export(), nil
}

// Stats reports storage-wide totals. Reporting only; no ranking logic
// depends on these numbers.
type Stats struct {
	Sessions   int `json:"sessions"`
	Candidates int `json:"candidates"`
	Scores     int `json:"scores"`
}

// Stats counts sessions, candidates, and scores across the store.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list sessions: %w", err)
	}
	var candidates int
	for _, sess := range sessions {
		list, err := s.store.ListCandidates(ctx, sess.ID)
		if err != nil {
			return Stats{}, fmt.Errorf("list candidates: %w", err)
		}
		candidates += len(list)
	}
	scores, err := s.store.CountScores(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count scores: %w", err)
	}

	st := Stats{Sessions: len(sessions), Candidates: candidates, Scores: scores}
	metrics.UpdateTotals(st.Sessions, st.Candidates, st.Scores)
	return st, nil
}

// buildTable fetches a session's candidates and scores (one batched score
// query, partitioned in memory) and assembles the score table.
func (s *Service) buildTable(ctx context.Context, sessionID string) (*aggregate.Table, error) {
	start := time.Now()
	candidates, err := s.store.ListCandidates(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	scores, err := s.store.ScoresForSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("scores for session: %w", err)
	}
	metrics.RecordStoreQueryLatency(float64(time.Since(start).Milliseconds()))

	start = time.Now()
	table := aggregate.Build(candidates, scores, s.metrics)
	metrics.RecordAggregationLatency(float64(time.Since(start).Milliseconds()))
	return table, nil
}
