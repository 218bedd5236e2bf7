// Package demo seeds an in-memory store with generated interview data so the
// service can be explored without an existing database.
package demo

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/okian/recruitiq/internal/adapters/repository"
	"github.com/okian/recruitiq/internal/domain/model"
	"github.com/okian/recruitiq/internal/domain/registry"
	"github.com/okian/recruitiq/pkg/logger"
)

// Default generation constants.
const (
	defaultSessionCount     = 3
	defaultCandidatesPerSes = 8
	defaultRandomSeed       = 42
	minScoreValue           = 1.0
	scoreValueRange         = 9.0
	unscoredShare           = 0.1 // roughly one in ten candidates stays unscored
	missingMetricShare      = 0.25
)

var firstNames = []string{
	"Ada", "Bruno", "Carla", "Dmitri", "Elena", "Farid", "Grace", "Hugo",
	"Ines", "Jonas", "Katya", "Luis", "Mina", "Noah", "Olga", "Pavel",
}

var positions = []string{
	"Backend Engineer", "Frontend Engineer", "Data Analyst", "SRE", "Product Manager",
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSessionCount sets how many sessions to generate.
func WithSessionCount(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.sessionCount = n
		}
	}
}

// WithCandidatesPerSession sets how many candidates each session gets.
func WithCandidatesPerSession(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.candidatesPerSession = n
		}
	}
}

// WithSeed fixes the random seed for reproducible demo data.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible demo data
	}
}

// Generator produces demo sessions, candidates, and scores.
type Generator struct {
	sessionCount         int
	candidatesPerSession int
	rng                  *rand.Rand
}

// NewGenerator creates a Generator with default configuration.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sessionCount:         defaultSessionCount,
		candidatesPerSession: defaultCandidatesPerSes,
		rng:                  rand.New(rand.NewSource(defaultRandomSeed)), //nolint:gosec // deterministic seed for reproducible demo data
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Seed populates store with generated data. Some candidates are left without
// scores and some scores omit metrics, so the missing-value policies of the
// engines are visible in demo mode.
func (g *Generator) Seed(ctx context.Context, store *repository.MemStore, metrics *registry.Registry) {
	log := logger.Named("demo")
	names := metrics.Names()

	for i := 0; i < g.sessionCount; i++ {
		sess := model.Session{
			ID:          uuid.New().String(),
			Name:        fmt.Sprintf("Hiring Round %d", i+1),
			Interviewer: firstNames[g.rng.Intn(len(firstNames))],
			Date:        fmt.Sprintf("2026-0%d-15", i+1),
		}
		store.AddSession(sess)

		for j := 0; j < g.candidatesPerSession; j++ {
			first := firstNames[g.rng.Intn(len(firstNames))]
			cand := model.Candidate{
				ID:              uuid.New().String(),
				SessionID:       sess.ID,
				Name:            fmt.Sprintf("%s %c.", first, 'A'+rune(g.rng.Intn(26))),
				Email:           fmt.Sprintf("candidate%d%d@example.com", i, j),
				Position:        positions[g.rng.Intn(len(positions))],
				ExperienceYears: g.rng.Intn(15),
			}
			store.AddCandidate(cand)

			if g.rng.Float64() < unscoredShare {
				continue // leave this candidate unevaluated
			}
			for _, metric := range names {
				if g.rng.Float64() < missingMetricShare {
					continue
				}
				store.AddScore(model.Score{
					CandidateID: cand.ID,
					Metric:      metric,
					Value:       minScoreValue + g.rng.Float64()*scoreValueRange,
				})
			}
		}
	}

	log.Info(ctx, "seeded demo data",
		logger.Int("sessions", g.sessionCount),
		logger.Int("candidatesPerSession", g.candidatesPerSession),
	)
}
