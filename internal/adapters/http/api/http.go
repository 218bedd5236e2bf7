// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/recruitiq/internal/adapters/repository"
	service "github.com/okian/recruitiq/internal/app"
	"github.com/okian/recruitiq/internal/domain/aggregate"
	"github.com/okian/recruitiq/internal/domain/model"
	"github.com/okian/recruitiq/internal/domain/ranking"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Sessions lists all interview sessions.
	Sessions(ctx context.Context) ([]model.Session, error)

	// Overview returns a session's aggregation view.
	Overview(ctx context.Context, sessionID string) (service.Overview, error)

	// Ranking computes the configured ranking for a session.
	Ranking(ctx context.Context, sessionID string, cfg ranking.Config) ([]ranking.Entry, error)

	// Export returns a session's row-oriented export view.
	Export(ctx context.Context, sessionID string) (aggregate.ExportView, error)

	// Stats reports storage-wide totals.
	Stats(ctx context.Context) (service.Stats, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	sessionsHandler *SessionsHandler
	overviewHandler *OverviewHandler
	rankingsHandler *RankingsHandler
	exportHandler   *ExportHandler
	statsHandler    *StatsHandler
	healthHandler   *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		sessionsHandler: NewSessionsHandler(deps),
		overviewHandler: NewOverviewHandler(deps),
		rankingsHandler: NewRankingsHandler(deps),
		exportHandler:   NewExportHandler(deps),
		statsHandler:    NewStatsHandler(deps),
		healthHandler:   NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.Handle("GET /metrics", s.healthHandler.MetricsHandler())
	mux.HandleFunc("GET /sessions", MetricsMiddleware(s.sessionsHandler.HandleListSessions, "sessions"))
	mux.HandleFunc("GET /sessions/{id}/overview", MetricsMiddleware(s.overviewHandler.HandleGetOverview, "overview"))
	mux.HandleFunc("POST /sessions/{id}/rankings", MetricsMiddleware(s.rankingsHandler.HandlePostRankings, "rankings"))
	mux.HandleFunc("GET /sessions/{id}/export", MetricsMiddleware(s.exportHandler.HandleGetExport, "export"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates engine and store errors to HTTP responses:
// invalid ranking configuration becomes a field-level 400, unknown ids
// become 404, and anything else surfaces as a 500 passthrough.
func writeDomainError(w http.ResponseWriter, err error) {
	var cfgErr *ranking.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    "invalid_config",
			Field:   cfgErr.Field,
			Message: cfgErr.Reason,
		})
	case errors.Is(err, repository.ErrSessionNotFound),
		errors.Is(err, repository.ErrCandidateNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
