// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/recruitiq/internal/domain/ranking"
)

// RankingsDependencies defines the interface for ranking operations.
type RankingsDependencies interface {
	Ranking(ctx context.Context, sessionID string, cfg ranking.Config) ([]ranking.Entry, error)
}

// RankingsHandler handles ranking requests.
type RankingsHandler struct {
	deps RankingsDependencies
}

// NewRankingsHandler creates a new rankings handler.
func NewRankingsHandler(deps RankingsDependencies) *RankingsHandler {
	return &RankingsHandler{deps: deps}
}

// rankingRequest mirrors ranking.Config for the POST body.
type rankingRequest struct {
	Method    string             `json:"method"`
	Metric    string             `json:"metric,omitempty"`
	Weights   map[string]float64 `json:"weights,omitempty"`
	TopN      int                `json:"top_n"`
	Normalize bool               `json:"normalize,omitempty"`
}

type rankingResponse struct {
	SessionID string          `json:"session_id"`
	Method    string          `json:"method"`
	Entries   []ranking.Entry `json:"entries"`
	Message   string          `json:"message,omitempty"`
}

// HandlePostRankings handles POST /sessions/{id}/rankings requests.
// The body selects the method and its parameters; configuration problems
// come back as field-level 400s.
func (h *RankingsHandler) HandlePostRankings(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	var req rankingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	cfg := ranking.Config{
		Method:    ranking.Method(req.Method),
		Metric:    req.Metric,
		Weights:   req.Weights,
		TopN:      req.TopN,
		Normalize: req.Normalize,
	}
	entries, err := h.deps.Ranking(r.Context(), sessionID, cfg)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := rankingResponse{
		SessionID: sessionID,
		Method:    req.Method,
		Entries:   entries,
	}
	if resp.Entries == nil {
		resp.Entries = []ranking.Entry{}
	}
	if len(resp.Entries) == 0 {
		resp.Message = "no candidates have scores yet"
	}
	writeJSON(w, http.StatusOK, resp)
}
