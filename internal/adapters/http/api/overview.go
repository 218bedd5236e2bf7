// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	service "github.com/okian/recruitiq/internal/app"
)

// OverviewDependencies defines the interface for aggregation views.
type OverviewDependencies interface {
	Overview(ctx context.Context, sessionID string) (service.Overview, error)
}

// OverviewHandler handles session overview requests.
type OverviewHandler struct {
	deps OverviewDependencies
}

// NewOverviewHandler creates a new overview handler.
func NewOverviewHandler(deps OverviewDependencies) *OverviewHandler {
	return &OverviewHandler{deps: deps}
}

type overviewResponse struct {
	service.Overview
	Message string `json:"message,omitempty"`
}

// HandleGetOverview handles GET /sessions/{id}/overview requests.
func (h *OverviewHandler) HandleGetOverview(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	overview, err := h.deps.Overview(r.Context(), sessionID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := overviewResponse{Overview: overview}
	switch {
	case overview.Stats.Candidates == 0:
		resp.Message = "no candidates in this session yet"
	case !overview.Stats.HasData:
		resp.Message = "no scores recorded yet; start evaluating candidates"
	}
	writeJSON(w, http.StatusOK, resp)
}
