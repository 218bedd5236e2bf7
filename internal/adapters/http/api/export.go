// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/recruitiq/internal/domain/aggregate"
)

// ExportDependencies defines the interface for export views.
type ExportDependencies interface {
	Export(ctx context.Context, sessionID string) (aggregate.ExportView, error)
}

// ExportHandler handles export view requests.
type ExportHandler struct {
	deps ExportDependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps ExportDependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleGetExport handles GET /sessions/{id}/export requests. The response
// is the row-oriented table export adapters consume: one row per candidate,
// metric columns in registry order, null for missing cells.
func (h *ExportHandler) HandleGetExport(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	view, err := h.deps.Export(r.Context(), sessionID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
