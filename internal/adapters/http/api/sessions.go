// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/recruitiq/internal/domain/model"
)

// SessionsDependencies defines the interface for session listing.
type SessionsDependencies interface {
	Sessions(ctx context.Context) ([]model.Session, error)
}

// SessionsHandler handles session listing requests.
type SessionsHandler struct {
	deps SessionsDependencies
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(deps SessionsDependencies) *SessionsHandler {
	return &SessionsHandler{deps: deps}
}

type sessionJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Interviewer string `json:"interviewer"`
	Date        string `json:"date"`
}

type sessionsResponse struct {
	Sessions []sessionJSON `json:"sessions"`
	Message  string        `json:"message,omitempty"`
}

// HandleListSessions handles GET /sessions requests. An empty store yields
// an informational message, not an error.
func (h *SessionsHandler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.deps.Sessions(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := sessionsResponse{Sessions: make([]sessionJSON, 0, len(sessions))}
	for _, s := range sessions {
		resp.Sessions = append(resp.Sessions, sessionJSON{
			ID:          s.ID,
			Name:        s.Name,
			Interviewer: s.Interviewer,
			Date:        s.Date,
		})
	}
	if len(resp.Sessions) == 0 {
		resp.Message = "no sessions yet; create an interview session first"
	}
	writeJSON(w, http.StatusOK, resp)
}
