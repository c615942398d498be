// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// ScheduleHandler handles streaming and team schedule requests.
type ScheduleHandler struct {
	deps Dependencies
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(deps Dependencies) *ScheduleHandler {
	return &ScheduleHandler{deps: deps}
}

// HandleStreaming handles GET /streaming?days=N&kind=pitching|hitting requests.
func (h *ScheduleHandler) HandleStreaming(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	days, ok := queryInt(w, r, "days")
	if !ok {
		return
	}
	kind := r.URL.Query().Get("kind")
	switch kind {
	case "", "pitching", "hitting":
	default:
		writeError(w, http.StatusBadRequest, "bad_request", NewKind("kind must be pitching or hitting", ErrBadRequest))
		return
	}
	opportunities, err := h.deps.Streaming(r.Context(), days, kind)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opportunities)
}

// HandleTeamSchedule handles GET /schedule/{team}?days=N requests, where team
// is an MLB team abbreviation.
func (h *ScheduleHandler) HandleTeamSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /schedule/
	team := strings.TrimPrefix(r.URL.Path, "/schedule/")
	if team == "" || strings.Contains(team, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	days, ok := queryInt(w, r, "days")
	if !ok {
		return
	}
	outlook, err := h.deps.TeamSchedule(r.Context(), team, days)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outlook)
}
