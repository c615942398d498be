// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"strings"
)

// MatchupsHandler handles weekly matchup analysis requests.
type MatchupsHandler struct {
	deps Dependencies
}

// NewMatchupsHandler creates a new matchups handler.
func NewMatchupsHandler(deps Dependencies) *MatchupsHandler {
	return &MatchupsHandler{deps: deps}
}

// HandleWeek handles GET /matchups/{week} requests.
func (h *MatchupsHandler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /matchups/
	path := strings.TrimPrefix(r.URL.Path, "/matchups/")
	if path == "" || strings.Contains(path, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	week, err := strconv.Atoi(path)
	if err != nil || week < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind("week must be a positive integer", ErrBadRequest))
		return
	}
	reports, err := h.deps.WeekMatchups(r.Context(), week)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}
