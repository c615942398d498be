// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"strings"
)

// TeamsHandler handles standings and per-team analysis requests.
type TeamsHandler struct {
	deps Dependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps Dependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// HandleStandings handles GET /teams requests.
func (h *TeamsHandler) HandleStandings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rows, err := h.deps.Standings(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// HandleDivisions handles GET /divisions requests.
func (h *TeamsHandler) HandleDivisions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	divisions, err := h.deps.DivisionStandings(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, divisions)
}

// HandleCompare handles GET /teams/compare?team1=...&team2=... requests.
func (h *TeamsHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	name1 := r.URL.Query().Get("team1")
	name2 := r.URL.Query().Get("team2")
	if name1 == "" || name2 == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind("team1 and team2 are required", ErrBadRequest))
		return
	}
	cmp, err := h.deps.CompareTeams(r.Context(), name1, name2)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

// HandleTeam handles GET /teams/{id}/{analysis} requests, dispatching on the
// analysis segment.
func (h *TeamsHandler) HandleTeam(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameters after /teams/
	path := strings.TrimPrefix(r.URL.Path, "/teams/")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	teamID, err := strconv.Atoi(parts[0])
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind("parse team id", ErrBadRequest, err))
		return
	}

	switch parts[1] {
	case "categories":
		h.respond(w, r, func() (any, error) { return h.deps.TeamCategories(r.Context(), teamID) })
	case "improvements":
		h.respond(w, r, func() (any, error) { return h.deps.TeamImprovements(r.Context(), teamID) })
	case "trade-targets":
		h.respond(w, r, func() (any, error) { return h.deps.TeamTradeTargets(r.Context(), teamID) })
	case "pitching-plan":
		maxStarts, ok := queryInt(w, r, "max_starts")
		if !ok {
			return
		}
		h.respond(w, r, func() (any, error) { return h.deps.PitchingPlan(r.Context(), teamID, maxStarts) })
	case "acquisitions":
		limit, ok := queryInt(w, r, "limit")
		if !ok {
			return
		}
		h.respond(w, r, func() (any, error) { return h.deps.Acquisitions(r.Context(), teamID, limit) })
	default:
		http.NotFound(w, r)
	}
}

func (h *TeamsHandler) respond(w http.ResponseWriter, r *http.Request, op func() (any, error)) {
	result, err := op()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// queryInt parses an optional integer query parameter. A missing or empty
// value yields zero; a malformed one writes a 400 and reports !ok.
func queryInt(w http.ResponseWriter, r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind("parse "+key, ErrBadRequest, err))
		return 0, false
	}
	return n, true
}
