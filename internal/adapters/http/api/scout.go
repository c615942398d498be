// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
)

// ScoutHandler handles projection-delta and scarcity scan requests.
type ScoutHandler struct {
	deps Dependencies
}

// NewScoutHandler creates a new scout handler.
func NewScoutHandler(deps Dependencies) *ScoutHandler {
	return &ScoutHandler{deps: deps}
}

// HandleUndervalued handles GET /scout/undervalued requests.
func (h *ScoutHandler) HandleUndervalued(w http.ResponseWriter, r *http.Request) {
	h.handleDeltas(w, r, "undervalued")
}

// HandleOverperforming handles GET /scout/overperforming requests.
func (h *ScoutHandler) HandleOverperforming(w http.ResponseWriter, r *http.Request) {
	h.handleDeltas(w, r, "overperforming")
}

// handleDeltas serves both delta scans; they share the
// actual=&projected=&threshold= query contract.
func (h *ScoutHandler) handleDeltas(w http.ResponseWriter, r *http.Request, kind string) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	actual := r.URL.Query().Get("actual")
	projected := r.URL.Query().Get("projected")
	if actual == "" || projected == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind("actual and projected stats are required", ErrBadRequest))
		return
	}
	var threshold float64
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind("parse threshold", ErrBadRequest, err))
			return
		}
		threshold = f
	}
	report, err := h.deps.ScoutDeltas(r.Context(), kind, actual, projected, threshold)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandleScarcity handles GET /scout/scarcity requests.
func (h *ScoutHandler) HandleScarcity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	report, err := h.deps.ScoutScarcity(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
