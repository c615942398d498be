// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pennantlab/pennant/internal/adapters/feed"
	"github.com/pennantlab/pennant/internal/adapters/repository"
)

// SnapshotHandler handles league snapshot ingestion.
type SnapshotHandler struct {
	deps Dependencies
}

// NewSnapshotHandler creates a new snapshot handler.
func NewSnapshotHandler(deps Dependencies) *SnapshotHandler {
	return &SnapshotHandler{deps: deps}
}

// HandlePostSnapshot handles POST /snapshot requests. The body is a league
// snapshot document; on success the installed snapshot's receipt is returned.
func (h *SnapshotHandler) HandlePostSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var doc feed.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind("decode snapshot", ErrBadRequest, err))
		return
	}

	receipt, err := h.deps.Ingest(r.Context(), doc)
	if err != nil {
		if errors.Is(err, repository.ErrEmptyLeague) || errors.Is(err, feed.ErrEmptyDocument) {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}
