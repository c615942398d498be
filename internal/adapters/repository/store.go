// Package repository defines the league snapshot store interface and errors.
package repository

import (
	"context"
	"time"

	"github.com/pennantlab/pennant/internal/domain/category"
	"github.com/pennantlab/pennant/internal/domain/model"
)

// View is an immutable, fully analyzed league snapshot. Every field is
// derived from the same snapshot, so readers never observe a mix of old
// and new league state.
type View struct {
	Snapshot model.LeagueSnapshot
	Analyzer *category.Analyzer
	LoadedAt time.Time
}

// Store provides read/write access to the current league view.
type Store interface {
	// Replace analyzes a snapshot and installs it as the current view.
	Replace(ctx context.Context, snapshot model.LeagueSnapshot) (View, error)

	// Current returns the installed view.
	// Returns ErrNoSnapshot before the first Replace.
	Current(ctx context.Context) (View, error)

	// Team returns a team from the current view.
	// Returns ErrUnknownTeam if the id is not in the snapshot.
	Team(ctx context.Context, teamID int) (model.Team, error)

	// Count returns the number of teams in the current view, 0 when empty.
	Count(ctx context.Context) int
}
