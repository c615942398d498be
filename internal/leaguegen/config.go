// Package leaguegen builds deterministic synthetic league snapshots for
// demos and load runs.
package leaguegen

import "time"

// Default generation configuration constants.
const (
	defaultTeams      = 10
	defaultHitters    = 9
	defaultPitchers   = 7
	defaultWeeks      = 21
	defaultFreeAgents = 60
	defaultGameDays   = 7
)

// Config controls snapshot generation. Zero values fall back to defaults.
type Config struct {
	// Teams is the number of fantasy teams; odd counts are rounded up so
	// every week pairs fully.
	Teams int

	// Hitters and Pitchers size each roster.
	Hitters  int
	Pitchers int

	// Weeks is the number of scoring periods to schedule.
	Weeks int

	// FreeAgents is the size of the free-agent pool.
	FreeAgents int

	// GameDays is how many days of MLB games to lay out, starting at Start.
	GameDays int

	// Seed fixes the random source so runs are reproducible.
	Seed int64

	// Start anchors the game slate; zero means today.
	Start time.Time
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.Teams <= 0 {
		c.Teams = defaultTeams
	}
	if c.Teams%2 != 0 {
		c.Teams++
	}
	if c.Hitters <= 0 {
		c.Hitters = defaultHitters
	}
	if c.Pitchers <= 0 {
		c.Pitchers = defaultPitchers
	}
	if c.Weeks <= 0 {
		c.Weeks = defaultWeeks
	}
	if c.FreeAgents <= 0 {
		c.FreeAgents = defaultFreeAgents
	}
	if c.GameDays <= 0 {
		c.GameDays = defaultGameDays
	}
	if c.Start.IsZero() {
		c.Start = time.Now()
	}
	return c
}
