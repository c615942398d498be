package model

import (
	"time"

	"github.com/google/uuid"
)

// LeagueSnapshot is an immutable, versioned view of the league at one point
// in time. Every analysis call goes through a snapshot; analyzers never carry
// implicit team state between calls.
type LeagueSnapshot struct {
	Version string // uuid, assigned at construction
	Taken   time.Time
	Teams   []Team
}

// NewLeagueSnapshot stamps a fresh version onto the given team set.
func NewLeagueSnapshot(taken time.Time, teams []Team) LeagueSnapshot {
	return LeagueSnapshot{
		Version: uuid.NewString(),
		Taken:   taken,
		Teams:   teams,
	}
}

// Team finds a team by ID within the snapshot.
func (s LeagueSnapshot) Team(id int) (Team, bool) {
	for _, t := range s.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}
