package model

// ScheduledMatchup is a future fantasy pairing carried on a Team. It
// references the opponent by ID so snapshots stay acyclic.
type ScheduledMatchup struct {
	Week       int
	OpponentID int
}

// Team is one fantasy franchise and its roster snapshot. The Team owns its
// roster exclusively for the duration of a season snapshot.
type Team struct {
	ID           int
	Name         string
	Abbrev       string
	Owners       []Owner
	DivisionID   int
	DivisionName string
	Standing     int // league rank, 1 = best
	Wins         int
	Losses       int
	Ties         int
	Roster       []Player
	Schedule     []ScheduledMatchup
}

// OwnerName returns the display name of the first listed owner, or "Unknown"
// for ownerless records.
func (t Team) OwnerName() string {
	if len(t.Owners) == 0 || t.Owners[0].DisplayName == "" {
		return "Unknown"
	}
	return t.Owners[0].DisplayName
}

// WinPct returns the team's winning percentage with ties counted as half a
// win. A team with no games played is 0, not a division error.
func (t Team) WinPct() float64 {
	games := t.Wins + t.Losses + t.Ties
	if games == 0 {
		return 0
	}
	return (float64(t.Wins) + 0.5*float64(t.Ties)) / float64(games) * 100
}
