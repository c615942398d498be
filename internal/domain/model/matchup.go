package model

// Matchup is one weekly head-to-head pairing. Teams are referenced, not
// owned; two matchups may point at the same Team.
type Matchup struct {
	Week      int // 1-indexed scoring period
	Home      *Team
	Away      *Team
	HomeScore float64
	AwayScore float64
	// Provisional marks a pairing with no real scoring yet (pre-season or a
	// future week). Scores are guaranteed zero while set.
	Provisional bool
}

// NewProvisionalMatchup builds the "no real matchup yet" variant: same shape,
// zero scores, explicitly marked.
func NewProvisionalMatchup(home, away *Team, week int) Matchup {
	return Matchup{Week: week, Home: home, Away: away, Provisional: true}
}

// Winner returns the leading team, or nil while the scores are tied or the
// period is still in progress.
func (m Matchup) Winner() *Team {
	switch {
	case m.HomeScore > m.AwayScore:
		return m.Home
	case m.AwayScore > m.HomeScore:
		return m.Away
	default:
		return nil
	}
}
