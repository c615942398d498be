// Package matchup compares two fantasy rosters head to head and solves the
// start-cap-constrained pitcher selection problem. Everything here is a pure
// function of the supplied rosters and factors; no state survives a call.
package matchup

import (
	"github.com/pennantlab/pennant/internal/domain/roster"
)

// Positions analyzed in a head-to-head comparison, in league lineup order.
var defaultPositions = []string{"C", "1B", "2B", "3B", "SS", "OF", "UTIL", "SP", "RP"}

// Ratings supplies opponent and ballpark factors for start adjustment. The
// schedule scorer satisfies this; a nil Ratings leaves every factor neutral.
type Ratings interface {
	OffensiveRating(team string) (float64, bool)
	OffenseStrikeoutRate(team string) (float64, bool)
	ParkFactor(ballpark string) (float64, bool)
}

// StartInfo is a pitcher's next probable start. Known reports whether the
// upstream feed actually resolved it; an unknown start is left unadjusted,
// never guessed.
type StartInfo struct {
	Known    bool   `json:"known"`
	Date     string `json:"date,omitempty"` // YYYY-MM-DD
	Opponent string `json:"opponent,omitempty"`
	Ballpark string `json:"ballpark,omitempty"`
	Home     bool   `json:"home,omitempty"`
}

// Analyzer holds the inputs of one matchup analysis run.
type Analyzer struct {
	team      roster.Table
	opponent  roster.Table
	all       roster.Table
	free      roster.Table
	starts    map[int]StartInfo
	ratings   Ratings
	positions []string
}

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithOpponent sets the opposing roster for position comparisons.
func WithOpponent(t roster.Table) Option {
	return func(a *Analyzer) { a.opponent = t }
}

// WithAllPlayers sets the full player population used for position-strength
// percentiles.
func WithAllPlayers(t roster.Table) Option {
	return func(a *Analyzer) { a.all = t }
}

// WithFreeAgents sets the available free agents.
func WithFreeAgents(t roster.Table) Option {
	return func(a *Analyzer) { a.free = t }
}

// WithProbableStarts maps player IDs to their next known start.
func WithProbableStarts(starts map[int]StartInfo) Option {
	return func(a *Analyzer) { a.starts = starts }
}

// WithRatings wires the opponent/ballpark factor source.
func WithRatings(r Ratings) Option {
	return func(a *Analyzer) { a.ratings = r }
}

// WithPositions overrides the analyzed position list.
func WithPositions(positions []string) Option {
	return func(a *Analyzer) {
		if len(positions) > 0 {
			a.positions = positions
		}
	}
}

// NewAnalyzer builds an analyzer around one team's roster table.
func NewAnalyzer(team roster.Table, opts ...Option) *Analyzer {
	a := &Analyzer{
		team:      team,
		positions: defaultPositions,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Advantage says which side a position comparison favors.
type Advantage string

// Advantage values.
const (
	AdvantageTeam     Advantage = "team"
	AdvantageOpponent Advantage = "opponent"
	AdvantageEven     Advantage = "even"
)

// PositionComparison is one position's head-to-head projection comparison.
type PositionComparison struct {
	TeamProjection     float64   `json:"team_projection"`
	OpponentProjection float64   `json:"opponent_projection"`
	Advantage          Advantage `json:"advantage"`
	Difference         float64   `json:"difference"`
	TeamPlayers        []string  `json:"team_players"`
	OpponentPlayers    []string  `json:"opponent_players"`
}

// PositionReport is the full per-position comparison of two rosters.
type PositionReport struct {
	Err       string                        `json:"error,omitempty"`
	Positions map[string]PositionComparison `json:"positions"`
}

// AnalyzePositionMatchups compares the two rosters position by position,
// summing each side's projected points. Advantage classification is an exact
// equality test; there is no tolerance band.
func (a *Analyzer) AnalyzePositionMatchups() PositionReport {
	if len(a.team) == 0 || len(a.opponent) == 0 {
		return PositionReport{Err: "roster data not available for both teams"}
	}

	report := PositionReport{Positions: make(map[string]PositionComparison)}
	for _, pos := range a.positions {
		teamPlayers := a.team.FilterPosition(pos)
		oppPlayers := a.opponent.FilterPosition(pos)

		teamProj := positionProjection(teamPlayers)
		oppProj := positionProjection(oppPlayers)

		adv := AdvantageEven
		switch {
		case teamProj > oppProj:
			adv = AdvantageTeam
		case oppProj > teamProj:
			adv = AdvantageOpponent
		}

		diff := teamProj - oppProj
		if diff < 0 {
			diff = -diff
		}
		report.Positions[pos] = PositionComparison{
			TeamProjection:     teamProj,
			OpponentProjection: oppProj,
			Advantage:          adv,
			Difference:         diff,
			TeamPlayers:        teamPlayers.Names(),
			OpponentPlayers:    oppPlayers.Names(),
		}
	}
	return report
}

// positionProjection sums a sub-roster's projected points; no projection
// column means 0.
func positionProjection(players roster.Table) float64 {
	if len(players) == 0 {
		return 0
	}
	col, ok := players.ProjectionColumn()
	if !ok {
		return 0
	}
	return players.Sum(col)
}

// WeekReport pairs a week's two teams with their position comparison.
type WeekReport struct {
	Week      int            `json:"week"`
	HomeTeam  string         `json:"home_team"`
	AwayTeam  string         `json:"away_team"`
	Positions PositionReport `json:"report"`
}
