package matchup

import (
	"fmt"
	"sort"

	"github.com/pennantlab/pennant/internal/domain/roster"
)

// Start-cap and adjustment constants.
const (
	// DefaultMaxStarts is the usual weekly pitcher-start cap.
	DefaultMaxStarts = 12

	// Opponent factor bounds: a league-average offense (rating 100) maps to
	// exactly 1.0, stronger offenses push the factor down.
	opponentFactorFloor = 0.7
	opponentFactorCeil  = 1.2

	// Ballpark factor bounds. Road starts get a dampened park effect, with
	// tighter bounds.
	homeParkFloor = 0.8
	homeParkCeil  = 1.3
	awayParkFloor = 0.85
	awayParkCeil  = 1.25
	// awayParkDamping scales how much of the park effect applies on the
	// road.
	awayParkDamping = 0.6

	// highKRate is the opponent strikeout rate above which a matchup note
	// flags the extra strikeout upside.
	highKRate = 24.0
)

// PitcherStart is one pitcher's evaluated start.
type PitcherStart struct {
	Name          string    `json:"name"`
	BaseScore     float64   `json:"base_score"`
	AdjustedScore float64   `json:"adjusted_score"`
	Start         StartInfo `json:"start"`
	Note          string    `json:"note,omitempty"`
}

// PitchingPlan is the outcome of a start optimization: who to start, who to
// bench, and how the starts spread over the calendar.
type PitchingPlan struct {
	Err               string              `json:"error,omitempty"`
	MaxStarts         int                 `json:"max_starts"`
	Recommended       []PitcherStart      `json:"recommended_pitchers"`
	Benched           []PitcherStart      `json:"benched_pitchers"`
	ProjectedPoints   float64             `json:"projected_points"`
	AdjustedPoints    float64             `json:"adjusted_points"`
	StartDistribution map[string][]string `json:"start_distribution"`
	Note              string              `json:"note,omitempty"`
}

// OptimizePitcherStarts ranks the roster's starting pitchers by projected
// points adjusted for opponent quality and ballpark, then selects the top
// maxStarts. The sort is stable, so tied scores keep roster order. Pitchers
// whose next start is unknown keep their baseline score.
func (a *Analyzer) OptimizePitcherStarts(maxStarts int) PitchingPlan {
	if maxStarts <= 0 {
		maxStarts = DefaultMaxStarts
	}
	if len(a.team) == 0 {
		return PitchingPlan{Err: "team roster data is not available", MaxStarts: maxStarts}
	}

	starters := a.team.FilterPosition("SP")
	if len(starters) == 0 {
		return PitchingPlan{Err: "no starting pitchers found on roster", MaxStarts: maxStarts}
	}

	projCol, ok := starters.ProjectionColumn()
	if !ok {
		// No projection data at all: hand back the full starter list
		// unranked rather than guessing.
		plan := PitchingPlan{
			MaxStarts: maxStarts,
			Note:      "No projections available, recommendation based on roster only",
		}
		for _, row := range starters {
			plan.Recommended = append(plan.Recommended, PitcherStart{Name: row.Name})
		}
		return plan
	}

	evaluated := make([]PitcherStart, 0, len(starters))
	for _, row := range starters {
		evaluated = append(evaluated, a.evaluateStart(row, projCol))
	}
	sort.SliceStable(evaluated, func(i, j int) bool {
		return evaluated[i].AdjustedScore > evaluated[j].AdjustedScore
	})

	cut := maxStarts
	if cut > len(evaluated) {
		cut = len(evaluated)
	}
	plan := PitchingPlan{
		MaxStarts:         maxStarts,
		Recommended:       evaluated[:cut],
		Benched:           evaluated[cut:],
		StartDistribution: make(map[string][]string),
		Note:              "Recommendations based on matchup strength and probable start dates",
	}
	for _, p := range plan.Recommended {
		plan.ProjectedPoints += p.BaseScore
		plan.AdjustedPoints += p.AdjustedScore
	}
	for _, p := range evaluated {
		if p.Start.Known && p.Start.Date != "" {
			plan.StartDistribution[p.Start.Date] = append(plan.StartDistribution[p.Start.Date], p.Name)
		}
	}
	return plan
}

// evaluateStart applies the two independently clamped multiplicative
// factors to a pitcher's baseline projection.
func (a *Analyzer) evaluateStart(row roster.Row, projCol string) PitcherStart {
	base, _ := row.Stat(projCol)
	start := a.starts[row.PlayerID]
	out := PitcherStart{
		Name:          row.Name,
		BaseScore:     base,
		AdjustedScore: base,
		Start:         start,
	}
	if !start.Known {
		return out
	}

	opponentFactor := 1.0
	highK := false
	if a.ratings != nil {
		if rating, ok := a.ratings.OffensiveRating(start.Opponent); ok {
			opponentFactor = clamp(2-rating/100, opponentFactorFloor, opponentFactorCeil)
		}
		if kRate, ok := a.ratings.OffenseStrikeoutRate(start.Opponent); ok && kRate > highKRate {
			highK = true
		}
	}

	ballparkFactor := 1.0
	if a.ratings != nil {
		if park, ok := a.ratings.ParkFactor(start.Ballpark); ok {
			if start.Home {
				ballparkFactor = clamp(1/park, homeParkFloor, homeParkCeil)
			} else {
				ballparkFactor = clamp(1/((park-1)*awayParkDamping+1), awayParkFloor, awayParkCeil)
			}
		}
	}

	out.AdjustedScore = base * opponentFactor * ballparkFactor
	if out.AdjustedScore > base {
		out.Note = fmt.Sprintf("Favorable matchup vs %s", start.Opponent)
		if highK {
			out.Note += " (high K%)"
		}
	} else {
		out.Note = fmt.Sprintf("Tough matchup vs %s", start.Opponent)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
