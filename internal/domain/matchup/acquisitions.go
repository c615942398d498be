package matchup

import "math"

// Acquisition scan constants.
const (
	// weakStrengthThreshold flags a position as needing help when the
	// roster's strength percentile (0..1) falls below it.
	weakStrengthThreshold = 0.7
	picksPerPosition      = 3
	streamingPicks        = 5
	neutralStrength       = 0.5
)

// Positions scanned for upgrades; relievers are excluded from the waiver
// scan.
var acquisitionPositions = []string{"C", "1B", "2B", "3B", "SS", "OF", "SP"}

// AcquisitionPick is one recommended free-agent pickup.
type AcquisitionPick struct {
	Name      string  `json:"name"`
	ProTeam   string  `json:"pro_team"`
	Projected float64 `json:"projected_points"`
}

// PositionStrength is the roster's standing at one position relative to the
// full player population.
type PositionStrength struct {
	Strength  float64 `json:"strength"` // percentile, 0..1
	TeamAvg   float64 `json:"team_avg"`
	LeagueAvg float64 `json:"league_avg"`
	Note      string  `json:"note,omitempty"`
}

// AcquisitionPlan lists recommended pickups per weak position plus a fixed
// streaming-pitcher shortlist.
type AcquisitionPlan struct {
	Err       string                       `json:"error,omitempty"`
	Positions map[string][]AcquisitionPick `json:"positions"`
	Strengths map[string]PositionStrength  `json:"position_strengths"`
	Streaming []AcquisitionPick            `json:"streaming_sp"`
}

// RecommendAcquisitions flags positions whose strength percentile falls
// below the weakness threshold and suggests the best available free agents
// for each, capped at limit picks overall. The streaming shortlist — the top
// free-agent starters by raw projection, no matchup adjustment — is always
// appended.
func (a *Analyzer) RecommendAcquisitions(limit int) AcquisitionPlan {
	if len(a.free) == 0 || len(a.team) == 0 {
		return AcquisitionPlan{Err: "free agent or team roster data is not available"}
	}

	plan := AcquisitionPlan{
		Positions: make(map[string][]AcquisitionPick),
		Strengths: a.positionStrengths(),
	}

	remaining := limit
	if limit <= 0 {
		remaining = len(acquisitionPositions) * picksPerPosition
	}
	for _, pos := range acquisitionPositions {
		strength, ok := plan.Strengths[pos]
		if !ok || strength.Strength >= weakStrengthThreshold {
			continue
		}
		if remaining <= 0 {
			break
		}
		candidates := a.free.FilterPosition(pos)
		if len(candidates) == 0 {
			continue
		}
		projCol, ok := candidates.ProjectionColumn()
		if !ok {
			continue
		}
		n := picksPerPosition
		if n > remaining {
			n = remaining
		}
		for _, row := range candidates.SortBy(projCol, false).Head(n) {
			proj, _ := row.Stat(projCol)
			plan.Positions[pos] = append(plan.Positions[pos], AcquisitionPick{
				Name:      row.Name,
				ProTeam:   row.ProTeam,
				Projected: proj,
			})
			remaining--
		}
	}

	plan.Streaming = a.streamingPitchers()
	return plan
}

// positionStrengths computes each roster position's strength percentile the
// same clamp way as category scoring, but against the full player
// population, not just rostered players.
func (a *Analyzer) positionStrengths() map[string]PositionStrength {
	out := make(map[string]PositionStrength)
	if len(a.all) == 0 {
		return out
	}
	for _, pos := range append([]string{}, append(acquisitionPositions, "RP")...) {
		teamPos := a.team.FilterPosition(pos)
		if len(teamPos) == 0 {
			out[pos] = PositionStrength{Note: "No players at this position"}
			continue
		}
		allPos := a.all.FilterPosition(pos)
		if len(allPos) == 0 {
			continue
		}
		projCol, ok := allPos.ProjectionColumn()
		if !ok {
			continue
		}

		teamAvg, _ := teamPos.Mean(projCol)
		allAvg, _ := allPos.Mean(projCol)
		allStd := sampleStd(allPos.Column(projCol))

		strength := neutralStrength
		if allStd > 0 {
			z := (teamAvg - allAvg) / allStd
			strength = clamp((z+3)/6, 0, 1)
		}
		out[pos] = PositionStrength{
			Strength:  strength,
			TeamAvg:   teamAvg,
			LeagueAvg: allAvg,
		}
	}
	return out
}

// streamingPitchers ranks free-agent starters by raw projected points.
func (a *Analyzer) streamingPitchers() []AcquisitionPick {
	starters := a.free.FilterPosition("SP")
	if len(starters) == 0 {
		return nil
	}
	projCol, ok := starters.ProjectionColumn()
	if !ok {
		return nil
	}
	var out []AcquisitionPick
	for _, row := range starters.SortBy(projCol, false).Head(streamingPicks) {
		proj, _ := row.Stat(projCol)
		out = append(out, AcquisitionPick{
			Name:      row.Name,
			ProTeam:   row.ProTeam,
			Projected: proj,
		})
	}
	return out
}

// sampleStd is the sample standard deviation (divide by n-1), matching how
// position strength was defined historically. Fewer than two values yield 0.
func sampleStd(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	var total float64
	for _, v := range values {
		total += v
	}
	mean := total / float64(n)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}
