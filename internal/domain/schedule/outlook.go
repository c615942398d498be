package schedule

import "sort"

// Game is one real-world game on the MLB calendar, supplied by the feed.
// The engine never invents games; an empty slate just yields empty reports.
type Game struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Home     string `json:"home"`
	Away     string `json:"away"`
	Ballpark string `json:"ballpark"`
}

// Involves reports whether team plays in this game.
func (g Game) Involves(team string) bool {
	return g.Home == team || g.Away == team
}

// Opponent returns the other side, or "" when team is not playing.
func (g Game) Opponent(team string) string {
	switch team {
	case g.Home:
		return g.Away
	case g.Away:
		return g.Home
	default:
		return ""
	}
}

// GameQuality is one analyzed game in a team's schedule outlook.
type GameQuality struct {
	Date            string  `json:"date"`
	Opponent        string  `json:"opponent"`
	Ballpark        string  `json:"ballpark"`
	Home            bool    `json:"is_home"`
	OffenseRating   float64 `json:"offense_rating"`
	OffenseQuality  Quality `json:"offense_quality"`
	PitchingRating  float64 `json:"pitching_rating"`
	PitchingQuality Quality `json:"pitching_quality"`
}

// Outlook summarizes how favorable a team's upcoming slate is. Advantages
// are mean rating deltas against the neutral 100.
type Outlook struct {
	Team              string        `json:"team"`
	Games             []GameQuality `json:"games"`
	OffenseAdvantage  float64       `json:"offensive_schedule_advantage"`
	PitchingAdvantage float64       `json:"pitching_schedule_advantage"`
	OverallAdvantage  float64       `json:"overall_schedule_advantage"`
	Quality           Quality       `json:"schedule_quality"`
}

// Schedule advantage tier thresholds (mean rating delta vs neutral).
const (
	excellentAdvantage = 10
	goodAdvantage      = 5
	favorableAdvantage = 0
	averageAdvantage   = -5
)

// AnalyzeTeamSchedule rates every game of games that involves team, from
// both the offensive and the pitching perspective, and averages the
// advantage over the slate.
func (s *Scorer) AnalyzeTeamSchedule(team string, games []Game) Outlook {
	out := Outlook{Team: team}
	var offenseTotal, pitchingTotal float64
	for _, g := range games {
		if !g.Involves(team) {
			continue
		}
		opponent := g.Opponent(team)
		offense := s.AnalyzeMatchupQuality(team, true, opponent, g.Ballpark)
		pitching := s.AnalyzeMatchupQuality(team, false, opponent, g.Ballpark)
		offenseTotal += offense.Rating - neutralRating
		pitchingTotal += pitching.Rating - neutralRating
		out.Games = append(out.Games, GameQuality{
			Date:            g.Date,
			Opponent:        opponent,
			Ballpark:        g.Ballpark,
			Home:            g.Home == team,
			OffenseRating:   offense.Rating,
			OffenseQuality:  offense.Quality,
			PitchingRating:  pitching.Rating,
			PitchingQuality: pitching.Quality,
		})
	}

	if n := len(out.Games); n > 0 {
		out.OffenseAdvantage = offenseTotal / float64(n)
		out.PitchingAdvantage = pitchingTotal / float64(n)
		out.OverallAdvantage = (out.OffenseAdvantage + out.PitchingAdvantage) / 2
	}
	out.Quality = advantageTier(out.OverallAdvantage)
	return out
}

func advantageTier(advantage float64) Quality {
	switch {
	case advantage > excellentAdvantage:
		return QualityExcellent
	case advantage > goodAdvantage:
		return QualityGood
	case advantage > favorableAdvantage:
		return QualityFavorable
	case advantage > averageAdvantage:
		return QualityAverage
	default:
		return QualityTough
	}
}

// Opportunity is one favorable matchup surfaced by a streaming scan.
type Opportunity struct {
	Team           string  `json:"team"`
	Opponent       string  `json:"opponent"`
	Ballpark       string  `json:"ballpark"`
	Home           bool    `json:"is_home"`
	Rating         float64 `json:"rating"`
	Quality        Quality `json:"quality"`
	Recommendation string  `json:"recommendation"`
}

// PitcherStreamingOpportunities scans the slate for games where one side's
// pitching matchup rates above the streaming cutoff, grouped by date and
// sorted best-first within each date.
func (s *Scorer) PitcherStreamingOpportunities(games []Game) map[string][]Opportunity {
	return s.streamingScan(games, false)
}

// HitterStreamingOpportunities is the offensive mirror of the pitcher scan.
func (s *Scorer) HitterStreamingOpportunities(games []Game) map[string][]Opportunity {
	return s.streamingScan(games, true)
}

func (s *Scorer) streamingScan(games []Game, isOffense bool) map[string][]Opportunity {
	byDate := make(map[string][]Opportunity)
	for _, g := range games {
		for _, side := range []struct {
			team string
			home bool
		}{{g.Home, true}, {g.Away, false}} {
			q := s.AnalyzeMatchupQuality(side.team, isOffense, g.Opponent(side.team), g.Ballpark)
			if q.Rating <= s.streamingCutoff {
				continue
			}
			byDate[g.Date] = append(byDate[g.Date], Opportunity{
				Team:           side.team,
				Opponent:       g.Opponent(side.team),
				Ballpark:       g.Ballpark,
				Home:           side.home,
				Rating:         q.Rating,
				Quality:        q.Quality,
				Recommendation: q.Recommendation,
			})
		}
	}
	for date := range byDate {
		opps := byDate[date]
		sort.SliceStable(opps, func(i, j int) bool { return opps[i].Rating > opps[j].Rating })
		byDate[date] = opps
	}
	return byDate
}
