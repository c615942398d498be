package schedule

// Neutral fallbacks for teams or parks missing from the rating tables.
const (
	neutralRating = 100.0
	// leagueKRate is the league-average strikeout rate the scaling centers
	// on, in percent.
	leagueKRate = 22.0
	neutralPark = 1.0

	defaultStreamingCutoff = 105.0
)

// Quality is the favorability tier of a matchup or a stretch of schedule.
type Quality string

// Quality tiers, best to worst.
const (
	QualityExcellent Quality = "Excellent"
	QualityGood      Quality = "Good"
	QualityFavorable Quality = "Favorable"
	QualityAverage   Quality = "Average"
	QualityTough     Quality = "Tough"
)

// Scorer combines opponent ratings and ballpark factors into favorability
// scores. It carries no per-call state; the rating tables are a constant
// lookup collaborator.
type Scorer struct {
	offense         map[string]OffenseRating
	pitching        map[string]PitchingRating
	parks           map[string]float64
	homeParks       map[string]string
	streamingCutoff float64
}

// NewScorer builds a Scorer over the default rating tables unless options
// supply fresher ones.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		offense:         defaultOffenseRatings,
		pitching:        defaultPitchingRatings,
		parks:           defaultParkFactors,
		homeParks:       defaultHomeParks,
		streamingCutoff: defaultStreamingCutoff,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OffensiveRating returns a team's offensive rating. Unknown teams report
// false.
func (s *Scorer) OffensiveRating(team string) (float64, bool) {
	r, ok := s.offense[team]
	if !ok {
		return 0, false
	}
	return r.Rating, true
}

// OffenseStrikeoutRate returns how often a team's hitters strike out.
func (s *Scorer) OffenseStrikeoutRate(team string) (float64, bool) {
	r, ok := s.offense[team]
	if !ok {
		return 0, false
	}
	return r.StrikeoutRate, true
}

// ParkFactor returns the run-scoring factor for a ballpark. Unknown parks
// report false.
func (s *Scorer) ParkFactor(ballpark string) (float64, bool) {
	f, ok := s.parks[ballpark]
	return f, ok
}

// HomePark returns a team's home ballpark, or "" when unknown.
func (s *Scorer) HomePark(team string) string {
	return s.homeParks[team]
}

// MatchupQuality is the favorability of one matchup from one side's
// perspective.
type MatchupQuality struct {
	Rating           float64 `json:"matchup_rating"`
	Quality          Quality `json:"quality"`
	Recommendation   string  `json:"recommendation"`
	TeamOffense      float64 `json:"team_offense,omitempty"`
	TeamPitching     float64 `json:"team_pitching,omitempty"`
	OpponentOffense  float64 `json:"opponent_offense,omitempty"`
	OpponentPitching float64 `json:"opponent_pitching,omitempty"`
	OpponentKRate    float64 `json:"opponent_k_rate"`
	ParkFactor       float64 `json:"ballpark_factor"`
	IsOffense        bool    `json:"is_offense"`
}

// AnalyzeMatchupQuality rates one matchup. For offense the score rises with
// weak opponent pitching, a hitter-friendly park, and a low-strikeout
// opposing staff; for pitching it is the mirror computation against the
// opponent's offense and the inverse park factor. Unknown teams and parks
// fall back to league-average values.
func (s *Scorer) AnalyzeMatchupQuality(team string, isOffense bool, opponent, ballpark string) MatchupQuality {
	park, ok := s.parks[ballpark]
	if !ok {
		park = neutralPark
	}

	if isOffense {
		oppPitching := neutralRating
		oppKRate := leagueKRate
		if r, ok := s.pitching[opponent]; ok {
			oppPitching = r.Rating
			oppKRate = r.StrikeoutRate
		}
		base := neutralRating * (neutralRating / oppPitching) * park
		rating := base * (leagueKRate / oppKRate)

		q, rec := offenseTier(rating)
		teamOffense := neutralRating
		if r, ok := s.offense[team]; ok {
			teamOffense = r.Rating
		}
		return MatchupQuality{
			Rating:           rating,
			Quality:          q,
			Recommendation:   rec,
			TeamOffense:      teamOffense,
			OpponentPitching: oppPitching,
			OpponentKRate:    oppKRate,
			ParkFactor:       park,
			IsOffense:        true,
		}
	}

	oppOffense := neutralRating
	oppKRate := leagueKRate
	if r, ok := s.offense[opponent]; ok {
		oppOffense = r.Rating
		oppKRate = r.StrikeoutRate
	}
	base := neutralRating * (neutralRating / oppOffense) * (1 / park)
	rating := base * (oppKRate / leagueKRate)

	q, rec := pitchingTier(rating)
	teamPitching := neutralRating
	if r, ok := s.pitching[team]; ok {
		teamPitching = r.Rating
	}
	return MatchupQuality{
		Rating:          rating,
		Quality:         q,
		Recommendation:  rec,
		TeamPitching:    teamPitching,
		OpponentOffense: oppOffense,
		OpponentKRate:   oppKRate,
		ParkFactor:      park,
		IsOffense:       false,
	}
}

// Matchup rating tier thresholds.
const (
	excellentRating = 120
	goodRating      = 110
	favorableRating = 100
	averageRating   = 90
)

func offenseTier(rating float64) (Quality, string) {
	switch {
	case rating > excellentRating:
		return QualityExcellent, "Start all hitters"
	case rating > goodRating:
		return QualityGood, "Start most hitters"
	case rating > favorableRating:
		return QualityFavorable, "Start regular hitters"
	case rating > averageRating:
		return QualityAverage, "Start your studs"
	default:
		return QualityTough, "Consider benching borderline hitters"
	}
}

func pitchingTier(rating float64) (Quality, string) {
	switch {
	case rating > excellentRating:
		return QualityExcellent, "Stream pitchers against this team"
	case rating > goodRating:
		return QualityGood, "Good streaming opportunity"
	case rating > favorableRating:
		return QualityFavorable, "Start your regular pitchers"
	case rating > averageRating:
		return QualityAverage, "Start your studs"
	default:
		return QualityTough, "Consider benching borderline pitchers"
	}
}
