package schedule

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithOffenseRatings replaces the built-in offensive rating table.
func WithOffenseRatings(ratings map[string]OffenseRating) Option {
	return func(s *Scorer) {
		if len(ratings) > 0 {
			s.offense = ratings
		}
	}
}

// WithPitchingRatings replaces the built-in pitching rating table.
func WithPitchingRatings(ratings map[string]PitchingRating) Option {
	return func(s *Scorer) {
		if len(ratings) > 0 {
			s.pitching = ratings
		}
	}
}

// WithParkFactors replaces the built-in ballpark factor table.
func WithParkFactors(factors map[string]float64) Option {
	return func(s *Scorer) {
		if len(factors) > 0 {
			s.parks = factors
		}
	}
}

// WithHomeParks replaces the built-in team-to-home-ballpark mapping.
func WithHomeParks(parks map[string]string) Option {
	return func(s *Scorer) {
		if len(parks) > 0 {
			s.homeParks = parks
		}
	}
}

// WithStreamingCutoff sets the minimum rating for a game to count as a
// streaming opportunity.
func WithStreamingCutoff(cutoff float64) Option {
	return func(s *Scorer) {
		if cutoff > 0 {
			s.streamingCutoff = cutoff
		}
	}
}
