package schedule_test

import (
	"fmt"
	"testing"

	"github.com/pennantlab/pennant/internal/domain/schedule"
	. "github.com/smartystreets/goconvey/convey"
)

// testScorer builds a Scorer over a tiny hand-computed rating universe:
// AAA is a strong club, BBB a weak one, CCC a weak offense with no
// pitching entry. Big Park inflates scoring, Small Park suppresses it.
func testScorer(opts ...schedule.Option) *schedule.Scorer {
	base := []schedule.Option{
		schedule.WithOffenseRatings(map[string]schedule.OffenseRating{
			"AAA": {Rating: 110, StrikeoutRate: 22.0, WalkRate: 8.0},
			"BBB": {Rating: 80, StrikeoutRate: 27.5, WalkRate: 7.0},
			"CCC": {Rating: 85, StrikeoutRate: 22.0, WalkRate: 7.5},
		}),
		schedule.WithPitchingRatings(map[string]schedule.PitchingRating{
			"AAA": {Rating: 105, StrikeoutRate: 24.0, WalkRate: 8.0, HomeRunRate: 3.0},
			"BBB": {Rating: 80, StrikeoutRate: 22.0, WalkRate: 9.0, HomeRunRate: 3.8},
		}),
		schedule.WithParkFactors(map[string]float64{
			"Big Park":   1.25,
			"Small Park": 0.8,
		}),
		schedule.WithHomeParks(map[string]string{
			"AAA": "Big Park",
		}),
	}
	return schedule.NewScorer(append(base, opts...)...)
}

func TestGameHelpers(t *testing.T) {
	Convey("Given a scheduled game", t, func() {
		g := schedule.Game{Date: "2026-08-30", Home: "AAA", Away: "BBB", Ballpark: "Big Park"}

		Convey("Then both sides are involved and nobody else is", func() {
			So(g.Involves("AAA"), ShouldBeTrue)
			So(g.Involves("BBB"), ShouldBeTrue)
			So(g.Involves("ZZZ"), ShouldBeFalse)
		})

		Convey("Then each side sees the other as the opponent", func() {
			So(g.Opponent("AAA"), ShouldEqual, "BBB")
			So(g.Opponent("BBB"), ShouldEqual, "AAA")
			So(g.Opponent("ZZZ"), ShouldEqual, "")
		})
	})
}

func TestScorerLookups(t *testing.T) {
	Convey("Given the built-in rating tables", t, func() {
		s := schedule.NewScorer()

		Convey("When looking up a known team", func() {
			r, ok := s.OffensiveRating("NYY")

			Convey("Then its offensive rating is served", func() {
				So(ok, ShouldBeTrue)
				So(r, ShouldEqual, 112)
			})
		})

		Convey("When looking up an unknown team", func() {
			_, ok := s.OffensiveRating("XXX")

			Convey("Then the lookup misses", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("Then home parks and park factors resolve", func() {
			So(s.HomePark("COL"), ShouldEqual, "Coors Field")
			So(s.HomePark("XXX"), ShouldEqual, "")
			pf, ok := s.ParkFactor("Coors Field")
			So(ok, ShouldBeTrue)
			So(pf, ShouldEqual, 1.38)
			_, ok = s.ParkFactor("Sandlot")
			So(ok, ShouldBeFalse)
		})

		Convey("Then strikeout rates resolve for known offenses", func() {
			k, ok := s.OffenseStrikeoutRate("SEA")
			So(ok, ShouldBeTrue)
			So(k, ShouldEqual, 25.6)
		})
	})
}

func TestAnalyzeMatchupQuality(t *testing.T) {
	Convey("Given a scorer over fixed ratings", t, func() {
		s := testScorer()

		Convey("When rating an offense against a weak staff in a hitter's park", func() {
			q := s.AnalyzeMatchupQuality("AAA", true, "BBB", "Big Park")

			Convey("Then the rating scales with pitching, park, and strikeout rate", func() {
				// 100 * (100/80) * 1.25 * (22/22)
				So(q.Rating, ShouldAlmostEqual, 156.25, 0.001)
				So(q.Quality, ShouldEqual, schedule.QualityExcellent)
				So(q.Recommendation, ShouldEqual, "Start all hitters")
				So(q.IsOffense, ShouldBeTrue)
				So(q.TeamOffense, ShouldEqual, 110)
				So(q.OpponentPitching, ShouldEqual, 80)
				So(q.OpponentKRate, ShouldEqual, 22.0)
				So(q.ParkFactor, ShouldEqual, 1.25)
			})
		})

		Convey("When rating a staff against a weak, whiff-prone offense in a hitter's park", func() {
			q := s.AnalyzeMatchupQuality("AAA", false, "BBB", "Big Park")

			Convey("Then the park inverts and the strikeout scaling flips", func() {
				// 100 * (100/80) * (1/1.25) * (27.5/22)
				So(q.Rating, ShouldAlmostEqual, 125.0, 0.001)
				So(q.Quality, ShouldEqual, schedule.QualityExcellent)
				So(q.Recommendation, ShouldEqual, "Stream pitchers against this team")
				So(q.IsOffense, ShouldBeFalse)
				So(q.TeamPitching, ShouldEqual, 105)
				So(q.OpponentOffense, ShouldEqual, 80)
				So(q.OpponentKRate, ShouldEqual, 27.5)
			})
		})

		Convey("When the opponent and the park are unknown", func() {
			q := s.AnalyzeMatchupQuality("AAA", true, "XXX", "Sandlot")

			Convey("Then league-average values fill in and the matchup is Average", func() {
				So(q.Rating, ShouldAlmostEqual, 100.0, 0.001)
				So(q.Quality, ShouldEqual, schedule.QualityAverage)
				So(q.OpponentPitching, ShouldEqual, 100)
				So(q.OpponentKRate, ShouldEqual, 22.0)
				So(q.ParkFactor, ShouldEqual, 1.0)
			})
		})

		Convey("When the analyzing team itself is unknown", func() {
			q := s.AnalyzeMatchupQuality("XXX", true, "BBB", "Big Park")

			Convey("Then its own rating falls back to neutral without changing the score", func() {
				So(q.TeamOffense, ShouldEqual, 100)
				So(q.Rating, ShouldAlmostEqual, 156.25, 0.001)
			})
		})

		Convey("When rating against the built-in tables", func() {
			q := schedule.NewScorer().AnalyzeMatchupQuality("LAD", true, "COL", "Coors Field")

			Convey("Then Coors and a thin staff make an elite hitting matchup", func() {
				// 100 * (100/90) * 1.38 * (22/20.5)
				So(q.Rating, ShouldAlmostEqual, 164.55, 0.01)
				So(q.Quality, ShouldEqual, schedule.QualityExcellent)
			})
		})
	})
}

func TestMatchupTiers(t *testing.T) {
	Convey("Given opponents of descending pitching quality", t, func() {
		tiers := []struct {
			oppPitching float64
			quality     schedule.Quality
		}{
			{80, schedule.QualityExcellent},
			{87, schedule.QualityGood},
			{95, schedule.QualityFavorable},
			{105, schedule.QualityAverage},
			{120, schedule.QualityTough},
		}
		pitching := make(map[string]schedule.PitchingRating, len(tiers))
		for i, tc := range tiers {
			pitching[fmt.Sprintf("P%d", i)] = schedule.PitchingRating{Rating: tc.oppPitching, StrikeoutRate: 22.0}
		}
		s := schedule.NewScorer(schedule.WithPitchingRatings(pitching))

		Convey("Then each matchup lands in its tier", func() {
			for i, tc := range tiers {
				q := s.AnalyzeMatchupQuality("AAA", true, fmt.Sprintf("P%d", i), "Sandlot")
				So(q.Quality, ShouldEqual, tc.quality)
			}
		})
	})
}

func TestAnalyzeTeamSchedule(t *testing.T) {
	Convey("Given a slate with two AAA games and one unrelated game", t, func() {
		s := testScorer()
		games := []schedule.Game{
			{Date: "2026-08-30", Home: "AAA", Away: "BBB", Ballpark: "Big Park"},
			{Date: "2026-08-31", Home: "BBB", Away: "AAA", Ballpark: "Sandlot"},
			{Date: "2026-08-31", Home: "CCC", Away: "DDD", Ballpark: "Sandlot"},
		}

		Convey("When analyzing AAA's schedule", func() {
			out := s.AnalyzeTeamSchedule("AAA", games)

			Convey("Then only AAA's games are rated", func() {
				So(out.Team, ShouldEqual, "AAA")
				So(out.Games, ShouldHaveLength, 2)
				So(out.Games[0].Opponent, ShouldEqual, "BBB")
				So(out.Games[0].Home, ShouldBeTrue)
				So(out.Games[1].Home, ShouldBeFalse)
			})

			Convey("Then per-game ratings match the matchup math", func() {
				So(out.Games[0].OffenseRating, ShouldAlmostEqual, 156.25, 0.001)
				So(out.Games[0].PitchingRating, ShouldAlmostEqual, 125.0, 0.001)
				So(out.Games[1].OffenseRating, ShouldAlmostEqual, 125.0, 0.001)
				So(out.Games[1].PitchingRating, ShouldAlmostEqual, 156.25, 0.001)
			})

			Convey("Then advantages average the deltas against neutral", func() {
				So(out.OffenseAdvantage, ShouldAlmostEqual, 40.625, 0.001)
				So(out.PitchingAdvantage, ShouldAlmostEqual, 40.625, 0.001)
				So(out.OverallAdvantage, ShouldAlmostEqual, 40.625, 0.001)
				So(out.Quality, ShouldEqual, schedule.QualityExcellent)
			})
		})

		Convey("When the team has no games on the slate", func() {
			out := s.AnalyzeTeamSchedule("ZZZ", games)

			Convey("Then the outlook is empty and neutral", func() {
				So(out.Games, ShouldBeEmpty)
				So(out.OverallAdvantage, ShouldEqual, 0)
				So(out.Quality, ShouldEqual, schedule.QualityAverage)
			})
		})
	})

	Convey("Given symmetric opponents spanning every advantage tier", t, func() {
		// Opponent offense and pitching share one rating, so the overall
		// advantage is 100*(100/X) - 100 at a neutral park.
		tiers := []struct {
			oppRating float64
			quality   schedule.Quality
		}{
			{90, schedule.QualityExcellent},
			{93, schedule.QualityGood},
			{98, schedule.QualityFavorable},
			{103, schedule.QualityAverage},
			{115, schedule.QualityTough},
		}
		offense := make(map[string]schedule.OffenseRating, len(tiers))
		pitching := make(map[string]schedule.PitchingRating, len(tiers))
		for i, tc := range tiers {
			name := fmt.Sprintf("T%d", i)
			offense[name] = schedule.OffenseRating{Rating: tc.oppRating, StrikeoutRate: 22.0}
			pitching[name] = schedule.PitchingRating{Rating: tc.oppRating, StrikeoutRate: 22.0}
		}
		s := schedule.NewScorer(
			schedule.WithOffenseRatings(offense),
			schedule.WithPitchingRatings(pitching),
		)

		Convey("Then a one-game slate against each lands in its tier", func() {
			for i, tc := range tiers {
				out := s.AnalyzeTeamSchedule("AAA", []schedule.Game{
					{Date: "2026-08-30", Home: "AAA", Away: fmt.Sprintf("T%d", i), Ballpark: "Sandlot"},
				})
				So(out.Quality, ShouldEqual, tc.quality)
			}
		})
	})
}

func TestStreamingOpportunities(t *testing.T) {
	Convey("Given a two-day slate with mixed matchup quality", t, func() {
		s := testScorer()
		games := []schedule.Game{
			{Date: "2026-08-30", Home: "AAA", Away: "BBB", Ballpark: "Sandlot"},
			{Date: "2026-08-31", Home: "AAA", Away: "CCC", Ballpark: "Sandlot"},
			{Date: "2026-08-31", Home: "BBB", Away: "CCC", Ballpark: "Sandlot"},
		}

		Convey("When scanning for pitcher streams", func() {
			opps := s.PitcherStreamingOpportunities(games)

			Convey("Then only above-cutoff sides survive, grouped by date", func() {
				So(opps, ShouldHaveLength, 2)
				// AAA pitching vs BBB: 100*(100/80)*(27.5/22) = 156.25;
				// BBB pitching vs AAA: 100*(100/110) = 90.9 misses the cutoff.
				So(opps["2026-08-30"], ShouldHaveLength, 1)
				So(opps["2026-08-30"][0].Team, ShouldEqual, "AAA")
				So(opps["2026-08-30"][0].Home, ShouldBeTrue)
				So(opps["2026-08-30"][0].Rating, ShouldAlmostEqual, 156.25, 0.001)
			})

			Convey("Then opportunities within a date sort best-first", func() {
				day := opps["2026-08-31"]
				So(day, ShouldHaveLength, 3)
				So(day[0].Team, ShouldEqual, "CCC")
				So(day[0].Opponent, ShouldEqual, "BBB")
				So(day[0].Rating, ShouldAlmostEqual, 156.25, 0.001)
				So(day[1].Rating, ShouldBeGreaterThanOrEqualTo, day[2].Rating)
			})
		})

		Convey("When scanning for hitter streams", func() {
			opps := s.HitterStreamingOpportunities(games)

			Convey("Then only offenses facing weak staffs qualify", func() {
				day := opps["2026-08-30"]
				So(day, ShouldHaveLength, 1)
				So(day[0].Team, ShouldEqual, "AAA")
				So(day[0].Rating, ShouldAlmostEqual, 125.0, 0.001)
				So(day[0].Recommendation, ShouldEqual, "Start all hitters")
			})
		})

		Convey("When the cutoff is raised", func() {
			strict := testScorer(schedule.WithStreamingCutoff(150))
			opps := strict.PitcherStreamingOpportunities(games)

			Convey("Then marginal opportunities drop out", func() {
				So(opps["2026-08-30"], ShouldHaveLength, 1)
				So(opps["2026-08-31"], ShouldHaveLength, 1)
				So(opps["2026-08-31"][0].Team, ShouldEqual, "CCC")
			})
		})

		Convey("When the slate is empty", func() {
			Convey("Then the scan yields an empty map", func() {
				So(s.PitcherStreamingOpportunities(nil), ShouldBeEmpty)
			})
		})
	})
}
