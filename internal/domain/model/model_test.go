package model_test

import (
	"testing"
	"time"

	"github.com/pennantlab/pennant/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLeagueSnapshot(t *testing.T) {
	Convey("Given a set of teams", t, func() {
		teams := []model.Team{
			{ID: 1, Name: "Alpha Aces"},
			{ID: 2, Name: "Bravo Bears"},
		}
		taken := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

		Convey("When building a snapshot", func() {
			snap := model.NewLeagueSnapshot(taken, teams)

			Convey("Then it should carry a fresh version", func() {
				So(snap.Version, ShouldNotBeEmpty)
				So(snap.Taken, ShouldEqual, taken)
				So(snap.Teams, ShouldHaveLength, 2)
			})

			Convey("And a second snapshot should get a different version", func() {
				So(model.NewLeagueSnapshot(taken, teams).Version, ShouldNotEqual, snap.Version)
			})

			Convey("And teams should be found by ID", func() {
				team, ok := snap.Team(2)
				So(ok, ShouldBeTrue)
				So(team.Name, ShouldEqual, "Bravo Bears")
			})

			Convey("And an unknown ID should not resolve", func() {
				_, ok := snap.Team(99)
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestTeam(t *testing.T) {
	Convey("Given a team with a record", t, func() {
		team := model.Team{Wins: 10, Losses: 8, Ties: 2}

		Convey("When computing the winning percentage", func() {
			Convey("Then ties should count as half a win", func() {
				So(team.WinPct(), ShouldAlmostEqual, 55.0)
			})
		})
	})

	Convey("Given a team with no games played", t, func() {
		Convey("Then the winning percentage should be zero", func() {
			So(model.Team{}.WinPct(), ShouldEqual, 0)
		})
	})

	Convey("Given teams with and without owners", t, func() {
		owned := model.Team{Owners: []model.Owner{{DisplayName: "Dana Leroy"}}}

		Convey("Then the first owner's display name should win", func() {
			So(owned.OwnerName(), ShouldEqual, "Dana Leroy")
		})

		Convey("And an ownerless team should read Unknown", func() {
			So(model.Team{}.OwnerName(), ShouldEqual, "Unknown")
		})
	})
}

func TestPlayerStat(t *testing.T) {
	Convey("Given a player with scoped stats", t, func() {
		p := model.Player{
			ID:   7,
			Name: "Cy Paddock",
			Stats: map[string]map[string]any{
				"curr": {"hr": 21.0, "ab": 480, "splits": map[string]any{"vs_lhp": 0.300}},
			},
		}

		Convey("When reading a present float stat", func() {
			v, ok := p.Stat("curr", "hr")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 21.0)
		})

		Convey("When reading an integer stat", func() {
			v, ok := p.Stat("curr", "ab")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 480.0)
		})

		Convey("When reading a nested stat", func() {
			_, ok := p.Stat("curr", "splits")
			So(ok, ShouldBeFalse)
		})

		Convey("When reading a missing scope or name", func() {
			_, ok := p.Stat("proj", "hr")
			So(ok, ShouldBeFalse)
			_, ok = p.Stat("curr", "rbi")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestMatchup(t *testing.T) {
	Convey("Given a scored matchup", t, func() {
		home := &model.Team{ID: 1, Name: "Alpha Aces"}
		away := &model.Team{ID: 2, Name: "Bravo Bears"}

		Convey("When the home side leads", func() {
			m := model.Matchup{Week: 3, Home: home, Away: away, HomeScore: 92, AwayScore: 85}
			So(m.Winner(), ShouldEqual, home)
		})

		Convey("When the away side leads", func() {
			m := model.Matchup{Week: 3, Home: home, Away: away, HomeScore: 80, AwayScore: 85}
			So(m.Winner(), ShouldEqual, away)
		})

		Convey("When the scores are tied", func() {
			m := model.Matchup{Week: 3, Home: home, Away: away, HomeScore: 90, AwayScore: 90}
			So(m.Winner(), ShouldBeNil)
		})
	})

	Convey("Given a provisional matchup", t, func() {
		home := &model.Team{ID: 1}
		away := &model.Team{ID: 2}
		m := model.NewProvisionalMatchup(home, away, 5)

		Convey("Then it should be marked with zero scores", func() {
			So(m.Provisional, ShouldBeTrue)
			So(m.HomeScore, ShouldEqual, 0)
			So(m.AwayScore, ShouldEqual, 0)
			So(m.Winner(), ShouldBeNil)
		})
	})
}
