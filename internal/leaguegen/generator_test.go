package leaguegen_test

import (
	"testing"
	"time"

	"github.com/pennantlab/pennant/internal/leaguegen"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	Convey("Given a generation config", t, func() {
		cfg := leaguegen.Config{
			Teams: 10,
			Seed:  42,
			Start: time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
		}

		Convey("When generating a snapshot document", func() {
			doc := leaguegen.Generate(cfg)

			Convey("Then it should contain the requested team count", func() {
				So(doc.Teams, ShouldHaveLength, 10)
			})

			Convey("And every team should carry a full roster", func() {
				for _, team := range doc.Teams {
					So(len(team.Roster), ShouldEqual, 16)
					So(team.Name, ShouldNotBeEmpty)
					So(team.Owners, ShouldNotBeEmpty)
				}
			})

			Convey("And standings should run 1..N with coherent records", func() {
				for i, team := range doc.Teams {
					So(team.Standing, ShouldEqual, i+1)
					So(team.Wins+team.Losses+team.Ties, ShouldEqual, 2*(len(doc.Teams)-1))
				}
			})

			Convey("And every week should pair all teams", func() {
				perWeek := make(map[int]int)
				for _, w := range doc.Weeks {
					perWeek[w.Week]++
					So(w.HomeID, ShouldNotEqual, w.AwayID)
				}
				for _, pairings := range perWeek {
					So(pairings, ShouldEqual, 5)
				}
			})

			Convey("And games should fall inside the configured window", func() {
				So(doc.Games, ShouldNotBeEmpty)
				for _, game := range doc.Games {
					So(game.Date, ShouldNotBeEmpty)
					So(game.Ballpark, ShouldNotBeEmpty)
					So(game.Home, ShouldNotEqual, game.Away)
				}
			})

			Convey("And probable starts should reference rostered pitchers", func() {
				ids := make(map[int]bool)
				for _, team := range doc.Teams {
					for _, p := range team.Roster {
						ids[p.ID] = true
					}
				}
				So(doc.Probables, ShouldNotBeEmpty)
				for _, start := range doc.Probables {
					So(ids[start.PlayerID], ShouldBeTrue)
				}
			})

			Convey("And players should carry both actual and projected scopes", func() {
				p := doc.Teams[0].Roster[0]
				So(p.Stats["curr"], ShouldNotBeNil)
				So(p.Stats["proj"], ShouldNotBeNil)
				So(p.Stats["proj"]["projected_points"], ShouldNotBeNil)
				So(p.Stats["curr"]["projected_points"], ShouldBeNil)
			})
		})

		Convey("When generating twice with the same seed", func() {
			a := leaguegen.Generate(cfg)
			b := leaguegen.Generate(cfg)

			Convey("Then rosters should match", func() {
				So(b.Teams[0].Roster[0].Name, ShouldEqual, a.Teams[0].Roster[0].Name)
				So(b.Teams[4].Name, ShouldEqual, a.Teams[4].Name)
			})
		})

		Convey("When the team count is odd", func() {
			doc := leaguegen.Generate(leaguegen.Config{Teams: 9, Seed: 7})

			Convey("Then it should be rounded up to pair evenly", func() {
				So(doc.Teams, ShouldHaveLength, 10)
			})
		})
	})
}
