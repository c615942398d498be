package service_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	service "github.com/pennantlab/pennant/internal/app"
	"github.com/pennantlab/pennant/internal/domain/category"
	"github.com/pennantlab/pennant/internal/leaguegen"
	. "github.com/smartystreets/goconvey/convey"
)

func TestServiceIntegration(t *testing.T) {
	Convey("Given a service loaded with a generated league", t, func() {
		doc := leaguegen.Generate(leaguegen.Config{
			Teams: 8,
			Seed:  42,
			Start: time.Now(),
		})

		svc := service.New(service.WithMaxStarts(8))
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		receipt, err := svc.Ingest(ctx, doc)
		So(err, ShouldBeNil)
		So(receipt.TeamCount, ShouldEqual, 8)

		Convey("When running the category analysis for every team", func() {
			rows, err := svc.Standings(ctx)
			So(err, ShouldBeNil)

			Convey("Then every team should score every catalog category", func() {
				for _, row := range rows {
					analysis, err := svc.TeamCategories(ctx, row.TeamID)
					So(err, ShouldBeNil)
					So(analysis.Err, ShouldBeEmpty)
					So(analysis.Batting, ShouldNotBeEmpty)
					So(analysis.Pitching, ShouldNotBeEmpty)
					for _, score := range analysis.Batting {
						So(score.Percentile, ShouldBeBetweenOrEqual, 0, 100)
						So(score.Tier, ShouldNotBeEmpty)
					}
				}
			})

			Convey("And strength tiers should follow the percentiles", func() {
				analysis, err := svc.TeamCategories(ctx, rows[0].TeamID)
				So(err, ShouldBeNil)
				for name, score := range analysis.Batting {
					So(category.TierFor(score.Percentile), ShouldEqual, score.Tier)
					So(name, ShouldNotBeEmpty)
				}
			})
		})

		Convey("When running every matchup analysis", func() {
			Convey("Then week matchups should cover the round-robin", func() {
				reports, err := svc.WeekMatchups(ctx, 1)
				So(err, ShouldBeNil)
				So(reports, ShouldHaveLength, 4)
			})

			Convey("And the pitching plan should respect the start cap", func() {
				plan, err := svc.PitchingPlan(ctx, 1, 0)
				So(err, ShouldBeNil)
				So(plan.Err, ShouldBeEmpty)
				So(plan.MaxStarts, ShouldEqual, 8)
				So(len(plan.Recommended), ShouldBeLessThanOrEqualTo, 8)
			})

			Convey("And acquisitions should draw on the free agent pool", func() {
				plan, err := svc.Acquisitions(ctx, 1, 0)
				So(err, ShouldBeNil)
				So(plan.Err, ShouldBeEmpty)
				So(plan.Strengths, ShouldNotBeEmpty)
				So(plan.Streaming, ShouldNotBeEmpty)
			})
		})

		Convey("When scanning the real-world slate", func() {
			Convey("Then streaming scans should key by date", func() {
				opps, err := svc.Streaming(ctx, 0, "pitching")
				So(err, ShouldBeNil)
				for date := range opps {
					_, err := time.Parse("2006-01-02", date)
					So(err, ShouldBeNil)
				}
			})

			Convey("And the hitting scan should run as well", func() {
				_, err := svc.Streaming(ctx, 0, "hitting")
				So(err, ShouldBeNil)
			})

			Convey("And a pro team schedule outlook should rate its games", func() {
				outlook, err := svc.TeamSchedule(ctx, "COL", 0)
				So(err, ShouldBeNil)
				So(outlook.Team, ShouldEqual, "COL")
				So(outlook.Games, ShouldNotBeEmpty)
			})
		})

		Convey("When scouting the player pool", func() {
			Convey("Then projection deltas should find drifted players", func() {
				report, err := svc.ScoutDeltas(ctx, "overperforming", "curr_hr", "proj_hr", 0.1)
				So(err, ShouldBeNil)
				So(report.Err, ShouldBeEmpty)
				So(report.Players, ShouldNotBeEmpty)
			})

			Convey("And scarcity should count every generated position", func() {
				report, err := svc.ScoutScarcity(ctx)
				So(err, ShouldBeNil)
				So(report.PositionCounts["SP"], ShouldBeGreaterThan, 0)
			})
		})

		Convey("When re-ingesting a fresh snapshot", func() {
			second, err := svc.Ingest(ctx, doc)

			Convey("Then the version should change", func() {
				So(err, ShouldBeNil)
				So(second.Version, ShouldNotEqual, receipt.Version)
			})

			Convey("And reads should see the new version", func() {
				So(err, ShouldBeNil)
				So(svc.GetStats(ctx).SnapshotVersion, ShouldEqual, second.Version)
			})
		})
	})
}

func TestServiceIntegration_SnapshotFile(t *testing.T) {
	Convey("Given a snapshot document on disk", t, func() {
		doc := leaguegen.Generate(leaguegen.Config{Teams: 4, Seed: 7, Start: time.Now()})
		raw, err := json.Marshal(doc)
		So(err, ShouldBeNil)

		path := filepath.Join(t.TempDir(), "snapshot.json")
		So(os.WriteFile(path, raw, 0o600), ShouldBeNil)

		Convey("When starting a service pointed at the file", func() {
			svc := service.New(service.WithSnapshotPath(path))
			ctx := context.Background()
			err := svc.Start(ctx)
			defer svc.Stop()

			Convey("Then the snapshot should load on start", func() {
				So(err, ShouldBeNil)
				stats := svc.GetStats(ctx)
				So(stats.TeamCount, ShouldEqual, 4)
				So(stats.SnapshotVersion, ShouldNotBeEmpty)
			})
		})

		Convey("When starting a service pointed at a missing file", func() {
			svc := service.New(service.WithSnapshotPath(filepath.Join(t.TempDir(), "missing.json")))
			err := svc.Start(context.Background())
			defer svc.Stop()

			Convey("Then start should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
