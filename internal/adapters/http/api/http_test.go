package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pennantlab/pennant/internal/adapters/feed"
	"github.com/pennantlab/pennant/internal/adapters/http/api"
	"github.com/pennantlab/pennant/internal/adapters/repository"
	"github.com/pennantlab/pennant/internal/domain/category"
	"github.com/pennantlab/pennant/internal/domain/matchup"
	"github.com/pennantlab/pennant/internal/domain/schedule"
	"github.com/pennantlab/pennant/internal/domain/scout"
	"github.com/pennantlab/pennant/internal/domain/standings"
	"github.com/pennantlab/pennant/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing
type mockDependencies struct {
	err      error
	standing []standings.Row
	receipt  types.SnapshotReceipt
}

func (m *mockDependencies) Ingest(ctx context.Context, doc feed.Document) (types.SnapshotReceipt, error) {
	if len(doc.Teams) == 0 {
		return types.SnapshotReceipt{}, repository.ErrEmptyLeague
	}
	return m.receipt, m.err
}

func (m *mockDependencies) Standings(ctx context.Context) ([]standings.Row, error) {
	return m.standing, m.err
}

func (m *mockDependencies) DivisionStandings(ctx context.Context) (map[string][]standings.Row, error) {
	return map[string][]standings.Row{"East": m.standing}, m.err
}

func (m *mockDependencies) CompareTeams(ctx context.Context, name1, name2 string) (standings.Comparison, error) {
	return standings.Comparison{Team1: name1, Team2: name2}, m.err
}

func (m *mockDependencies) TeamCategories(ctx context.Context, teamID int) (category.TeamAnalysis, error) {
	return category.TeamAnalysis{}, m.err
}

func (m *mockDependencies) TeamImprovements(ctx context.Context, teamID int) (category.ImprovementPlan, error) {
	return category.ImprovementPlan{}, m.err
}

func (m *mockDependencies) TeamTradeTargets(ctx context.Context, teamID int) (category.TradePlan, error) {
	return category.TradePlan{}, m.err
}

func (m *mockDependencies) WeekMatchups(ctx context.Context, week int) ([]matchup.WeekReport, error) {
	return nil, m.err
}

func (m *mockDependencies) PitchingPlan(ctx context.Context, teamID, maxStarts int) (matchup.PitchingPlan, error) {
	return matchup.PitchingPlan{}, m.err
}

func (m *mockDependencies) Acquisitions(ctx context.Context, teamID, limit int) (matchup.AcquisitionPlan, error) {
	return matchup.AcquisitionPlan{}, m.err
}

func (m *mockDependencies) Streaming(ctx context.Context, days int, kind string) (map[string][]schedule.Opportunity, error) {
	return map[string][]schedule.Opportunity{}, m.err
}

func (m *mockDependencies) TeamSchedule(ctx context.Context, team string, days int) (schedule.Outlook, error) {
	return schedule.Outlook{Team: team}, m.err
}

func (m *mockDependencies) ScoutDeltas(ctx context.Context, kind, actualStat, projectedStat string, threshold float64) (scout.DeltaReport, error) {
	return scout.DeltaReport{ActualStat: actualStat, ProjectedStat: projectedStat}, m.err
}

func (m *mockDependencies) ScoutScarcity(ctx context.Context) (scout.ScarcityReport, error) {
	return scout.ScarcityReport{}, m.err
}

type mockStatsProvider struct {
	stats types.ServiceStats
}

func (m *mockStatsProvider) GetStats(ctx context.Context) types.ServiceStats {
	return m.stats
}

func newTestMux(deps *mockDependencies) *http.ServeMux {
	server := api.NewServer(deps, &mockStatsProvider{stats: types.ServiceStats{Started: true}})
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux
}

func TestServer_Register(t *testing.T) {
	Convey("Given a new API server", t, func() {
		deps := &mockDependencies{
			standing: []standings.Row{{TeamID: 1, Name: "Bombers", Standing: 1}},
			receipt:  types.SnapshotReceipt{Version: "f6c7c2b0", Taken: time.Now(), TeamCount: 10},
		}
		mux := newTestMux(deps)

		Convey("When registering routes", func() {
			Convey("Then health endpoint should be accessible", func() {
				req := httptest.NewRequest("GET", "/healthz", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And stats endpoint should be accessible", func() {
				req := httptest.NewRequest("GET", "/stats", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)

				var stats types.ServiceStats
				So(json.NewDecoder(w.Body).Decode(&stats), ShouldBeNil)
				So(stats.Started, ShouldBeTrue)
			})

			Convey("And teams endpoint should return standings", func() {
				req := httptest.NewRequest("GET", "/teams", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)

				var rows []standings.Row
				So(json.NewDecoder(w.Body).Decode(&rows), ShouldBeNil)
				So(rows, ShouldHaveLength, 1)
				So(rows[0].Name, ShouldEqual, "Bombers")
			})

			Convey("And divisions endpoint should be accessible", func() {
				req := httptest.NewRequest("GET", "/divisions", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And unknown paths should return 404", func() {
				req := httptest.NewRequest("GET", "/unknown", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestSnapshotHandler(t *testing.T) {
	Convey("Given a snapshot endpoint", t, func() {
		deps := &mockDependencies{
			receipt: types.SnapshotReceipt{Version: "f6c7c2b0", TeamCount: 2},
		}
		mux := newTestMux(deps)

		Convey("When posting a valid snapshot document", func() {
			body := `{"teams":[{"team_id":1,"name":"A"},{"team_id":2,"name":"B"}]}`
			req := httptest.NewRequest("POST", "/snapshot", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return the receipt", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var receipt types.SnapshotReceipt
				So(json.NewDecoder(w.Body).Decode(&receipt), ShouldBeNil)
				So(receipt.Version, ShouldEqual, "f6c7c2b0")
				So(receipt.TeamCount, ShouldEqual, 2)
			})
		})

		Convey("When posting malformed JSON", func() {
			req := httptest.NewRequest("POST", "/snapshot", strings.NewReader("{not json"))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When posting a document with no teams", func() {
			req := httptest.NewRequest("POST", "/snapshot", strings.NewReader(`{"teams":[]}`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When using the wrong method", func() {
			req := httptest.NewRequest("GET", "/snapshot", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestTeamsHandler(t *testing.T) {
	Convey("Given the team analysis endpoints", t, func() {
		deps := &mockDependencies{}
		mux := newTestMux(deps)

		Convey("When requesting each analysis for a valid team", func() {
			for _, path := range []string{
				"/teams/3/categories",
				"/teams/3/improvements",
				"/teams/3/trade-targets",
				"/teams/3/pitching-plan?max_starts=10",
				"/teams/3/acquisitions?limit=5",
			} {
				req := httptest.NewRequest("GET", path, nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			}
		})

		Convey("When the team id is not an integer", func() {
			req := httptest.NewRequest("GET", "/teams/abc/categories", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the analysis segment is unknown", func() {
			req := httptest.NewRequest("GET", "/teams/3/nonsense", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When max_starts is malformed", func() {
			req := httptest.NewRequest("GET", "/teams/3/pitching-plan?max_starts=lots", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the store has no snapshot", func() {
			deps.err = repository.ErrNoSnapshot
			req := httptest.NewRequest("GET", "/teams/3/categories", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 503", func() {
				So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
			})
		})

		Convey("When the team does not exist", func() {
			deps.err = repository.ErrUnknownTeam
			req := httptest.NewRequest("GET", "/teams/99/categories", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestCompareHandler(t *testing.T) {
	Convey("Given the compare endpoint", t, func() {
		deps := &mockDependencies{}
		mux := newTestMux(deps)

		Convey("When both team names are provided", func() {
			req := httptest.NewRequest("GET", "/teams/compare?team1=Bombers&team2=Sox", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return the comparison", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var cmp standings.Comparison
				So(json.NewDecoder(w.Body).Decode(&cmp), ShouldBeNil)
				So(cmp.Team1, ShouldEqual, "Bombers")
				So(cmp.Team2, ShouldEqual, "Sox")
			})
		})

		Convey("When a team name is missing", func() {
			req := httptest.NewRequest("GET", "/teams/compare?team1=Bombers", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should return 400", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestMatchupsHandler(t *testing.T) {
	Convey("Given the matchups endpoint", t, func() {
		deps := &mockDependencies{}
		mux := newTestMux(deps)

		Convey("When requesting a valid week", func() {
			req := httptest.NewRequest("GET", "/matchups/5", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("When the week is not a positive integer", func() {
			for _, path := range []string{"/matchups/zero", "/matchups/0", "/matchups/-1"} {
				req := httptest.NewRequest("GET", path, nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			}
		})
	})
}

func TestScheduleHandlers(t *testing.T) {
	Convey("Given the schedule endpoints", t, func() {
		deps := &mockDependencies{}
		mux := newTestMux(deps)

		Convey("When requesting streaming opportunities", func() {
			req := httptest.NewRequest("GET", "/streaming?days=7&kind=pitching", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("When the kind is unknown", func() {
			req := httptest.NewRequest("GET", "/streaming?kind=bowling", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When requesting a team schedule", func() {
			req := httptest.NewRequest("GET", "/schedule/NYY?days=7", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)

			var outlook schedule.Outlook
			So(json.NewDecoder(w.Body).Decode(&outlook), ShouldBeNil)
			So(outlook.Team, ShouldEqual, "NYY")
		})

		Convey("When the team segment is empty", func() {
			req := httptest.NewRequest("GET", "/schedule/", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestScoutHandlers(t *testing.T) {
	Convey("Given the scout endpoints", t, func() {
		deps := &mockDependencies{}
		mux := newTestMux(deps)

		Convey("When requesting undervalued players", func() {
			req := httptest.NewRequest("GET", "/scout/undervalued?actual=HR&projected=PROJ_HR&threshold=0.25", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)

			var report scout.DeltaReport
			So(json.NewDecoder(w.Body).Decode(&report), ShouldBeNil)
			So(report.ActualStat, ShouldEqual, "HR")
		})

		Convey("When the stat names are missing", func() {
			req := httptest.NewRequest("GET", "/scout/overperforming", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the threshold is malformed", func() {
			req := httptest.NewRequest("GET", "/scout/undervalued?actual=HR&projected=PROJ_HR&threshold=big", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When requesting position scarcity", func() {
			req := httptest.NewRequest("GET", "/scout/scarcity", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
		})
	})
}
