// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/cors"

	"github.com/pennantlab/pennant/internal/adapters/feed"
	"github.com/pennantlab/pennant/internal/adapters/repository"
	"github.com/pennantlab/pennant/internal/domain/category"
	"github.com/pennantlab/pennant/internal/domain/matchup"
	"github.com/pennantlab/pennant/internal/domain/schedule"
	"github.com/pennantlab/pennant/internal/domain/scout"
	"github.com/pennantlab/pennant/internal/domain/standings"
	"github.com/pennantlab/pennant/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Ingest installs a new league snapshot.
	Ingest(ctx context.Context, doc feed.Document) (types.SnapshotReceipt, error)

	// Read operations expose analysis results for the current snapshot.
	Standings(ctx context.Context) ([]standings.Row, error)
	DivisionStandings(ctx context.Context) (map[string][]standings.Row, error)
	CompareTeams(ctx context.Context, name1, name2 string) (standings.Comparison, error)
	TeamCategories(ctx context.Context, teamID int) (category.TeamAnalysis, error)
	TeamImprovements(ctx context.Context, teamID int) (category.ImprovementPlan, error)
	TeamTradeTargets(ctx context.Context, teamID int) (category.TradePlan, error)
	WeekMatchups(ctx context.Context, week int) ([]matchup.WeekReport, error)
	PitchingPlan(ctx context.Context, teamID, maxStarts int) (matchup.PitchingPlan, error)
	Acquisitions(ctx context.Context, teamID, limit int) (matchup.AcquisitionPlan, error)
	Streaming(ctx context.Context, days int, kind string) (map[string][]schedule.Opportunity, error)
	TeamSchedule(ctx context.Context, team string, days int) (schedule.Outlook, error)
	ScoutDeltas(ctx context.Context, kind, actualStat, projectedStat string, threshold float64) (scout.DeltaReport, error)
	ScoutScarcity(ctx context.Context) (scout.ScarcityReport, error)
}

// Server wires HTTP routes for the analysis API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	snapshotHandler *SnapshotHandler
	teamsHandler    *TeamsHandler
	matchupsHandler *MatchupsHandler
	scheduleHandler *ScheduleHandler
	scoutHandler    *ScoutHandler

	corsOrigins []string
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*Server)

// WithCORSOrigins sets the allowed CORS origins.
func WithCORSOrigins(origins []string) ServerOption {
	return func(s *Server) {
		if len(origins) > 0 {
			s.corsOrigins = origins
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	s := &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		snapshotHandler: NewSnapshotHandler(deps),
		teamsHandler:    NewTeamsHandler(deps),
		matchupsHandler: NewMatchupsHandler(deps),
		scheduleHandler: NewScheduleHandler(deps),
		scoutHandler:    NewScoutHandler(deps),
		corsOrigins:     []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/snapshot", MetricsMiddleware(s.snapshotHandler.HandlePostSnapshot, "snapshot"))
	mux.HandleFunc("/teams/compare", MetricsMiddleware(s.teamsHandler.HandleCompare, "teams_compare"))
	mux.HandleFunc("/teams/", MetricsMiddleware(s.teamsHandler.HandleTeam, "teams"))
	mux.HandleFunc("/teams", MetricsMiddleware(s.teamsHandler.HandleStandings, "teams"))
	mux.HandleFunc("/divisions", MetricsMiddleware(s.teamsHandler.HandleDivisions, "divisions"))
	mux.HandleFunc("/matchups/", MetricsMiddleware(s.matchupsHandler.HandleWeek, "matchups"))
	mux.HandleFunc("/streaming", MetricsMiddleware(s.scheduleHandler.HandleStreaming, "streaming"))
	mux.HandleFunc("/schedule/", MetricsMiddleware(s.scheduleHandler.HandleTeamSchedule, "schedule"))
	mux.HandleFunc("/scout/undervalued", MetricsMiddleware(s.scoutHandler.HandleUndervalued, "scout_undervalued"))
	mux.HandleFunc("/scout/overperforming", MetricsMiddleware(s.scoutHandler.HandleOverperforming, "scout_overperforming"))
	mux.HandleFunc("/scout/scarcity", MetricsMiddleware(s.scoutHandler.HandleScarcity, "scout_scarcity"))
}

// Handler builds the routed handler wrapped with CORS.
func (s *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	s.Register(ctx, mux)
	return s.Wrap(mux)
}

// Wrap applies the CORS policy to an arbitrary handler, so callers that
// assemble their own mux still get the same cross-origin behavior.
func (s *Server) Wrap(h http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept"},
	})
	return c.Handler(h)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates store sentinels into HTTP statuses: a missing
// snapshot is 503 (the service is up but has nothing to serve yet), an
// unknown team is 404, anything else is 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNoSnapshot):
		writeError(w, http.StatusServiceUnavailable, "no_snapshot", err)
	case errors.Is(err, repository.ErrUnknownTeam):
		writeError(w, http.StatusNotFound, "not_found", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
