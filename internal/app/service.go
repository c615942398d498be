// Package service provides the core analysis service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pennantlab/pennant/internal/adapters/feed"
	repository "github.com/pennantlab/pennant/internal/adapters/repository"
	"github.com/pennantlab/pennant/internal/domain/category"
	"github.com/pennantlab/pennant/internal/domain/matchup"
	"github.com/pennantlab/pennant/internal/domain/roster"
	"github.com/pennantlab/pennant/internal/domain/schedule"
	"github.com/pennantlab/pennant/internal/domain/scout"
	"github.com/pennantlab/pennant/internal/domain/standings"
	"github.com/pennantlab/pennant/internal/domain/types"
	"github.com/pennantlab/pennant/pkg/logger"
	"github.com/pennantlab/pennant/pkg/metrics"
)

// weekPairing is one scheduled head-to-head for a scoring period.
type weekPairing struct {
	week   int
	homeID int
	awayID int
}

// Service implements the API dependencies for the analysis engine.
type Service struct {
	mu sync.RWMutex

	// Core components
	store  repository.Store
	loader *feed.Loader
	scorer *schedule.Scorer

	// Feed-supplied context alongside the snapshot
	freeAgents roster.Table
	starts     map[int]matchup.StartInfo
	games      []schedule.Game
	pairings   []weekPairing

	// Configuration
	snapshotPath     string
	feedURL          string
	feedRateLimit    int
	maxStarts        int
	acquisitionLimit int

	// State
	started   bool
	startedAt time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSnapshotPath sets a snapshot file to load on Start.
func WithSnapshotPath(path string) Option {
	return func(s *Service) {
		s.snapshotPath = path
	}
}

// WithFeedURL sets an HTTP feed to load on Start when no file is set.
func WithFeedURL(url string) Option {
	return func(s *Service) {
		s.feedURL = url
	}
}

// WithFeedRateLimit caps feed fetches per minute.
func WithFeedRateLimit(perMinute int) Option {
	return func(s *Service) {
		if perMinute > 0 {
			s.feedRateLimit = perMinute
		}
	}
}

// WithMaxStarts sets the weekly pitcher start cap.
func WithMaxStarts(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxStarts = n
		}
	}
}

// WithAcquisitionLimit caps acquisition recommendations per request.
func WithAcquisitionLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.acquisitionLimit = n
		}
	}
}

// WithStore overrides the snapshot store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithScorer overrides the schedule scorer.
func WithScorer(scorer *schedule.Scorer) Option {
	return func(s *Service) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxStarts:     matchup.DefaultMaxStarts,
		feedRateLimit: 30,
		logger:        nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components and loads the initial snapshot
// when one is configured.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting analysis service...")

	if s.store == nil {
		s.store = repository.NewMemStore()
	}
	if s.scorer == nil {
		s.scorer = schedule.NewScorer()
	}
	s.loader = feed.NewLoader(
		feed.WithRequestsPerMinute(s.feedRateLimit),
		feed.WithLogger(s.logger.Named("feed")),
	)

	s.started = true
	s.startedAt = time.Now()
	s.mu.Unlock()

	switch {
	case s.snapshotPath != "":
		doc, err := s.loader.FromFile(ctx, s.snapshotPath)
		if err != nil {
			return fmt.Errorf("loading initial snapshot: %w", err)
		}
		if _, err := s.Ingest(ctx, doc); err != nil {
			return fmt.Errorf("installing initial snapshot: %w", err)
		}
	case s.feedURL != "":
		doc, err := s.loader.FromURL(ctx, s.feedURL)
		if err != nil {
			return fmt.Errorf("fetching initial snapshot: %w", err)
		}
		if _, err := s.Ingest(ctx, doc); err != nil {
			return fmt.Errorf("installing initial snapshot: %w", err)
		}
	}

	s.logger.Info(ctx, "analysis service started",
		logger.Int("maxStarts", s.maxStarts),
	)
	return nil
}

// Refresh re-fetches the configured feed URL and installs the result as the
// current snapshot. It is a no-op error when no feed URL is configured.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	loader, url := s.loader, s.feedURL
	s.mu.Unlock()

	if loader == nil || url == "" {
		return errors.New("no feed url configured")
	}
	doc, err := loader.FromURL(ctx, url)
	if err != nil {
		return fmt.Errorf("refreshing snapshot: %w", err)
	}
	if _, err := s.Ingest(ctx, doc); err != nil {
		return fmt.Errorf("installing refreshed snapshot: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "analysis service stopped")
}

// Ingest analyzes a snapshot document and installs it as the current
// league view, along with the feed-supplied free agents, probable starts
// and game slate.
func (s *Service) Ingest(ctx context.Context, doc feed.Document) (types.SnapshotReceipt, error) {
	start := time.Now()

	snapshot := doc.Snapshot()
	view, err := s.store.Replace(ctx, snapshot)
	if err != nil {
		return types.SnapshotReceipt{}, fmt.Errorf("replacing snapshot: %w", err)
	}

	pairings := make([]weekPairing, 0, len(doc.Weeks))
	for _, w := range doc.Weeks {
		pairings = append(pairings, weekPairing{week: w.Week, homeID: w.HomeID, awayID: w.AwayID})
	}

	s.mu.Lock()
	s.freeAgents = roster.Flatten(doc.FreeAgents())
	s.starts = doc.ProbableStarts()
	s.games = doc.ScheduleGames()
	s.pairings = pairings
	s.mu.Unlock()

	metrics.RecordAnalysisDuration("ingest", float64(time.Since(start).Milliseconds()))
	s.logger.Info(ctx, "league snapshot installed",
		logger.String("version", view.Snapshot.Version),
		logger.Int("teams", len(view.Snapshot.Teams)),
		logger.Int("freeAgents", len(doc.Free)),
	)

	return types.SnapshotReceipt{
		Version:   view.Snapshot.Version,
		Taken:     view.Snapshot.Taken,
		TeamCount: len(view.Snapshot.Teams),
	}, nil
}

// Standings returns the league standings from the current snapshot.
func (s *Service) Standings(ctx context.Context) ([]standings.Row, error) {
	view, err := s.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	return standings.Table(view.Snapshot.Teams), nil
}

// DivisionStandings returns standings grouped by division.
func (s *Service) DivisionStandings(ctx context.Context) (map[string][]standings.Row, error) {
	view, err := s.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	return standings.ByDivision(view.Snapshot.Teams), nil
}

// CompareTeams summarizes the records of two teams matched by name.
func (s *Service) CompareTeams(ctx context.Context, name1, name2 string) (standings.Comparison, error) {
	view, err := s.store.Current(ctx)
	if err != nil {
		return standings.Comparison{}, err
	}
	return standings.Compare(view.Snapshot.Teams, name1, name2), nil
}

// TeamCategories runs the category strength analysis for one team.
func (s *Service) TeamCategories(ctx context.Context, teamID int) (category.TeamAnalysis, error) {
	view, err := s.store.Current(ctx)
	if err != nil {
		return category.TeamAnalysis{}, err
	}
	if _, ok := view.Snapshot.Team(teamID); !ok {
		return category.TeamAnalysis{}, repository.ErrUnknownTeam
	}

	start := time.Now()
	analysis := view.Analyzer.AnalyzeTeam(teamID)
	metrics.RecordAnalysisDuration("categories", float64(time.Since(start).Milliseconds()))
	metrics.IncrementAnalyses("categories")
	return analysis, nil
}

// TeamImprovements recommends category fixes for one team.
func (s *Service) TeamImprovements(ctx context.Context, teamID int) (category.ImprovementPlan, error) {
	view, err := s.store.Current(ctx)
	if err != nil {
		return category.ImprovementPlan{}, err
	}
	if _, ok := view.Snapshot.Team(teamID); !ok {
		return category.ImprovementPlan{}, repository.ErrUnknownTeam
	}

	s.mu.RLock()
	free := s.freeAgents
	s.mu.RUnlock()

	start := time.Now()
	plan := view.Analyzer.RecommendImprovements(teamID, free)
	metrics.RecordAnalysisDuration("improvements", float64(time.Since(start).Milliseconds()))
	metrics.IncrementAnalyses("improvements")
	return plan, nil
}

// TeamTradeTargets scans the rest of the league for players strong in the
// team's weak categories.
func (s *Service) TeamTradeTargets(ctx context.Context, teamID int) (category.TradePlan, error) {
	view, err := s.store.Current(ctx)
	if err != nil {
		return category.TradePlan{}, err
	}
	if _, ok := view.Snapshot.Team(teamID); !ok {
		return category.TradePlan{}, repository.ErrUnknownTeam
	}

	start := time.Now()
	plan := view.Analyzer.IdentifyTradeTargets(teamID)
	metrics.RecordAnalysisDuration("trade_targets", float64(time.Since(start).Milliseconds()))
	metrics.IncrementAnalyses("trade_targets")
	return plan, nil
}

// WeekMatchups analyzes every scheduled pairing for one scoring period.
func (s *Service) WeekMatchups(ctx context.Context, week int) ([]matchup.WeekReport, error) {
	view, err := s.store.Current(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	pairings := s.weekPairings(view, week)
	s.mu.RUnlock()

	start := time.Now()
	reports := make([]matchup.WeekReport, 0, len(pairings))
	for _, p := range pairings {
		home, okH := view.Snapshot.Team(p.homeID)
		away, okA := view.Snapshot.Team(p.awayID)
		if !okH || !okA {
			continue
		}
		homeTable, _ := view.Analyzer.Table(p.homeID)
		awayTable, _ := view.Analyzer.Table(p.awayID)
		analyzer := matchup.NewAnalyzer(homeTable,
			matchup.WithOpponent(awayTable),
			matchup.WithAllPlayers(view.Analyzer.LeagueTable()),
		)
		reports = append(reports, matchup.WeekReport{
			Week:      p.week,
			HomeTeam:  home.Name,
			AwayTeam:  away.Name,
			Positions: analyzer.AnalyzePositionMatchups(),
		})
	}
	metrics.RecordAnalysisDuration("matchups", float64(time.Since(start).Milliseconds()))
	metrics.IncrementAnalyses("matchups")
	return reports, nil
}

// weekPairings resolves a week's head-to-heads, preferring the feed's
// explicit pairings and falling back to the teams' own schedule entries.
// Callers hold s.mu.
func (s *Service) weekPairings(view repository.View, week int) []weekPairing {
	var out []weekPairing
	for _, p := range s.pairings {
		if p.week == week {
			out = append(out, p)
		}
	}
	if len(out) > 0 {
		return out
	}

	seen := make(map[int]bool)
	for _, team := range view.Snapshot.Teams {
		if seen[team.ID] {
			continue
		}
		for _, sched := range team.Schedule {
			if sched.Week != week || seen[sched.OpponentID] {
				continue
			}
			out = append(out, weekPairing{week: week, homeID: team.ID, awayID: sched.OpponentID})
			seen[team.ID] = true
			seen[sched.OpponentID] = true
			break
		}
	}
	return out
}

// PitchingPlan optimizes one team's pitcher starts against the weekly cap.
// A non-positive maxStarts falls back to the configured default.
func (s *Service) PitchingPlan(ctx context.Context, teamID, maxStarts int) (matchup.PitchingPlan, error) {
	view, err := s.store.Current(ctx)
	if err != nil {
		return matchup.PitchingPlan{}, err
	}
	if _, ok := view.Snapshot.Team(teamID); !ok {
		return matchup.PitchingPlan{}, repository.ErrUnknownTeam
	}
	if maxStarts <= 0 {
		maxStarts = s.maxStarts
	}

	s.mu.RLock()
	starts := s.starts
	s.mu.RUnlock()

	table, _ := view.Analyzer.Table(teamID)
	analyzer := matchup.NewAnalyzer(table,
		matchup.WithProbableStarts(starts),
		matchup.WithRatings(s.scorer),
	)

	start := time.Now()
	plan := analyzer.OptimizePitcherStarts(maxStarts)
	metrics.RecordAnalysisDuration("pitching_plan", float64(time.Since(start).Milliseconds()))
	metrics.IncrementAnalyses("pitching_plan")
	return plan, nil
}

// Acquisitions recommends free agent pickups for one team's weak positions.
func (s *Service) Acquisitions(ctx context.Context, teamID, limit int) (matchup.AcquisitionPlan, error) {
	view, err := s.store.Current(ctx)
	if err != nil {
		return matchup.AcquisitionPlan{}, err
	}
	if _, ok := view.Snapshot.Team(teamID); !ok {
		return matchup.AcquisitionPlan{}, repository.ErrUnknownTeam
	}
	if limit <= 0 {
		limit = s.acquisitionLimit
	}

	s.mu.RLock()
	free := s.freeAgents
	s.mu.RUnlock()

	table, _ := view.Analyzer.Table(teamID)
	analyzer := matchup.NewAnalyzer(table,
		matchup.WithAllPlayers(view.Analyzer.LeagueTable()),
		matchup.WithFreeAgents(free),
	)

	start := time.Now()
	plan := analyzer.RecommendAcquisitions(limit)
	metrics.RecordAnalysisDuration("acquisitions", float64(time.Since(start).Milliseconds()))
	metrics.IncrementAnalyses("acquisitions")
	return plan, nil
}

// Streaming scans the upcoming slate for favorable streaming matchups.
// Kind selects the pitching or hitting scan; days caps how far ahead the
// slate reaches.
func (s *Service) Streaming(ctx context.Context, days int, kind string) (map[string][]schedule.Opportunity, error) {
	if _, err := s.store.Current(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	games := gamesWithin(s.games, days)
	s.mu.RUnlock()

	start := time.Now()
	var opps map[string][]schedule.Opportunity
	if kind == "hitting" {
		opps = s.scorer.HitterStreamingOpportunities(games)
	} else {
		opps = s.scorer.PitcherStreamingOpportunities(games)
	}
	metrics.RecordAnalysisDuration("streaming", float64(time.Since(start).Milliseconds()))
	metrics.IncrementAnalyses("streaming")
	return opps, nil
}

// TeamSchedule analyzes the upcoming slate for one MLB team.
func (s *Service) TeamSchedule(ctx context.Context, team string, days int) (schedule.Outlook, error) {
	if _, err := s.store.Current(ctx); err != nil {
		return schedule.Outlook{}, err
	}

	s.mu.RLock()
	games := gamesWithin(s.games, days)
	s.mu.RUnlock()

	start := time.Now()
	outlook := s.scorer.AnalyzeTeamSchedule(team, games)
	metrics.RecordAnalysisDuration("schedule", float64(time.Since(start).Milliseconds()))
	metrics.IncrementAnalyses("schedule")
	return outlook, nil
}

// gamesWithin filters the slate to games dated within days of today.
// A non-positive window passes the whole slate through.
func gamesWithin(games []schedule.Game, days int) []schedule.Game {
	if days <= 0 {
		return games
	}
	today := time.Now().Truncate(24 * time.Hour)
	cutoff := today.AddDate(0, 0, days)
	out := make([]schedule.Game, 0, len(games))
	for _, g := range games {
		date, err := time.Parse("2006-01-02", g.Date)
		if err != nil {
			continue
		}
		if date.Before(today) || !date.Before(cutoff) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// ScoutDeltas scans the rostered pool for players diverging from their
// projections. Kind is "undervalued" or "overperforming".
func (s *Service) ScoutDeltas(ctx context.Context, kind, actualStat, projectedStat string, threshold float64) (scout.DeltaReport, error) {
	view, err := s.store.Current(ctx)
	if err != nil {
		return scout.DeltaReport{}, err
	}

	pool := view.Analyzer.LeagueTable()
	start := time.Now()
	var report scout.DeltaReport
	if kind == "overperforming" {
		report = scout.Overperforming(pool, actualStat, projectedStat, threshold)
	} else {
		report = scout.Undervalued(pool, actualStat, projectedStat, threshold)
	}
	metrics.RecordAnalysisDuration("scout_deltas", float64(time.Since(start).Milliseconds()))
	metrics.IncrementAnalyses("scout_deltas")
	return report, nil
}

// ScoutScarcity analyzes position scarcity across the rostered pool.
func (s *Service) ScoutScarcity(ctx context.Context) (scout.ScarcityReport, error) {
	view, err := s.store.Current(ctx)
	if err != nil {
		return scout.ScarcityReport{}, err
	}

	start := time.Now()
	report := scout.PositionScarcity(view.Analyzer.LeagueTable())
	metrics.RecordAnalysisDuration("scout_scarcity", float64(time.Since(start).Milliseconds()))
	metrics.IncrementAnalyses("scout_scarcity")
	return report, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) types.ServiceStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := types.ServiceStats{
		Started:        s.started,
		FreeAgentCount: len(s.freeAgents),
		GameCount:      len(s.games),
	}
	if s.started {
		stats.UptimeSeconds = time.Since(s.startedAt).Seconds()
	}

	if view, err := s.store.Current(ctx); err == nil {
		stats.SnapshotVersion = view.Snapshot.Version
		stats.SnapshotTaken = view.Snapshot.Taken
		stats.SnapshotLoaded = view.LoadedAt
		stats.TeamCount = len(view.Snapshot.Teams)
		metrics.UpdateSnapshotTeams(len(view.Snapshot.Teams))
	}

	return stats
}
