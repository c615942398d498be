package repository

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pennantlab/pennant/internal/domain/category"
	"github.com/pennantlab/pennant/internal/domain/model"
	"github.com/pennantlab/pennant/pkg/metrics"
)

// MemStore is an in-memory Store implementation. The whole analyzed view
// is rebuilt on Replace and swapped through one atomic pointer, so reads
// never block behind an analysis rebuild.
type MemStore struct {
	view         atomic.Pointer[View]
	now          func() time.Time
	analyzerOpts []category.Option
}

// NewMemStore constructs an empty store with configuration options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Replace implements Store.Replace. The analyzer is built outside any
// shared state, then installed in one pointer swap.
func (s *MemStore) Replace(ctx context.Context, snapshot model.LeagueSnapshot) (View, error) {
	if len(snapshot.Teams) == 0 {
		metrics.RecordErrorByComponent("repository", "empty_league")
		return View{}, ErrEmptyLeague
	}

	start := time.Now()
	v := View{
		Snapshot: snapshot,
		Analyzer: category.NewAnalyzer(snapshot, s.analyzerOpts...),
		LoadedAt: s.now(),
	}
	s.view.Store(&v)

	ms := float64(time.Since(start).Milliseconds())
	metrics.RecordSnapshotBuildDuration(ms)
	metrics.IncrementSnapshotLoads()
	metrics.UpdateSnapshotTeams(len(snapshot.Teams))
	metrics.UpdateSnapshotLastUnix(float64(v.LoadedAt.Unix()))
	return v, nil
}

// Current implements Store.Current.
func (s *MemStore) Current(ctx context.Context) (View, error) {
	v := s.view.Load()
	if v == nil {
		metrics.RecordErrorByComponent("repository", "no_snapshot")
		return View{}, ErrNoSnapshot
	}
	return *v, nil
}

// Team implements Store.Team.
func (s *MemStore) Team(ctx context.Context, teamID int) (model.Team, error) {
	v, err := s.Current(ctx)
	if err != nil {
		return model.Team{}, err
	}
	team, ok := v.Snapshot.Team(teamID)
	if !ok {
		metrics.RecordErrorByComponent("repository", "unknown_team")
		return model.Team{}, ErrUnknownTeam
	}
	return team, nil
}

// Count returns the number of teams in the current view.
func (s *MemStore) Count(ctx context.Context) int {
	v := s.view.Load()
	if v == nil {
		return 0
	}
	return len(v.Snapshot.Teams)
}
