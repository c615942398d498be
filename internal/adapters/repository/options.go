package repository

import (
	"time"

	"github.com/pennantlab/pennant/internal/domain/category"
)

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithClock overrides the time source used to stamp installed views.
func WithClock(now func() time.Time) Option {
	return func(s *MemStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithAnalyzerOptions forwards options to the analyzer built for each
// installed snapshot.
func WithAnalyzerOptions(opts ...category.Option) Option {
	return func(s *MemStore) {
		s.analyzerOpts = opts
	}
}
