// Package poller re-fetches the league feed on an interval so the served
// snapshot tracks the upstream source.
package poller

import (
	"time"

	"github.com/pennantlab/pennant/pkg/logger"
)

// Option applies a configuration option to the Poller.
type Option func(*Poller)

// WithInterval sets how often the feed is re-fetched.
func WithInterval(interval time.Duration) Option {
	return func(p *Poller) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

// WithMaxBackoff caps how far the wait stretches after consecutive
// refresh failures. Defaults to eight polling intervals.
func WithMaxBackoff(max time.Duration) Option {
	return func(p *Poller) {
		if max > 0 {
			p.maxBackoff = max
		}
	}
}

// WithLogger sets a custom logger for the poller.
func WithLogger(logger logger.Logger) Option {
	return func(p *Poller) {
		if logger != nil {
			p.logger = logger
		}
	}
}
