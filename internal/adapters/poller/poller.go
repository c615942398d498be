// Package poller re-fetches the league feed on an interval so the served
// snapshot tracks the upstream source.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/pennantlab/pennant/pkg/logger"
	"github.com/pennantlab/pennant/pkg/metrics"
)

// Default polling configuration constants.
const (
	defaultInterval = 15 * time.Minute
	stopTimeout     = 5 * time.Second
	// defaultBackoffCap bounds the failure backoff as a multiple of the
	// polling interval.
	defaultBackoffCap = 8
)

// Refresher re-fetches and installs the current snapshot.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Poller drives a Refresher on an interval, stretching the wait after
// consecutive failures so a down feed is not hammered.
type Poller struct {
	refresher  Refresher
	interval   time.Duration
	maxBackoff time.Duration
	logger     logger.Logger

	// Shutdown control
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// New creates a poller with configuration options.
func New(refresher Refresher, opts ...Option) *Poller {
	p := &Poller{
		refresher: refresher,
		interval:  defaultInterval,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}

	// Apply all options
	for _, opt := range opts {
		opt(p)
	}
	if p.maxBackoff <= 0 {
		p.maxBackoff = defaultBackoffCap * p.interval
	}
	return p
}

// Start launches the polling loop. It returns immediately; the loop runs
// until ctx is canceled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	go p.run(ctx)
}

// Stop halts the polling loop and waits for it to exit.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
	select {
	case <-p.done:
	case <-time.After(stopTimeout):
	}
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	wait := p.interval
	timer := time.NewTimer(wait)
	defer timer.Stop()

	p.log().Info(ctx, "feed poller started", logger.String("interval", p.interval.String()))
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stop:
			return
		case <-timer.C:
			if err := p.refresher.Refresh(ctx); err != nil {
				wait = min(wait*2, p.maxBackoff)
				p.log().Warn(ctx, "feed refresh failed",
					logger.Error(err),
					logger.String("next_attempt", wait.String()))
				metrics.RecordErrorByComponent("poller", "refresh_failed")
			} else {
				wait = p.interval
			}
			timer.Reset(wait)
		}
	}
}

func (p *Poller) log() logger.Logger {
	if p.logger != nil {
		return p.logger
	}
	return logger.Get()
}
