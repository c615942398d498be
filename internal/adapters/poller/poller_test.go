package poller_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pennantlab/pennant/internal/adapters/poller"
	"github.com/pennantlab/pennant/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

type countingRefresher struct {
	calls atomic.Int64
	err   error
}

func (c *countingRefresher) Refresh(ctx context.Context) error {
	c.calls.Add(1)
	return c.err
}

func TestPoller(t *testing.T) {
	Convey("Given a poller with a short interval", t, func() {
		refresher := &countingRefresher{}
		p := poller.New(refresher, poller.WithInterval(10*time.Millisecond))

		Convey("When started", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			p.Start(ctx)

			Convey("Then it should invoke the refresher repeatedly", func() {
				time.Sleep(60 * time.Millisecond)
				p.Stop()
				So(refresher.calls.Load(), ShouldBeGreaterThan, 1)
			})
		})

		Convey("When the refresher keeps failing", func() {
			refresher.err = errors.New("feed unavailable")
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			p.Start(ctx)

			Convey("Then the loop should keep running", func() {
				time.Sleep(60 * time.Millisecond)
				p.Stop()
				So(refresher.calls.Load(), ShouldBeGreaterThan, 1)
			})
		})

		Convey("When the context is canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			p.Start(ctx)
			cancel()

			Convey("Then Stop should return promptly", func() {
				done := make(chan struct{})
				go func() {
					p.Stop()
					close(done)
				}()
				select {
				case <-done:
					So(true, ShouldBeTrue)
				case <-time.After(time.Second):
					So("stop timed out", ShouldBeEmpty)
				}
			})
		})
	})
}

type recordingRefresher struct {
	mu        sync.Mutex
	times     []time.Time
	failFirst int
	calls     int
}

func (r *recordingRefresher) Refresh(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.times = append(r.times, time.Now())
	r.calls++
	if r.calls <= r.failFirst {
		return errors.New("feed unavailable")
	}
	return nil
}

func (r *recordingRefresher) gaps() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []time.Duration
	for i := 1; i < len(r.times); i++ {
		out = append(out, r.times[i].Sub(r.times[i-1]))
	}
	return out
}

func TestPollerBackoff(t *testing.T) {
	Convey("Given a refresher whose first attempts fail", t, func() {
		refresher := &recordingRefresher{failFirst: 2}
		p := poller.New(refresher, poller.WithInterval(20*time.Millisecond))
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		Convey("When the poller runs through failures into success", func() {
			p.Start(ctx)
			time.Sleep(200 * time.Millisecond)
			p.Stop()
			gaps := refresher.gaps()

			Convey("Then the wait stretches on failure and resets on success", func() {
				So(len(gaps), ShouldBeGreaterThanOrEqualTo, 3)
				So(gaps[1], ShouldBeGreaterThan, gaps[0])
				So(gaps[2], ShouldBeLessThan, gaps[1])
			})
		})
	})

	Convey("Given a refresher that never recovers", t, func() {
		refresher := &recordingRefresher{failFirst: 1 << 30}
		p := poller.New(refresher,
			poller.WithInterval(20*time.Millisecond),
			poller.WithMaxBackoff(30*time.Millisecond))
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		Convey("When the backoff is capped", func() {
			p.Start(ctx)
			time.Sleep(200 * time.Millisecond)
			p.Stop()

			Convey("Then polling keeps a steady pace instead of stalling", func() {
				So(refresher.calls, ShouldBeGreaterThanOrEqualTo, 4)
			})
		})
	})
}

func TestPollerOptions(t *testing.T) {
	Convey("Given poller options", t, func() {
		refresher := &countingRefresher{}

		Convey("When the interval is non-positive", func() {
			p := poller.New(refresher, poller.WithInterval(0))

			Convey("Then construction should still succeed", func() {
				So(p, ShouldNotBeNil)
			})
		})
	})
}
