package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/pennantlab/pennant/pkg/logger"
	"github.com/pennantlab/pennant/pkg/metrics"
)

const (
	defaultTimeout        = 30 * time.Second
	defaultRequestsPerMin = 30
)

// Loader reads snapshot documents from the local filesystem or an HTTP
// feed. HTTP fetches go through a token bucket so repeated polling stays
// polite toward the upstream.
type Loader struct {
	client  *http.Client
	limiter *rate.Limiter
	log     logger.Logger
}

// LoaderOption applies a configuration option to the Loader.
type LoaderOption func(*Loader)

// WithHTTPClient overrides the HTTP client used for URL fetches.
func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// WithRequestsPerMinute caps the HTTP fetch rate.
func WithRequestsPerMinute(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.limiter = rate.NewLimiter(rate.Limit(float64(n)/60.0), 1)
		}
	}
}

// WithLogger sets the loader's logger.
func WithLogger(log logger.Logger) LoaderOption {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLoader constructs a Loader with configuration options.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		client:  &http.Client{Timeout: defaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(float64(defaultRequestsPerMin)/60.0), 1),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// logger resolves the configured logger, falling back to the global one.
func (l *Loader) logger() logger.Logger {
	if l.log != nil {
		return l.log
	}
	return logger.Get()
}

// FromFile reads and decodes a snapshot document from disk.
func (l *Loader) FromFile(ctx context.Context, path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading snapshot file: %w", err)
	}
	return l.decode(ctx, data, path)
}

// FromURL fetches and decodes a snapshot document over HTTP, waiting on
// the rate limiter first.
func (l *Loader) FromURL(ctx context.Context, url string) (Document, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return Document{}, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Document{}, fmt.Errorf("building feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		metrics.RecordFeedFetchError()
		return Document{}, fmt.Errorf("fetching snapshot: %w", err)
	}
	defer resp.Body.Close()
	metrics.RecordFeedFetch()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordFeedFetchError()
		l.logger().Warn(ctx, "feed returned non-OK status",
			logger.String("url", url),
			logger.Int("status", resp.StatusCode))
		return Document{}, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return l.validate(ctx, doc, url)
}

func (l *Loader) decode(ctx context.Context, data []byte, source string) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return l.validate(ctx, doc, source)
}

func (l *Loader) validate(ctx context.Context, doc Document, source string) (Document, error) {
	if len(doc.Teams) == 0 {
		return Document{}, fmt.Errorf("%s: %w", source, ErrEmptyDocument)
	}
	l.logger().Info(ctx, "snapshot document loaded",
		logger.String("source", source),
		logger.Int("teams", len(doc.Teams)),
		logger.Int("free_agents", len(doc.Free)),
		logger.Int("games", len(doc.Games)))
	return doc, nil
}
