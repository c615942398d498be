// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SnapshotPath points at a league snapshot JSON file loaded on startup.
	SnapshotPath string `koanf:"snapshot_path"`

	// FeedURL is an HTTP source for the league snapshot, used when no
	// snapshot file is configured.
	FeedURL string `koanf:"feed_url"`

	// FeedRateLimit caps feed fetches per minute.
	FeedRateLimit int `koanf:"feed_rate_limit"`

	// MaxStarts is the weekly pitcher start cap.
	MaxStarts int `koanf:"max_starts"`

	// AcquisitionLimit caps acquisition recommendations per request.
	AcquisitionLimit int `koanf:"acquisition_limit"`

	// StreamingDays bounds how far ahead streaming scans look by default.
	StreamingDays int `koanf:"streaming_days"`

	// RefreshInterval re-fetches the feed every N minutes; zero disables
	// polling.
	RefreshInterval int `koanf:"refresh_interval"`

	// CORSOrigins lists allowed CORS origins for the HTTP API.
	CORSOrigins []string `koanf:"cors_origins"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		FeedRateLimit:    30,
		MaxStarts:        12,
		AcquisitionLimit: 25,
		StreamingDays:    7,
		CORSOrigins:      []string{"*"},
	}
}
