// Package types contains common types used across the application
package types

import "time"

// ServiceStats summarizes the running service for monitoring endpoints.
type ServiceStats struct {
	Started         bool      `json:"started"`
	SnapshotVersion string    `json:"snapshot_version,omitempty"`
	SnapshotTaken   time.Time `json:"snapshot_taken,omitempty"`
	SnapshotLoaded  time.Time `json:"snapshot_loaded,omitempty"`
	TeamCount       int       `json:"team_count"`
	FreeAgentCount  int       `json:"free_agent_count"`
	GameCount       int       `json:"game_count"`
	UptimeSeconds   float64   `json:"uptime_seconds"`
}

// SnapshotReceipt acknowledges an ingested league snapshot.
type SnapshotReceipt struct {
	Version   string    `json:"version"`
	Taken     time.Time `json:"taken"`
	TeamCount int       `json:"team_count"`
}
