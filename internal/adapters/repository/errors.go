package repository

import "errors"

// Sentinel kinds for snapshot store errors.
var (
	ErrNoSnapshot  = errors.New("no league snapshot loaded")
	ErrUnknownTeam = errors.New("team not found in snapshot")
	ErrEmptyLeague = errors.New("snapshot has no teams")
)
