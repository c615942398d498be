package feed

import "errors"

// Sentinel kinds for feed errors.
var (
	ErrEmptyDocument = errors.New("snapshot document has no teams")
	ErrBadStatus     = errors.New("unexpected response status from feed")
)
