package hook

import "errors"

var (
	// ErrMissingTitle indicates an event without an item title.
	ErrMissingTitle = errors.New("event has no title")
	// ErrMissingPath indicates an event without an item folder.
	ErrMissingPath = errors.New("event has no path")
)
