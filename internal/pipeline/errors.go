package pipeline

import "errors"

var (
	// ErrPublishFailed indicates the trailer could not be moved into the item folder.
	ErrPublishFailed = errors.New("failed to publish trailer")
	// ErrDestinationMissing indicates the item folder does not exist.
	ErrDestinationMissing = errors.New("destination folder does not exist")
	// ErrNoCandidate indicates Acquire was called without a candidate.
	ErrNoCandidate = errors.New("no candidate to acquire")
)
