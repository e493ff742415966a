package library

import "errors"

var (
	// ErrRootNotFound indicates the library root does not exist or is not a directory.
	ErrRootNotFound = errors.New("library root not found")
	// ErrLocked indicates another run holds the library lock.
	ErrLocked = errors.New("library is locked by another run")
)
