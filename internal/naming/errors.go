package naming

import "errors"

var (
	// ErrNoMatch indicates a folder name does not follow the "<title> (<year>)" convention.
	ErrNoMatch = errors.New("folder name does not match <title> (<year>)")

	// ErrInvalidYear indicates the year group is outside the four-digit range.
	ErrInvalidYear = errors.New("invalid year")
)
