package metadata

import "errors"

// ErrInvalidWorkID indicates a TMDB id that is not a positive integer.
var ErrInvalidWorkID = errors.New("invalid TMDB id")
