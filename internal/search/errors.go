package search

import "errors"

// ErrEmptyQuery indicates a query with no text to search for.
var ErrEmptyQuery = errors.New("empty search query")
