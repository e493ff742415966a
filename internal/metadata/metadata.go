// Package metadata resolves library items to TMDB ids and fetches the
// original title and language used to pick search keywords.
package metadata

//go:generate mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks

import (
	"context"

	"github.com/vmunix/teaser/internal/tmdb"
)

// TMDB is the subset of the TMDB API the resolver needs.
type TMDB interface {
	SearchMovie(ctx context.Context, query string, year int) ([]tmdb.SearchResult, error)
	SearchTV(ctx context.Context, query string, year int) ([]tmdb.SearchResult, error)
	FindByTVDB(ctx context.Context, tvdbID string) ([]tmdb.SearchResult, error)
	GetMovie(ctx context.Context, tmdbID int64) (*tmdb.Movie, error)
	GetTV(ctx context.Context, tmdbID int64) (*tmdb.TV, error)
}

// WorkMetadata describes a resolved work.
type WorkMetadata struct {
	ExternalWorkID   string
	OriginalTitle    string
	OriginalLanguage string // ISO 639-1
}
