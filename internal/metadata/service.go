package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vmunix/teaser/internal/tmdb"
)

const (
	// Cache TTLs
	searchTTL  = 24 * time.Hour
	detailsTTL = 7 * 24 * time.Hour
)

// Cache key prefixes
const (
	keyPrefixSearch = "tmdb:search:"
	keyPrefixFind   = "tmdb:find:tvdb:"
	keyPrefixMovie  = "tmdb:movie:"
	keyPrefixTV     = "tmdb:tv:"
)

// CachedTMDB decorates a TMDB client with the SQLite cache.
// Searches are kept for a day, details for a week.
type CachedTMDB struct {
	client TMDB
	cache  *Cache
	log    *slog.Logger
}

var _ TMDB = (*CachedTMDB)(nil)

// NewCachedTMDB wraps client. A nil cache makes every call go to the client.
func NewCachedTMDB(client TMDB, cache *Cache, log *slog.Logger) *CachedTMDB {
	return &CachedTMDB{
		client: client,
		cache:  cache,
		log:    log.With("component", "tmdb-cache"),
	}
}

func (s *CachedTMDB) SearchMovie(ctx context.Context, query string, year int) ([]tmdb.SearchResult, error) {
	key := fmt.Sprintf("%smovie:%s:%d", keyPrefixSearch, strings.ToLower(query), year)
	return cached(ctx, s.cache, s.log, key, searchTTL, func() ([]tmdb.SearchResult, error) {
		return s.client.SearchMovie(ctx, query, year)
	})
}

func (s *CachedTMDB) SearchTV(ctx context.Context, query string, year int) ([]tmdb.SearchResult, error) {
	key := fmt.Sprintf("%stv:%s:%d", keyPrefixSearch, strings.ToLower(query), year)
	return cached(ctx, s.cache, s.log, key, searchTTL, func() ([]tmdb.SearchResult, error) {
		return s.client.SearchTV(ctx, query, year)
	})
}

func (s *CachedTMDB) FindByTVDB(ctx context.Context, tvdbID string) ([]tmdb.SearchResult, error) {
	return cached(ctx, s.cache, s.log, keyPrefixFind+tvdbID, searchTTL, func() ([]tmdb.SearchResult, error) {
		return s.client.FindByTVDB(ctx, tvdbID)
	})
}

func (s *CachedTMDB) GetMovie(ctx context.Context, tmdbID int64) (*tmdb.Movie, error) {
	return cached(ctx, s.cache, s.log, fmt.Sprintf("%s%d", keyPrefixMovie, tmdbID), detailsTTL, func() (*tmdb.Movie, error) {
		return s.client.GetMovie(ctx, tmdbID)
	})
}

func (s *CachedTMDB) GetTV(ctx context.Context, tmdbID int64) (*tmdb.TV, error) {
	return cached(ctx, s.cache, s.log, fmt.Sprintf("%s%d", keyPrefixTV, tmdbID), detailsTTL, func() (*tmdb.TV, error) {
		return s.client.GetTV(ctx, tmdbID)
	})
}
