package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/vmunix/teaser/internal/config"
	"github.com/vmunix/teaser/internal/naming"
	"github.com/vmunix/teaser/internal/tmdb"
)

// Resolver turns library items into TMDB ids and work metadata.
type Resolver struct {
	client  TMDB
	enabled bool
	log     *slog.Logger
}

// NewResolver creates a resolver. With an empty or placeholder apiKey, or a
// nil client, the resolver is disabled and never touches the network.
func NewResolver(client TMDB, apiKey string, log *slog.Logger) *Resolver {
	return &Resolver{
		client:  client,
		enabled: client != nil && config.KeySet(apiKey),
		log:     log.With("component", "metadata"),
	}
}

// Enabled reports whether metadata lookups are performed.
func (r *Resolver) Enabled() bool {
	return r.enabled
}

// ResolveID returns the TMDB id for item, or "" when disabled or nothing
// matched. An id already on the item is returned as is. Series carrying a
// TVDB id are looked up by that id before falling back to a title search.
// The service's first result is trusted; a weak title or year match is only
// logged.
func (r *Resolver) ResolveID(ctx context.Context, item naming.Item) (string, error) {
	if !r.enabled {
		return "", nil
	}
	if item.ExternalWorkID != "" {
		return item.ExternalWorkID, nil
	}

	log := r.log.With("title", item.Title, "year", item.Year, "kind", item.Kind.String())

	if item.Kind == naming.Series && item.ExternalSeriesID != "" {
		results, err := r.client.FindByTVDB(ctx, item.ExternalSeriesID)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", item.Label(), err)
		}
		if len(results) > 0 {
			id := strconv.FormatInt(results[0].ID, 10)
			log.Debug("resolved by tvdb id", "tvdb_id", item.ExternalSeriesID, "tmdb_id", id)
			return id, nil
		}
		log.Debug("tvdb id not known to TMDB, searching by title", "tvdb_id", item.ExternalSeriesID)
	}

	var (
		results []tmdb.SearchResult
		err     error
	)
	if item.IsMovie() {
		results, err = r.client.SearchMovie(ctx, item.Title, item.Year)
	} else {
		results, err = r.client.SearchTV(ctx, item.Title, item.Year)
	}
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", item.Label(), err)
	}
	if len(results) == 0 {
		log.Info("no metadata match")
		return "", nil
	}

	top := results[0]
	id := strconv.FormatInt(top.ID, 10)
	m := compareMatch(item.Title, item.Year, top.DisplayTitle(), top.Year())
	if m.Weak() {
		log.Warn("weak metadata match, using top result anyway",
			"tmdb_id", id,
			"found_title", top.DisplayTitle(),
			"found_year", top.Year(),
			"score", fmt.Sprintf("%.2f", m.Score),
			"confidence", m.Confidence.String(),
		)
	} else {
		log.Debug("resolved", "tmdb_id", id, "confidence", m.Confidence.String())
	}
	return id, nil
}

// FetchMetadata returns the original title and language of a work, or nil
// when id is empty or the resolver is disabled.
func (r *Resolver) FetchMetadata(ctx context.Context, id string, kind naming.MediaKind) (*WorkMetadata, error) {
	if !r.enabled || id == "" {
		return nil, nil
	}

	tmdbID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || tmdbID <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWorkID, id)
	}

	meta := &WorkMetadata{ExternalWorkID: id}
	if kind == naming.Movie {
		movie, err := r.client.GetMovie(ctx, tmdbID)
		if err != nil {
			return nil, fmt.Errorf("fetch metadata: %w", err)
		}
		meta.OriginalTitle = movie.OriginalTitle
		meta.OriginalLanguage = movie.OriginalLanguage
	} else {
		tv, err := r.client.GetTV(ctx, tmdbID)
		if err != nil {
			return nil, fmt.Errorf("fetch metadata: %w", err)
		}
		meta.OriginalTitle = tv.OriginalName
		meta.OriginalLanguage = tv.OriginalLanguage
	}

	r.log.Debug("metadata fetched",
		"tmdb_id", id,
		"original_title", meta.OriginalTitle,
		"original_language", meta.OriginalLanguage,
	)
	return meta, nil
}
