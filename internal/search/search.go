// Package search builds trailer search queries and asks the video-search
// service for the single best candidate.
package search

//go:generate mockgen -source=search.go -destination=mocks/mock_search.go -package=mocks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vmunix/teaser/internal/youtube"
)

// VideoSearch is the video-search service.
type VideoSearch interface {
	Search(ctx context.Context, query string, opts youtube.SearchOptions) ([]youtube.Video, error)
}

// Candidate is the remote video picked for an item. It is used at most once.
type Candidate struct {
	VideoID string
	Title   string
	Channel string
}

// Searcher finds trailer candidates.
type Searcher struct {
	client VideoSearch
	log    *slog.Logger
}

// NewSearcher creates a new searcher.
func NewSearcher(client VideoSearch, log *slog.Logger) *Searcher {
	return &Searcher{
		client: client,
		log:    log.With("component", "search"),
	}
}

// FindCandidate asks for one short video matching q. No match returns
// nil, nil; only transport and API errors are returned as errors.
func (s *Searcher) FindCandidate(ctx context.Context, q Query) (*Candidate, error) {
	if q.Text == "" {
		return nil, ErrEmptyQuery
	}

	s.log.Debug("search started", "query", q.Text, "title_source", q.TitleSource.String(), "language", q.Language)

	videos, err := s.client.Search(ctx, q.Text, youtube.SearchOptions{MaxResults: 1, Duration: "short"})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", q.Text, err)
	}
	if len(videos) == 0 {
		s.log.Info("no video found", "query", q.Text)
		return nil, nil
	}

	v := videos[0]
	s.log.Info("candidate found", "video_id", v.ID, "video_title", v.Title, "channel", v.ChannelTitle)
	return &Candidate{VideoID: v.ID, Title: v.Title, Channel: v.ChannelTitle}, nil
}
