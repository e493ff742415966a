package pipeline

//go:generate mockgen -source=deps.go -destination=mocks/mock_deps.go -package=mocks

import (
	"context"

	"github.com/vmunix/teaser/internal/media"
	"github.com/vmunix/teaser/internal/metadata"
	"github.com/vmunix/teaser/internal/naming"
	"github.com/vmunix/teaser/internal/policy"
	"github.com/vmunix/teaser/internal/search"
)

// Fetcher downloads a video to an output template and returns the file path.
type Fetcher interface {
	Fetch(ctx context.Context, videoID, template string) (string, error)
}

// Prober reports the codec of the first stream of a kind.
type Prober interface {
	Codec(ctx context.Context, path string, kind policy.StreamKind) (string, error)
}

// Transcoder rewrites a file following a re-encode plan.
type Transcoder interface {
	Transcode(ctx context.Context, job media.Job) error
}

// Resolver resolves external work ids and original-language metadata.
type Resolver interface {
	Enabled() bool
	ResolveID(ctx context.Context, item naming.Item) (string, error)
	FetchMetadata(ctx context.Context, id string, kind naming.MediaKind) (*metadata.WorkMetadata, error)
}

// Searcher picks the trailer candidate for a query.
type Searcher interface {
	FindCandidate(ctx context.Context, q search.Query) (*search.Candidate, error)
}
