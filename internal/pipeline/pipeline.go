// Package pipeline drives one library item from a parsed name to a published
// trailer: metadata, search, fetch, codec normalization, publish.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/vmunix/teaser/internal/metadata"
	"github.com/vmunix/teaser/internal/naming"
	"github.com/vmunix/teaser/internal/policy"
	"github.com/vmunix/teaser/internal/search"
)

// Status is the terminal state of one item.
type Status int

const (
	// StatusPublished means a trailer was written; the item counts 1.
	StatusPublished Status = iota
	// StatusNoCandidate means the search returned nothing; the item counts 0.
	StatusNoCandidate
	// StatusFailed means a step failed or panicked; the item counts 0.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPublished:
		return "published"
	case StatusNoCandidate:
		return "no_candidate"
	default:
		return "failed"
	}
}

// Result is the outcome of Process for one item.
type Result struct {
	Item        naming.Item
	Status      Status
	Metadata    *metadata.WorkMetadata // nil when skipped or not found
	Query       search.Query
	Candidate   *search.Candidate
	Acquisition Acquisition
	Err         error
	Duration    time.Duration
}

// Count is the item's contribution to the run total.
func (r Result) Count() int {
	if r.Status == StatusPublished {
		return 1
	}
	return 0
}

// Pipeline processes library items one at a time.
type Pipeline struct {
	resolver Resolver
	searcher Searcher
	acquirer *Acquirer
	policy   *policy.Policy
	log      *slog.Logger
}

// New creates a pipeline.
func New(resolver Resolver, searcher Searcher, acquirer *Acquirer, pol *policy.Policy, log *slog.Logger) *Pipeline {
	return &Pipeline{
		resolver: resolver,
		searcher: searcher,
		acquirer: acquirer,
		policy:   pol,
		log:      log.With("component", "pipeline"),
	}
}

// Process runs item through every stage and always returns a Result. Errors
// and panics become StatusFailed; nothing is retried.
func (p *Pipeline) Process(ctx context.Context, item naming.Item) (res Result) {
	start := time.Now()
	res = Result{Item: item, Status: StatusFailed}
	log := p.log.With("item", item.Label(), "kind", item.Kind.String())

	defer func() {
		if r := recover(); r != nil {
			res.Status = StatusFailed
			res.Err = fmt.Errorf("panic: %v", r)
			log.Error("item panicked", "panic", r, "stack", string(debug.Stack()))
		}
		res.Duration = time.Since(start)
	}()

	if err := p.run(ctx, log, &res); err != nil {
		res.Status = StatusFailed
		res.Err = err
		log.Error("item failed", "error", err)
	}
	return res
}

func (p *Pipeline) run(ctx context.Context, log *slog.Logger, res *Result) error {
	item := res.Item

	meta, err := p.resolve(ctx, log, item)
	if err != nil {
		return err
	}
	res.Metadata = meta

	res.Query = search.BuildQuery(item, meta, p.policy)
	cand, err := p.searcher.FindCandidate(ctx, res.Query)
	if err != nil {
		return err
	}
	if cand == nil {
		res.Status = StatusNoCandidate
		log.Info("no trailer found, skipping", "query", res.Query.Text)
		return nil
	}
	res.Candidate = cand

	// The published name follows the searched title, original or primary.
	acq, err := p.acquirer.Acquire(ctx, cand, res.Query.Title, item.Year, item.FolderPath)
	if err != nil {
		return err
	}
	res.Acquisition = acq
	res.Status = StatusPublished
	return nil
}

// resolve returns nil metadata when the resolver is disabled or finds nothing.
func (p *Pipeline) resolve(ctx context.Context, log *slog.Logger, item naming.Item) (*metadata.WorkMetadata, error) {
	if p.resolver == nil || !p.resolver.Enabled() {
		log.Debug("metadata resolution skipped")
		return nil, nil
	}

	id, err := p.resolver.ResolveID(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("resolve id: %w", err)
	}
	if id == "" {
		log.Info("no metadata match")
		return nil, nil
	}

	meta, err := p.resolver.FetchMetadata(ctx, id, item.Kind)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata %s: %w", id, err)
	}
	if meta != nil {
		log.Info("metadata resolved", "id", id, "original_language", meta.OriginalLanguage, "original_title", meta.OriginalTitle)
	}
	return meta, nil
}
