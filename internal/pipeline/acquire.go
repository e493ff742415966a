package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vmunix/teaser/internal/fetch"
	"github.com/vmunix/teaser/internal/media"
	"github.com/vmunix/teaser/internal/naming"
	"github.com/vmunix/teaser/internal/policy"
	"github.com/vmunix/teaser/internal/search"
)

// Outcome is the normalization branch taken for an acquired file.
type Outcome int

const (
	// OutcomeCopy means every stream already matched policy; the file was published as fetched.
	OutcomeCopy Outcome = iota
	// OutcomeReencoded means the transcoded file was published.
	OutcomeReencoded
	// OutcomeReencodeFallback means transcoding failed and the fetched file was published.
	OutcomeReencodeFallback
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReencoded:
		return "reencoded"
	case OutcomeReencodeFallback:
		return "reencode_fallback"
	default:
		return "copy"
	}
}

// reencodedExt is the container used for transcoded output.
const reencodedExt = ".mp4"

// Acquisition is the result of a successful Acquire.
type Acquisition struct {
	Path    string
	Outcome Outcome
	Move    MoveMethod
	Plan    policy.Plan
}

// Acquirer fetches a candidate into scratch storage, normalizes its codecs
// and publishes it next to the library item.
type Acquirer struct {
	fetcher     Fetcher
	prober      Prober
	transcoder  Transcoder
	policy      *policy.Policy
	scratchRoot string
	log         *slog.Logger
}

// NewAcquirer creates an acquirer. An empty scratchRoot means the OS temp dir.
func NewAcquirer(fetcher Fetcher, prober Prober, transcoder Transcoder, pol *policy.Policy, scratchRoot string, log *slog.Logger) *Acquirer {
	return &Acquirer{
		fetcher:     fetcher,
		prober:      prober,
		transcoder:  transcoder,
		policy:      pol,
		scratchRoot: scratchRoot,
		log:         log.With("component", "acquire"),
	}
}

// Acquire runs fetch, probe, decide, transcode and publish for one candidate.
// The scratch directory it creates is removed before it returns.
func (a *Acquirer) Acquire(ctx context.Context, cand *search.Candidate, title string, year int, destDir string) (Acquisition, error) {
	if cand == nil || cand.VideoID == "" {
		return Acquisition{}, ErrNoCandidate
	}

	scratch, err := os.MkdirTemp(a.scratchRoot, "teaser-*")
	if err != nil {
		return Acquisition{}, fmt.Errorf("create scratch dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			a.log.Warn("scratch cleanup failed", "dir", scratch, "error", err)
		}
	}()
	a.log.Debug("scratch dir created", "dir", scratch)

	base := naming.TrailerBaseName(title, year)
	fetched, err := a.fetcher.Fetch(ctx, cand.VideoID, fetch.Template(scratch, base))
	if err != nil {
		return Acquisition{}, fmt.Errorf("fetch %s: %w", cand.VideoID, err)
	}

	plan := a.policy.Decide(a.codec(ctx, fetched, policy.Video), a.codec(ctx, fetched, policy.Audio))
	acq := Acquisition{Outcome: OutcomeCopy, Plan: plan}
	final := fetched

	if plan.NeedsReencode() {
		out := filepath.Join(scratch, base+"-reencoded"+reencodedExt)
		err := a.transcoder.Transcode(ctx, media.Job{Input: fetched, Output: out, Plan: plan})
		switch {
		case err == nil:
			final = out
			acq.Outcome = OutcomeReencoded
		case errors.Is(err, context.Canceled):
			return Acquisition{}, err
		default:
			a.log.Warn("transcode failed, publishing original", "video_id", cand.VideoID, "error", err)
			acq.Outcome = OutcomeReencodeFallback
		}
	} else {
		a.log.Info("codecs match policy, no re-encode needed", "video", plan.Video.Source, "audio", plan.Audio.Source)
	}

	name := naming.TrailerFileName(title, year, filepath.Ext(final))
	dst, move, err := Publish(final, destDir, name)
	if err != nil {
		return Acquisition{}, err
	}
	acq.Path = dst
	acq.Move = move

	a.log.Info("trailer published", "path", dst, "outcome", acq.Outcome.String(), "move", move.String())
	return acq, nil
}

// codec probes one stream. A probe failure is treated as an unknown codec,
// which no rule matches, so the stream passes through.
func (a *Acquirer) codec(ctx context.Context, path string, kind policy.StreamKind) string {
	c, err := a.prober.Codec(ctx, path, kind)
	if err != nil {
		a.log.Warn("codec probe failed", "kind", kind.String(), "path", path, "error", err)
		return ""
	}
	return c
}
