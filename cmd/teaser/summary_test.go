package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/teaser/internal/library"
	"github.com/vmunix/teaser/internal/pipeline"
)

func TestRenderSummary(t *testing.T) {
	sum := library.Summary{
		Total: 1,
		Reports: []library.Report{
			{Folder: "Amelie (2001)", Result: &pipeline.Result{
				Status: pipeline.StatusPublished,
				Acquisition: pipeline.Acquisition{
					Path:    "/movies/Amelie (2001)/Amelie (2001)-trailer.mp4",
					Outcome: pipeline.OutcomeReencoded,
				},
			}},
			{Folder: "Obscure (1999)", Result: &pipeline.Result{Status: pipeline.StatusNoCandidate}},
			{Folder: "Broken (2003)", Result: &pipeline.Result{Status: pipeline.StatusFailed, Err: errors.New("quota exceeded")}},
			{Folder: "Up (2009)", Skip: library.SkipHasTrailer},
		},
	}

	out := renderSummary(sum)
	for _, want := range []string{
		"Amelie (2001)-trailer.mp4",
		"reencoded",
		"no_candidate",
		"quota exceeded",
		"skipped: has_trailer",
	} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, strings.ToUpper(out), "DOWNLOADED")
}
