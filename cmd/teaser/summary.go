package main

import (
	"fmt"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/vmunix/teaser/internal/library"
	"github.com/vmunix/teaser/internal/pipeline"
)

// renderSummary formats a library run as a table, one row per folder.
func renderSummary(sum library.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Folder", "Status", "Outcome", "Trailer"})

	for _, r := range sum.Reports {
		status, outcome, trailer := describe(r)
		tw.AppendRow(table.Row{r.Folder, status, outcome, trailer})
	}

	tw.AppendFooter(table.Row{"", "", "Downloaded", fmt.Sprintf("%d", sum.Total)})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignLeft, AlignFooter: text.AlignLeft},
	})
	return tw.Render()
}

func describe(r library.Report) (status, outcome, trailer string) {
	if r.Result == nil {
		return "skipped: " + r.Skip.String(), "", ""
	}
	res := r.Result
	switch res.Status {
	case pipeline.StatusPublished:
		return res.Status.String(), res.Acquisition.Outcome.String(), filepath.Base(res.Acquisition.Path)
	case pipeline.StatusFailed:
		msg := ""
		if res.Err != nil {
			msg = res.Err.Error()
		}
		return res.Status.String(), msg, ""
	default:
		return res.Status.String(), "", ""
	}
}
