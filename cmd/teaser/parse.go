package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/teaser/internal/naming"
)

// parseResult is the JSON form of a parsed folder name.
type parseResult struct {
	Title       string `json:"title"`
	Year        int    `json:"year"`
	Kind        string `json:"kind"`
	TVDBID      string `json:"tvdb_id,omitempty"`
	TMDBID      string `json:"tmdb_id,omitempty"`
	SearchTitle string `json:"search_title"`
	TrailerName string `json:"trailer_name"`
}

func newParseCommand() *cobra.Command {
	var jsonOut bool
	var file string

	cmd := &cobra.Command{
		Use:   "parse <folder-name>",
		Short: "Parse a library folder name (local, no network)",
		Example: `  teaser parse "Inception (2010)"
  teaser parse "Show Name (2019) {tvdb-12345}" --json
  teaser parse "Heat (1995)" --file "Heat (1995) {tmdb-949}.mkv"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := naming.ParseFolderName(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			if file != "" {
				if id, ok := naming.ParseMediaFilename(file); ok {
					item = item.WithWorkID(id)
				}
			}

			res := toParseResult(item)
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printParseResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&file, "file", "", "Media file name to read a tmdb id from")
	return cmd
}

func toParseResult(item naming.Item) parseResult {
	title := naming.SanitizeTitle(item.Title)
	return parseResult{
		Title:       item.Title,
		Year:        item.Year,
		Kind:        item.Kind.String(),
		TVDBID:      item.ExternalSeriesID,
		TMDBID:      item.ExternalWorkID,
		SearchTitle: title,
		TrailerName: naming.TrailerBaseName(title, item.Year),
	}
}

func printParseResult(w io.Writer, r parseResult) {
	fmt.Fprintf(w, "Title:    %s\n", r.Title)
	fmt.Fprintf(w, "Year:     %d\n", r.Year)
	fmt.Fprintf(w, "Kind:     %s\n", r.Kind)
	if r.TVDBID != "" {
		fmt.Fprintf(w, "TVDB ID:  %s\n", r.TVDBID)
	}
	if r.TMDBID != "" {
		fmt.Fprintf(w, "TMDB ID:  %s\n", r.TMDBID)
	}
	fmt.Fprintf(w, "Search:   %s\n", r.SearchTitle)
	fmt.Fprintf(w, "Trailer:  %s.<ext>\n", r.TrailerName)
}
