// Package hook handles Radarr and Sonarr custom-script events passed through
// environment variables.
package hook

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vmunix/teaser/internal/naming"
)

// Source is the automation tool that fired the event.
type Source string

const (
	Radarr Source = "radarr"
	Sonarr Source = "sonarr"
)

// Action is what the process does for an event.
type Action int

const (
	// ActionIgnore exits 0 without doing anything.
	ActionIgnore Action = iota
	// ActionTest runs the connection self-test.
	ActionTest
	// ActionAcquire runs the pipeline for the event's item.
	ActionAcquire
)

func (a Action) String() string {
	switch a {
	case ActionTest:
		return "test"
	case ActionAcquire:
		return "acquire"
	default:
		return "ignore"
	}
}

// Event is a custom-script invocation.
type Event struct {
	Source    Source
	Type      string // Test, Download, Rename, ...
	IsUpgrade bool
	Title     string
	Year      string
	Path      string
	WorkID    string // TMDB id, Radarr only
	SeriesID  string // TVDB id, Sonarr only
}

// LookupFunc reads an environment variable.
type LookupFunc func(key string) (string, bool)

// Detect reads an event from the environment. Radarr wins when both tools'
// variables are present. The second result is false for a plain CLI run.
func Detect(lookup LookupFunc) (Event, bool) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	if typ, ok := lookup("radarr_eventtype"); ok {
		return Event{
			Source:    Radarr,
			Type:      strings.TrimSpace(typ),
			IsUpgrade: strings.EqualFold(get("radarr_isupgrade"), "true"),
			Title:     get("radarr_movie_title"),
			Year:      get("radarr_movie_year"),
			Path:      get("radarr_movie_path"),
			WorkID:    get("radarr_movie_tmdbid"),
		}, true
	}
	if typ, ok := lookup("sonarr_eventtype"); ok {
		return Event{
			Source:    Sonarr,
			Type:      strings.TrimSpace(typ),
			IsUpgrade: strings.EqualFold(get("sonarr_isupgrade"), "true"),
			Title:     get("sonarr_series_title"),
			Year:      get("sonarr_series_year"),
			Path:      get("sonarr_series_path"),
			SeriesID:  get("sonarr_series_tvdbid"),
		}, true
	}
	return Event{}, false
}

// Action maps the event type to what should happen. Upgrades are ignored so
// a trailer is only fetched the first time a file is imported.
func (e Event) Action() Action {
	switch {
	case strings.EqualFold(e.Type, "Test"):
		return ActionTest
	case strings.EqualFold(e.Type, "Download") && !e.IsUpgrade:
		return ActionAcquire
	case strings.EqualFold(e.Type, "Rename"):
		return ActionAcquire
	default:
		return ActionIgnore
	}
}

// Item converts the event into a library item.
func (e Event) Item() (naming.Item, error) {
	if e.Title == "" {
		return naming.Item{}, fmt.Errorf("%s event: %w", e.Source, ErrMissingTitle)
	}
	year, err := strconv.Atoi(e.Year)
	if err != nil || year < 1000 || year > 9999 {
		return naming.Item{}, fmt.Errorf("%s event: %w: %q", e.Source, naming.ErrInvalidYear, e.Year)
	}
	if e.Path == "" {
		return naming.Item{}, fmt.Errorf("%s event: %w", e.Source, ErrMissingPath)
	}

	item := naming.Item{
		Title:      e.Title,
		Year:       year,
		Kind:       naming.Movie,
		FolderPath: e.Path,
	}
	if e.Source == Sonarr {
		item.Kind = naming.Series
		item.ExternalSeriesID = e.SeriesID
	}
	if e.WorkID != "" && e.WorkID != "0" {
		item.ExternalWorkID = e.WorkID
	}
	return item, nil
}
