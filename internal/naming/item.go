// Package naming parses library folder and media file names into items and
// builds the deterministic trailer file names.
package naming

import "fmt"

// MediaKind distinguishes movies from series.
type MediaKind int

const (
	Movie MediaKind = iota
	Series
)

func (k MediaKind) String() string {
	switch k {
	case Movie:
		return "movie"
	case Series:
		return "series"
	default:
		return fmt.Sprintf("MediaKind(%d)", int(k))
	}
}

// Item is one library entry: a movie or series folder.
// Empty ExternalWorkID or ExternalSeriesID means the id is unknown.
type Item struct {
	Title            string
	Year             int
	Kind             MediaKind
	FolderPath       string
	ExternalWorkID   string // TMDB id
	ExternalSeriesID string // TVDB id
}

// IsMovie reports whether the item is a movie.
func (it Item) IsMovie() bool {
	return it.Kind == Movie
}

// WithFolder returns a copy of the item rooted at path.
func (it Item) WithFolder(path string) Item {
	it.FolderPath = path
	return it
}

// WithWorkID returns a copy of the item carrying the given TMDB id.
func (it Item) WithWorkID(id string) Item {
	it.ExternalWorkID = id
	return it
}

// Label formats the item the way it appears in folder names.
func (it Item) Label() string {
	return fmt.Sprintf("%s (%04d)", it.Title, it.Year)
}
