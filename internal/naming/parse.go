// internal/naming/parse.go
package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// folderPattern matches "<title> (<year>)" with an optional "{tvdb-<id>}" after it.
// The title is greedy, so the last year group wins. Trailing text is ignored.
var folderPattern = regexp.MustCompile(`^(.*)\s\((\d{4})\)\s*(?:\{tvdb-(\d+)\})?`)

// workIDPattern matches a tmdb id marker such as "{tmdb-603}" or "[tmdbid-603]".
var workIDPattern = regexp.MustCompile(`\((\d{4})\).*?tmdb(?:id)?-(\d+)`)

// ParseFolderName parses a library folder name.
// A trailing {tvdb-<id>} marks the item as a series.
func ParseFolderName(name string) (Item, error) {
	m := folderPattern.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return Item{}, fmt.Errorf("%w: %q", ErrNoMatch, name)
	}

	title := strings.TrimSpace(m[1])
	if title == "" {
		return Item{}, fmt.Errorf("%w: %q: empty title", ErrNoMatch, name)
	}

	// Any four digits are a year, 0000 included.
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return Item{}, fmt.Errorf("%w: %q", ErrInvalidYear, m[2])
	}

	item := Item{Title: title, Year: year, Kind: Movie}
	if m[3] != "" {
		item.Kind = Series
		item.ExternalSeriesID = m[3]
	}
	return item, nil
}

// ParseMediaFilename extracts a tmdb id embedded after the year group of a
// media file's base name. Absence is not an error.
func ParseMediaFilename(base string) (string, bool) {
	m := workIDPattern.FindStringSubmatch(filepath.Base(base))
	if m == nil {
		return "", false
	}
	return m[2], true
}
