package search

import (
	"strconv"
	"strings"

	"github.com/vmunix/teaser/internal/metadata"
	"github.com/vmunix/teaser/internal/naming"
	"github.com/vmunix/teaser/internal/policy"
)

// TitleSource tells which title a query was built from.
type TitleSource int

const (
	TitlePrimary  TitleSource = iota // the library folder title
	TitleOriginal                    // the work's original title
)

func (s TitleSource) String() string {
	if s == TitleOriginal {
		return "original"
	}
	return "primary"
}

// Query is a video search query for one item.
type Query struct {
	Title       string // effective title, sanitized
	Year        int
	Keywords    string
	Language    string // policy entry used, "default" when none matched
	TitleSource TitleSource
	Text        string // "<title> <year> <keywords>"
}

// BuildQuery applies the search policy to an item. Keywords come from the
// default entry unless the work's original language has its own entry; that
// entry may also swap in the original title. meta may be nil.
func BuildQuery(item naming.Item, meta *metadata.WorkMetadata, pol *policy.Policy) Query {
	sp := pol.Default()
	q := Query{
		Title:       item.Title,
		Year:        item.Year,
		Language:    policy.DefaultLanguage,
		TitleSource: TitlePrimary,
	}

	if meta != nil {
		if langParams, ok := pol.Lookup(meta.OriginalLanguage); ok {
			sp = langParams
			q.Language = strings.ToLower(meta.OriginalLanguage)
			if langParams.UseOriginalTitle && naming.SanitizeTitle(meta.OriginalTitle) != "" {
				q.Title = meta.OriginalTitle
				q.TitleSource = TitleOriginal
			}
		}
	}

	q.Title = naming.SanitizeTitle(q.Title)
	q.Keywords = sp.Keywords

	parts := []string{q.Title, strconv.Itoa(q.Year)}
	if q.Keywords != "" {
		parts = append(parts, q.Keywords)
	}
	q.Text = strings.Join(parts, " ")
	return q
}
