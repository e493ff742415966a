package metadata

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MatchConfidence grades how well a search result matches the requested item.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // Score < 0.70
	ConfidenceLow                           // Score >= 0.70
	ConfidenceMedium                        // Score >= 0.85
	ConfidenceHigh                          // Score >= 0.95
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Match is the comparison of a requested title/year with a search result.
type Match struct {
	Score      float64 // Jaro-Winkler similarity of the cleaned titles
	YearDelta  int     // result year minus requested year; 0 when either is unknown
	Confidence MatchConfidence
}

// Weak reports whether the match deserves a warning: a low title score or a
// year more than one off.
func (m Match) Weak() bool {
	return m.Confidence < ConfidenceMedium || m.YearDelta > 1 || m.YearDelta < -1
}

// compareMatch scores a result against the requested item. It never rejects:
// the service's top result is used either way.
func compareMatch(title string, year int, foundTitle string, foundYear int) Match {
	score := float64(edlib.JaroWinklerSimilarity(cleanTitle(title), cleanTitle(foundTitle)))

	m := Match{Score: score}
	if year > 0 && foundYear > 0 {
		m.YearDelta = foundYear - year
	}

	switch {
	case score >= 0.95:
		m.Confidence = ConfidenceHigh
	case score >= 0.85:
		m.Confidence = ConfidenceMedium
	case score >= 0.70:
		m.Confidence = ConfidenceLow
	default:
		m.Confidence = ConfidenceNone
	}
	return m
}

// cleanTitle lowercases, strips accents and punctuation, and collapses spaces.
func cleanTitle(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)
	s = strings.ReplaceAll(s, "&", " and ")

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || unicode.IsPunct(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
