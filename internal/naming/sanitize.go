package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// illegalChars are characters not allowed in filenames on common filesystems.
var illegalChars = regexp.MustCompile(`[<>:"/\\|?*\x00]`)

var multiSpace = regexp.MustCompile(`[\s\p{Z}]+`)

// TrailerSuffix is appended to the item label to form the trailer base name.
const TrailerSuffix = "-trailer"

// SanitizeTitle makes a title safe for queries and file names. Illegal
// characters become spaces, whitespace runs collapse to a single space, and
// the result is trimmed. SanitizeTitle(SanitizeTitle(s)) == SanitizeTitle(s).
func SanitizeTitle(s string) string {
	s = norm.NFC.String(s)
	s = illegalChars.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// TrailerBaseName returns "<title> (<year>)-trailer" without an extension.
func TrailerBaseName(title string, year int) string {
	return fmt.Sprintf("%s (%04d)%s", title, year, TrailerSuffix)
}

// TrailerFileName returns the published trailer name for the given extension.
// ext may be given with or without the leading dot.
func TrailerFileName(title string, year int, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return TrailerBaseName(title, year)
	}
	return TrailerBaseName(title, year) + "." + ext
}

// IsTrailerFile reports whether a file's base name, without extension, ends
// with "-trailer" in any case.
func IsTrailerFile(name string) bool {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.HasSuffix(strings.ToLower(base), TrailerSuffix)
}
