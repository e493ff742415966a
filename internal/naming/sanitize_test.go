package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Inception", "Inception"},
		{"colon", "Mission: Impossible", "Mission Impossible"},
		{"all illegal", `a<b>c:d"e/f\g|h?i*j`, "a b c d e f g h i j"},
		{"whitespace runs", "  The   Thing \t ", "The Thing"},
		{"question", "What Happened, Miss Simone?", "What Happened, Miss Simone"},
		{"only illegal", `<>:"/\|?*`, ""},
		{"decomposed accent", "Ame\u0301lie", "Am\u00e9lie"},
		{"ideographic space", "Spirited\u3000\u3000Away", "Spirited Away"},
		{"no-break space", "Le\u00a0 Samoura\u00ef\u00a0", "Le Samoura\u00ef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeTitle(tt.input), "SanitizeTitle(%q)", tt.input)
		})
	}
}

func TestTrailerNames(t *testing.T) {
	assert.Equal(t, "Inception (2010)-trailer", TrailerBaseName("Inception", 2010))
	assert.Equal(t, "Inception (2010)-trailer.mp4", TrailerFileName("Inception", 2010, ".mp4"))
	assert.Equal(t, "Inception (2010)-trailer.webm", TrailerFileName("Inception", 2010, "webm"))
	assert.Equal(t, "Inception (2010)-trailer", TrailerFileName("Inception", 2010, ""))
}

func TestIsTrailerFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Inception (2010)-trailer.mp4", true},
		{"Inception (2010)-TRAILER.mkv", true},
		{"/lib/Inception (2010)/Inception (2010)-Trailer.webm", true},
		{"movie-trailer", true},
		{"Inception (2010).mkv", false},
		{"trailer.mp4", false},
		{"Inception (2010)-trailer-reencoded.mp4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTrailerFile(tt.name))
		})
	}
}

func TestPropertySanitizeIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		once := SanitizeTitle(s)
		if twice := SanitizeTitle(once); twice != once {
			t.Fatalf("SanitizeTitle not idempotent: %q -> %q -> %q", s, once, twice)
		}
	})
}
