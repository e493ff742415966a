package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/teaser/internal/metadata"
	"github.com/vmunix/teaser/internal/naming"
	"github.com/vmunix/teaser/internal/policy"
)

func testPolicy(t *testing.T) *policy.Policy {
	t.Helper()
	pol, err := policy.New(policy.SearchPolicy{
		"default": {Keywords: "trailer"},
		"fr":      {UseOriginalTitle: true, Keywords: "bande annonce"},
		"de":      {UseOriginalTitle: false, Keywords: "trailer deutsch"},
		"ja":      {UseOriginalTitle: true},
	}, nil, nil)
	require.NoError(t, err)
	return pol
}

func TestBuildQuery_NoMetadata(t *testing.T) {
	item := naming.Item{Title: "Inception", Year: 2010}

	q := BuildQuery(item, nil, testPolicy(t))
	assert.Equal(t, "Inception 2010 trailer", q.Text)
	assert.Equal(t, TitlePrimary, q.TitleSource)
	assert.Equal(t, "default", q.Language)
}

func TestBuildQuery_SanitizesTitle(t *testing.T) {
	item := naming.Item{Title: "Mission: Impossible  -  Fallout", Year: 2018}

	q := BuildQuery(item, nil, testPolicy(t))
	assert.Equal(t, "Mission Impossible - Fallout", q.Title)
	assert.Equal(t, "Mission Impossible - Fallout 2018 trailer", q.Text)
}

func TestBuildQuery_LanguageWithoutEntryUsesDefault(t *testing.T) {
	item := naming.Item{Title: "Parasite", Year: 2019}
	meta := &metadata.WorkMetadata{OriginalTitle: "기생충", OriginalLanguage: "ko"}

	q := BuildQuery(item, meta, testPolicy(t))
	assert.Equal(t, "Parasite 2019 trailer", q.Text)
	assert.Equal(t, TitlePrimary, q.TitleSource)
}

func TestBuildQuery_OriginalTitle(t *testing.T) {
	item := naming.Item{Title: "Amélie", Year: 2001}
	meta := &metadata.WorkMetadata{OriginalTitle: "Le Fabuleux Destin d'Amélie Poulain", OriginalLanguage: "fr"}

	q := BuildQuery(item, meta, testPolicy(t))
	assert.Equal(t, "Le Fabuleux Destin d'Amélie Poulain 2001 bande annonce", q.Text)
	assert.Equal(t, TitleOriginal, q.TitleSource)
	assert.Equal(t, "fr", q.Language)
}

func TestBuildQuery_KeywordsOnly(t *testing.T) {
	item := naming.Item{Title: "Dark", Year: 2017}
	meta := &metadata.WorkMetadata{OriginalTitle: "Dunkel", OriginalLanguage: "de"}

	q := BuildQuery(item, meta, testPolicy(t))
	assert.Equal(t, "Dark 2017 trailer deutsch", q.Text)
	assert.Equal(t, TitlePrimary, q.TitleSource)
}

func TestBuildQuery_EmptyOriginalTitleFallsBack(t *testing.T) {
	item := naming.Item{Title: "Spirited Away", Year: 2001}
	meta := &metadata.WorkMetadata{OriginalTitle: "  ", OriginalLanguage: "ja"}

	q := BuildQuery(item, meta, testPolicy(t))
	assert.Equal(t, "Spirited Away 2001", q.Text, "no keywords, no trailing space")
	assert.Equal(t, TitlePrimary, q.TitleSource)
}

func TestBuildQuery_OriginalTitleIsSanitized(t *testing.T) {
	item := naming.Item{Title: "Who Am I", Year: 2014}
	meta := &metadata.WorkMetadata{OriginalTitle: "Qui suis-je? / Kein System", OriginalLanguage: "FR"}

	q := BuildQuery(item, meta, testPolicy(t))
	assert.Equal(t, "Qui suis-je Kein System", q.Title)
}
