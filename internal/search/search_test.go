package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/teaser/internal/logging"
	"github.com/vmunix/teaser/internal/search"
	"github.com/vmunix/teaser/internal/search/mocks"
	"github.com/vmunix/teaser/internal/youtube"
)

func TestSearcher_FindCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)

	client := mocks.NewMockVideoSearch(ctrl)
	client.EXPECT().
		Search(gomock.Any(), "Inception 2010 trailer", youtube.SearchOptions{MaxResults: 1, Duration: "short"}).
		Return([]youtube.Video{{ID: "YoHD9XEInc0", Title: "Inception Trailer", ChannelTitle: "Warner Bros."}}, nil)

	searcher := search.NewSearcher(client, logging.Discard())
	cand, err := searcher.FindCandidate(context.Background(), search.Query{Text: "Inception 2010 trailer"})

	require.NoError(t, err)
	require.NotNil(t, cand)
	assert.Equal(t, "YoHD9XEInc0", cand.VideoID)
	assert.Equal(t, "Warner Bros.", cand.Channel)
}

func TestSearcher_FindCandidate_NoResults(t *testing.T) {
	ctrl := gomock.NewController(t)

	client := mocks.NewMockVideoSearch(ctrl)
	client.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	searcher := search.NewSearcher(client, logging.Discard())
	cand, err := searcher.FindCandidate(context.Background(), search.Query{Text: "Obscure 1931 trailer"})

	require.NoError(t, err, "an empty result is not a failure")
	assert.Nil(t, cand)
}

func TestSearcher_FindCandidate_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)

	client := mocks.NewMockVideoSearch(ctrl)
	client.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, youtube.ErrQuotaExceeded)

	searcher := search.NewSearcher(client, logging.Discard())
	_, err := searcher.FindCandidate(context.Background(), search.Query{Text: "Heat 1995 trailer"})

	assert.True(t, errors.Is(err, youtube.ErrQuotaExceeded))
}

func TestSearcher_FindCandidate_EmptyQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	searcher := search.NewSearcher(mocks.NewMockVideoSearch(ctrl), logging.Discard())

	_, err := searcher.FindCandidate(context.Background(), search.Query{})
	assert.ErrorIs(t, err, search.ErrEmptyQuery)
}
