package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "snippet", q.Get("part"))
		assert.Equal(t, "1", q.Get("maxResults"))
		assert.Equal(t, "Inception 2010 trailer", q.Get("q"))
		assert.Equal(t, "video", q.Get("type"))
		assert.Equal(t, "short", q.Get("videoDuration"))
		assert.Equal(t, "yt-key", q.Get("key"))

		_, _ = w.Write([]byte(`{
			"items": [{
				"id": {"kind": "youtube#video", "videoId": "YoHD9XEInc0"},
				"snippet": {"title": "Inception - Official Trailer", "channelTitle": "Warner Bros.", "publishedAt": "2010-05-10T17:00:00Z"}
			}]
		}`))
	}))
	defer server.Close()

	client := NewClient("yt-key", WithBaseURL(server.URL))

	videos, err := client.Search(context.Background(), "Inception 2010 trailer", SearchOptions{})
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "YoHD9XEInc0", videos[0].ID)
	assert.Equal(t, "Warner Bros.", videos[0].ChannelTitle)
	assert.Equal(t, 2010, videos[0].PublishedAt.Year())
}

func TestClient_Search_EscapesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Amélie & co 2001 bande annonce", r.URL.Query().Get("q"))
		assert.NotContains(t, r.URL.RawQuery, " ")
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	videos, err := NewClient("k", WithBaseURL(server.URL)).
		Search(context.Background(), "Amélie & co 2001 bande annonce", SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestClient_Search_SkipsNonVideoItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": [{"id": {"kind": "youtube#channel", "channelId": "UC1"}}]}`))
	}))
	defer server.Close()

	videos, err := NewClient("k", WithBaseURL(server.URL)).Search(context.Background(), "x", SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestClient_Search_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"quota", http.StatusForbidden, `{"error": {"code": 403, "message": "quota", "errors": [{"reason": "quotaExceeded"}]}}`, ErrQuotaExceeded},
		{"bad key", http.StatusBadRequest, `{"error": {"code": 400, "message": "API key not valid", "errors": [{"reason": "keyInvalid"}]}}`, ErrInvalidAPIKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewClient("k", WithBaseURL(server.URL)).Search(context.Background(), "x", SearchOptions{})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_Search_UnknownError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewClient("k", WithBaseURL(server.URL)).Search(context.Background(), "x", SearchOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
