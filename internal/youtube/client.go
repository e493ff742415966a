// Package youtube provides a minimal client for the YouTube Data API v3
// search endpoint.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com"

var (
	// ErrInvalidAPIKey indicates the API rejected the key.
	ErrInvalidAPIKey = errors.New("invalid youtube api key")

	// ErrQuotaExceeded indicates the daily API quota is used up.
	ErrQuotaExceeded = errors.New("youtube quota exceeded")
)

// SearchOptions narrows a video search.
type SearchOptions struct {
	MaxResults int    // defaults to 1
	Duration   string // "any", "short", "medium" or "long"; empty means short
}

// Video is one search hit.
type Video struct {
	ID           string
	Title        string
	ChannelTitle string
	PublishedAt  time.Time
}

// searchResponse is the JSON response of /youtube/v3/search.
type searchResponse struct {
	Items []struct {
		ID struct {
			Kind    string `json:"kind"`
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
		} `json:"snippet"`
	} `json:"items"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

// Client is an HTTP client for the YouTube Data API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new YouTube client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search returns the videos matching query in the service's relevance order.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) ([]Video, error) {
	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	reqURL.Path = "/youtube/v3/search"

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = 1
	}
	duration := opts.Duration
	if duration == "" {
		duration = "short"
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("videoDuration", duration)
	params.Set("key", c.apiKey)
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	videos := make([]Video, 0, len(body.Items))
	for _, item := range body.Items {
		if item.ID.VideoID == "" {
			continue
		}
		v := Video{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
		}
		if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			v.PublishedAt = t
		}
		videos = append(videos, v)
	}
	return videos, nil
}

func decodeError(resp *http.Response) error {
	var body errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)

	for _, e := range body.Error.Errors {
		switch e.Reason {
		case "quotaExceeded", "dailyLimitExceeded":
			return ErrQuotaExceeded
		case "keyInvalid":
			return ErrInvalidAPIKey
		}
	}
	if body.Error.Message != "" {
		return fmt.Errorf("youtube API error: %s: %s", resp.Status, body.Error.Message)
	}
	return fmt.Errorf("youtube API error: %s", resp.Status)
}
