package tmdb

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

const defaultBaseURL = "https://api.themoviedb.org"

// ErrNotFound is returned when a work doesn't exist in TMDB.
var ErrNotFound = errors.New("not found in TMDB")

// Client is a TMDB API client.
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

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchMovie searches movies by title, narrowed to a release year when year > 0.
// Results keep the service's relevance order.
func (c *Client) SearchMovie(ctx context.Context, query string, year int) ([]SearchResult, error) {
	return c.search(ctx, "movie", query, year)
}

// SearchTV searches series by name, narrowed to a year when year > 0.
func (c *Client) SearchTV(ctx context.Context, query string, year int) ([]SearchResult, error) {
	return c.search(ctx, "tv", query, year)
}

func (c *Client) search(ctx context.Context, kind, query string, year int) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	if year > 0 {
		params.Set("year", strconv.Itoa(year))
	}

	var resp searchResponse
	if err := c.get(ctx, "/3/search/"+kind, params, &resp); err != nil {
		return nil, fmt.Errorf("search %s %q: %w", kind, query, err)
	}
	return resp.Results, nil
}

// FindByTVDB looks up series by their TVDB id.
func (c *Client) FindByTVDB(ctx context.Context, tvdbID string) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("external_source", "tvdb_id")

	var resp findResponse
	if err := c.get(ctx, "/3/find/"+url.PathEscape(tvdbID), params, &resp); err != nil {
		return nil, fmt.Errorf("find tvdb %s: %w", tvdbID, err)
	}
	return resp.TVResults, nil
}

// GetMovie fetches movie metadata by TMDB ID.
func (c *Client) GetMovie(ctx context.Context, tmdbID int64) (*Movie, error) {
	var movie Movie
	if err := c.get(ctx, fmt.Sprintf("/3/movie/%d", tmdbID), nil, &movie); err != nil {
		return nil, fmt.Errorf("movie %d: %w", tmdbID, err)
	}
	return &movie, nil
}

// GetTV fetches series metadata by TMDB ID.
func (c *Client) GetTV(ctx context.Context, tmdbID int64) (*TV, error) {
	var tv TV
	if err := c.get(ctx, fmt.Sprintf("/3/tv/%d", tmdbID), nil, &tv); err != nil {
		return nil, fmt.Errorf("tv %d: %w", tmdbID, err)
	}
	return &tv, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
