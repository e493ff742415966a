// Package tmdb provides a client for The Movie Database API.
package tmdb

import "strconv"

// SearchResult is one entry of a movie or tv search. Movies fill the
// Title fields, series the Name fields.
type SearchResult struct {
	ID               int64  `json:"id"`
	Title            string `json:"title,omitempty"`
	OriginalTitle    string `json:"original_title,omitempty"`
	Name             string `json:"name,omitempty"`
	OriginalName     string `json:"original_name,omitempty"`
	OriginalLanguage string `json:"original_language"`
	ReleaseDate      string `json:"release_date,omitempty"`   // "2010-07-15"
	FirstAirDate     string `json:"first_air_date,omitempty"` // "2019-01-31"
}

// DisplayTitle returns the localized title of a movie or name of a series.
func (r SearchResult) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// Year extracts the year from the release or first air date.
func (r SearchResult) Year() int {
	if r.ReleaseDate != "" {
		return yearOf(r.ReleaseDate)
	}
	return yearOf(r.FirstAirDate)
}

type searchResponse struct {
	Page         int            `json:"page"`
	TotalResults int            `json:"total_results"`
	Results      []SearchResult `json:"results"`
}

type findResponse struct {
	MovieResults []SearchResult `json:"movie_results"`
	TVResults    []SearchResult `json:"tv_results"`
}

// Movie represents TMDB movie metadata.
type Movie struct {
	ID               int64  `json:"id"`
	IMDBID           string `json:"imdb_id,omitempty"` // e.g., "tt0133093"
	Title            string `json:"title"`
	OriginalTitle    string `json:"original_title"`
	OriginalLanguage string `json:"original_language"` // ISO 639-1, e.g. "fr"
	ReleaseDate      string `json:"release_date"`
	Runtime          int    `json:"runtime"` // minutes
}

// Year extracts the year from ReleaseDate.
func (m *Movie) Year() int {
	return yearOf(m.ReleaseDate)
}

// TV represents TMDB series metadata.
type TV struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	OriginalName     string `json:"original_name"`
	OriginalLanguage string `json:"original_language"`
	FirstAirDate     string `json:"first_air_date"`
}

// Year extracts the year from FirstAirDate.
func (t *TV) Year() int {
	return yearOf(t.FirstAirDate)
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
