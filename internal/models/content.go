// Package models contains data structures for catalog content
package models

import "fmt"

// MediaType identifies the kind of catalog content
type MediaType = string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

const imageBaseURL = "https://image.tmdb.org/t/p"

// ContentItem represents a movie or TV show as returned by the catalog
// search endpoints. Fields are sourced verbatim from the API.
type ContentItem struct {
	ID            int     `json:"id"`
	MediaType     string  `json:"media_type"` // "movie" or "tv"
	Title         string  `json:"title"`      // For movies
	Name          string  `json:"name"`       // For TV shows
	OriginalTitle string  `json:"original_title"`
	OriginalName  string  `json:"original_name"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`   // For movies
	FirstAirDate  string  `json:"first_air_date"` // For TV shows
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
	Adult         bool    `json:"adult"`
	GenreIDs      []int   `json:"genre_ids"`
}

// SearchResult is a page of catalog search results
type SearchResult struct {
	Page         int           `json:"page"`
	TotalResults int           `json:"total_results"`
	TotalPages   int           `json:"total_pages"`
	Results      []ContentItem `json:"results"`
}

// DisplayTitle returns the movie title or TV show name, whichever is set
func (c *ContentItem) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Name
}

// ReleaseYear returns the four-digit release or first-air year, or "" when
// the catalog supplied no parseable date
func (c *ContentItem) ReleaseYear() string {
	date := c.ReleaseDate
	if date == "" {
		date = c.FirstAirDate
	}
	if len(date) >= 4 {
		return date[:4]
	}
	return ""
}

// PosterURL returns the full poster URL for the given size (default w500)
func (c *ContentItem) PosterURL(size string) string {
	if c.PosterPath == "" {
		return ""
	}
	if size == "" {
		size = "w500"
	}
	return imageBaseURL + "/" + size + c.PosterPath
}

// BackdropURL returns the full backdrop URL for the given size (default w1280)
func (c *ContentItem) BackdropURL(size string) string {
	if c.BackdropPath == "" {
		return ""
	}
	if size == "" {
		size = "w1280"
	}
	return imageBaseURL + "/" + size + c.BackdropPath
}

// HasGenre reports whether the item is tagged with the given genre id
func (c *ContentItem) HasGenre(id int) bool {
	for _, g := range c.GenreIDs {
		if g == id {
			return true
		}
	}
	return false
}

// Genre represents a genre from the catalog detail endpoints
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Details contains per-item detail information from the catalog
type Details struct {
	ID               int     `json:"id"`
	IMDBID           string  `json:"imdb_id"`
	Title            string  `json:"title"` // For movies
	Name             string  `json:"name"`  // For TV shows
	Overview         string  `json:"overview"`
	Tagline          string  `json:"tagline"`
	PosterPath       string  `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	FirstAirDate     string  `json:"first_air_date"`
	VoteAverage      float64 `json:"vote_average"`
	Popularity       float64 `json:"popularity"`
	Runtime          int     `json:"runtime"`          // For movies (minutes)
	EpisodeRunTime   []int   `json:"episode_run_time"` // For TV shows (minutes)
	Status           string  `json:"status"`
	Genres           []Genre `json:"genres"`
	NumberOfSeasons  int     `json:"number_of_seasons"`
	NumberOfEpisodes int     `json:"number_of_episodes"`
}

// RuntimeMinutes returns the best known runtime for the item: the movie
// runtime, or the first episode runtime for TV shows. Zero means unknown.
func (d *Details) RuntimeMinutes() int {
	if d.Runtime > 0 {
		return d.Runtime
	}
	if len(d.EpisodeRunTime) > 0 {
		return d.EpisodeRunTime[0]
	}
	return 0
}

// RuntimeDisplay returns the runtime in human-readable form
func (d *Details) RuntimeDisplay() string {
	mins := d.RuntimeMinutes()
	if mins <= 0 {
		return ""
	}
	if mins >= 60 {
		return fmt.Sprintf("%dh %dm", mins/60, mins%60)
	}
	return fmt.Sprintf("%dm", mins)
}
