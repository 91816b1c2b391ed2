// Package catalog provides the client for the third-party movie/TV metadata
// API. All calls are read-only GETs authenticated with an API key.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"

	"goflix/internal/models"
	"goflix/internal/util"
)

const (
	// BaseURL is the catalog API base URL
	BaseURL = "https://api.themoviedb.org/3"
	// ImageBaseURL is the catalog image base URL
	ImageBaseURL = "https://image.tmdb.org/t/p"

	// searchPages is how many result pages a multi search pulls per query
	searchPages = 2
)

// Client handles interactions with the catalog API
type Client struct {
	http      *http.Client
	apiKey    string
	baseURL   string
	imageBase string
	limiter   *rate.Limiter
	cache     *util.ResponseCache
}

// New creates a catalog client with the given API key
func New(apiKey string) *Client {
	return &Client{
		http:      util.GetSharedClient(),
		apiKey:    apiKey,
		baseURL:   BaseURL,
		imageBase: ImageBaseURL,
		// The provider allows ~50 req/s per key; stay well under it.
		limiter: rate.NewLimiter(rate.Limit(20), 20),
		cache:   util.NewResponseCache(2*time.Minute, 200),
	}
}

// NewFromEnv creates a catalog client configured from the environment
func NewFromEnv() *Client {
	return New(util.CatalogAPIKey())
}

// IsConfigured returns true if the API key is set
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// SearchMulti searches movies and TV shows for one result page
func (c *Client) SearchMulti(ctx context.Context, query string, page int) (*models.SearchResult, error) {
	if page < 1 {
		page = 1
	}
	endpoint := fmt.Sprintf("%s/search/multi?query=%s&include_adult=true&language=en-US&page=%d",
		c.baseURL, url.QueryEscape(query), page)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "catalog search failed")
	}

	var result models.SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to parse search response")
	}

	// The multi endpoint also returns people; keep movies and TV only.
	filtered := result.Results[:0]
	for _, item := range result.Results {
		if item.MediaType == models.MediaTypeMovie || item.MediaType == models.MediaTypeTV {
			filtered = append(filtered, item)
		}
	}
	result.Results = filtered

	return &result, nil
}

// SearchAll fetches the candidate set for a query: the first pages of the
// multi search concatenated in API order. Paging stops early when the API
// reports no further pages.
func (c *Client) SearchAll(ctx context.Context, query string) ([]models.ContentItem, error) {
	var items []models.ContentItem
	for page := 1; page <= searchPages; page++ {
		result, err := c.SearchMulti(ctx, query, page)
		if err != nil {
			if page == 1 {
				return nil, err
			}
			// Later pages are best effort
			util.Debug("search page fetch failed", "page", page, "error", err)
			break
		}
		items = append(items, result.Results...)
		if page >= result.TotalPages {
			break
		}
	}
	return items, nil
}

// MovieDetails gets detailed information about a movie
func (c *Client) MovieDetails(ctx context.Context, movieID int) (*models.Details, error) {
	endpoint := fmt.Sprintf("%s/movie/%d?language=en-US", c.baseURL, movieID)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get movie details")
	}

	var details models.Details
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, errors.Wrap(err, "failed to parse movie details")
	}
	return &details, nil
}

// TVDetails gets detailed information about a TV show
func (c *Client) TVDetails(ctx context.Context, tvID int) (*models.Details, error) {
	endpoint := fmt.Sprintf("%s/tv/%d?language=en-US", c.baseURL, tvID)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get TV details")
	}

	var details models.Details
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, errors.Wrap(err, "failed to parse TV details")
	}
	return &details, nil
}

// Details gets detail information for either media type
func (c *Client) Details(ctx context.Context, mediaType string, id int) (*models.Details, error) {
	if mediaType == models.MediaTypeTV {
		return c.TVDetails(ctx, id)
	}
	return c.MovieDetails(ctx, id)
}

// Trending gets trending content. mediaType may be "all", "movie" or "tv";
// timeWindow may be "day" or "week".
func (c *Client) Trending(ctx context.Context, mediaType, timeWindow string) (*models.SearchResult, error) {
	if mediaType == "" {
		mediaType = "all"
	}
	if timeWindow == "" {
		timeWindow = "week"
	}
	endpoint := fmt.Sprintf("%s/trending/%s/%s?language=en-US", c.baseURL, mediaType, timeWindow)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get trending")
	}

	var result models.SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to parse trending response")
	}
	return &result, nil
}

// Popular gets popular movies or TV shows
func (c *Client) Popular(ctx context.Context, mediaType string) (*models.SearchResult, error) {
	endpoint := fmt.Sprintf("%s/%s/popular?language=en-US&page=1", c.baseURL, mediaType)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get popular")
	}

	var result models.SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to parse popular response")
	}

	// The typed endpoints omit media_type; stamp it on
	for i := range result.Results {
		result.Results[i].MediaType = mediaType
	}
	return &result, nil
}

// ImageURL returns the full URL for a catalog image path
func (c *Client) ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	if size == "" {
		size = "w500"
	}
	return fmt.Sprintf("%s/%s%s", c.imageBase, size, path)
}

// get performs an authenticated GET, with response caching, rate limiting
// and retry on transient failures
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	if cached, ok := c.cache.Get(endpoint); ok {
		return cached, nil
	}

	separator := "?"
	if strings.Contains(endpoint, "?") {
		separator = "&"
	}
	withKey := endpoint + separator + "api_key=" + c.apiKey

	var body []byte
	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(250*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, withKey, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer func() { _ = resp.Body.Close() }()

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return retry.RetryableError(errors.Errorf("catalog API returned status: %s", resp.Status))
		default:
			return errors.Errorf("catalog API returned status: %s", resp.Status)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.cache.Set(endpoint, body)
	return body, nil
}
