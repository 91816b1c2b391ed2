// Package goflix provides a public API for searching the movie/TV catalog
// through the relevance pipeline. It can be used as a library in other Go
// projects.
package goflix

import (
	"context"

	"goflix/internal/catalog"
	"goflix/internal/models"
	"goflix/internal/search"
	"goflix/internal/sources"
)

// Client is the main entry point for catalog search
type Client struct {
	catalog  *catalog.Client
	engine   *search.Engine
	debounce *search.Debouncer
}

// New creates a client with default pipeline options
func New(apiKey string) *Client {
	return NewWithOptions(apiKey, search.DefaultOptions())
}

// NewWithOptions creates a client with custom pipeline options
func NewWithOptions(apiKey string, opts search.Options) *Client {
	c := catalog.New(apiKey)
	return &Client{
		catalog:  c,
		engine:   search.NewEngine(c, opts),
		debounce: search.NewDebouncer(opts.DebounceDelay),
	}
}

// Engine exposes the underlying search engine for callers that drive the
// deferred enrichment pass themselves
func (c *Client) Engine() *search.Engine {
	return c.engine
}

// Search runs the full pipeline for a query, applying the runtime
// enrichment pass synchronously before returning
func (c *Client) Search(ctx context.Context, query string) ([]search.Item, error) {
	results, err := c.engine.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if refined, ok := c.engine.Enrich(ctx, results); ok {
		return refined, nil
	}
	return results.Visible, nil
}

// SearchLater schedules a debounced search: it fires only after the query
// input has been quiet for the configured window, and a newer call replaces
// a pending one. Results are delivered to apply.
func (c *Client) SearchLater(ctx context.Context, query string, apply func([]search.Item, error)) {
	c.debounce.Trigger(func() {
		items, err := c.Search(ctx, query)
		apply(items, err)
	})
}

// Trending returns trending content for the media type and time window
func (c *Client) Trending(ctx context.Context, mediaType, timeWindow string) ([]models.ContentItem, error) {
	result, err := c.catalog.Trending(ctx, mediaType, timeWindow)
	if err != nil {
		return nil, err
	}
	return result.Results, nil
}

// Popular returns popular movies or TV shows
func (c *Client) Popular(ctx context.Context, mediaType string) ([]models.ContentItem, error) {
	result, err := c.catalog.Popular(ctx, mediaType)
	if err != nil {
		return nil, err
	}
	return result.Results, nil
}

// EmbedURL builds the playback URL for an item on the given provider
func (c *Client) EmbedURL(providerID string, item models.ContentItem, season, episode int) (string, error) {
	provider, ok := sources.ByID(providerID)
	if !ok {
		provider = sources.Providers()[0]
	}
	return sources.EmbedURL(provider, item.MediaType, item.ID, season, episode)
}
