package search

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"goflix/internal/models"
	"goflix/internal/util"
)

// Catalog is the slice of the metadata API the pipeline needs
type Catalog interface {
	SearchAll(ctx context.Context, query string) ([]models.ContentItem, error)
	Details(ctx context.Context, mediaType string, id int) (*models.Details, error)
}

// Item is a content item with its relevance score attached
type Item struct {
	models.ContentItem
	Score float64
}

// Results is one generation of search output. Working is the intermediate
// set the enrichment pass operates on; Visible is what gets displayed.
type Results struct {
	Query   string
	Working []Item
	Visible []Item

	gen uint64
}

// SortMode selects a user-facing ordering for the visible set
type SortMode string

const (
	SortRelevance  SortMode = "relevance"
	SortPopularity SortMode = "popularity"
	SortRating     SortMode = "rating"
	SortYear       SortMode = "year"
	SortTitle      SortMode = "title"
)

// Engine runs the search pipeline against a catalog. Each Search bumps a
// generation counter; the deferred enrichment pass applies its output only
// if its generation is still current, so stale passes are discarded instead
// of overwriting newer results.
type Engine struct {
	catalog  Catalog
	opts     Options
	runtimes *RuntimeCache

	mu      sync.Mutex
	gen     uint64
	query   string
	visible []Item
}

// NewEngine creates a search engine over the given catalog
func NewEngine(catalog Catalog, opts Options) *Engine {
	return &Engine{
		catalog:  catalog,
		opts:     opts,
		runtimes: NewRuntimeCache(),
	}
}

// Options returns the engine's pipeline options
func (e *Engine) Options() Options {
	return e.opts
}

// Search runs stages 1-3 of the pipeline: fetch candidates, apply the
// exclusion filters, score and threshold, rank and cap. A blank query
// clears the engine state and returns an empty result.
//
// Enrichment (stage 4) is deferred: call Enrich with the returned Results,
// typically from a goroutine.
func (e *Engine) Search(ctx context.Context, query string) (*Results, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		e.mu.Lock()
		e.gen++
		e.query = ""
		e.visible = nil
		gen := e.gen
		e.mu.Unlock()
		return &Results{gen: gen}, nil
	}

	candidates, err := e.catalog.SearchAll(ctx, query)
	if err != nil {
		e.mu.Lock()
		e.gen++
		e.query = query
		e.visible = nil
		gen := e.gen
		e.mu.Unlock()
		return &Results{Query: query, gen: gen}, err
	}

	// Stage 1: exclusion filters + dedupe
	kept := Filter(candidates, query, e.opts)

	// Stage 2: fuzzy scoring against the normalized query
	normQuery := Normalize(query)
	threshold := Threshold(normQuery)
	scored := make([]Item, 0, len(kept))
	for _, c := range kept {
		s := Score(normQuery, c.DisplayTitle())
		if s >= threshold {
			scored = append(scored, Item{ContentItem: c, Score: s})
		}
	}

	// Stage 3: rank by (score, popularity) and cap
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Popularity > scored[j].Popularity
	})
	working := scored
	if len(working) > e.opts.WorkingSetSize {
		working = working[:e.opts.WorkingSetSize]
	}
	visible := working
	if len(visible) > e.opts.VisibleSize {
		visible = visible[:e.opts.VisibleSize]
	}

	e.mu.Lock()
	e.gen++
	e.query = query
	e.visible = append([]Item(nil), visible...)
	gen := e.gen
	e.mu.Unlock()

	util.Debug("search ranked",
		"query", query,
		"candidates", len(candidates),
		"working", len(working),
		"visible", len(visible))

	return &Results{
		Query:   query,
		Working: append([]Item(nil), working...),
		Visible: append([]Item(nil), visible...),
		gen:     gen,
	}, nil
}

// NeedsEnrichment reports whether stage 4 applies to the query. Queries that
// ask for short-form content skip the minimum-runtime pass.
func (e *Engine) NeedsEnrichment(query string) bool {
	return !queryWantsShortForm(query, e.opts)
}

// Enrich runs stage 4 on a Results: fetch detail records for the head of the
// working set to learn runtimes, then drop items with a known runtime below
// the minimum and re-cap the visible set. The refreshed visible set is
// applied and returned only when the results' generation is still current;
// a stale pass returns (nil, false) and changes nothing.
//
// Per-item fetch failures leave that runtime unknown, and unknown runtimes
// are kept.
func (e *Engine) Enrich(ctx context.Context, r *Results) ([]Item, bool) {
	if r == nil || len(r.Working) == 0 || !e.NeedsEnrichment(r.Query) {
		return nil, false
	}

	head := r.Working
	if len(head) > e.opts.EnrichCount {
		head = head[:e.opts.EnrichCount]
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.EnrichWorkers)
	for _, item := range head {
		if _, known := e.runtimes.Get(item.ID); known {
			continue
		}
		item := item
		g.Go(func() error {
			details, err := e.catalog.Details(gctx, item.MediaType, item.ID)
			if err != nil {
				// Unknown runtime, item stays in
				util.Debug("enrichment fetch failed", "id", item.ID, "error", err)
				return nil
			}
			e.runtimes.Set(item.ID, details.RuntimeMinutes())
			return nil
		})
	}
	_ = g.Wait()

	kept := make([]Item, 0, len(r.Working))
	for _, item := range r.Working {
		if minutes, known := e.runtimes.Get(item.ID); known && minutes < e.opts.MinRuntime {
			continue
		}
		kept = append(kept, item)
	}
	if len(kept) > e.opts.VisibleSize {
		kept = kept[:e.opts.VisibleSize]
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gen != r.gen {
		util.Debug("discarding stale enrichment", "query", r.Query)
		return nil, false
	}
	e.visible = append([]Item(nil), kept...)
	return append([]Item(nil), kept...), true
}

// Visible returns a copy of the currently displayed result set
func (e *Engine) Visible() []Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Item(nil), e.visible...)
}

// Runtimes exposes the per-session runtime cache
func (e *Engine) Runtimes() *RuntimeCache {
	return e.runtimes
}

// Resort re-orders the current visible set without re-running the pipeline.
// Membership is unchanged; only the order moves. Returns the re-ordered set.
func (e *Engine) Resort(mode SortMode) []Item {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := append([]Item(nil), e.visible...)
	switch mode {
	case SortPopularity:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Popularity > items[j].Popularity
		})
	case SortRating:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].VoteAverage > items[j].VoteAverage
		})
	case SortYear:
		sort.SliceStable(items, func(i, j int) bool {
			return releaseYearOf(items[i]) > releaseYearOf(items[j])
		})
	case SortTitle:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].DisplayTitle()) < strings.ToLower(items[j].DisplayTitle())
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Score != items[j].Score {
				return items[i].Score > items[j].Score
			}
			return items[i].Popularity > items[j].Popularity
		})
	}
	e.visible = append([]Item(nil), items...)
	return items
}

func releaseYearOf(item Item) int {
	y, err := strconv.Atoi(item.ReleaseYear())
	if err != nil {
		return 0
	}
	return y
}
