// Package search implements the relevance/filtering pipeline: exclusion
// filters, fuzzy scoring, ranking and capping, deferred runtime enrichment,
// and user-selectable re-sorting.
package search

import "time"

// Options holds the tunables of the pipeline. The defaults mirror the
// product behavior; the cutoff year, reality genre id and blocklist are
// opaque product decisions kept configurable on purpose.
type Options struct {
	// AdultBypassWords disable the adult filter when any of them appears in
	// the query.
	AdultBypassWords []string

	// Blocklist ids are excluded from results unconditionally.
	Blocklist []int

	// YearCutoff excludes content released before this year unless the query
	// itself names an older year (1900 up to YearCutoff-1).
	YearCutoff int

	// RealityGenreID tags reality shows in the catalog's genre taxonomy.
	RealityGenreID int

	// ShortFormWords mark queries that want short-form content; runtime
	// enrichment is skipped for those.
	ShortFormWords []string

	// WorkingSetSize and VisibleSize cap the intermediate and displayed
	// result lists.
	WorkingSetSize int
	VisibleSize    int

	// EnrichCount is how many working-set items get a detail fetch;
	// EnrichWorkers bounds the concurrent fetches.
	EnrichCount   int
	EnrichWorkers int

	// MinRuntime drops items whose known runtime is below this many minutes.
	// Unknown runtimes are kept.
	MinRuntime int

	// DebounceDelay is the input-inactivity window before a search fires.
	DebounceDelay time.Duration
}

// DefaultOptions returns the production defaults
func DefaultOptions() Options {
	return Options{
		AdultBypassWords: []string{"adult", "sex", "erotic", "xxx", "porn", "explicit", "nude"},
		Blocklist:        []int{455957, 572154, 987686, 1071585},
		YearCutoff:       2004,
		RealityGenreID:   10764,
		ShortFormWords:   []string{"short", "clip", "mini", "reel"},
		WorkingSetSize:   60,
		VisibleSize:      40,
		EnrichCount:      30,
		EnrichWorkers:    8,
		MinRuntime:       40,
		DebounceDelay:    550 * time.Millisecond,
	}
}

func (o Options) blocked(id int) bool {
	for _, b := range o.Blocklist {
		if b == id {
			return true
		}
	}
	return false
}
