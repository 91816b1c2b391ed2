package search

import (
	"regexp"
	"strconv"
	"strings"

	"goflix/internal/models"
)

var (
	yearTokenRe = regexp.MustCompile(`\b(\d{4})\b`)
	realityRe   = regexp.MustCompile(`(?i)\breality\b`)
)

// queryAllowsAdult reports whether the query disables the adult filter
func queryAllowsAdult(q string, opts Options) bool {
	lq := strings.ToLower(q)
	for _, w := range opts.AdultBypassWords {
		if strings.Contains(lq, w) {
			return true
		}
	}
	return false
}

// queryWaivesYearCutoff reports whether the query names a year between 1900
// and the cutoff, which waives the cutoff for the whole query
func queryWaivesYearCutoff(q string, opts Options) bool {
	for _, m := range yearTokenRe.FindAllString(q, -1) {
		year, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if year >= 1900 && year < opts.YearCutoff {
			return true
		}
	}
	return false
}

// queryWantsReality reports whether the query contains the whole word
// "reality", which disables the reality-show filter
func queryWantsReality(q string) bool {
	return realityRe.MatchString(q)
}

// queryWantsShortForm reports whether the query asks for short-form content
func queryWantsShortForm(q string, opts Options) bool {
	for _, field := range strings.Fields(Normalize(q)) {
		for _, w := range opts.ShortFormWords {
			if field == w {
				return true
			}
		}
	}
	return false
}

// isAdultTitle flags titles that trip the adult-content heuristics
func isAdultTitle(title string, opts Options) bool {
	words := strings.Fields(Normalize(title))
	for _, w := range words {
		for _, kw := range opts.AdultBypassWords {
			if w == kw {
				return true
			}
		}
	}
	return false
}

// Filter applies the exclusion filters to raw candidates and dedupes by id,
// first occurrence winning. The filters are idempotent: re-running Filter on
// its own output returns the same set.
func Filter(items []models.ContentItem, query string, opts Options) []models.ContentItem {
	allowAdult := queryAllowsAdult(query, opts)
	waiveYears := queryWaivesYearCutoff(query, opts)
	allowReality := queryWantsReality(query)

	out := make([]models.ContentItem, 0, len(items))
	seen := make(map[int]struct{}, len(items))

	for _, item := range items {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		if opts.blocked(item.ID) {
			continue
		}
		if !allowAdult && (item.Adult || isAdultTitle(item.DisplayTitle(), opts)) {
			continue
		}
		if !waiveYears {
			// Items without a parseable date are kept
			if y, err := strconv.Atoi(item.ReleaseYear()); err == nil && y < opts.YearCutoff {
				continue
			}
		}
		if !allowReality {
			if item.HasGenre(opts.RealityGenreID) ||
				strings.Contains(strings.ToLower(item.DisplayTitle()), "reality") {
				continue
			}
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}
