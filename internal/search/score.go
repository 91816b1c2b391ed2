package search

import (
	"strings"
	"unicode"
)

// Score tiers. Anything between tiers comes from the subsequence ratio.
const (
	scoreExact      = 1.0
	scorePrefix     = 0.92
	scoreWordPrefix = 0.86
	scoreSubstring  = 0.72
)

// Normalize lowercases, strips everything but letters, digits and spaces,
// and collapses runs of whitespace to single spaces.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// Score rates how well a title matches a query. The query must already be
// normalized; the title is normalized here. Returns a value in [0, 1].
func Score(normQuery, title string) float64 {
	if normQuery == "" {
		return 0
	}
	normTitle := Normalize(title)
	if normTitle == "" {
		return 0
	}

	if normTitle == normQuery {
		return scoreExact
	}
	if strings.HasPrefix(normTitle, normQuery) {
		return scorePrefix
	}
	for _, word := range strings.Fields(normTitle) {
		if strings.HasPrefix(word, normQuery) {
			return scoreWordPrefix
		}
	}
	if strings.Contains(normTitle, normQuery) {
		return scoreSubstring
	}

	ratio := subsequenceRatio(normQuery, normTitle)
	switch {
	case ratio >= 0.8:
		return 0.6 + (ratio-0.8)*0.2
	case ratio >= 0.5:
		return 0.4 + (ratio-0.5)*0.2
	default:
		return 0
	}
}

// subsequenceRatio greedily consumes query runes in order against the title
// and returns matched/len(query)
func subsequenceRatio(query, title string) float64 {
	qr := []rune(query)
	matched := 0
	for _, r := range title {
		if matched < len(qr) && r == qr[matched] {
			matched++
		}
	}
	return float64(matched) / float64(len(qr))
}

// Threshold returns the minimum acceptance score for a normalized query.
// Short queries demand near-exact matches.
func Threshold(normQuery string) float64 {
	switch n := len([]rune(normQuery)); {
	case n <= 4:
		return 0.86
	case n <= 6:
		return 0.6
	default:
		return 0.5
	}
}
