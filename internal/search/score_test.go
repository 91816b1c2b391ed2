package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"The Matrix", "the matrix"},
		{"  Spider-Man: No Way Home!  ", "spiderman no way home"},
		{"WALL·E", "walle"},
		{"8½", "8"},
		{"a   b\t c", "a b c"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, Normalize(tc.input), "Normalize(%q)", tc.input)
	}
}

func TestScoreTiers(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		title    string
		expected float64
	}{
		{"exact match", "the matrix", "The Matrix", 1.0},
		{"exact after normalization", "spiderman", "Spider-Man", 1.0},
		{"title prefix", "the mat", "The Matrix", 0.92},
		{"word prefix", "mat", "The Matrix", 0.86},
		{"substring", "atri", "The Matrix", 0.72},
		{"empty query", "", "The Matrix", 0},
		{"empty title", "abc", "", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Score(tc.query, tc.title), 1e-9)
		})
	}
}

func TestScoreSubsequence(t *testing.T) {
	// "tmx" consumes t, m, x in order against "the matrix": ratio 1.0
	assert.InDelta(t, 0.64, Score("tmx", "The Matrix"), 1e-9)

	// "matrz" consumes m, a, t, r then stalls on z: ratio 0.8, lower edge of
	// the top band
	assert.InDelta(t, 0.6, Score("matrz", "The Matrix"), 1e-9)

	// "matzz" consumes m, a, t: ratio 0.6, middle band
	assert.InDelta(t, 0.42, Score("matzz", "The Matrix"), 1e-9)

	// "mazzz" consumes m, a: ratio 0.4, below both bands
	assert.InDelta(t, 0, Score("mazzz", "The Matrix"), 1e-9)
}

func TestThreshold(t *testing.T) {
	assert.InDelta(t, 0.86, Threshold("ab"), 1e-9)
	assert.InDelta(t, 0.86, Threshold("abcd"), 1e-9)
	assert.InDelta(t, 0.6, Threshold("abcde"), 1e-9)
	assert.InDelta(t, 0.6, Threshold("abcdef"), 1e-9)
	assert.InDelta(t, 0.5, Threshold("abcdefg"), 1e-9)
}

// An exact normalized match always scores 1.0 and beats every threshold
func TestExactMatchNeverThresholdedOut(t *testing.T) {
	titles := []string{"Up", "Heat", "Se7en", "The Shawshank Redemption"}
	for _, title := range titles {
		q := Normalize(title)
		score := Score(q, title)
		assert.InDelta(t, 1.0, score, 1e-9, "title %q", title)
		assert.GreaterOrEqual(t, score, Threshold(q))
	}
}

// For a two-letter query the bar is 0.86: a word-prefix match clears it, a
// plain substring match does not
func TestShortQueryThreshold(t *testing.T) {
	q := Normalize("ab")
	threshold := Threshold(q)
	assert.InDelta(t, 0.86, threshold, 1e-9)

	assert.GreaterOrEqual(t, Score(q, "Abandon"), threshold)
	assert.Less(t, Score(q, "Crab"), threshold)
}
