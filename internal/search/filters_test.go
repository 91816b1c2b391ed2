package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goflix/internal/models"
)

func movieItem(id int, title, date string) models.ContentItem {
	return models.ContentItem{
		ID:          id,
		MediaType:   models.MediaTypeMovie,
		Title:       title,
		ReleaseDate: date,
	}
}

func idsOf(items []models.ContentItem) []int {
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestFilterIdempotent(t *testing.T) {
	opts := DefaultOptions()
	items := []models.ContentItem{
		movieItem(1, "Heat", "1995-12-15"),
		movieItem(2, "Inception", "2010-07-16"),
		{ID: 3, MediaType: models.MediaTypeTV, Name: "Reality Kitchen", FirstAirDate: "2019-01-01"},
		movieItem(4, "Dune", "2021-10-22"),
		{ID: 5, MediaType: models.MediaTypeMovie, Title: "Explicit Content", ReleaseDate: "2015-01-01", Adult: true},
	}

	once := Filter(items, "sci fi movies", opts)
	twice := Filter(once, "sci fi movies", opts)
	assert.Equal(t, once, twice)
}

func TestFilterBlocklistAbsolute(t *testing.T) {
	opts := DefaultOptions()
	opts.Blocklist = []int{42}

	items := []models.ContentItem{
		movieItem(42, "Blocked Movie", "2020-01-01"),
		movieItem(7, "Allowed Movie", "2020-01-01"),
	}

	for _, query := range []string{"blocked movie", "blocked movie 1999", "adult blocked"} {
		out := Filter(items, query, opts)
		assert.NotContains(t, idsOf(out), 42, "query %q", query)
		assert.Contains(t, idsOf(out), 7, "query %q", query)
	}
}

func TestFilterYearCutoffWaiver(t *testing.T) {
	opts := DefaultOptions()
	item := movieItem(1, "The Heist", "2001-06-01")

	// Plain query: pre-cutoff items are dropped
	out := Filter([]models.ContentItem{item}, "heist movies", opts)
	assert.Empty(t, out)

	// A year token in range waives the cutoff for the whole query
	out = Filter([]models.ContentItem{item}, "heist 2001", opts)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].ID)

	// The waiver applies to all items, not just matching ones
	other := movieItem(2, "Old Caper", "1998-03-03")
	out = Filter([]models.ContentItem{item, other}, "heist 2001", opts)
	assert.ElementsMatch(t, []int{1, 2}, idsOf(out))

	// A year token at or past the cutoff does not waive
	out = Filter([]models.ContentItem{item}, "heist 2004", opts)
	assert.Empty(t, out)
}

func TestFilterYearFailOpen(t *testing.T) {
	opts := DefaultOptions()
	undated := models.ContentItem{ID: 9, MediaType: models.MediaTypeMovie, Title: "Mystery Film"}

	out := Filter([]models.ContentItem{undated}, "mystery film", opts)
	require.Len(t, out, 1)
	assert.Equal(t, 9, out[0].ID)
}

func TestFilterReality(t *testing.T) {
	opts := DefaultOptions()
	byGenre := models.ContentItem{
		ID: 1, MediaType: models.MediaTypeTV, Name: "Kitchen Wars",
		FirstAirDate: "2020-01-01", GenreIDs: []int{opts.RealityGenreID},
	}
	byTitle := models.ContentItem{
		ID: 2, MediaType: models.MediaTypeTV, Name: "Reality Bites Back",
		FirstAirDate: "2021-01-01",
	}
	drama := movieItem(3, "Quiet Drama", "2020-01-01")
	items := []models.ContentItem{byGenre, byTitle, drama}

	out := Filter(items, "cooking shows", opts)
	assert.ElementsMatch(t, []int{3}, idsOf(out))

	// Whole-word "reality" in the query disables the filter
	out = Filter(items, "reality shows", opts)
	assert.ElementsMatch(t, []int{1, 2, 3}, idsOf(out))

	// Substring is not enough
	out = Filter(items, "realityx shows", opts)
	assert.ElementsMatch(t, []int{3}, idsOf(out))
}

func TestFilterAdult(t *testing.T) {
	opts := DefaultOptions()
	flagged := models.ContentItem{
		ID: 1, MediaType: models.MediaTypeMovie, Title: "Some Film",
		ReleaseDate: "2020-01-01", Adult: true,
	}
	titled := movieItem(2, "Explicit Tapes", "2020-01-01")
	clean := movieItem(3, "Family Picnic", "2020-01-01")
	items := []models.ContentItem{flagged, titled, clean}

	out := Filter(items, "weekend movies", opts)
	assert.ElementsMatch(t, []int{3}, idsOf(out))

	// A bypass keyword in the query skips the adult filter entirely
	out = Filter(items, "explicit movies", opts)
	assert.ElementsMatch(t, []int{1, 2, 3}, idsOf(out))
}

func TestFilterDedupe(t *testing.T) {
	opts := DefaultOptions()
	first := movieItem(1, "Twin Release", "2020-01-01")
	first.Popularity = 10
	dup := movieItem(1, "Twin Release", "2020-01-01")
	dup.Popularity = 99

	out := Filter([]models.ContentItem{first, dup}, "twin release", opts)
	require.Len(t, out, 1)
	assert.Equal(t, float64(10), out[0].Popularity, "first occurrence wins")
}

func TestQueryWantsShortForm(t *testing.T) {
	opts := DefaultOptions()
	cases := []struct {
		query string
		want  bool
	}{
		{"funny clip compilation", true},
		{"short films", true},
		{"mini series", true},
		{"reel highlights", true},
		{"clips of cats", false}, // whole-word match only
		{"shortage documentary", false},
		{"regular movies", false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.query), func(t *testing.T) {
			assert.Equal(t, tc.want, queryWantsShortForm(tc.query, opts))
		})
	}
}
