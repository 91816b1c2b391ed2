package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPageJSON = `{
	"page": %d,
	"total_pages": %d,
	"total_results": 3,
	"results": [
		{"id": 603, "media_type": "movie", "title": "The Matrix",
		 "release_date": "1999-03-30", "vote_average": 8.2, "popularity": 80.5,
		 "genre_ids": [28, 878]},
		{"id": 101, "media_type": "person", "name": "Keanu Reeves"},
		{"id": 1396, "media_type": "tv", "name": "Breaking Bad",
		 "first_air_date": "2008-01-20", "vote_average": 8.9, "popularity": 300.1}
	]
}`

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New("test-key")
	client.baseURL = server.URL
	client.http = server.Client()
	return client, server
}

func TestSearchMultiFiltersPeople(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		fmt.Fprintf(w, searchPageJSON, 1, 1)
	}))

	result, err := client.SearchMulti(context.Background(), "matrix", 1)
	require.NoError(t, err)

	require.Len(t, result.Results, 2, "person results must be dropped")
	assert.Equal(t, 603, result.Results[0].ID)
	assert.Equal(t, "movie", result.Results[0].MediaType)
	assert.Equal(t, 1396, result.Results[1].ID)
	assert.Equal(t, "tv", result.Results[1].MediaType)
}

func TestSearchAllStopsAtLastPage(t *testing.T) {
	var requests atomic.Int64
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		fmt.Fprintf(w, searchPageJSON, 1, 1)
	}))

	items, err := client.SearchAll(context.Background(), "matrix")
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.EqualValues(t, 1, requests.Load(), "total_pages=1 means no second fetch")
}

func TestMovieDetails(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		fmt.Fprint(w, `{"id": 603, "title": "The Matrix", "runtime": 136,
			"imdb_id": "tt0133093", "genres": [{"id": 28, "name": "Action"}]}`)
	}))

	details, err := client.MovieDetails(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, 136, details.Runtime)
	assert.Equal(t, 136, details.RuntimeMinutes())
	assert.Equal(t, "tt0133093", details.IMDBID)
}

func TestTVDetailsEpisodeRuntime(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/1396", r.URL.Path)
		fmt.Fprint(w, `{"id": 1396, "name": "Breaking Bad",
			"episode_run_time": [45, 47], "number_of_seasons": 5}`)
	}))

	details, err := client.TVDetails(context.Background(), 1396)
	require.NoError(t, err)
	assert.Zero(t, details.Runtime)
	assert.Equal(t, 45, details.RuntimeMinutes())
	assert.Equal(t, 5, details.NumberOfSeasons)
}

func TestGetUsesResponseCache(t *testing.T) {
	var requests atomic.Int64
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		fmt.Fprintf(w, searchPageJSON, 1, 1)
	}))

	_, err := client.SearchMulti(context.Background(), "matrix", 1)
	require.NoError(t, err)
	_, err = client.SearchMulti(context.Background(), "matrix", 1)
	require.NoError(t, err)

	assert.EqualValues(t, 1, requests.Load(), "second call must hit the cache")
}

func TestGetRetriesTransientFailures(t *testing.T) {
	var requests atomic.Int64
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, searchPageJSON, 1, 1)
	}))

	result, err := client.SearchMulti(context.Background(), "matrix", 1)
	require.NoError(t, err)
	assert.Len(t, result.Results, 2)
	assert.EqualValues(t, 2, requests.Load())
}

func TestGetDoesNotRetryClientErrors(t *testing.T) {
	var requests atomic.Int64
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.SearchMulti(context.Background(), "matrix", 1)
	assert.Error(t, err)
	assert.EqualValues(t, 1, requests.Load())
}

func TestImageURL(t *testing.T) {
	client := New("test-key")

	assert.Equal(t,
		"https://image.tmdb.org/t/p/w500/poster.jpg",
		client.ImageURL("/poster.jpg", ""))
	assert.Equal(t,
		"https://image.tmdb.org/t/p/original/poster.jpg",
		client.ImageURL("/poster.jpg", "original"))
	assert.Empty(t, client.ImageURL("", "w500"))
}

func TestIsConfigured(t *testing.T) {
	assert.True(t, New("key").IsConfigured())
	assert.False(t, New("").IsConfigured())
}
