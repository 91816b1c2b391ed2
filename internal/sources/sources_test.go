package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goflix/internal/models"
)

func TestEmbedURLMovie(t *testing.T) {
	p, ok := ByID("vidsrc")
	require.True(t, ok)

	url, err := EmbedURL(p, models.MediaTypeMovie, 603, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "https://vidsrc.xyz/embed/movie/603", url)
}

func TestEmbedURLTV(t *testing.T) {
	p, ok := ByID("vidsrc")
	require.True(t, ok)

	url, err := EmbedURL(p, models.MediaTypeTV, 1396, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "https://vidsrc.xyz/embed/tv/1396/2/5", url)
}

func TestEmbedURLQueryStyleTemplate(t *testing.T) {
	p, ok := ByID("superembed")
	require.True(t, ok)

	url, err := EmbedURL(p, models.MediaTypeTV, 1396, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "https://multiembed.mov/?video_id=1396&tmdb=1&s=1&e=1", url)
}

func TestEmbedURLErrors(t *testing.T) {
	p, _ := ByID("vidsrc")

	_, err := EmbedURL(p, models.MediaTypeTV, 1396, 0, 1)
	assert.Error(t, err, "tv needs season and episode")

	_, err = EmbedURL(p, models.MediaTypeMovie, 0, 0, 0)
	assert.Error(t, err, "id is required")

	_, err = EmbedURL(p, "person", 1, 0, 0)
	assert.Error(t, err, "unsupported media type")
}

func TestByID(t *testing.T) {
	for _, p := range Providers() {
		found, ok := ByID(p.ID)
		assert.True(t, ok)
		assert.Equal(t, p.Name, found.Name)
	}

	_, ok := ByID("nope")
	assert.False(t, ok)
}
