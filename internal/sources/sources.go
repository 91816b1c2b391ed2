// Package sources holds the static table of third-party embed providers.
// Selecting a provider is pure string substitution on a URL template.
package sources

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"goflix/internal/models"
)

// Provider is an embed provider with URL templates parameterized by {id},
// {season} and {episode}
type Provider struct {
	ID            string
	Name          string
	MovieTemplate string
	TVTemplate    string
}

var providers = []Provider{
	{
		ID:            "vidsrc",
		Name:          "VidSrc",
		MovieTemplate: "https://vidsrc.xyz/embed/movie/{id}",
		TVTemplate:    "https://vidsrc.xyz/embed/tv/{id}/{season}/{episode}",
	},
	{
		ID:            "vidlink",
		Name:          "VidLink",
		MovieTemplate: "https://vidlink.pro/movie/{id}",
		TVTemplate:    "https://vidlink.pro/tv/{id}/{season}/{episode}",
	},
	{
		ID:            "superembed",
		Name:          "SuperEmbed",
		MovieTemplate: "https://multiembed.mov/?video_id={id}&tmdb=1",
		TVTemplate:    "https://multiembed.mov/?video_id={id}&tmdb=1&s={season}&e={episode}",
	},
	{
		ID:            "autoembed",
		Name:          "AutoEmbed",
		MovieTemplate: "https://player.autoembed.cc/embed/movie/{id}",
		TVTemplate:    "https://player.autoembed.cc/embed/tv/{id}/{season}/{episode}",
	},
}

// Providers returns the embed provider table
func Providers() []Provider {
	return providers
}

// ByID looks up a provider by its id
func ByID(id string) (Provider, bool) {
	for _, p := range providers {
		if p.ID == id {
			return p, true
		}
	}
	return Provider{}, false
}

// EmbedURL builds the playback URL for a content item on the given provider.
// Season and episode are only used for TV shows.
func EmbedURL(p Provider, mediaType string, id, season, episode int) (string, error) {
	if id <= 0 {
		return "", errors.New("content id is required")
	}

	switch mediaType {
	case models.MediaTypeMovie:
		return substitute(p.MovieTemplate, id, 0, 0), nil
	case models.MediaTypeTV:
		if season <= 0 || episode <= 0 {
			return "", errors.New("season and episode are required for tv content")
		}
		return substitute(p.TVTemplate, id, season, episode), nil
	default:
		return "", errors.Errorf("unsupported media type: %s", mediaType)
	}
}

func substitute(template string, id, season, episode int) string {
	url := strings.ReplaceAll(template, "{id}", strconv.Itoa(id))
	url = strings.ReplaceAll(url, "{season}", strconv.Itoa(season))
	url = strings.ReplaceAll(url, "{episode}", strconv.Itoa(episode))
	return url
}
