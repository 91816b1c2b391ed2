package appflow

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"goflix/internal/models"
	"goflix/internal/sources"
	"goflix/internal/util"
)

// runWatch picks an embed provider, asks for season/episode on TV content,
// and prints the resolved playback URL. Playback itself happens in the
// user's browser; there is no video delivery here.
func (a *App) runWatch(ctx context.Context, item models.ContentItem) error {
	providers := sources.Providers()
	options := make([]huh.Option[string], 0, len(providers))
	for _, p := range providers {
		options = append(options, huh.NewOption(p.Name, p.ID))
	}

	var providerID string
	menu := huh.NewSelect[string]().
		Title("Choose a source").
		Options(options...).
		Value(&providerID)
	if err := menu.Run(); err != nil {
		return nil
	}
	provider, _ := sources.ByID(providerID)

	season, episode := 0, 0
	if item.MediaType == models.MediaTypeTV {
		details, err := a.Catalog.TVDetails(ctx, item.ID)
		if err != nil {
			util.Debug("could not load season info", "id", item.ID, "error", err)
		} else if details.NumberOfSeasons > 0 {
			fmt.Println(dimStyle.Render(fmt.Sprintf(
				"%s has %d season(s), %d episode(s)",
				item.DisplayTitle(), details.NumberOfSeasons, details.NumberOfEpisodes)))
		}

		season, err = promptInt("Season", 1)
		if err != nil {
			return nil
		}
		episode, err = promptInt("Episode", 1)
		if err != nil {
			return nil
		}
	}

	url, err := sources.EmbedURL(provider, item.MediaType, item.ID, season, episode)
	if err != nil {
		return errors.Wrap(err, "failed to build embed URL")
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("▶ " + item.DisplayTitle()))
	fmt.Println("open in your browser: " + urlStyle.Render(url))
	fmt.Println()
	return nil
}

// promptInt asks for a positive integer with a default
func promptInt(label string, def int) (int, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: strconv.Itoa(def),
		Validate: func(input string) error {
			n, err := strconv.Atoi(input)
			if err != nil || n < 1 {
				return errors.New("enter a positive number")
			}
			return nil
		},
	}
	value, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}
