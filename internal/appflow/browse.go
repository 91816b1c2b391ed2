package appflow

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"goflix/internal/models"
)

// runTrending shows trending content for a chosen time window
func (a *App) runTrending(ctx context.Context) error {
	var window string
	menu := huh.NewSelect[string]().
		Title("Trending").
		Options(
			huh.NewOption("Today", "day"),
			huh.NewOption("This week", "week"),
		).
		Value(&window)
	if err := menu.Run(); err != nil {
		return nil
	}

	var result *models.SearchResult
	var err error
	_ = spinner.New().
		Title("Loading trending...").
		Type(spinner.Dots).
		Action(func() {
			result, err = a.Catalog.Trending(ctx, "all", window)
		}).
		Run()
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("Trending"))
	for i, item := range result.Results {
		if i >= 20 {
			break
		}
		printRow(i+1, item)
	}
	return nil
}

// runPopular shows popular movies or TV shows
func (a *App) runPopular(ctx context.Context) error {
	var mediaType string
	menu := huh.NewSelect[string]().
		Title("Popular").
		Options(
			huh.NewOption("Movies", models.MediaTypeMovie),
			huh.NewOption("TV shows", models.MediaTypeTV),
		).
		Value(&mediaType)
	if err := menu.Run(); err != nil {
		return nil
	}

	var result *models.SearchResult
	var err error
	_ = spinner.New().
		Title("Loading popular...").
		Type(spinner.Dots).
		Action(func() {
			result, err = a.Catalog.Popular(ctx, mediaType)
		}).
		Run()
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("Popular"))
	for i, item := range result.Results {
		if i >= 20 {
			break
		}
		printRow(i+1, item)
	}
	return nil
}
