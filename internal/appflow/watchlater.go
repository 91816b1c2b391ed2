package appflow

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/ktr0731/go-fuzzyfinder"

	"goflix/internal/models"
	"goflix/internal/search"
	"goflix/internal/watchlater"
)

// toggleWatchLater flips an item's presence on the watch-later list.
// Requires a signed-in session, matching the web app's auth gate.
func (a *App) toggleWatchLater(item search.Item) error {
	if !a.Session.SignedIn() {
		fmt.Println(dimStyle.Render("Sign in to use the watch-later list."))
		return nil
	}

	added, err := a.Store.Toggle(watchlater.Item{
		ID:        item.ID,
		MediaType: item.MediaType,
		Title:     item.DisplayTitle(),
		Poster:    item.PosterURL(""),
	})
	if err != nil {
		return err
	}
	if added {
		fmt.Println(okStyle.Render("✓ Added to watch later"))
	} else {
		fmt.Println(dimStyle.Render("Removed from watch later"))
	}
	return nil
}

// runWatchLater lists saved entries and lets the user watch or remove them
func (a *App) runWatchLater(ctx context.Context) error {
	if !a.Session.SignedIn() {
		fmt.Println(dimStyle.Render("Sign in to use the watch-later list."))
		return nil
	}

	items, err := a.Store.All()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println(dimStyle.Render("Your watch-later list is empty."))
		return nil
	}

	idx, err := fuzzyfinder.Find(
		items,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", items[i].Title, items[i].MediaType)
		},
	)
	if err != nil {
		return nil
	}
	picked := items[idx]

	var choice string
	menu := huh.NewSelect[string]().
		Title(picked.Title).
		Options(
			huh.NewOption("Watch now", "watch"),
			huh.NewOption("Remove from list", "remove"),
			huh.NewOption("Clear entire list", "clear"),
			huh.NewOption("Back", "back"),
		).
		Value(&choice)
	if err := menu.Run(); err != nil {
		return nil
	}

	switch choice {
	case "watch":
		return a.runWatch(ctx, models.ContentItem{
			ID:        picked.ID,
			MediaType: picked.MediaType,
			Title:     picked.Title,
		})
	case "remove":
		if err := a.Store.Remove(picked.ID, picked.MediaType); err != nil {
			return err
		}
		fmt.Println(dimStyle.Render("Removed from watch later"))
	case "clear":
		if err := a.Store.Clear(); err != nil {
			return err
		}
		fmt.Println(dimStyle.Render("Watch-later list cleared"))
	}
	return nil
}
