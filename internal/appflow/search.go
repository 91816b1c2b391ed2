package appflow

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/manifoldco/promptui"

	"goflix/internal/search"
	"goflix/internal/util"
)

// runSearch prompts for a query, runs the pipeline and lets the user act on
// a picked result. The runtime enrichment pass runs in the background and
// refreshes the engine's visible set when it lands in time.
func (a *App) runSearch(ctx context.Context) error {
	prompt := promptui.Prompt{Label: "Search movies & TV"}
	query, err := prompt.Run()
	if err != nil {
		return nil
	}

	var results *search.Results
	var searchErr error
	_ = spinner.New().
		Title("Searching...").
		Type(spinner.Dots).
		Action(func() {
			results, searchErr = a.Engine.Search(ctx, query)
		}).
		Run()
	if searchErr != nil {
		util.Error("search failed", "query", query, "error", searchErr)
		fmt.Println(dimStyle.Render("No results."))
		return nil
	}
	if len(results.Visible) == 0 {
		fmt.Println(dimStyle.Render("No results."))
		return nil
	}

	// Stage 4 runs deferred; a stale pass is discarded by the engine
	if a.Engine.NeedsEnrichment(query) {
		go func() {
			if refined, ok := a.Engine.Enrich(ctx, results); ok {
				util.Debug("results refined", "query", query, "visible", len(refined))
			}
		}()
	}

	for {
		items := a.Engine.Visible()
		if len(items) == 0 {
			fmt.Println(dimStyle.Render("No results."))
			return nil
		}

		idx, err := fuzzyfinder.Find(
			items,
			func(i int) string {
				year := items[i].ReleaseYear()
				if year == "" {
					return items[i].DisplayTitle()
				}
				return fmt.Sprintf("%s (%s)", items[i].DisplayTitle(), year)
			},
		)
		if err != nil {
			// Esc returns to the menu
			return nil
		}

		again, err := a.runItemMenu(ctx, items[idx])
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// runItemMenu shows the per-item actions. Returns true to go back to the
// result list.
func (a *App) runItemMenu(ctx context.Context, item search.Item) (bool, error) {
	for {
		var choice string
		menu := huh.NewSelect[string]().
			Title(item.DisplayTitle()).
			Description(itemSummary(item)).
			Options(
				huh.NewOption("Watch now", "watch"),
				huh.NewOption("Toggle watch later", "watchlater"),
				huh.NewOption("Change sort order", "sort"),
				huh.NewOption("Back to results", "back"),
			).
			Value(&choice)
		if err := menu.Run(); err != nil {
			return false, nil
		}

		switch choice {
		case "watch":
			if err := a.runWatch(ctx, item.ContentItem); err != nil {
				return false, err
			}
		case "watchlater":
			if err := a.toggleWatchLater(item); err != nil {
				return false, err
			}
		case "sort":
			a.runResort()
			return true, nil
		case "back":
			return true, nil
		}
	}
}

// runResort applies a user-selected ordering to the current visible set
func (a *App) runResort() {
	var mode search.SortMode
	menu := huh.NewSelect[search.SortMode]().
		Title("Sort results by").
		Options(
			huh.NewOption("Relevance", search.SortRelevance),
			huh.NewOption("Popularity", search.SortPopularity),
			huh.NewOption("Rating", search.SortRating),
			huh.NewOption("Release year", search.SortYear),
			huh.NewOption("Title", search.SortTitle),
		).
		Value(&mode)
	if err := menu.Run(); err != nil {
		return
	}

	for i, item := range a.Engine.Resort(mode) {
		printRow(i+1, item.ContentItem)
	}
}

func itemSummary(item search.Item) string {
	summary := item.MediaType
	if year := item.ReleaseYear(); year != "" {
		summary += " · " + year
	}
	if item.VoteAverage > 0 {
		summary += fmt.Sprintf(" · ★ %.1f", item.VoteAverage)
	}
	if len(item.Overview) > 160 {
		return summary + "\n" + item.Overview[:160] + "..."
	}
	if item.Overview != "" {
		return summary + "\n" + item.Overview
	}
	return summary
}
