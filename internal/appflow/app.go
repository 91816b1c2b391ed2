// Package appflow wires the interactive terminal flows together: search,
// browse, watch, watch-later and account management.
package appflow

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/manifoldco/promptui"

	"goflix/internal/catalog"
	"goflix/internal/models"
	"goflix/internal/search"
	"goflix/internal/session"
	"goflix/internal/util"
	"goflix/internal/watchlater"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E50914")).
			Bold(true)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DDDDDD"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4")).
			Bold(true).
			Underline(true)

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00C853")).
			Bold(true)
)

// App holds everything the interactive flows need
type App struct {
	Catalog *catalog.Client
	Engine  *search.Engine
	Store   *watchlater.Store
	Session *session.Session
	DataDir string
}

// Run drives the main menu until the user quits
func (a *App) Run(ctx context.Context) error {
	for {
		items := []string{
			"Search",
			"Trending",
			"Popular",
			"Watch later",
			a.accountLabel(),
			"Quit",
		}

		prompt := promptui.Select{
			Label: headerStyle.Render("goflix"),
			Items: items,
			Size:  len(items),
		}
		idx, _, err := prompt.Run()
		if err != nil {
			// Ctrl-C / Esc quits
			return nil
		}

		switch idx {
		case 0:
			err = a.runSearch(ctx)
		case 1:
			err = a.runTrending(ctx)
		case 2:
			err = a.runPopular(ctx)
		case 3:
			err = a.runWatchLater(ctx)
		case 4:
			err = a.runAccount()
		case 5:
			return nil
		}
		if err != nil {
			fmt.Println(util.ErrorHandler(err))
		}
	}
}

func (a *App) accountLabel() string {
	if a.Session.SignedIn() {
		return "Sign out (" + a.Session.DisplayName + ")"
	}
	return "Sign in"
}

// printRow renders one content row: title, year, rating, type
func printRow(rank int, item models.ContentItem) {
	year := item.ReleaseYear()
	if year == "" {
		year = "----"
	}
	line := fmt.Sprintf("%2d. %s", rank, item.DisplayTitle())
	meta := fmt.Sprintf("  (%s, ★ %.1f, %s)", year, item.VoteAverage, item.MediaType)
	fmt.Println(rowStyle.Render(line) + dimStyle.Render(meta))
}
