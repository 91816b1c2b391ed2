package util

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E50914")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4")).
			Bold(true)

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#45B7D1")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4757")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA726")).
			Bold(true)

	debugErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF4757")).
			Padding(1, 2)
)

// ErrorHandler returns a stylized error message. In debug mode the full
// wrapped error chain is shown.
func ErrorHandler(err error) string {
	if IsDebug {
		header := errorStyle.Render("DEBUG ERROR")
		body := debugErrorStyle.Render(fmt.Sprintf("%+v", err))
		return fmt.Sprintf("%s\n%s", header, body)
	}

	styledError := errorStyle.Render(fmt.Sprintf("✗ %v", err))
	hint := warningStyle.Render("run with -debug to see details")
	return fmt.Sprintf("%s\n%s", styledError, hint)
}

// Helper prints the help message
func Helper() {
	fmt.Println(titleStyle.Render("goflix - movie & TV search in your terminal"))
	fmt.Println()
	fmt.Println(helpStyle.Render("Usage:"))
	fmt.Println("  goflix " + optionStyle.Render("[options]"))
	fmt.Println()
	fmt.Println(helpStyle.Render("Options:"))
	fmt.Println("  " + optionStyle.Render("-debug") + "    enable debug mode with detailed logging")
	fmt.Println("  " + optionStyle.Render("-help, -h") + " show this help message")
	fmt.Println("  " + optionStyle.Render("-version") + "  show version information")
	fmt.Println()
	fmt.Println(helpStyle.Render("Environment:"))
	fmt.Println("  " + optionStyle.Render("TMDB_API_KEY") + "     catalog API key (required, .env supported)")
	fmt.Println("  " + optionStyle.Render("GOFLIX_DATA_DIR") + "  override the local data directory")
	fmt.Println()
}
