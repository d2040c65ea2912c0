package color

import "github.com/charmbracelet/lipgloss"

// Fg returns a stateless rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return lipgloss.NewStyle().Foreground(c).Render(s) }
}

// Standard text transformations used by the CLI.
var (
	Faint = func(s string) string { return lipgloss.NewStyle().Faint(true).Render(s) }
	Bold  = func(s string) string { return lipgloss.NewStyle().Bold(true).Render(s) }
)
