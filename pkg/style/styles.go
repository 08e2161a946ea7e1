// Package style defines the visual styling of unbrew's terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles bound to one output renderer, so color detection
// follows the stream being written rather than os.Stdout.
type Theme struct {
	Arrow   lipgloss.Style
	Title   lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Path    lipgloss.Style
	Muted   lipgloss.Style
}

// NewTheme builds the theme for r.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Arrow: r.NewStyle().
			Foreground(PrimaryColor).
			Bold(true),

		Title: r.NewStyle().
			Foreground(HeadingColor).
			Bold(true),

		Warning: r.NewStyle().
			Foreground(WarningColor).
			Bold(true),

		Error: r.NewStyle().
			Foreground(ErrorColor).
			Bold(true),

		Success: r.NewStyle().
			Foreground(SuccessColor).
			Bold(true),

		Path: r.NewStyle().
			Foreground(HeadingColor),

		Muted: r.NewStyle().
			Foreground(MutedColor),
	}
}

// Indent pads s by two spaces per level
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
