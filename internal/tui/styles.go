package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/pastel/internal/config"
)

// rowText is the foreground of todo rows; category colors are light pastels
const rowText = "#000000"

type styles struct {
	title       lipgloss.Style
	subtle      lipgloss.Style
	accent      lipgloss.Style
	done        lipgloss.Style
	cursor      lipgloss.Style
	errorBanner lipgloss.Style
	prompt      lipgloss.Style
	statusBar   lipgloss.Style
}

func newStyles(theme config.Theme) styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title)),
		subtle: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)),
		accent: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)),
		done:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Done)),
		cursor: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent)),
		errorBanner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.ErrorFg)).
			Background(lipgloss.Color(theme.ErrorBg)).
			Padding(0, 1),
		prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent)),
		statusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Normal)).
			Background(lipgloss.Color(theme.Selected)).
			Padding(0, 1),
	}
}

// row renders a todo row on its category color
func (s styles) row(color string, done bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(rowText)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
	if done {
		style = style.Strikethrough(true)
	}
	return style
}
