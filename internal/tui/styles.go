package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dailydash/internal/themes"
)

// styles is rebuilt from the active theme when the model is constructed.
type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	panel   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	done    lipgloss.Style
	pending lipgloss.Style
	dim     lipgloss.Style
	warning lipgloss.Style
	flash   lipgloss.Style
	doc     lipgloss.Style
}

func newStyles(t themes.Theme) styles {
	return styles{
		title: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		header: lipgloss.NewStyle().
			Foreground(t.Dim),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),
		label: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),
		value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		done: lipgloss.NewStyle().
			Foreground(t.Success),
		pending: lipgloss.NewStyle().
			Foreground(t.Warning),
		dim: lipgloss.NewStyle().
			Foreground(t.Dim),
		warning: lipgloss.NewStyle().
			Foreground(t.Warning).
			Italic(true),
		flash: lipgloss.NewStyle().
			Foreground(t.Accent).
			Italic(true),
		doc: lipgloss.NewStyle().
			Padding(1, 2),
	}
}
