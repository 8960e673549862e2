// Package themes maps the theme setting to a lipgloss color palette.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme is the palette the TUI styles draw from.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Dim       lipgloss.Color
}

var themes = map[string]Theme{
	"default": {
		Name:      "default",
		Primary:   lipgloss.Color("39"),  // blue
		Secondary: lipgloss.Color("45"),  // cyan
		Accent:    lipgloss.Color("213"), // pink
		Success:   lipgloss.Color("42"),  // green
		Warning:   lipgloss.Color("214"), // orange
		Dim:       lipgloss.Color("241"),
	},
	"gruvbox": {
		Name:      "gruvbox",
		Primary:   lipgloss.Color("#83a598"),
		Secondary: lipgloss.Color("#8ec07c"),
		Accent:    lipgloss.Color("#d3869b"),
		Success:   lipgloss.Color("#b8bb26"),
		Warning:   lipgloss.Color("#fabd2f"),
		Dim:       lipgloss.Color("#928374"),
	},
	"dracula": {
		Name:      "dracula",
		Primary:   lipgloss.Color("#bd93f9"),
		Secondary: lipgloss.Color("#8be9fd"),
		Accent:    lipgloss.Color("#ff79c6"),
		Success:   lipgloss.Color("#50fa7b"),
		Warning:   lipgloss.Color("#ffb86c"),
		Dim:       lipgloss.Color("#6272a4"),
	},
	"nord": {
		Name:      "nord",
		Primary:   lipgloss.Color("#88c0d0"),
		Secondary: lipgloss.Color("#81a1c1"),
		Accent:    lipgloss.Color("#b48ead"),
		Success:   lipgloss.Color("#a3be8c"),
		Warning:   lipgloss.Color("#ebcb8b"),
		Dim:       lipgloss.Color("#4c566a"),
	},
}

// Get resolves a theme name, falling back to the default palette.
func Get(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}

// Names lists the available themes for the settings form.
func Names() []string {
	return []string{"default", "gruvbox", "dracula", "nord"}
}

// Known reports whether a theme name resolves without falling back.
func Known(name string) bool {
	_, ok := themes[name]
	return ok
}
