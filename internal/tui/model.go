// Package tui renders the live dashboard: hydration, tasks, habits, the
// focus timer and the ambient header, refreshed once a second.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dailydash/internal/audio"
	"github.com/julianstephens/dailydash/internal/session"
	"github.com/julianstephens/dailydash/internal/themes"
	"github.com/julianstephens/dailydash/internal/weather"
	"github.com/julianstephens/dailydash/internal/workers"
)

// Deps carries the shared application objects into the dashboard.
type Deps struct {
	Session *session.Session
	Workers *workers.Manager
	Weather *weather.Client
	Audio   *audio.Manager
}

type Model struct {
	deps   Deps
	keys   KeyMap
	help   help.Model
	styles styles
	water  progress.Model

	now        time.Time
	flash      string
	flashUntil time.Time
	width      int
	height     int
	quitting   bool
}

func NewModel(deps Deps) Model {
	theme := themes.Get(deps.Session.Settings().Theme)
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30

	return Model{
		deps:   deps,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: newStyles(theme),
		water:  bar,
		now:    time.Now(),
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// setFlash posts a transient one-line status under the panels.
func (m *Model) setFlash(text string) {
	m.flash = text
	m.flashUntil = m.now.Add(3 * time.Second)
}
