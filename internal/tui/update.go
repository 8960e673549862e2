package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dailydash/internal/constants"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		if m.flash != "" && m.now.After(m.flashUntil) {
			m.flash = ""
		}
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Water):
		if _, err := m.deps.Session.AddWater(); err != nil {
			m.setFlash(err.Error())
		} else {
			m.setFlash("Glug glug!")
		}
		return m, nil

	case key.Matches(msg, m.keys.UndoWater):
		if _, err := m.deps.Session.UndoWater(); err != nil {
			m.setFlash(err.Error())
		} else {
			m.setFlash("Water undone.")
		}
		return m, nil

	case key.Matches(msg, m.keys.Coffee):
		if _, err := m.deps.Session.AddCaffeine(); err != nil {
			m.setFlash(err.Error())
		} else {
			m.setFlash("Coffee time!")
		}
		return m, nil

	case key.Matches(msg, m.keys.Task):
		id, _ := strconv.Atoi(msg.String())
		if err := m.deps.Session.ToggleTask(id); err != nil {
			m.setFlash(err.Error())
		}
		return m, nil

	case key.Matches(msg, m.keys.Habit):
		n, _ := strconv.Atoi(msg.String())
		name, done, err := m.deps.Session.ToggleHabit(n - 3)
		switch {
		case err != nil:
			m.setFlash(err.Error())
		case done:
			m.setFlash(name + " done!")
		default:
			m.setFlash(name + " unmarked.")
		}
		return m, nil

	case key.Matches(msg, m.keys.Timer):
		d := time.Duration(constants.DefaultFocusMinutes) * time.Minute
		if err := m.deps.Workers.Timer.Start(d); err != nil {
			m.setFlash(err.Error())
		} else {
			m.setFlash(fmt.Sprintf("Focus timer: %d minutes.", constants.DefaultFocusMinutes))
		}
		return m, nil

	case key.Matches(msg, m.keys.StopTimer):
		m.deps.Workers.Timer.Cancel()
		m.setFlash("Timer cancelled.")
		return m, nil

	case key.Matches(msg, m.keys.Noise):
		if m.deps.Audio.ToggleNoise() {
			m.setFlash("Background noise on.")
		} else {
			m.setFlash("Background noise off.")
		}
		return m, nil
	}
	return m, nil
}
