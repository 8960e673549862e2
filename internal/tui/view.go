package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dailydash/internal/vitals"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewTasks(),
		" ",
		m.viewHabits(),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewHydration(),
		" ",
		m.viewFocus(),
	)

	flash := ""
	if m.flash != "" {
		flash = m.styles.flash.Render(m.flash)
	}

	ui := lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		top,
		bottom,
		flash,
		m.help.View(m.keys),
	)
	return m.styles.doc.Render(ui)
}

func (m Model) viewHeader() string {
	profile := m.deps.Session.Profile()
	parts := []string{
		m.styles.title.Render("dailydash"),
		m.styles.header.Render(m.now.Format("Mon Jan 2 15:04:05")),
	}
	if profile.City != "" {
		parts = append(parts, m.styles.header.Render(m.deps.Weather.Display(profile.City, profile.UnitSystem)))
	}
	parts = append(parts, m.styles.dim.Render(vitals.Snapshot()))
	return strings.Join(parts, "  |  ") + "\n"
}

func (m Model) viewTasks() string {
	var b strings.Builder
	b.WriteString(m.styles.label.Render("Today's Tasks") + "\n")
	for _, t := range m.deps.Session.Tasks() {
		switch {
		case t.Empty():
			b.WriteString(m.styles.dim.Render(fmt.Sprintf("%d. (empty)", t.ID)))
		case t.Done:
			b.WriteString(m.styles.done.Render(fmt.Sprintf("%d. ✔ %s", t.ID, t.Text)))
		default:
			line := fmt.Sprintf("%d. ✘ %s", t.ID, t.Text)
			if t.Budget != "" {
				line += m.styles.dim.Render(" (" + t.Budget + ")")
			}
			b.WriteString(m.styles.pending.Render(line))
		}
		b.WriteString("\n")
	}
	return m.styles.panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) viewHabits() string {
	habits := m.deps.Session.Habits()
	var b strings.Builder
	b.WriteString(m.styles.label.Render("Habits") + "\n")
	if len(habits) == 0 {
		b.WriteString(m.styles.dim.Render("none yet"))
		return m.styles.panel.Render(b.String())
	}
	status := m.deps.Session.Daily().HabitStatus
	for i, h := range habits {
		key := i + 4 // habit hotkeys start after the task slots
		if status[h] {
			b.WriteString(m.styles.done.Render(fmt.Sprintf("%d. ✔ %s", key, h)))
		} else {
			b.WriteString(m.styles.value.Render(fmt.Sprintf("%d. · %s", key, h)))
		}
		b.WriteString("\n")
	}
	return m.styles.panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) viewHydration() string {
	daily := m.deps.Session.Daily()
	profile := m.deps.Session.Profile()

	pct := 0.0
	if profile.DailyWaterGoal > 0 {
		pct = float64(daily.WaterIntake) / float64(profile.DailyWaterGoal)
		if pct > 1 {
			pct = 1
		}
	}

	var b strings.Builder
	b.WriteString(m.styles.label.Render("Hydration") + "\n")
	b.WriteString(m.water.ViewAs(pct) + "\n")
	b.WriteString(m.styles.value.Render(m.deps.Session.WaterStatus()) + "\n")
	b.WriteString(m.styles.value.Render(fmt.Sprintf("Caffeine: %dmg", daily.CaffeineIntake)))
	return m.styles.panel.Render(b.String())
}

func (m Model) viewFocus() string {
	var b strings.Builder
	b.WriteString(m.styles.label.Render("Focus") + "\n")
	b.WriteString(m.styles.value.Render("Timer: "+m.deps.Workers.Timer.Status()) + "\n")

	noise := "off"
	if m.deps.Audio.NoisePlaying() {
		noise = "playing"
	}
	b.WriteString(m.styles.value.Render("Noise: "+noise) + "\n")
	b.WriteString(m.styles.dim.Render(fmt.Sprintf("%d notes, %d links parked",
		len(m.deps.Session.Notes()), len(m.deps.Session.Links()))))
	return m.styles.panel.Render(b.String())
}
