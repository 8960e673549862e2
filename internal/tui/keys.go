package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Water     key.Binding
	UndoWater key.Binding
	Coffee    key.Binding
	Task      key.Binding
	Habit     key.Binding
	Timer     key.Binding
	StopTimer key.Binding
	Noise     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Water: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "drink water"),
		),
		UndoWater: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo water"),
		),
		Coffee: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "coffee"),
		),
		Task: key.NewBinding(
			key.WithKeys("1", "2", "3"),
			key.WithHelp("1-3", "toggle task"),
		),
		Habit: key.NewBinding(
			key.WithKeys("4", "5", "6", "7", "8"),
			key.WithHelp("4-8", "toggle habit"),
		),
		Timer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "focus timer"),
		),
		StopTimer: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "cancel timer"),
		),
		Noise: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "noise"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Water, k.Coffee, k.Task, k.Timer, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Water, k.UndoWater, k.Coffee},
		{k.Task, k.Habit},
		{k.Timer, k.StopTimer, k.Noise},
		{k.Help, k.Quit},
	}
}
