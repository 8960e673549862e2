// Package workers hosts the background loops that share the session. Loops
// run as daemon goroutines for the process lifetime; Stop exists so the TUI
// can shut them down cleanly on exit.
package workers

import (
	"github.com/julianstephens/dailydash/internal/constants"
	"github.com/julianstephens/dailydash/internal/session"
)

// Notify is the callback workers use to reach the user: a desktop
// notification plus an optional chime.
type Notify func(title, body string)

// Manager owns the worker goroutines and their shared stop channel.
type Manager struct {
	Timer *FocusTimer

	clipboard *ClipboardWatcher
	eyeStrain *Reminder
	standUp   *Reminder
	stop      chan struct{}
}

// NewManager wires the workers to the shared session. notify delivers
// reminder and timer-completion messages.
func NewManager(s *session.Session, notify Notify) *Manager {
	m := &Manager{
		stop:      make(chan struct{}),
		clipboard: NewClipboardWatcher(s, constants.ClipboardPollInterval),
	}
	m.Timer = NewFocusTimer(func() {
		notify("Focus timer", "Time is up!")
	})
	m.eyeStrain = NewReminder("eye-strain", constants.EyeStrainInterval,
		func() bool { return s.Settings().NagEyeStrain },
		func() { notify("Eye strain", "Look at something 20 feet away for 20 seconds.") })
	m.standUp = NewReminder("stand-up", constants.StandUpInterval,
		func() bool { return s.Settings().NagStandUp },
		func() { notify("Stand up", "You have been sitting for an hour. Stretch!") })
	return m
}

// Clipboard exposes the watcher for copy-back priming.
func (m *Manager) Clipboard() *ClipboardWatcher { return m.clipboard }

// Start launches every worker loop.
func (m *Manager) Start() {
	go m.clipboard.Run(m.stop)
	go m.eyeStrain.Run(m.stop)
	go m.standUp.Run(m.stop)
}

// Stop signals all loops to exit. The focus timer needs no explicit stop: a
// superseded or stale completion invalidates itself.
func (m *Manager) Stop() {
	close(m.stop)
}
