package workers

import (
	"time"

	"github.com/julianstephens/dailydash/internal/constants"
	"github.com/julianstephens/dailydash/internal/logger"
)

// Reminder is a nag loop with two tiers of sleep: the full interval while the
// feature is enabled, a short poll while disabled. The short poll keeps a
// toggle from being delayed by up to the full interval, and the flag is
// re-checked after the long sleep because it may have flipped mid-wait.
type Reminder struct {
	name     string
	interval time.Duration
	poll     time.Duration
	enabled  func() bool
	fire     func()
}

// NewReminder builds a reminder loop. enabled is consulted every cycle; fire
// runs only when the flag is still set after a full interval.
func NewReminder(name string, interval time.Duration, enabled func() bool, fire func()) *Reminder {
	return &Reminder{
		name:     name,
		interval: interval,
		poll:     constants.DisabledPollInterval,
		enabled:  enabled,
		fire:     fire,
	}
}

// Run loops until stop is closed. Each iteration recovers from fire panics by
// logging, so a bad notification never kills the worker.
func (r *Reminder) Run(stop <-chan struct{}) {
	for {
		if !r.enabled() {
			select {
			case <-stop:
				return
			case <-time.After(r.poll):
			}
			continue
		}

		select {
		case <-stop:
			return
		case <-time.After(r.interval):
		}

		if !r.enabled() {
			continue
		}
		r.safeFire()
	}
}

func (r *Reminder) safeFire() {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("reminder fire panicked", "reminder", r.name, "panic", rec)
		}
	}()
	logger.Debug("reminder firing", "reminder", r.name)
	r.fire()
}
