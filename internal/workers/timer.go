package workers

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/dailydash/internal/apperr"
	"github.com/julianstephens/dailydash/internal/logger"
)

// FocusTimer is a single deferred action per start, not a polling loop. Each
// start stamps a fresh instance id; the completion goroutine fires only if
// its id is still the active one when it wakes, so starting a new timer (or
// cancelling) silently invalidates any in-flight completion without needing
// to interrupt a sleeping goroutine.
type FocusTimer struct {
	mu       sync.Mutex
	activeID string
	endAt    time.Time

	// after is swapped out by tests to wake completions deterministically.
	after  func(d time.Duration) <-chan time.Time
	onDone func()
}

// NewFocusTimer returns a timer that invokes onDone when a start runs to
// completion without being superseded.
func NewFocusTimer(onDone func()) *FocusTimer {
	return &FocusTimer{
		after:  time.After,
		onDone: onDone,
	}
}

// Start schedules a completion after d, superseding any running timer.
func (t *FocusTimer) Start(d time.Duration) error {
	if d <= 0 {
		return apperr.Invalidf("timer duration must be positive")
	}

	id := uuid.NewString()
	t.mu.Lock()
	t.activeID = id
	t.endAt = time.Now().Add(d)
	t.mu.Unlock()
	logger.Debug("focus timer started", "id", id, "duration", d)

	wake := t.after(d)
	go func() {
		<-wake
		t.mu.Lock()
		current := t.activeID == id
		if current {
			t.activeID = ""
		}
		t.mu.Unlock()

		if current && t.onDone != nil {
			t.onDone()
		}
	}()
	return nil
}

// Cancel stops the active timer; a completion already sleeping becomes a
// no-op when it wakes.
func (t *FocusTimer) Cancel() {
	t.mu.Lock()
	t.activeID = ""
	t.mu.Unlock()
}

// Remaining returns the time left and whether a timer is running.
func (t *FocusTimer) Remaining() (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.activeID == "" {
		return 0, false
	}
	left := time.Until(t.endAt)
	if left < 0 {
		left = 0
	}
	return left, true
}

// Status renders the countdown for the dashboard, "MM:SS" or "IDLE".
func (t *FocusTimer) Status() string {
	left, running := t.Remaining()
	if !running {
		return "IDLE"
	}
	total := int(left.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
