package workers

import (
	"time"

	"github.com/atotto/clipboard"

	"github.com/julianstephens/dailydash/internal/logger"
	"github.com/julianstephens/dailydash/internal/session"
)

// ClipboardWatcher polls the OS clipboard and records new content into the
// session's bounded history. The feature flag is re-read every cycle so
// toggling it in settings takes effect within one poll interval.
type ClipboardWatcher struct {
	session  *session.Session
	interval time.Duration
	lastSeen string

	// read is swapped out by tests; defaults to the OS clipboard.
	read func() (string, error)
}

// NewClipboardWatcher returns a watcher bound to the shared session.
func NewClipboardWatcher(s *session.Session, interval time.Duration) *ClipboardWatcher {
	return &ClipboardWatcher{
		session:  s,
		interval: interval,
		read:     clipboard.ReadAll,
	}
}

// Prime records text as already-seen so copy-back operations do not
// immediately re-capture their own write.
func (w *ClipboardWatcher) Prime(text string) {
	w.lastSeen = text
}

// Run polls until stop is closed. Clipboard read failures are logged and the
// loop continues on the next interval; they never terminate the worker.
func (w *ClipboardWatcher) Run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-time.After(w.interval):
		}
		w.poll()
	}
}

func (w *ClipboardWatcher) poll() {
	if !w.session.Settings().ClipboardEnabled {
		return
	}

	text, err := w.read()
	if err != nil {
		logger.Debug("clipboard read failed", "error", err)
		return
	}
	if text == "" || text == w.lastSeen {
		return
	}
	w.lastSeen = text

	if _, err := w.session.AddClipboardEntry(text); err != nil {
		logger.Warn("failed to store clipboard entry", "error", err)
	}
}
