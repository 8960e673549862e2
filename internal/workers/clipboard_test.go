package workers

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/dailydash/internal/session"
	"github.com/julianstephens/dailydash/internal/store"
)

func newClipboardFixture(t *testing.T, enabled bool) (*session.Session, *ClipboardWatcher) {
	t.Helper()
	dir := t.TempDir()
	s := session.New(store.New(dir), store.NewHistoryLog(dir))

	set := s.Settings()
	set.ClipboardEnabled = enabled
	if err := s.UpdateSettings(set); err != nil {
		t.Fatal(err)
	}

	return s, NewClipboardWatcher(s, time.Millisecond)
}

func TestClipboardPollRecordsNewContent(t *testing.T) {
	s, w := newClipboardFixture(t, true)
	w.read = func() (string, error) { return "copied text", nil }

	w.poll()

	hist := s.ClipboardHistory()
	if len(hist) != 1 || hist[0] != "copied text" {
		t.Errorf("history = %v", hist)
	}
}

func TestClipboardPollSkipsUnchangedContent(t *testing.T) {
	s, w := newClipboardFixture(t, true)
	w.read = func() (string, error) { return "same", nil }

	w.poll()
	w.poll()
	w.poll()

	if hist := s.ClipboardHistory(); len(hist) != 1 {
		t.Errorf("unchanged content stored %d times", len(hist))
	}
}

func TestClipboardPollRespectsDisabledFlag(t *testing.T) {
	s, w := newClipboardFixture(t, false)
	w.read = func() (string, error) { return "ignored", nil }

	w.poll()

	if hist := s.ClipboardHistory(); len(hist) != 0 {
		t.Errorf("disabled watcher stored %v", hist)
	}

	// Re-enabling takes effect on the next poll, no restart needed.
	set := s.Settings()
	set.ClipboardEnabled = true
	if err := s.UpdateSettings(set); err != nil {
		t.Fatal(err)
	}
	w.poll()
	if hist := s.ClipboardHistory(); len(hist) != 1 {
		t.Errorf("re-enabled watcher stored %v", hist)
	}
}

func TestClipboardPollSurvivesReadErrors(t *testing.T) {
	s, w := newClipboardFixture(t, true)
	calls := 0
	w.read = func() (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("no clipboard available")
		}
		return "after recovery", nil
	}

	w.poll()
	w.poll()

	hist := s.ClipboardHistory()
	if len(hist) != 1 || hist[0] != "after recovery" {
		t.Errorf("history = %v", hist)
	}
}

func TestClipboardPrimeSuppressesCopyBack(t *testing.T) {
	s, w := newClipboardFixture(t, true)
	w.read = func() (string, error) { return "entry one", nil }

	w.Prime("entry one")
	w.poll()

	if hist := s.ClipboardHistory(); len(hist) != 0 {
		t.Errorf("primed content should not be re-captured, got %v", hist)
	}
}

func TestClipboardSettingsSnapshotIsolated(t *testing.T) {
	// Settings() must hand out a copy; mutating it without UpdateSettings
	// should not affect the live aggregate.
	s, _ := newClipboardFixture(t, false)
	snapshot := s.Settings()
	snapshot.ClipboardEnabled = true

	if s.Settings().ClipboardEnabled {
		t.Error("snapshot mutation leaked into session state")
	}
}
