package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/julianstephens/dailydash/internal/apperr"
	"github.com/julianstephens/dailydash/internal/constants"
	"github.com/julianstephens/dailydash/internal/store"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	dir := t.TempDir()
	return New(store.New(dir), store.NewHistoryLog(dir))
}

func TestWaterAddUndo(t *testing.T) {
	s := newTestSession(t)

	total, err := s.AddWater()
	if err != nil {
		t.Fatal(err)
	}
	if total != constants.DefaultContainerML {
		t.Errorf("after one add total = %d, want %d", total, constants.DefaultContainerML)
	}

	total, err = s.UndoWater()
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 {
		t.Errorf("add then undo should restore prior value, got %d", total)
	}
}

func TestWaterNeverNegative(t *testing.T) {
	s := newTestSession(t)

	for i := 0; i < 5; i++ {
		total, err := s.UndoWater()
		if err != nil {
			t.Fatal(err)
		}
		if total < 0 {
			t.Fatalf("intake went negative: %d", total)
		}
	}
}

func TestCaffeineAddUndo(t *testing.T) {
	s := newTestSession(t)

	if _, err := s.AddCaffeine(); err != nil {
		t.Fatal(err)
	}
	total, err := s.AddCaffeine()
	if err != nil {
		t.Fatal(err)
	}
	if total != 2*constants.DefaultCaffeineMG {
		t.Errorf("total = %d", total)
	}

	if _, err := s.UndoCaffeine(); err != nil {
		t.Fatal(err)
	}
	total, _ = s.UndoCaffeine()
	if total != 0 {
		t.Errorf("total after full undo = %d", total)
	}
	total, _ = s.UndoCaffeine()
	if total != 0 {
		t.Errorf("undo below zero should floor, got %d", total)
	}
}

func TestWaterStatusFormat(t *testing.T) {
	s := newTestSession(t)

	// container_size=250, goal=2000; three adds then one undo => 500ml (25%)
	for i := 0; i < 3; i++ {
		if _, err := s.AddWater(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.UndoWater(); err != nil {
		t.Fatal(err)
	}

	want := "500ml / 2000ml (25%)"
	if got := s.WaterStatus(); got != want {
		t.Errorf("WaterStatus() = %q, want %q", got, want)
	}
}

func TestTaskSlotsFillInOrder(t *testing.T) {
	s := newTestSession(t)

	for i, text := range []string{"first", "second", "third"} {
		id, err := s.AddTask(text, "")
		if err != nil {
			t.Fatalf("AddTask(%q) failed: %v", text, err)
		}
		if id != i+1 {
			t.Errorf("AddTask(%q) filled slot %d, want %d", text, id, i+1)
		}
	}

	_, err := s.AddTask("fourth", "")
	if !errors.Is(err, apperr.ErrCapacity) {
		t.Errorf("fourth add should report capacity, got %v", err)
	}

	// State unchanged by the failed add.
	tasks := s.Tasks()
	for i, want := range []string{"first", "second", "third"} {
		if tasks[i].Text != want {
			t.Errorf("slot %d = %q, want %q", i+1, tasks[i].Text, want)
		}
	}
}

func TestTaskFillsFirstEmptySlot(t *testing.T) {
	s := newTestSession(t)

	for _, text := range []string{"a", "b", "c"} {
		if _, err := s.AddTask(text, ""); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.ClearTask(2); err != nil {
		t.Fatal(err)
	}

	id, err := s.AddTask("d", "15m")
	if err != nil {
		t.Fatal(err)
	}
	if id != 2 {
		t.Errorf("new task should reuse cleared slot 2, got %d", id)
	}
	if got := s.Tasks()[1].Budget; got != "15m" {
		t.Errorf("budget = %q", got)
	}
}

func TestTaskCompleteVsClear(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.AddTask("write tests", "30m"); err != nil {
		t.Fatal(err)
	}

	if err := s.CompleteTask(1); err != nil {
		t.Fatal(err)
	}
	got := s.Tasks()[0]
	if !got.Done || got.Text != "write tests" {
		t.Errorf("complete should keep text and set done, got %+v", got)
	}

	if err := s.ClearTask(1); err != nil {
		t.Fatal(err)
	}
	got = s.Tasks()[0]
	if !got.Empty() || got.Done || got.Budget != "" {
		t.Errorf("clear should deallocate the slot, got %+v", got)
	}
}

func TestTaskNotFound(t *testing.T) {
	s := newTestSession(t)

	tests := []struct {
		name string
		id   int
	}{
		{name: "zero", id: 0},
		{name: "out of range", id: 4},
		{name: "empty slot", id: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.CompleteTask(tt.id); !errors.Is(err, apperr.ErrNotFound) {
				t.Errorf("CompleteTask(%d) = %v, want not found", tt.id, err)
			}
		})
	}
}

func TestHabitAddLimits(t *testing.T) {
	s := newTestSession(t)

	for i := 0; i < constants.MaxHabits; i++ {
		if err := s.AddHabit(fmt.Sprintf("habit-%d", i)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.AddHabit("one-too-many"); !errors.Is(err, apperr.ErrCapacity) {
		t.Errorf("over-limit add = %v, want capacity", err)
	}
}

func TestHabitDuplicateRejected(t *testing.T) {
	s := newTestSession(t)

	if err := s.AddHabit("code"); err != nil {
		t.Fatal(err)
	}
	if err := s.AddHabit("code"); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("duplicate add = %v, want invalid input", err)
	}
	// Case-sensitive exact match: a different casing is a different habit.
	if err := s.AddHabit("Code"); err != nil {
		t.Errorf("differently-cased habit rejected: %v", err)
	}
}

func TestHabitStatusNeverOrphans(t *testing.T) {
	s := newTestSession(t)

	check := func(step string) {
		t.Helper()
		habits := s.Habits()
		status := s.Daily().HabitStatus
		if len(status) != len(habits) {
			t.Fatalf("%s: %d status keys for %d habits", step, len(status), len(habits))
		}
		for _, h := range habits {
			if _, ok := status[h]; !ok {
				t.Fatalf("%s: missing status key for %q", step, h)
			}
		}
	}

	s.AddHabit("code")
	s.AddHabit("no_sugar")
	s.AddHabit("walk")
	check("after adds")

	if _, _, err := s.ToggleHabit(2); err != nil {
		t.Fatal(err)
	}
	check("after toggle")

	if _, err := s.DeleteHabit(2); err != nil {
		t.Fatal(err)
	}
	check("after delete")

	if err := s.RolloverDay(); err != nil {
		t.Fatal(err)
	}
	check("after rollover")

	s.AddHabit("read")
	check("after re-add")

	for len(s.Habits()) > 0 {
		if _, err := s.DeleteHabit(1); err != nil {
			t.Fatal(err)
		}
		check("during teardown")
	}
}

func TestHabitToggleResetsOnRollover(t *testing.T) {
	s := newTestSession(t)
	s.AddHabit("code")

	name, done, err := s.ToggleHabit(1)
	if err != nil || name != "code" || !done {
		t.Fatalf("toggle = (%q, %v, %v)", name, done, err)
	}

	if err := s.RolloverDay(); err != nil {
		t.Fatal(err)
	}
	if s.Daily().HabitStatus["code"] {
		t.Error("rollover should rebuild habit status as false")
	}
}

func TestClipboardDedupeAndBound(t *testing.T) {
	s := newTestSession(t)

	added, err := s.AddClipboardEntry("hello")
	if err != nil || !added {
		t.Fatalf("first add = (%v, %v)", added, err)
	}
	added, err = s.AddClipboardEntry("hello")
	if err != nil {
		t.Fatal(err)
	}
	if added {
		t.Error("identical front entry should be rejected")
	}

	for i := 0; i < 15; i++ {
		if _, err := s.AddClipboardEntry(fmt.Sprintf("entry-%d", i)); err != nil {
			t.Fatal(err)
		}
	}

	hist := s.ClipboardHistory()
	if len(hist) != constants.ClipboardHistoryMax {
		t.Errorf("history length = %d, want %d", len(hist), constants.ClipboardHistoryMax)
	}
	if hist[0] != "entry-14" {
		t.Errorf("most recent entry should be first, got %q", hist[0])
	}
}

func TestClipboardAllowsNonConsecutiveRepeat(t *testing.T) {
	s := newTestSession(t)

	s.AddClipboardEntry("a")
	s.AddClipboardEntry("b")
	added, err := s.AddClipboardEntry("a")
	if err != nil || !added {
		t.Fatalf("non-consecutive repeat should be stored, got (%v, %v)", added, err)
	}
}

func TestLinkOperations(t *testing.T) {
	s := newTestSession(t)

	s.AddLink("https://example.com/a")
	s.AddLink("https://example.com/b")

	url, err := s.Link(2)
	if err != nil || url != "https://example.com/b" {
		t.Fatalf("Link(2) = (%q, %v)", url, err)
	}

	if _, err := s.Link(3); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("out-of-range open = %v, want not found", err)
	}
	if _, err := s.DeleteLink(0); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("out-of-range delete = %v, want not found", err)
	}

	url, err = s.DeleteLink(1)
	if err != nil || url != "https://example.com/a" {
		t.Fatalf("DeleteLink(1) = (%q, %v)", url, err)
	}
	if links := s.Links(); len(links) != 1 || links[0] != "https://example.com/b" {
		t.Errorf("links after delete = %v", links)
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	s := newTestSession(t)
	p := s.Profile()

	p.DayResetHour = 24
	if err := s.UpdateProfile(p); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("reset hour 24 = %v, want invalid input", err)
	}

	p.DayResetHour = 4
	p.Name = "Sam"
	if err := s.UpdateProfile(p); err != nil {
		t.Fatal(err)
	}
	if s.Profile().Name != "Sam" {
		t.Error("profile update not applied")
	}
}

func TestMutationsPersistAcrossSessions(t *testing.T) {
	dir := t.TempDir()
	s := New(store.New(dir), store.NewHistoryLog(dir))

	s.AddWater()
	s.AddTask("persisted", "10m")
	s.AddNote("remember this")

	reopened := New(store.New(dir), store.NewHistoryLog(dir))
	if reopened.Daily().WaterIntake != constants.DefaultContainerML {
		t.Error("water intake not persisted")
	}
	if reopened.Tasks()[0].Text != "persisted" {
		t.Error("task not persisted")
	}
	if notes := reopened.Notes(); len(notes) != 1 || notes[0] != "remember this" {
		t.Errorf("notes not persisted: %v", notes)
	}
}

func TestConcurrentMutatorsDoNotLoseWrites(t *testing.T) {
	s := newTestSession(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 20; i++ {
			s.AddWater()
		}
	}()
	for i := 0; i < 20; i++ {
		s.AddClipboardEntry(fmt.Sprintf("clip-%d", i))
	}
	<-done

	if got := s.Daily().WaterIntake; got != 20*constants.DefaultContainerML {
		t.Errorf("water intake = %d, lost writes under concurrency", got)
	}
	if got := len(s.ClipboardHistory()); got != constants.ClipboardHistoryMax {
		t.Errorf("clipboard history = %d entries", got)
	}
}

func TestCompleteSetup(t *testing.T) {
	s := newTestSession(t)
	if s.SetupComplete() {
		t.Fatal("fresh session should not be setup complete")
	}

	p := s.Profile()
	p.Name = "Sam"
	p.City = "Lisbon"
	p.DayResetHour = 4
	if err := s.CompleteSetup(p, []string{"code", "no_sugar"}); err != nil {
		t.Fatal(err)
	}

	if !s.SetupComplete() {
		t.Error("setup gate not set")
	}
	daily := s.Daily()
	if daily.LastResetDate == "" {
		t.Error("setup should stamp the effective date")
	}
	if v, ok := daily.HabitStatus["code"]; !ok || v {
		t.Errorf("habit status not seeded false: %v", daily.HabitStatus)
	}
}
