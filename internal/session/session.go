// Package session is the API surface the CLI, TUI and background workers
// share. It owns the single in-memory state aggregate; every operation takes
// one coarse lock around the read-modify-write and the write-through save, so
// concurrent workers never interleave partial updates and the aggregate on
// disk always mirrors the full in-memory state.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/dailydash/internal/apperr"
	"github.com/julianstephens/dailydash/internal/constants"
	"github.com/julianstephens/dailydash/internal/logger"
	"github.com/julianstephens/dailydash/internal/models"
	"github.com/julianstephens/dailydash/internal/store"
)

// Session mediates all access to the state aggregate.
type Session struct {
	mu    sync.Mutex
	agg   *models.Aggregate
	store *store.Store
	hist  *store.HistoryLog
	now   func() time.Time
}

// New loads the persisted aggregate and wraps it in a session.
func New(st *store.Store, hist *store.HistoryLog) *Session {
	return &Session{
		agg:   st.Load(),
		store: st,
		hist:  hist,
		now:   time.Now,
	}
}

// Recovered reports whether the last load fell back to defaults because the
// previous state file was unreadable.
func (s *Session) Recovered() bool { return s.store.Recovered }

// mutate runs fn against the aggregate under the session lock and flushes the
// full aggregate afterwards. A failed flush is logged and reported but the
// in-memory state keeps the mutation, so the session stays usable.
func (s *Session) mutate(fn func(a *models.Aggregate) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.agg); err != nil {
		return err
	}
	if err := s.store.Save(s.agg); err != nil {
		logger.Error("failed to persist state", "error", err)
		return err
	}
	return nil
}

// --- snapshots ---

// Profile returns a copy of the user profile.
func (s *Session) Profile() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agg.UserProfile
}

// Settings returns a copy of the app settings.
func (s *Session) Settings() models.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agg.AppSettings
}

// Daily returns a deep copy of the day-scoped state.
func (s *Session) Daily() models.DailyState {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.agg.DailyState
	d.Tasks = append([]models.TaskSlot(nil), s.agg.DailyState.Tasks...)
	d.HabitStatus = make(map[string]bool, len(s.agg.DailyState.HabitStatus))
	for k, v := range s.agg.DailyState.HabitStatus {
		d.HabitStatus[k] = v
	}
	return d
}

// SetupComplete reports whether the first-run wizard has finished.
func (s *Session) SetupComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agg.SetupComplete
}

// --- profile & settings ---

// UpdateProfile validates and stores a new profile.
func (s *Session) UpdateProfile(p models.UserProfile) error {
	if p.DayResetHour < 0 || p.DayResetHour > 23 {
		return apperr.Invalidf("day reset hour must be 0-23, got %d", p.DayResetHour)
	}
	if p.ContainerSize <= 0 || p.DailyWaterGoal <= 0 {
		return apperr.Invalidf("container size and water goal must be positive")
	}
	if p.UnitSystem != constants.UnitMetric && p.UnitSystem != constants.UnitImperial {
		return apperr.Invalidf("unit system must be %q or %q", constants.UnitMetric, constants.UnitImperial)
	}
	return s.mutate(func(a *models.Aggregate) error {
		a.UserProfile = p
		return nil
	})
}

// UpdateSettings stores new feature toggles. Workers pick the change up on
// their next poll cycle.
func (s *Session) UpdateSettings(set models.AppSettings) error {
	return s.mutate(func(a *models.Aggregate) error {
		a.AppSettings = set
		return nil
	})
}

// CompleteSetup stores the wizard result: profile, initial habits, and the
// setup gate. Habit status is seeded false for the current day.
func (s *Session) CompleteSetup(p models.UserProfile, habits []string) error {
	if len(habits) > constants.MaxHabits {
		return apperr.Capacityf("at most %d habits", constants.MaxHabits)
	}
	if p.DayResetHour < 0 || p.DayResetHour > 23 {
		return apperr.Invalidf("day reset hour must be 0-23, got %d", p.DayResetHour)
	}
	return s.mutate(func(a *models.Aggregate) error {
		a.UserProfile = p
		a.PersistentData.Habits = append([]string{}, habits...)
		a.DailyState.HabitStatus = map[string]bool{}
		for _, h := range habits {
			a.DailyState.HabitStatus[h] = false
		}
		a.DailyState.LastResetDate = EffectiveDate(s.now(), p.DayResetHour)
		a.SetupComplete = true
		return nil
	})
}

// --- water & caffeine ---

// AddWater adds one container and returns the new total.
func (s *Session) AddWater() (int, error) {
	var total int
	err := s.mutate(func(a *models.Aggregate) error {
		a.DailyState.WaterIntake += a.UserProfile.ContainerSize
		total = a.DailyState.WaterIntake
		return nil
	})
	return total, err
}

// UndoWater removes one container, flooring at zero.
func (s *Session) UndoWater() (int, error) {
	var total int
	err := s.mutate(func(a *models.Aggregate) error {
		a.DailyState.WaterIntake -= a.UserProfile.ContainerSize
		if a.DailyState.WaterIntake < 0 {
			a.DailyState.WaterIntake = 0
		}
		total = a.DailyState.WaterIntake
		return nil
	})
	return total, err
}

// AddCaffeine adds one serving and returns the new total in mg.
func (s *Session) AddCaffeine() (int, error) {
	var total int
	err := s.mutate(func(a *models.Aggregate) error {
		a.DailyState.CaffeineIntake += a.UserProfile.CaffeineSize
		total = a.DailyState.CaffeineIntake
		return nil
	})
	return total, err
}

// UndoCaffeine removes one serving, flooring at zero.
func (s *Session) UndoCaffeine() (int, error) {
	var total int
	err := s.mutate(func(a *models.Aggregate) error {
		a.DailyState.CaffeineIntake -= a.UserProfile.CaffeineSize
		if a.DailyState.CaffeineIntake < 0 {
			a.DailyState.CaffeineIntake = 0
		}
		total = a.DailyState.CaffeineIntake
		return nil
	})
	return total, err
}

// WaterStatus renders the intake line shown by `status` and the TUI,
// e.g. "500ml / 2000ml (25%)".
func (s *Session) WaterStatus() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	unit := s.agg.UserProfile.Unit()
	current := s.agg.DailyState.WaterIntake
	goal := s.agg.UserProfile.DailyWaterGoal
	pct := 0
	if goal > 0 {
		pct = current * 100 / goal
	}
	return fmt.Sprintf("%d%s / %d%s (%d%%)", current, unit, goal, unit, pct)
}

// --- tasks ---

// AddTask fills the first empty slot and returns its id.
func (s *Session) AddTask(text, budget string) (int, error) {
	if text == "" {
		return 0, apperr.Invalidf("task text must not be empty")
	}
	var id int
	err := s.mutate(func(a *models.Aggregate) error {
		for i := range a.DailyState.Tasks {
			if a.DailyState.Tasks[i].Empty() {
				a.DailyState.Tasks[i].Text = text
				a.DailyState.Tasks[i].Done = false
				a.DailyState.Tasks[i].Budget = budget
				id = a.DailyState.Tasks[i].ID
				return nil
			}
		}
		return apperr.Capacityf("all %d task slots are full", constants.TaskSlotCount)
	})
	return id, err
}

// CompleteTask marks a slot done, leaving its text in place.
func (s *Session) CompleteTask(id int) error {
	return s.mutateSlot(id, func(t *models.TaskSlot) {
		t.Done = true
	})
}

// ToggleTask flips a slot's done flag.
func (s *Session) ToggleTask(id int) error {
	return s.mutateSlot(id, func(t *models.TaskSlot) {
		t.Done = !t.Done
	})
}

// ClearTask deallocates a slot entirely: text, done flag and budget.
func (s *Session) ClearTask(id int) error {
	return s.mutateSlot(id, func(t *models.TaskSlot) {
		t.Text = ""
		t.Done = false
		t.Budget = ""
	})
}

func (s *Session) mutateSlot(id int, fn func(t *models.TaskSlot)) error {
	return s.mutate(func(a *models.Aggregate) error {
		if id < 1 || id > constants.TaskSlotCount {
			return apperr.NotFoundf("task %d", id)
		}
		slot := &a.DailyState.Tasks[id-1]
		if slot.Empty() {
			return apperr.NotFoundf("task %d is empty", id)
		}
		fn(slot)
		return nil
	})
}

// Tasks returns a copy of the three slots.
func (s *Session) Tasks() []models.TaskSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.TaskSlot(nil), s.agg.DailyState.Tasks...)
}

// --- habits ---

// AddHabit registers a habit and seeds its status for the current day only.
func (s *Session) AddHabit(name string) error {
	if name == "" {
		return apperr.Invalidf("habit name must not be empty")
	}
	return s.mutate(func(a *models.Aggregate) error {
		if len(a.PersistentData.Habits) >= constants.MaxHabits {
			return apperr.Capacityf("at most %d habits", constants.MaxHabits)
		}
		for _, h := range a.PersistentData.Habits {
			if h == name {
				return apperr.Invalidf("habit %q already exists", name)
			}
		}
		a.PersistentData.Habits = append(a.PersistentData.Habits, name)
		a.DailyState.HabitStatus[name] = false
		return nil
	})
}

// DeleteHabit removes a habit and its status entry together, so habit_status
// never holds orphan keys.
func (s *Session) DeleteHabit(id int) (string, error) {
	var name string
	err := s.mutate(func(a *models.Aggregate) error {
		if id < 1 || id > len(a.PersistentData.Habits) {
			return apperr.NotFoundf("habit %d", id)
		}
		name = a.PersistentData.Habits[id-1]
		a.PersistentData.Habits = append(a.PersistentData.Habits[:id-1], a.PersistentData.Habits[id:]...)
		delete(a.DailyState.HabitStatus, name)
		return nil
	})
	return name, err
}

// ToggleHabit flips a habit's done flag for the current day.
func (s *Session) ToggleHabit(id int) (string, bool, error) {
	var (
		name string
		done bool
	)
	err := s.mutate(func(a *models.Aggregate) error {
		if id < 1 || id > len(a.PersistentData.Habits) {
			return apperr.NotFoundf("habit %d", id)
		}
		name = a.PersistentData.Habits[id-1]
		a.DailyState.HabitStatus[name] = !a.DailyState.HabitStatus[name]
		done = a.DailyState.HabitStatus[name]
		return nil
	})
	return name, done, err
}

// Habits returns the persistent habit list.
func (s *Session) Habits() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.agg.PersistentData.Habits...)
}

// --- clipboard ---

// AddClipboardEntry inserts text at the front of the history unless it equals
// the current front entry, truncating to the configured maximum. It reports
// whether the entry was stored.
func (s *Session) AddClipboardEntry(text string) (bool, error) {
	if text == "" {
		return false, nil
	}
	added := false
	err := s.mutate(func(a *models.Aggregate) error {
		hist := a.PersistentData.ClipboardHistory
		if len(hist) > 0 && hist[0] == text {
			return nil
		}
		hist = append([]string{text}, hist...)
		if len(hist) > constants.ClipboardHistoryMax {
			hist = hist[:constants.ClipboardHistoryMax]
		}
		a.PersistentData.ClipboardHistory = hist
		added = true
		return nil
	})
	return added, err
}

// ClipboardHistory returns the stored entries, most recent first.
func (s *Session) ClipboardHistory() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.agg.PersistentData.ClipboardHistory...)
}

// ClipboardEntry returns the 1-based entry for copy-back.
func (s *Session) ClipboardEntry(id int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 1 || id > len(s.agg.PersistentData.ClipboardHistory) {
		return "", apperr.NotFoundf("clipboard entry %d", id)
	}
	return s.agg.PersistentData.ClipboardHistory[id-1], nil
}

// ClearClipboard empties the clipboard history.
func (s *Session) ClearClipboard() error {
	return s.mutate(func(a *models.Aggregate) error {
		a.PersistentData.ClipboardHistory = []string{}
		return nil
	})
}
