package session

import (
	"time"

	"github.com/julianstephens/dailydash/internal/constants"
	"github.com/julianstephens/dailydash/internal/logger"
	"github.com/julianstephens/dailydash/internal/models"
	"github.com/julianstephens/dailydash/internal/store"
)

// EffectiveDate returns the calendar date the still-open day belongs to.
// Before the configured reset hour the previous date is still "today", so a
// 4 AM reset hour keeps a 2 AM session on yesterday's date.
func EffectiveDate(now time.Time, resetHour int) string {
	if now.Hour() < resetHour {
		now = now.AddDate(0, 0, -1)
	}
	return now.Format(constants.DateFormat)
}

// IsNewDay reports whether the stored state belongs to an earlier effective
// date. Pure query; safe to call repeatedly.
func (s *Session) IsNewDay() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agg.DailyState.LastResetDate != EffectiveDate(s.now(), s.agg.UserProfile.DayResetHour)
}

// RolloverDay runs the day-rollover transaction: zero the intake counters,
// empty the three task slots, rebuild habit status from the persistent habit
// list, stamp the new effective date, and persist. Invoking it twice in a row
// produces the same end state, so an unguarded second call is harmless.
func (s *Session) RolloverDay() error {
	return s.mutate(func(a *models.Aggregate) error {
		date := EffectiveDate(s.now(), a.UserProfile.DayResetHour)
		logger.Info("rolling over to new day", "date", date, "previous", a.DailyState.LastResetDate)

		a.DailyState.WaterIntake = 0
		a.DailyState.CaffeineIntake = 0
		a.DailyState.Tasks = models.EmptyTaskSlots()
		a.DailyState.HabitStatus = make(map[string]bool, len(a.PersistentData.Habits))
		for _, h := range a.PersistentData.Habits {
			a.DailyState.HabitStatus[h] = false
		}
		a.DailyState.LastResetDate = date
		return nil
	})
}

// ConfirmDay upserts the current day's totals into the history log, with an
// optional journal note. Called by `end` and by the rollover path before the
// counters are reset.
func (s *Session) ConfirmDay(note string) error {
	s.mu.Lock()
	date := s.agg.DailyState.LastResetDate
	if date == "" {
		date = EffectiveDate(s.now(), s.agg.UserProfile.DayResetHour)
	}
	row := store.HistoryRow{
		Date:           date,
		WaterML:        s.agg.DailyState.WaterIntake,
		CaffeineMG:     s.agg.DailyState.CaffeineIntake,
		TasksCompleted: countDone(s.agg.DailyState.Tasks),
		Note:           note,
	}
	s.mu.Unlock()

	if err := s.hist.UpsertDay(row); err != nil {
		logger.Error("failed to write history log", "date", row.Date, "error", err)
		return err
	}
	return nil
}

func countDone(tasks []models.TaskSlot) int {
	n := 0
	for _, t := range tasks {
		if !t.Empty() && t.Done {
			n++
		}
	}
	return n
}
