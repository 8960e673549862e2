// Package models defines the persisted state aggregate: the user profile,
// feature toggles, the volatile per-day record, and data that survives day
// boundaries. One Aggregate instance is held in memory for the process
// lifetime and mirrored to disk after every mutation.
package models

import "github.com/julianstephens/dailydash/internal/constants"

// UserProfile is long-lived identity and tracking configuration. It is only
// written by the setup and settings flows and never reset automatically.
type UserProfile struct {
	Name           string `json:"name"`
	City           string `json:"city"`
	UnitSystem     string `json:"unit_system"` // "metric" or "imperial"
	ContainerSize  int    `json:"container_size"`
	DailyWaterGoal int    `json:"daily_water_goal"`
	CaffeineSize   int    `json:"caffeine_size"`
	DayResetHour   int    `json:"day_reset_hour"` // 0-23, local time
}

// AppSettings holds the feature toggles. Background workers re-read these
// every cycle, so a toggle takes effect without a restart.
type AppSettings struct {
	AudioEnabled     bool   `json:"audio_enabled"`
	NagStandUp       bool   `json:"nag_stand_up"`
	NagEyeStrain     bool   `json:"nag_eye_strain"`
	EndOfDayJournal  bool   `json:"end_of_day_journal"`
	ClipboardEnabled bool   `json:"clipboard_enabled"`
	HistoryEnabled   bool   `json:"history_enabled"`
	Theme            string `json:"theme"`
}

// TaskSlot is one of the three fixed task positions. A slot is empty iff
// Text == ""; Done and Budget are meaningless for empty slots.
type TaskSlot struct {
	ID     int    `json:"id"` // fixed 1..3
	Text   string `json:"text"`
	Done   bool   `json:"done"`
	Budget string `json:"budget,omitempty"` // optional time budget, e.g. "30m"
}

// Empty reports whether the slot holds no task.
func (t TaskSlot) Empty() bool { return t.Text == "" }

// DailyState is the day-scoped record, reset by the day-rollover transaction.
type DailyState struct {
	LastResetDate  string          `json:"last_reset_date"` // YYYY-MM-DD effective date
	WaterIntake    int             `json:"current_water_intake"`
	CaffeineIntake int             `json:"current_caffeine_intake"`
	Tasks          []TaskSlot      `json:"tasks"`
	HabitStatus    map[string]bool `json:"habit_status"`
}

// PersistentData survives day boundaries indefinitely.
type PersistentData struct {
	BrainDumpNotes   []string `json:"brain_dump_notes"`
	SavedLinks       []string `json:"saved_links"`
	Habits           []string `json:"habits"`
	ClipboardHistory []string `json:"clipboard_history"` // most-recent-first, max 10
}

// Aggregate is the whole persisted document.
type Aggregate struct {
	UserProfile    UserProfile    `json:"user_profile"`
	AppSettings    AppSettings    `json:"app_settings"`
	DailyState     DailyState     `json:"daily_state"`
	PersistentData PersistentData `json:"persistent_data"`
	SetupComplete  bool           `json:"setup_complete"`
}

// EmptyTaskSlots returns the three slots in their reset shape.
func EmptyTaskSlots() []TaskSlot {
	slots := make([]TaskSlot, constants.TaskSlotCount)
	for i := range slots {
		slots[i] = TaskSlot{ID: i + 1}
	}
	return slots
}

// DefaultAggregate returns the state a fresh install starts from.
func DefaultAggregate() *Aggregate {
	return &Aggregate{
		UserProfile: UserProfile{
			UnitSystem:     constants.UnitMetric,
			ContainerSize:  constants.DefaultContainerML,
			DailyWaterGoal: constants.DefaultWaterGoalML,
			CaffeineSize:   constants.DefaultCaffeineMG,
		},
		AppSettings: AppSettings{
			AudioEnabled: true,
			NagStandUp:   true,
			NagEyeStrain: true,
			Theme:        constants.DefaultTheme,
		},
		DailyState: DailyState{
			Tasks:       EmptyTaskSlots(),
			HabitStatus: map[string]bool{},
		},
		PersistentData: PersistentData{
			BrainDumpNotes:   []string{},
			SavedLinks:       []string{},
			Habits:           []string{},
			ClipboardHistory: []string{},
		},
	}
}

// Normalize repairs structural invariants after a load: the three task slots
// always exist with ids 1..3 and no map or list is nil.
func (a *Aggregate) Normalize() {
	if len(a.DailyState.Tasks) != constants.TaskSlotCount {
		slots := EmptyTaskSlots()
		for i := 0; i < len(a.DailyState.Tasks) && i < constants.TaskSlotCount; i++ {
			slots[i] = a.DailyState.Tasks[i]
		}
		a.DailyState.Tasks = slots
	}
	for i := range a.DailyState.Tasks {
		a.DailyState.Tasks[i].ID = i + 1
	}
	if a.DailyState.HabitStatus == nil {
		a.DailyState.HabitStatus = map[string]bool{}
	}
	if a.PersistentData.BrainDumpNotes == nil {
		a.PersistentData.BrainDumpNotes = []string{}
	}
	if a.PersistentData.SavedLinks == nil {
		a.PersistentData.SavedLinks = []string{}
	}
	if a.PersistentData.Habits == nil {
		a.PersistentData.Habits = []string{}
	}
	if a.PersistentData.ClipboardHistory == nil {
		a.PersistentData.ClipboardHistory = []string{}
	}
	if a.UserProfile.UnitSystem == "" {
		a.UserProfile.UnitSystem = constants.UnitMetric
	}
	if a.AppSettings.Theme == "" {
		a.AppSettings.Theme = constants.DefaultTheme
	}
}

// Unit returns the display unit for water amounts.
func (p UserProfile) Unit() string {
	if p.UnitSystem == constants.UnitImperial {
		return "oz"
	}
	return "ml"
}
