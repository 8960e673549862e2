package constants

import "time"

const (
	AppName = "dailydash"
	Version = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// StateFileName is the persisted aggregate document inside the config dir.
	StateFileName = "state.json"

	// HistoryFileName is the append-style daily history log inside the config dir.
	HistoryFileName = "history.csv"

	// LegacyStateFile is where pre-1.0 installs kept their config, relative to
	// the working directory. It is copied forward once on first run.
	LegacyStateFile = "config.json"

	// Capacity limits
	TaskSlotCount       = 3
	MaxHabits           = 5
	ClipboardHistoryMax = 10

	// Unit systems
	UnitMetric   = "metric"
	UnitImperial = "imperial"

	// Worker intervals
	ClipboardPollInterval = 1 * time.Second
	EyeStrainInterval     = 20 * time.Minute
	StandUpInterval       = 60 * time.Minute
	DisabledPollInterval  = 60 * time.Second

	// WeatherTTL is how long a fetched weather string stays fresh per (city, units).
	WeatherTTL = 15 * time.Minute

	// Defaults seeded into a fresh profile
	DefaultContainerML  = 250
	DefaultWaterGoalML  = 2000
	DefaultCaffeineMG   = 50
	DefaultFocusMinutes = 25
	DefaultTheme        = "default"
)

// HistoryHeader is the fixed CSV column order of the history log.
var HistoryHeader = []string{"Date", "Water_ml", "Caffeine_mg", "Tasks_Completed", "Daily_Note"}
