package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/dailydash/internal/constants"
	"github.com/julianstephens/dailydash/internal/vitals"
)

// StatusCmd prints a one-screen summary of the current day.
type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	profile := ctx.Session.Profile()
	daily := ctx.Session.Daily()

	date := daily.LastResetDate
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}

	fmt.Printf("DailyDash - %s\n\n", date)
	fmt.Printf("Water:    %s\n", ctx.Session.WaterStatus())
	fmt.Printf("Caffeine: %dmg\n", daily.CaffeineIntake)

	active, done := 0, 0
	for _, t := range daily.Tasks {
		if !t.Empty() {
			active++
			if t.Done {
				done++
			}
		}
	}
	fmt.Printf("Tasks:    %d/%d done\n", done, active)

	habitsDone := 0
	for _, v := range daily.HabitStatus {
		if v {
			habitsDone++
		}
	}
	fmt.Printf("Habits:   %d/%d done\n", habitsDone, len(daily.HabitStatus))
	fmt.Printf("Timer:    %s\n", ctx.Workers.Timer.Status())
	fmt.Printf("Weather:  %s\n", ctx.Weather.Display(profile.City, profile.UnitSystem))
	fmt.Printf("Vitals:   %s\n", vitals.Snapshot())
	return nil
}
