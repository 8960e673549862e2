package cli

import (
	"fmt"
	"time"
)

// TimerCmd runs a blocking focus countdown in the terminal. The same timer
// backs the dashboard; starting here supersedes any timer the TUI started.
type TimerCmd struct {
	Minutes int `arg:"" help:"Focus session length in minutes."`
}

func (c *TimerCmd) Run(ctx *Context) error {
	if err := ctx.Workers.Timer.Start(time.Duration(c.Minutes) * time.Minute); err != nil {
		return err
	}
	fmt.Printf("Focus session: %d minutes. Ctrl-C to abandon.\n", c.Minutes)

	for {
		left, running := ctx.Workers.Timer.Remaining()
		if !running {
			break
		}
		fmt.Printf("\r  %s remaining ", formatCountdown(left))
		time.Sleep(time.Second)
	}
	fmt.Println("\r  00:00 remaining ")
	fmt.Println("Time is up! Take a break.")
	return nil
}

func formatCountdown(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
