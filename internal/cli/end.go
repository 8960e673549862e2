package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// EndCmd closes out the current day: write today's totals to the history log
// and, when the journal setting is on, prompt for a one-line note first.
type EndCmd struct {
	Note string `short:"n" help:"Journal note for today (skips the prompt)." default:""`
}

func (c *EndCmd) Run(ctx *Context) error {
	note := c.Note
	if note == "" && ctx.Session.Settings().EndOfDayJournal {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewText().
					Title("How did today go?").
					CharLimit(400).
					Value(&note),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := ctx.Session.ConfirmDay(note); err != nil {
		return err
	}

	daily := ctx.Session.Daily()
	done := 0
	for _, t := range daily.Tasks {
		if !t.Empty() && t.Done {
			done++
		}
	}
	fmt.Printf("Day logged: %s water, %dmg caffeine, %d tasks done.\n",
		ctx.Session.WaterStatus(), daily.CaffeineIntake, done)
	fmt.Println("Good night!")
	return nil
}
