package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gosuri/uitable"

	"github.com/julianstephens/dailydash/internal/constants"
)

// HistoryCmd shows the per-day log, most recent last.
type HistoryCmd struct {
	Days int `short:"d" help:"Only show the last N days." default:"0"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	rows, err := ctx.History.Rows()
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if len(rows) == 0 {
		fmt.Println("No history yet. Run `dailydash end` to log a day.")
		return nil
	}
	if c.Days > 0 && len(rows) > c.Days {
		rows = rows[len(rows)-c.Days:]
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("DATE", "WHEN", "WATER", "CAFFEINE", "TASKS", "NOTE")
	for _, r := range rows {
		when := ""
		if t, err := time.Parse(constants.DateFormat, r.Date); err == nil {
			when = humanize.Time(t)
		}
		table.AddRow(r.Date, when, fmt.Sprintf("%dml", r.WaterML),
			fmt.Sprintf("%dmg", r.CaffeineMG), r.TasksCompleted, r.Note)
	}
	fmt.Println(table)
	return nil
}
