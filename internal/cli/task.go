package cli

import (
	"fmt"

	"github.com/gosuri/uitable"
)

// TaskCmd manages the three daily task slots.
type TaskCmd struct {
	List   TaskListCmd   `cmd:"" help:"List today's task slots." default:"1"`
	Add    TaskAddCmd    `cmd:"" help:"Add a task to the first empty slot."`
	Done   TaskDoneCmd   `cmd:"" help:"Mark a task done."`
	Delete TaskDeleteCmd `cmd:"" help:"Clear a task slot."`
}

type TaskListCmd struct{}

func (c *TaskListCmd) Run(ctx *Context) error {
	table := uitable.New()
	table.AddRow("ID", "STATUS", "TASK", "BUDGET")
	for _, t := range ctx.Session.Tasks() {
		status := "·"
		text := "(empty)"
		if !t.Empty() {
			text = t.Text
			if t.Done {
				status = "✔"
			} else {
				status = "✘"
			}
		}
		table.AddRow(t.ID, status, text, t.Budget)
	}
	fmt.Println(table)
	return nil
}

type TaskAddCmd struct {
	Text   string `arg:"" help:"Task description."`
	Budget string `short:"b" help:"Optional time budget, e.g. 30m." default:""`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	id, err := ctx.Session.AddTask(c.Text, c.Budget)
	if err != nil {
		return err
	}
	fmt.Printf("Added to slot %d.\n", id)
	return nil
}

type TaskDoneCmd struct {
	ID int `arg:"" help:"Slot id (1-3)."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	if err := ctx.Session.CompleteTask(c.ID); err != nil {
		return err
	}
	fmt.Printf("Task %d marked done.\n", c.ID)
	return nil
}

type TaskDeleteCmd struct {
	ID int `arg:"" help:"Slot id (1-3)."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Session.ClearTask(c.ID); err != nil {
		return err
	}
	fmt.Printf("Slot %d cleared.\n", c.ID)
	return nil
}
