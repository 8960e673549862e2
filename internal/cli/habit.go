package cli

import (
	"fmt"

	"github.com/gosuri/uitable"
)

// HabitCmd manages the daily habit list.
type HabitCmd struct {
	List   HabitListCmd   `cmd:"" help:"List habits and today's status." default:"1"`
	Add    HabitAddCmd    `cmd:"" help:"Add a habit."`
	Done   HabitDoneCmd   `cmd:"" help:"Toggle a habit done/undone for today."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := ctx.Session.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with: dailydash habit add <name>")
		return nil
	}
	status := ctx.Session.Daily().HabitStatus
	table := uitable.New()
	table.AddRow("ID", "STATUS", "HABIT")
	for i, h := range habits {
		mark := "·"
		if status[h] {
			mark = "✔"
		}
		table.AddRow(i+1, mark, h)
	}
	fmt.Println(table)
	return nil
}

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Session.AddHabit(c.Name); err != nil {
		return err
	}
	fmt.Printf("Habit %q added.\n", c.Name)
	return nil
}

type HabitDoneCmd struct {
	ID int `arg:"" help:"Habit id to toggle."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	name, done, err := ctx.Session.ToggleHabit(c.ID)
	if err != nil {
		return err
	}
	if done {
		fmt.Printf("%s: done for today.\n", name)
	} else {
		fmt.Printf("%s: marked not done.\n", name)
	}
	return nil
}

type HabitDeleteCmd struct {
	ID int `arg:"" help:"Habit id to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	name, err := ctx.Session.DeleteHabit(c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Habit %q deleted.\n", name)
	return nil
}
