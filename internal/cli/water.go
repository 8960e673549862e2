package cli

import "fmt"

// WaterCmd tracks water intake in container-sized steps.
type WaterCmd struct {
	Show WaterShowCmd `cmd:"" help:"Show today's intake." default:"1"`
	Add  WaterAddCmd  `cmd:"" help:"Add one container."`
	Undo WaterUndoCmd `cmd:"" help:"Remove one container."`
}

type WaterShowCmd struct{}

func (c *WaterShowCmd) Run(ctx *Context) error {
	fmt.Println(ctx.Session.WaterStatus())
	return nil
}

type WaterAddCmd struct{}

func (c *WaterAddCmd) Run(ctx *Context) error {
	if _, err := ctx.Session.AddWater(); err != nil {
		return err
	}
	fmt.Printf("Glug glug! %s\n", ctx.Session.WaterStatus())
	return nil
}

type WaterUndoCmd struct{}

func (c *WaterUndoCmd) Run(ctx *Context) error {
	if _, err := ctx.Session.UndoWater(); err != nil {
		return err
	}
	fmt.Printf("Undid last water. %s\n", ctx.Session.WaterStatus())
	return nil
}

// CoffeeCmd tracks caffeine in serving-sized steps.
type CoffeeCmd struct {
	Add  CoffeeAddCmd  `cmd:"" help:"Add one serving." default:"1"`
	Undo CoffeeUndoCmd `cmd:"" help:"Remove one serving."`
}

type CoffeeAddCmd struct{}

func (c *CoffeeAddCmd) Run(ctx *Context) error {
	total, err := ctx.Session.AddCaffeine()
	if err != nil {
		return err
	}
	fmt.Printf("Coffee time! Total: %dmg\n", total)
	return nil
}

type CoffeeUndoCmd struct{}

func (c *CoffeeUndoCmd) Run(ctx *Context) error {
	total, err := ctx.Session.UndoCaffeine()
	if err != nil {
		return err
	}
	fmt.Printf("Undid last coffee. Total: %dmg\n", total)
	return nil
}
