package cli

import (
	"fmt"
)

// NoteCmd manages the brain dump list.
type NoteCmd struct {
	Show   NoteShowCmd   `cmd:"" help:"Show all notes." default:"1"`
	Add    NoteAddCmd    `cmd:"" help:"Add a note."`
	Delete NoteDeleteCmd `cmd:"" help:"Delete notes by id spec, e.g. 1,3,5-7."`
	Clear  NoteClearCmd  `cmd:"" help:"Delete all notes."`
}

type NoteShowCmd struct{}

func (c *NoteShowCmd) Run(ctx *Context) error {
	notes := ctx.Session.Notes()
	if len(notes) == 0 {
		fmt.Println("No notes.")
		return nil
	}
	for i, n := range notes {
		fmt.Printf("%d. %s\n", i+1, n)
	}
	return nil
}

type NoteAddCmd struct {
	Text string `arg:"" help:"Note text."`
}

func (c *NoteAddCmd) Run(ctx *Context) error {
	if err := ctx.Session.AddNote(c.Text); err != nil {
		return err
	}
	fmt.Println("Note added.")
	return nil
}

type NoteDeleteCmd struct {
	Spec string `arg:"" help:"Ids to delete: single, comma-separated, or ranges (1,3,5-7)."`
}

func (c *NoteDeleteCmd) Run(ctx *Context) error {
	deleted, err := ctx.Session.DeleteNotes(c.Spec)
	if err != nil {
		return err
	}
	fmt.Printf("%d deleted.\n", deleted)
	return nil
}

type NoteClearCmd struct{}

func (c *NoteClearCmd) Run(ctx *Context) error {
	if err := ctx.Session.ClearNotes(); err != nil {
		return err
	}
	fmt.Println("All notes cleared.")
	return nil
}
