package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/gosuri/uitable"
)

// ClipCmd inspects and restores entries captured by the clipboard watcher.
type ClipCmd struct {
	List  ClipListCmd  `cmd:"" help:"List captured clipboard entries." default:"1"`
	Copy  ClipCopyCmd  `cmd:"" help:"Copy an entry back to the clipboard."`
	Clear ClipClearCmd `cmd:"" help:"Forget all captured entries."`
}

type ClipListCmd struct{}

func (c *ClipListCmd) Run(ctx *Context) error {
	entries := ctx.Session.ClipboardHistory()
	if len(entries) == 0 {
		fmt.Println("Clipboard history is empty.")
		return nil
	}
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("ID", "ENTRY")
	for i, e := range entries {
		table.AddRow(i+1, e)
	}
	fmt.Println(table)
	return nil
}

type ClipCopyCmd struct {
	ID int `arg:"" help:"Entry id to copy."`
}

func (c *ClipCopyCmd) Run(ctx *Context) error {
	entry, err := ctx.Session.ClipboardEntry(c.ID)
	if err != nil {
		return err
	}
	// Tell the watcher before writing so the copy-back does not get
	// re-captured as a fresh entry.
	ctx.Workers.Clipboard().Prime(entry)
	if err := clipboard.WriteAll(entry); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	fmt.Println("Copied.")
	return nil
}

type ClipClearCmd struct{}

func (c *ClipClearCmd) Run(ctx *Context) error {
	if err := ctx.Session.ClearClipboard(); err != nil {
		return err
	}
	fmt.Println("Clipboard history cleared.")
	return nil
}
