package cli

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/gosuri/uitable"
)

// LinkCmd manages the parking lot of saved URLs.
type LinkCmd struct {
	List   LinkListCmd   `cmd:"" help:"List saved links." default:"1"`
	Add    LinkAddCmd    `cmd:"" help:"Save a link for later."`
	Open   LinkOpenCmd   `cmd:"" help:"Open a link in the default browser."`
	Delete LinkDeleteCmd `cmd:"" help:"Delete a link by id."`
}

type LinkListCmd struct{}

func (c *LinkListCmd) Run(ctx *Context) error {
	links := ctx.Session.Links()
	if len(links) == 0 {
		fmt.Println("No saved links.")
		return nil
	}
	table := uitable.New()
	table.AddRow("ID", "URL")
	for i, url := range links {
		table.AddRow(i+1, url)
	}
	fmt.Println(table)
	return nil
}

type LinkAddCmd struct {
	URL string `arg:"" help:"URL to save."`
}

func (c *LinkAddCmd) Run(ctx *Context) error {
	if err := ctx.Session.AddLink(c.URL); err != nil {
		return err
	}
	fmt.Println("Link saved.")
	return nil
}

type LinkOpenCmd struct {
	ID int `arg:"" help:"Link id to open."`
}

func (c *LinkOpenCmd) Run(ctx *Context) error {
	url, err := ctx.Session.Link(c.ID)
	if err != nil {
		return err
	}
	if err := openBrowser(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	fmt.Printf("Opened %s\n", url)
	return nil
}

type LinkDeleteCmd struct {
	ID int `arg:"" help:"Link id to delete."`
}

func (c *LinkDeleteCmd) Run(ctx *Context) error {
	url, err := ctx.Session.DeleteLink(c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", url)
	return nil
}

func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
