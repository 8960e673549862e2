package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dailydash/internal/tui"
)

// TuiCmd launches the interactive dashboard. First runs go through the setup
// wizard instead so the dashboard never renders an unconfigured profile.
type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if !ctx.Session.SetupComplete() {
		setup := &SetupCmd{}
		if err := setup.Run(ctx); err != nil {
			return err
		}
	}

	ctx.Workers.Start()
	defer ctx.Workers.Stop()

	p := tea.NewProgram(tui.NewModel(tui.Deps{
		Session: ctx.Session,
		Workers: ctx.Workers,
		Weather: ctx.Weather,
		Audio:   ctx.Audio,
	}), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
