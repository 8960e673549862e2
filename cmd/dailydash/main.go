package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/dailydash/internal/apperr"
	"github.com/julianstephens/dailydash/internal/audio"
	"github.com/julianstephens/dailydash/internal/cli"
	"github.com/julianstephens/dailydash/internal/constants"
	"github.com/julianstephens/dailydash/internal/logger"
	"github.com/julianstephens/dailydash/internal/notifier"
	"github.com/julianstephens/dailydash/internal/session"
	"github.com/julianstephens/dailydash/internal/store"
	"github.com/julianstephens/dailydash/internal/weather"
	"github.com/julianstephens/dailydash/internal/workers"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config directory (default: OS config dir)." type:"string" default:""`
	Debug   bool   `help:"Enable debug logging."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Status   cli.StatusCmd   `cmd:"" help:"Print a one-screen summary of the day."`
	Setup    cli.SetupCmd    `cmd:"" help:"Run the first-run wizard."`
	Task     cli.TaskCmd     `cmd:"" help:"Manage the three daily task slots."`
	Water    cli.WaterCmd    `cmd:"" help:"Track water intake."`
	Coffee   cli.CoffeeCmd   `cmd:"" help:"Track caffeine intake."`
	Habit    cli.HabitCmd    `cmd:"" help:"Manage daily habits."`
	Note     cli.NoteCmd     `cmd:"" help:"Manage brain dump notes."`
	Link     cli.LinkCmd     `cmd:"" help:"Manage saved links."`
	Clip     cli.ClipCmd     `cmd:"" help:"Inspect clipboard history."`
	Timer    cli.TimerCmd    `cmd:"" help:"Run a focus timer."`
	Noise    cli.NoiseCmd    `cmd:"" help:"Play background noise."`
	End      cli.EndCmd      `cmd:"" help:"Close out the day and log it."`
	History  cli.HistoryCmd  `cmd:"" help:"Show the per-day history log."`
	Settings cli.SettingsCmd `cmd:"" help:"Show or change settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("dailydash"),
		kong.Description("Personal terminal dashboard for the working day"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir, err := store.ResolveConfigDir(CLI.Config)
	if err != nil {
		apperr.Fatal(fmt.Errorf("resolve config dir: %w", err))
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		apperr.Fatal(fmt.Errorf("create config dir: %w", err))
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		apperr.Fatal(fmt.Errorf("init logger: %w", err))
	}

	st := store.New(configDir)
	hist := store.NewHistoryLog(configDir)
	sess := session.New(st, hist)
	if sess.Recovered() {
		fmt.Fprintln(os.Stderr, "Warning: state file was unreadable and has been reset to defaults. The old file is preserved with a .corrupt suffix.")
	}

	// Close out and roll the day before the command sees any state.
	if sess.SetupComplete() && sess.IsNewDay() {
		if sess.Settings().HistoryEnabled {
			if err := sess.ConfirmDay(""); err != nil {
				logger.Warn("could not log previous day before rollover", "error", err)
			}
		}
		if err := sess.RolloverDay(); err != nil {
			apperr.Fatal(fmt.Errorf("day rollover: %w", err))
		}
	}

	audioMgr := audio.NewManager(configDir, func() bool { return sess.Settings().AudioEnabled })
	mgr := workers.NewManager(sess, func(title, body string) {
		notifier.Notify(title, body)
		audioMgr.PlayChime()
	})

	appCtx := &cli.Context{
		Session: sess,
		History: hist,
		Workers: mgr,
		Weather: weather.NewClient(),
		Audio:   audioMgr,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperr.Fatal(err)
	}
}
