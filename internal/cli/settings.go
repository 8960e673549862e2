package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gosuri/uitable"

	"github.com/julianstephens/dailydash/internal/apperr"
	"github.com/julianstephens/dailydash/internal/themes"
)

// SettingsCmd shows and edits the persisted feature toggles.
type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SettingsSetCmd  `cmd:"" help:"Change a setting, e.g. settings set audio_enabled false."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	set := ctx.Session.Settings()
	table := uitable.New()
	table.AddRow("SETTING", "VALUE")
	table.AddRow("audio_enabled", set.AudioEnabled)
	table.AddRow("nag_stand_up", set.NagStandUp)
	table.AddRow("nag_eye_strain", set.NagEyeStrain)
	table.AddRow("end_of_day_journal", set.EndOfDayJournal)
	table.AddRow("clipboard_enabled", set.ClipboardEnabled)
	table.AddRow("history_enabled", set.HistoryEnabled)
	table.AddRow("theme", set.Theme)
	fmt.Println(table)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting name, as shown by settings show."`
	Value string `arg:"" help:"New value (true/false, or a theme name)."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	set := ctx.Session.Settings()
	key := strings.ToLower(strings.TrimSpace(c.Key))

	if key == "theme" {
		name := strings.ToLower(strings.TrimSpace(c.Value))
		if !themes.Known(name) {
			return apperr.Invalidf("unknown theme %q, available: %s", c.Value, strings.Join(themes.Names(), ", "))
		}
		set.Theme = name
	} else {
		val, err := strconv.ParseBool(c.Value)
		if err != nil {
			return apperr.Invalidf("%q is not a boolean", c.Value)
		}
		switch key {
		case "audio_enabled":
			set.AudioEnabled = val
		case "nag_stand_up":
			set.NagStandUp = val
		case "nag_eye_strain":
			set.NagEyeStrain = val
		case "end_of_day_journal":
			set.EndOfDayJournal = val
		case "clipboard_enabled":
			set.ClipboardEnabled = val
		case "history_enabled":
			set.HistoryEnabled = val
		default:
			return apperr.NotFoundf("setting %q", c.Key)
		}
	}

	if err := ctx.Session.UpdateSettings(set); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", key, c.Value)
	return nil
}
