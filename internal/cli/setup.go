package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dailydash/internal/constants"
)

// SetupCmd runs the first-run wizard. Re-running it overwrites the profile
// and habit list but leaves notes, links and history alone.
type SetupCmd struct{}

func (c *SetupCmd) Run(ctx *Context) error {
	profile := ctx.Session.Profile()
	settings := ctx.Session.Settings()

	containerStr := strconv.Itoa(profile.ContainerSize)
	goalStr := strconv.Itoa(profile.DailyWaterGoal)
	caffeineStr := strconv.Itoa(profile.CaffeineSize)
	resetStr := strconv.Itoa(profile.DayResetHour)
	habitsStr := strings.Join(ctx.Session.Habits(), ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Value(&profile.Name).
				Validate(notBlank("name")),
			huh.NewInput().
				Title("City (for the weather line, blank to skip)").
				Value(&profile.City),
			huh.NewSelect[string]().
				Title("Units").
				Options(
					huh.NewOption("Metric (ml)", constants.UnitMetric),
					huh.NewOption("Imperial (oz)", constants.UnitImperial),
				).
				Value(&profile.UnitSystem),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Water container size").
				Description("Amount added per `water add`.").
				Value(&containerStr).
				Validate(positiveInt("container size")),
			huh.NewInput().
				Title("Daily water goal").
				Value(&goalStr).
				Validate(positiveInt("water goal")),
			huh.NewInput().
				Title("Caffeine per coffee (mg)").
				Value(&caffeineStr).
				Validate(positiveInt("caffeine size")),
			huh.NewInput().
				Title("Day reset hour (0-23)").
				Description("Hours before this still count as yesterday.").
				Value(&resetStr).
				Validate(func(s string) error {
					h, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || h < 0 || h > 23 {
						return fmt.Errorf("reset hour must be 0-23")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Daily habits (comma separated, up to %d)", constants.MaxHabits)).
				Value(&habitsStr).
				Validate(func(s string) error {
					if len(splitHabits(s)) > constants.MaxHabits {
						return fmt.Errorf("at most %d habits", constants.MaxHabits)
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Capture clipboard history?").
				Value(&settings.ClipboardEnabled),
			huh.NewConfirm().
				Title("Log daily history to CSV?").
				Value(&settings.HistoryEnabled),
			huh.NewConfirm().
				Title("Prompt for a journal note at end of day?").
				Value(&settings.EndOfDayJournal),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	profile.ContainerSize, _ = strconv.Atoi(strings.TrimSpace(containerStr))
	profile.DailyWaterGoal, _ = strconv.Atoi(strings.TrimSpace(goalStr))
	profile.CaffeineSize, _ = strconv.Atoi(strings.TrimSpace(caffeineStr))
	profile.DayResetHour, _ = strconv.Atoi(strings.TrimSpace(resetStr))

	if err := ctx.Session.CompleteSetup(profile, splitHabits(habitsStr)); err != nil {
		return err
	}
	if err := ctx.Session.UpdateSettings(settings); err != nil {
		return err
	}
	fmt.Printf("All set, %s. Run `dailydash` to open the dashboard.\n", profile.Name)
	return nil
}

func splitHabits(s string) []string {
	var habits []string
	for _, h := range strings.Split(s, ",") {
		if h = strings.TrimSpace(h); h != "" {
			habits = append(habits, h)
		}
	}
	return habits
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

func positiveInt(field string) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive number", field)
		}
		return nil
	}
}
