package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/skedcli/sked/config"
	"github.com/skedcli/sked/internal/apperr"
	"github.com/skedcli/sked/internal/event"
	"github.com/skedcli/sked/internal/timeutil"
	"github.com/skedcli/sked/internal/ui"
	"github.com/skedcli/sked/schedule"
	"github.com/skedcli/sked/stats"
	"github.com/skedcli/sked/store"
)

const (
	envNoColor     = "NO_COLOR"
	envSkedNoColor = "SKED_NO_COLOR"
)

var (
	errMissingArgs = &apperr.Error{
		Message: "missing argument(s) for %s: %s",
	}

	errNoUpdateFields = &apperr.Error{
		Message: "no update information provided: specify at least one of --name, --category, or --duration",
	}
)

// scheduleHelper opens the store and rehydrates the schedule from it.
func scheduleHelper() (*schedule.Schedule, store.DB, error) {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	sched, err := schedule.New(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return sched, db, nil
}

func appConfig() (*config.Config, error) {
	cfg, err := config.New(
		config.WithViperConfig(config.ConfigFilePath()),
	)
	if err != nil {
		return nil, err
	}

	slog.Debug(spew.Sdump(cfg))

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// missingAddFlags enumerates the required add flags that were not
// provided. The category is resolved by the caller since it may come from
// the config file instead of a flag.
func missingAddFlags(ctx *cli.Context, category string) []string {
	var missing []string

	if ctx.String("name") == "" {
		missing = append(missing, "name")
	}

	if category == "" {
		missing = append(missing, "category")
	}

	if ctx.String("start") == "" {
		missing = append(missing, "start")
	}

	if ctx.Int("duration") == 0 {
		missing = append(missing, "duration")
	}

	return missing
}

// addAction handles the add command which schedules a new event. Every
// missing required flag is reported at once, before the core is touched.
func addAction(ctx *cli.Context) error {
	cfg, err := appConfig()
	if err != nil {
		return err
	}

	category := ctx.String("category")
	if category == "" {
		category = cfg.Settings.DefaultCategory
	}

	if missing := missingAddFlags(ctx, category); len(missing) > 0 {
		return errMissingArgs.Fmt("adding an event", strings.Join(missing, ", "))
	}

	start, err := timeutil.ParseInstant(ctx.String("start"))
	if err != nil {
		return err
	}

	ev, err := event.New(start, ctx.String("name"), category, ctx.Int("duration"))
	if err != nil {
		return err
	}

	sched, db, err := scheduleHelper()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sched.Add(ev); err != nil {
		if errors.Is(err, schedule.ErrEventConflict) {
			pterm.Error.Println(err)
			pterm.Info.Println("Free times on this day:")
			printFreeWindows(config.Stdout, sched.FreeWindows(start))

			return cli.Exit("", 1)
		}

		return err
	}

	slog.Info("event added",
		slog.String("name", ev.Name),
		slog.String("start", ev.Key()),
		slog.Int("duration", ev.Duration),
	)

	pterm.Success.Printfln("Event added: %s at %s", ev.Name, ev.Key())

	return nil
}

// updateAction handles the update command which patches the event at a
// start time. Omitted fields keep their previous values.
func updateAction(ctx *cli.Context) error {
	if ctx.String("start") == "" {
		return errMissingArgs.Fmt("updating an event", "start")
	}

	patch := schedule.Patch{
		Name:     ctx.String("name"),
		Category: ctx.String("category"),
		Duration: ctx.Int("duration"),
	}

	if patch.Name == "" && patch.Category == "" && patch.Duration == 0 {
		return errNoUpdateFields
	}

	start, err := timeutil.ParseInstant(ctx.String("start"))
	if err != nil {
		return err
	}

	sched, db, err := scheduleHelper()
	if err != nil {
		return err
	}
	defer db.Close()

	updated, err := sched.Update(start, patch)
	if err != nil {
		return err
	}

	slog.Info("event updated", slog.String("start", updated.Key()))

	pterm.Success.Printfln(
		"Event updated: %s, Category: %s, Duration: %d minutes",
		updated.Name,
		updated.Category,
		updated.Duration,
	)

	return nil
}

// deleteAction handles the delete command. Past events may be deleted, so
// the start time is parsed without the future-only policy.
func deleteAction(ctx *cli.Context) error {
	if ctx.String("start") == "" {
		return errMissingArgs.Fmt("deleting an event", "start")
	}

	start, err := timeutil.ParseInstant(ctx.String("start"))
	if err != nil {
		return err
	}

	sched, db, err := scheduleHelper()
	if err != nil {
		return err
	}
	defer db.Close()

	ev, err := sched.Delete(start)
	if err != nil {
		return err
	}

	slog.Info("event deleted", slog.String("start", ev.Key()))

	pterm.Success.Printfln(
		"Event scheduled to start at %s has been deleted",
		ev.Key(),
	)

	return nil
}

// listAction handles the list command and prints a table of events.
func listAction(ctx *cli.Context) error {
	cfg, err := appConfig()
	if err != nil {
		return err
	}

	filter, err := config.Filter(ctx)
	if err != nil {
		return err
	}

	sched, db, err := scheduleHelper()
	if err != nil {
		return err
	}
	defer db.Close()

	category := ctx.String("category")

	events := sched.Events()
	if category != "" {
		events, err = sched.FilterByCategory(category)
		if err != nil {
			return err
		}
	}

	filtered := events[:0]

	for _, ev := range events {
		if filter.Covers(ev.Start) {
			filtered = append(filtered, ev)
		}
	}

	events = filtered

	if ctx.Bool("json") {
		b, err := marshalEvents(events)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if len(events) == 0 {
		if category != "" {
			pterm.Info.Printfln("No events found in category %q", category)
		} else {
			pterm.Info.Println("No scheduled events")
		}

		return nil
	}

	printEventsTable(config.Stdout, events, cfg.Display.TwentyFourHour)

	return nil
}

// freeAction handles the free command which prints the uncovered time
// windows for a date.
func freeAction(ctx *cli.Context) error {
	if ctx.String("date") == "" {
		return errMissingArgs.Fmt("checking free times", "date")
	}

	day, err := timeutil.ParseInstant(ctx.String("date"))
	if err != nil {
		return err
	}

	if _, err := appConfig(); err != nil {
		return err
	}

	sched, db, err := scheduleHelper()
	if err != nil {
		return err
	}
	defer db.Close()

	printFreeWindows(config.Stdout, sched.FreeWindows(day))

	return nil
}

// reportAction computes the analytics report and writes it to both the
// terminal and the report log artifact.
func reportAction(ctx *cli.Context) error {
	if _, err := appConfig(); err != nil {
		return err
	}

	sched, db, err := scheduleHelper()
	if err != nil {
		return err
	}
	defer db.Close()

	report := stats.Compute(sched.Events())

	if ctx.Bool("json") {
		b, err := report.ToJSON()
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	logFile, err := os.Create(config.ReportFilePath())
	if err != nil {
		return err
	}
	defer logFile.Close()

	report.Render(io.MultiWriter(config.Stdout, logFile))

	slog.Info("report generated", slog.String("path", config.ReportFilePath()))

	return nil
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()
	config.InitLogger()

	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if SKED_NO_COLOR is set
	if _, exists := os.LookupEnv(envSkedNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
