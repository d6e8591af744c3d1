// Package app defines the sked command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/skedcli/sked/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the sked app instance.
func Get() *cli.App {
	skedApp := &cli.App{
		Name: "sked",
		Usage: `
		Sked is a personal event scheduler for the command-line. It keeps a
		conflict-free calendar of events, finds your free time, and reports
		on how your time is spent.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Schedule a new event. Requires --name, --category, --start, and --duration",
				Action: addAction,
				Flags: []cli.Flag{
					nameFlag,
					categoryFlag,
					startFlag,
					durationFlag,
				},
			},
			{
				Name:   "update",
				Usage:  "Update the event at a start time. Only the provided fields change",
				Action: updateAction,
				Flags: []cli.Flag{
					nameFlag,
					categoryFlag,
					startFlag,
					durationFlag,
				},
			},
			{
				Name:   "delete",
				Usage:  "Delete the event at a start time",
				Action: deleteAction,
				Flags: []cli.Flag{
					startFlag,
				},
			},
			{
				Name:   "list",
				Usage:  "Display scheduled events, optionally restricted to a category or time range",
				Action: listAction,
				Flags: []cli.Flag{
					filterCategoryFlag,
					periodFlag,
					rangeStartFlag,
					rangeEndFlag,
					jsonFlag,
				},
			},
			{
				Name:   "free",
				Usage:  "Show the free time windows for a date",
				Action: freeAction,
				Flags: []cli.Flag{
					dateFlag,
				},
			},
			{
				Name:   "report",
				Usage:  "Generate a report of all events: category totals, busiest days, and weekly trends",
				Action: reportAction,
				Flags: []cli.Flag{
					jsonFlag,
				},
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
		},
		Before: beforeAction,
	}

	return skedApp
}
