package app

import "github.com/urfave/cli/v2"

var (
	nameFlag = &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "Name of the event",
	}

	categoryFlag = &cli.StringFlag{
		Name:    "category",
		Aliases: []string{"c"},
		Usage:   "Category of the event: Work, Exercise, or Leisure",
	}

	startFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "Start time of the event in 'YYYY-MM-DD HH:MM' format",
	}

	durationFlag = &cli.IntFlag{
		Name:    "duration",
		Aliases: []string{"t"},
		Usage:   "Duration of the event in minutes",
	}

	dateFlag = &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "Date to inspect in 'YYYY-MM-DD' format",
	}

	filterCategoryFlag = &cli.StringFlag{
		Name:    "category",
		Aliases: []string{"c"},
		Usage:   "Only show events in this category",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Only show events within a period: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days, all-time",
	}

	rangeStartFlag = &cli.StringFlag{
		Name:  "from",
		Usage: "Only show events starting at or after this date",
	}

	rangeEndFlag = &cli.StringFlag{
		Name:  "to",
		Usage: "Only show events starting at or before this date",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output in JSON format",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)
