package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/skedcli/sked/internal/event"
	"github.com/skedcli/sked/internal/timeutil"
	"github.com/skedcli/sked/internal/ui"
)

// printEventsTable prints an event table to the command-line.
func printEventsTable(w io.Writer, events []event.Event, twentyFourHour bool) {
	layout := "Jan 02, 2006 03:04 PM"
	if twentyFourHour {
		layout = timeutil.KeyLayout
	}

	tableBody := make([][]string, len(events))

	for i := range events {
		ev := events[i]

		row := []string{
			fmt.Sprintf("%d", i+1),
			ev.Start.Format(layout),
			ev.Name,
			string(ev.Category),
			fmt.Sprintf("%d", ev.Duration),
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "START TIME", "NAME", "CATEGORY", "DURATION (MINS)"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// marshalEvents produces the JSON form of an event list. The start time is
// included under its canonical key format.
func marshalEvents(events []event.Event) ([]byte, error) {
	type jsonEvent struct {
		Start    string         `json:"start_time"`
		Name     string         `json:"name"`
		Category event.Category `json:"category"`
		Duration int            `json:"duration"`
	}

	out := make([]jsonEvent, len(events))

	for i, ev := range events {
		out[i] = jsonEvent{
			Start:    ev.Key(),
			Name:     ev.Name,
			Category: ev.Category,
			Duration: ev.Duration,
		}
	}

	return json.Marshal(out)
}
