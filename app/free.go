package app

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/skedcli/sked/internal/timeutil"
	"github.com/skedcli/sked/internal/ui"
	"github.com/skedcli/sked/schedule"
)

// printFreeWindows prints each free window on its own line, or a notice
// when the day is fully booked.
func printFreeWindows(w io.Writer, windows []schedule.Window) {
	if len(windows) == 0 {
		pterm.Info.Println("No free times available on this day")
		return
	}

	for _, win := range windows {
		fmt.Fprintf(
			w,
			"Free from %s to %s\n",
			ui.Green(win.Start.Format(timeutil.KeyLayout)),
			ui.Green(win.End.Format(timeutil.KeyLayout)),
		)
	}
}
