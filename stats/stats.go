// Package stats aggregates scheduled events into reports
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"

	"github.com/skedcli/sked/internal/event"
	"github.com/skedcli/sked/internal/timeutil"
	"github.com/skedcli/sked/internal/ui"
)

const (
	barChartChar = "▇"
	noEventsMsg  = "No events to report."
)

// DayTotal is the booked time for one calendar date.
type DayTotal struct {
	Date    time.Time `json:"date"`
	Minutes int       `json:"minutes"`
}

// WeekTrend summarises one ISO week. The dominant category is whichever
// accumulated the most minutes; between equal categories the reporting
// order of event.Categories decides.
type WeekTrend struct {
	Week            string         `json:"week"`
	TotalMinutes    int            `json:"total_minutes"`
	DominantCat     event.Category `json:"dominant_category"`
	DominantMinutes int            `json:"dominant_category_minutes"`
}

// Report holds the computed analytics for a set of events.
type Report struct {
	Totals      map[event.Category]int `json:"totals_per_category"`
	BusiestDays []DayTotal             `json:"busiest_days"`
	Trends      []WeekTrend            `json:"weekly_trends"`
}

// Compute aggregates events into per-category totals, a busiest-day
// ranking, and weekly trends. Every known category appears in Totals even
// when no event references it.
func Compute(events []event.Event) *Report {
	r := &Report{
		Totals: make(map[event.Category]int, len(event.Categories)),
	}

	for _, c := range event.Categories {
		r.Totals[c] = 0
	}

	days := make(map[string]*DayTotal)
	weeks := make(map[string]map[event.Category]int)

	for _, ev := range events {
		r.Totals[ev.Category] += ev.Duration

		dayKey := timeutil.DayFormat(ev.Start)
		if _, ok := days[dayKey]; !ok {
			days[dayKey] = &DayTotal{Date: timeutil.RoundToStart(ev.Start)}
		}

		days[dayKey].Minutes += ev.Duration

		weekKey := timeutil.WeekID(ev.Start)
		if _, ok := weeks[weekKey]; !ok {
			weeks[weekKey] = make(map[event.Category]int)
		}

		weeks[weekKey][ev.Category] += ev.Duration
	}

	for _, d := range days {
		r.BusiestDays = append(r.BusiestDays, *d)
	}

	sort.SliceStable(r.BusiestDays, func(i, j int) bool {
		return r.BusiestDays[i].Minutes > r.BusiestDays[j].Minutes
	})

	for week, totals := range weeks {
		trend := WeekTrend{Week: week}

		for _, c := range event.Categories {
			mins := totals[c]

			trend.TotalMinutes += mins

			if mins > trend.DominantMinutes {
				trend.DominantCat = c
				trend.DominantMinutes = mins
			}
		}

		r.Trends = append(r.Trends, trend)
	}

	sort.SliceStable(r.Trends, func(i, j int) bool {
		return r.Trends[i].Week < r.Trends[j].Week
	})

	return r
}

func (r *Report) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// totalMinutes sums all booked time across categories.
func (r *Report) totalMinutes() int {
	var total int

	for _, mins := range r.Totals {
		total += mins
	}

	return total
}

func (r *Report) categoryTable() [][]string {
	rows := [][]string{
		{"CATEGORY", "TOTAL TIME (MINUTES)"},
	}

	for _, c := range event.Categories {
		rows = append(rows, []string{
			string(c),
			strconv.Itoa(r.Totals[c]),
		})
	}

	return rows
}

func (r *Report) busiestDaysTable() [][]string {
	rows := [][]string{
		{"DATE", "TOTAL TIME (MINUTES)"},
	}

	for _, d := range r.BusiestDays {
		rows = append(rows, []string{
			d.Date.Format("Monday, January 02, 2006"),
			strconv.Itoa(d.Minutes),
		})
	}

	return rows
}

func (r *Report) trendsTable() [][]string {
	rows := [][]string{
		{"WEEK", "TOTAL TIME (MINUTES)", "TOP CATEGORY", "TOP CATEGORY TIME"},
	}

	for _, t := range r.Trends {
		rows = append(rows, []string{
			t.Week,
			strconv.Itoa(t.TotalMinutes),
			string(t.DominantCat),
			strconv.Itoa(t.DominantMinutes),
		})
	}

	return rows
}

// busiestDaysChart renders the busiest-day ranking as a horizontal bar
// chart.
func (r *Report) busiestDaysChart() string {
	if len(r.BusiestDays) == 0 {
		return ""
	}

	var bars pterm.Bars

	for _, d := range r.BusiestDays {
		bars = append(bars, pterm.Bar{
			Value: d.Minutes,
			Label: d.Date.Format("Jan 02, 2006"),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return chart
}

// Render writes the full report to w: the three tables, a bar chart of the
// busiest days, and a human-readable grand total. An empty store still gets
// every section, with just the headers filled in.
func (r *Report) Render(w io.Writer) {
	if len(r.BusiestDays) == 0 {
		fmt.Fprintln(w, noEventsMsg)
	}

	fmt.Fprintln(w, ui.Blue("Total Time Spent Per Category"))
	ui.PrintTable(r.categoryTable(), w)

	fmt.Fprintln(w, ui.Blue("Busiest Days (most active first)"))
	ui.PrintTable(r.busiestDaysTable(), w)

	if chart := r.busiestDaysChart(); chart != "" {
		fmt.Fprintln(w, chart)
	}

	fmt.Fprintln(w, ui.Blue("Trends Over Time (weekly)"))
	ui.PrintTable(r.trendsTable(), w)

	total := time.Duration(r.totalMinutes()) * time.Minute
	formatted := durafmt.Parse(total).LimitToUnit("hours").LimitFirstN(2)

	fmt.Fprintf(w, "Total time scheduled: %s\n", ui.Green(formatted))
}
