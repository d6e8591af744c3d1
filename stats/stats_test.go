package stats_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/skedcli/sked/internal/event"
	"github.com/skedcli/sked/stats"
)

func at(day, hour, min int) time.Time {
	return time.Date(2097, time.May, day, hour, min, 0, 0, time.Local)
}

func fixtureEvents() []event.Event {
	return []event.Event{
		{Start: at(6, 9, 0), Name: "Deep work", Category: event.Work, Duration: 180},
		{Start: at(6, 18, 0), Name: "Gym", Category: event.Exercise, Duration: 60},
		{Start: at(7, 9, 0), Name: "Email", Category: event.Work, Duration: 30},
		{Start: at(13, 10, 0), Name: "Hike", Category: event.Leisure, Duration: 240},
		{Start: at(13, 19, 0), Name: "Reading", Category: event.Leisure, Duration: 60},
	}
}

func TestComputeTotals(t *testing.T) {
	r := stats.Compute(fixtureEvents())

	expected := map[event.Category]int{
		event.Work:     210,
		event.Exercise: 60,
		event.Leisure:  300,
	}

	for cat, want := range expected {
		if got := r.Totals[cat]; got != want {
			t.Errorf("Expected %s total to be %d, got: %d", cat, want, got)
		}
	}
}

func TestComputeTotalsEmptyStore(t *testing.T) {
	r := stats.Compute(nil)

	for _, cat := range event.Categories {
		got, ok := r.Totals[cat]
		if !ok {
			t.Fatalf("Expected category %s to be present", cat)
		}

		if got != 0 {
			t.Errorf("Expected %s total to be 0, got: %d", cat, got)
		}
	}

	if len(r.BusiestDays) != 0 || len(r.Trends) != 0 {
		t.Errorf("Expected no days or trends, got: %+v", r)
	}
}

func TestBusiestDays(t *testing.T) {
	r := stats.Compute(fixtureEvents())

	if len(r.BusiestDays) != 3 {
		t.Fatalf("Expected 3 days, got: %d", len(r.BusiestDays))
	}

	wantMinutes := []int{300, 240, 30}

	for i, want := range wantMinutes {
		if got := r.BusiestDays[i].Minutes; got != want {
			t.Errorf(
				"Expected day %d total to be %d, got: %d",
				i,
				want,
				got,
			)
		}
	}

	if r.BusiestDays[0].Date.Day() != 13 {
		t.Errorf(
			"Expected the busiest day to be May 13, got: %v",
			r.BusiestDays[0].Date,
		)
	}
}

func TestWeeklyTrends(t *testing.T) {
	r := stats.Compute(fixtureEvents())

	// May 6-7 2097 (Mon, Tue) share an ISO week; May 13 is the following Monday.
	if len(r.Trends) != 2 {
		t.Fatalf("Expected 2 weeks, got: %+v", r.Trends)
	}

	first := r.Trends[0]

	if first.Week >= r.Trends[1].Week {
		t.Errorf("Expected weeks in ascending order, got: %+v", r.Trends)
	}

	if first.TotalMinutes != 270 {
		t.Errorf("Expected first week total to be 270, got: %d", first.TotalMinutes)
	}

	if first.DominantCat != event.Work || first.DominantMinutes != 210 {
		t.Errorf("Unexpected dominant category: %+v", first)
	}

	second := r.Trends[1]

	if second.DominantCat != event.Leisure || second.TotalMinutes != 300 {
		t.Errorf("Unexpected second week: %+v", second)
	}
}

func TestReportJSON(t *testing.T) {
	b, err := stats.Compute(fixtureEvents()).ToJSON()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded struct {
		Totals map[string]int `json:"totals_per_category"`
		Trends []struct {
			Week string `json:"week"`
		} `json:"weekly_trends"`
	}

	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if decoded.Totals["Work"] != 210 {
		t.Errorf("Unexpected JSON totals: %+v", decoded.Totals)
	}

	if len(decoded.Trends) != 2 {
		t.Errorf("Unexpected JSON trends: %+v", decoded.Trends)
	}
}

func TestRenderEmptyReport(t *testing.T) {
	var buf bytes.Buffer

	stats.Compute(nil).Render(&buf)

	out := buf.String()

	if !strings.Contains(out, "No events to report.") {
		t.Errorf("Expected the empty notice, got:\n%s", out)
	}

	// Category totals still render with zeroes.
	if !strings.Contains(out, "Work") {
		t.Errorf("Expected the category table, got:\n%s", out)
	}

	// Every section appears even with nothing to show.
	for _, want := range []string{
		"Total Time Spent Per Category",
		"Busiest Days (most active first)",
		"Trends Over Time (weekly)",
		"Total time scheduled:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected section %q, got:\n%s", want, out)
		}
	}
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer

	stats.Compute(fixtureEvents()).Render(&buf)

	out := buf.String()

	for _, want := range []string{
		"Total Time Spent Per Category",
		"Busiest Days (most active first)",
		"Trends Over Time (weekly)",
		"Total time scheduled:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}
