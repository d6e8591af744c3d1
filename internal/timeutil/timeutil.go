// Package timeutil provides utility functions and types for working with
// time-related operations. All scheduler times are minute-granular and
// location-naive.
package timeutil

import (
	"fmt"
	"time"

	"github.com/skedcli/sked/internal/apperr"
)

// KeyLayout is the canonical representation of an event start time. It is
// used both for display and as the persistent store key.
const (
	KeyLayout  = "2006-01-02 15:04"
	DateLayout = "2006-01-02"
)

var (
	ErrDateFormat = &apperr.Error{
		Message: "invalid date format: %q (must be 'YYYY-MM-DD HH:MM' or 'YYYY-MM-DD')",
	}

	ErrPastDate = &apperr.Error{
		Message: "the date '%s' must be in the future",
	}
)

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// ParseInstant parses a scheduler instant. A bare date is accepted and
// defaults to the start of the day.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, s, time.Local)
	if err == nil {
		return t, nil
	}

	t, err = time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrDateFormat.Fmt(s)
	}

	return t, nil
}

// RequireFuture rejects instants that are not strictly after now. The
// current minute itself does not qualify.
func RequireFuture(t, now time.Time) (time.Time, error) {
	if !t.After(now) {
		return time.Time{}, ErrPastDate.Fmt(t.Format(KeyLayout))
	}

	return t, nil
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day, truncated to
// minute resolution (23:59).
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		0,
		0,
		t.Location(),
	)
}

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func DayFormat(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekID identifies the ISO week an instant belongs to, e.g. "2024-W07".
func WeekID(t time.Time) string {
	year, week := t.ISOWeek()

	return fmt.Sprintf("%d-W%02d", year, week)
}

// ToKey converts a time value to a database key.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(KeyLayout))
}
