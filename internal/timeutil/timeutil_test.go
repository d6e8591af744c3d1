package timeutil_test

import (
	"errors"
	"testing"
	"time"

	"github.com/skedcli/sked/internal/timeutil"
)

func TestParseInstant(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "date and time",
			input: "2097-05-10 14:30",
			want:  time.Date(2097, time.May, 10, 14, 30, 0, 0, time.Local),
		},
		{
			name:  "bare date defaults to midnight",
			input: "2097-05-10",
			want:  time.Date(2097, time.May, 10, 0, 0, 0, 0, time.Local),
		},
		{
			name:    "seconds are not accepted",
			input:   "2097-05-10 14:30:15",
			wantErr: true,
		},
		{
			name:    "slashes are not accepted",
			input:   "2097/05/10",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "next tuesday",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := timeutil.ParseInstant(tc.input)

			if tc.wantErr {
				if !errors.Is(err, timeutil.ErrDateFormat) {
					t.Fatalf("Expected a date format error, got: %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if !got.Equal(tc.want) {
				t.Errorf("Expected %v, got: %v", tc.want, got)
			}
		})
	}
}

func TestRequireFuture(t *testing.T) {
	now := time.Date(2097, time.May, 10, 14, 30, 0, 0, time.Local)

	cases := []struct {
		name    string
		instant time.Time
		wantErr bool
	}{
		{
			name:    "one minute ahead",
			instant: now.Add(time.Minute),
		},
		{
			name:    "the current minute is rejected",
			instant: now,
			wantErr: true,
		},
		{
			name:    "one minute behind",
			instant: now.Add(-time.Minute),
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := timeutil.RequireFuture(tc.instant, now)

			if tc.wantErr && !errors.Is(err, timeutil.ErrPastDate) {
				t.Fatalf("Expected a past date error, got: %v", err)
			}

			if !tc.wantErr && err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
		})
	}
}

func TestDayBounds(t *testing.T) {
	instant := time.Date(2097, time.May, 10, 14, 30, 0, 0, time.Local)

	start := timeutil.RoundToStart(instant)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("Unexpected start of day: %v", start)
	}

	end := timeutil.RoundToEnd(instant)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 0 {
		t.Errorf("Unexpected end of day: %v", end)
	}
}

func TestWeekID(t *testing.T) {
	// Dec 31, 2096 is a Monday and belongs to the first ISO week of 2097.
	got := timeutil.WeekID(time.Date(2096, time.December, 31, 0, 0, 0, 0, time.Local))
	if got != "2097-W01" {
		t.Errorf("Expected 2097-W01, got: %s", got)
	}

	got = timeutil.WeekID(time.Date(2097, time.May, 10, 8, 0, 0, 0, time.Local))
	if got != "2097-W19" {
		t.Errorf("Expected 2097-W19, got: %s", got)
	}
}

func TestToKeyRoundTrip(t *testing.T) {
	instant := time.Date(2097, time.May, 10, 14, 30, 0, 0, time.Local)

	key := timeutil.ToKey(instant)

	parsed, err := timeutil.ParseInstant(string(key))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !parsed.Equal(instant) {
		t.Errorf("Expected %v, got: %v", instant, parsed)
	}
}
