// Package event defines scheduler events
package event

import (
	"strings"
	"time"

	"github.com/skedcli/sked/internal/apperr"
	"github.com/skedcli/sked/internal/timeutil"
)

// Category classifies an event. Input is matched case-insensitively and
// stored in the canonical capitalized form.
type Category string

const (
	Work     Category = "Work"
	Exercise Category = "Exercise"
	Leisure  Category = "Leisure"
)

// Categories lists every known category in reporting order.
var Categories = []Category{Work, Exercise, Leisure}

var (
	ErrInvalidCategory = &apperr.Error{
		Message: "unknown category: %q (must be one of Work, Exercise, Leisure)",
	}

	ErrInvalidDuration = &apperr.Error{
		Message: "duration must be a positive number of minutes, got %d",
	}

	ErrEmptyName = &apperr.Error{
		Message: "the event name cannot be empty",
	}
)

// ParseCategory normalizes a category string.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}

	return "", ErrInvalidCategory.Fmt(s)
}

// Event is a single scheduled block of time. Start is the unique key and
// the interval it occupies is [Start, Start+Duration), half-open.
type Event struct {
	Start    time.Time `json:"-"`
	Name     string    `json:"name"`
	Category Category  `json:"category"`
	Duration int       `json:"duration"` // minutes
}

// New validates and constructs an event. The start instant is assumed to be
// parsed already; time policy (future-only) is enforced by the schedule,
// not here.
func New(start time.Time, name, category string, duration int) (Event, error) {
	if strings.TrimSpace(name) == "" {
		return Event{}, ErrEmptyName
	}

	cat, err := ParseCategory(category)
	if err != nil {
		return Event{}, err
	}

	if duration <= 0 {
		return Event{}, ErrInvalidDuration.Fmt(duration)
	}

	return Event{
		Start:    start,
		Name:     name,
		Category: cat,
		Duration: duration,
	}, nil
}

// End returns the exclusive end of the event's interval.
func (e Event) End() time.Time {
	return e.Start.Add(time.Duration(e.Duration) * time.Minute)
}

// Overlaps reports whether the event's interval overlaps [start, end).
// Touching boundaries do not overlap.
func (e Event) Overlaps(start, end time.Time) bool {
	return start.Before(e.End()) && end.After(e.Start)
}

// Key returns the canonical store key for the event.
func (e Event) Key() string {
	return e.Start.Format(timeutil.KeyLayout)
}
