// Package schedule maintains the collection of non-overlapping events and
// derives free time windows. It is the single owner of the in-memory event
// set: every mutation is flushed to the store before it is committed here,
// so a reported success is always on disk.
package schedule

import (
	"sort"
	"time"

	"github.com/skedcli/sked/internal/event"
	"github.com/skedcli/sked/internal/timeutil"
	"github.com/skedcli/sked/store"
)

// Window is a free block of time within a day, derived on demand and never
// stored.
type Window struct {
	Start time.Time
	End   time.Time
}

// Patch holds replacement values for an update. Zero values leave the
// corresponding field untouched; the start instant itself cannot change.
type Patch struct {
	Name     string
	Category string
	Duration int
}

type Schedule struct {
	db     store.DB
	events map[string]event.Event
}

// New rehydrates the schedule from the store.
func New(db store.DB) (*Schedule, error) {
	events, err := db.GetEvents()
	if err != nil {
		return nil, err
	}

	s := &Schedule{
		db:     db,
		events: make(map[string]event.Event, len(events)),
	}

	for _, ev := range events {
		s.events[ev.Key()] = ev
	}

	return s, nil
}

// findConflict returns the first stored event whose interval overlaps
// [start, end). The event keyed by exclude is skipped so that updates do
// not collide with the record being modified. Which conflict is returned
// is unspecified when several overlap.
func (s *Schedule) findConflict(
	start, end time.Time,
	exclude string,
) (event.Event, bool) {
	for key, ev := range s.events {
		if key == exclude {
			continue
		}

		if ev.Overlaps(start, end) {
			return ev, true
		}
	}

	return event.Event{}, false
}

// Add validates that the event starts in the future and does not overlap
// any existing event, then persists and commits it.
func (s *Schedule) Add(ev event.Event) error {
	if _, err := timeutil.RequireFuture(ev.Start, time.Now()); err != nil {
		return err
	}

	if other, ok := s.findConflict(ev.Start, ev.End(), ""); ok {
		return ErrEventConflict.Fmt(
			other.Name,
			other.Start.Format(timeutil.KeyLayout),
			other.End().Format(timeutil.KeyLayout),
		)
	}

	if err := s.db.SaveEvent(ev); err != nil {
		return err
	}

	s.events[ev.Key()] = ev

	return nil
}

// Update modifies the event starting at the given instant. The lookup is
// exact, not fuzzy. A duration change is conflict-checked against all other
// events before anything is written, so a failed update leaves the schedule
// untouched.
func (s *Schedule) Update(start time.Time, patch Patch) (event.Event, error) {
	key := string(timeutil.ToKey(start))

	current, ok := s.events[key]
	if !ok {
		return event.Event{}, ErrEventNotFound.Fmt(
			start.Format(timeutil.KeyLayout),
		)
	}

	name := current.Name
	if patch.Name != "" {
		name = patch.Name
	}

	category := string(current.Category)
	if patch.Category != "" {
		category = patch.Category
	}

	duration := current.Duration
	if patch.Duration != 0 {
		duration = patch.Duration
	}

	updated, err := event.New(current.Start, name, category, duration)
	if err != nil {
		return event.Event{}, err
	}

	if updated.Duration != current.Duration {
		if other, ok := s.findConflict(updated.Start, updated.End(), key); ok {
			return event.Event{}, ErrEventConflict.Fmt(
				other.Name,
				other.Start.Format(timeutil.KeyLayout),
				other.End().Format(timeutil.KeyLayout),
			)
		}
	}

	if err := s.db.SaveEvent(updated); err != nil {
		return event.Event{}, err
	}

	s.events[key] = updated

	return updated, nil
}

// Delete removes the event starting at the given instant. Past events may
// be deleted; the future-only policy applies to add and update alone.
func (s *Schedule) Delete(start time.Time) (event.Event, error) {
	key := string(timeutil.ToKey(start))

	ev, ok := s.events[key]
	if !ok {
		return event.Event{}, ErrEventNotFound.Fmt(
			start.Format(timeutil.KeyLayout),
		)
	}

	if err := s.db.DeleteEvent(key); err != nil {
		return event.Event{}, err
	}

	delete(s.events, key)

	return ev, nil
}

// Events returns all events sorted ascending by start time.
func (s *Schedule) Events() []event.Event {
	events := make([]event.Event, 0, len(s.events))

	for _, ev := range s.events {
		events = append(events, ev)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})

	return events
}

// FilterByCategory returns events in the given category, matched
// case-insensitively, in start order.
func (s *Schedule) FilterByCategory(category string) ([]event.Event, error) {
	cat, err := event.ParseCategory(category)
	if err != nil {
		return nil, err
	}

	var filtered []event.Event

	for _, ev := range s.Events() {
		if ev.Category == cat {
			filtered = append(filtered, ev)
		}
	}

	return filtered, nil
}

// FreeWindows computes the uncovered sub-intervals of the given day, in
// order. The day spans 00:00 to 23:59 at minute resolution. The cursor
// never moves backward, so events contained within a longer event's span do
// not reopen a gap. An empty result means the day is fully booked.
func (s *Schedule) FreeWindows(day time.Time) []Window {
	var dayEvents []event.Event

	for _, ev := range s.Events() {
		if timeutil.SameDay(ev.Start, day) {
			dayEvents = append(dayEvents, ev)
		}
	}

	var windows []Window

	cursor := timeutil.RoundToStart(day)

	for _, ev := range dayEvents {
		if ev.Start.After(cursor) {
			windows = append(windows, Window{Start: cursor, End: ev.Start})
		}

		if end := ev.End(); end.After(cursor) {
			cursor = end
		}
	}

	if endOfDay := timeutil.RoundToEnd(day); cursor.Before(endOfDay) {
		windows = append(windows, Window{Start: cursor, End: endOfDay})
	}

	return windows
}
