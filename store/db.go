package store

import (
	"github.com/skedcli/sked/internal/event"
)

// DB is the persistence boundary for scheduler events. The schedule flushes
// through it after every successful mutation.
type DB interface {
	GetEvents() ([]event.Event, error)
	SaveEvent(ev event.Event) error
	DeleteEvent(key string) error
	Close() error
}
