// Package store connects to the data store and manages persisted events
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/skedcli/sked/internal/event"
	"github.com/skedcli/sked/internal/timeutil"
)

const eventsBucket = "events"

var errSkedRunning = errors.New(
	"is sked already running? Only one instance can be active at a time",
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// GetEvents loads every persisted event, sorted by key (and therefore by
// start time, since keys share a fixed-width layout). Records that no
// longer decode are skipped rather than aborting the load.
func (c *Client) GetEvents() ([]event.Event, error) {
	var events []event.Event

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(eventsBucket)).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			start, err := time.ParseInLocation(
				timeutil.KeyLayout,
				string(k),
				time.Local,
			)
			if err != nil {
				continue
			}

			var ev event.Event

			if err := json.Unmarshal(v, &ev); err != nil {
				continue
			}

			ev.Start = start

			events = append(events, ev)
		}

		return nil
	})

	return events, err
}

func (c *Client) SaveEvent(ev event.Event) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(eventsBucket)).Put([]byte(ev.Key()), value)
	})
}

func (c *Client) DeleteEvent(key string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(eventsBucket)).Delete([]byte(key))
	})
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errSkedRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection. A state file that
// cannot be opened is moved aside and replaced with an empty store: losing
// a corrupt file beats refusing to schedule anything.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		if errors.Is(err, errSkedRunning) {
			return nil, err
		}

		if renameErr := os.Rename(dbPath, dbPath+".corrupt"); renameErr != nil {
			return nil, err
		}

		db, err = openDB(dbPath)
		if err != nil {
			return nil, err
		}
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(eventsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
