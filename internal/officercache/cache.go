// Package officercache remembers the officers a patrolctl user last filed
// with, so the next report starts from the same roster. Only officer identity
// is kept; offense data never is.
package officercache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/zombor/patrol-reports/internal/ledger"
)

const (
	bucketName = "officers"
	// Key is the single record the cache stores.
	Key = "lawEnforcementOfficerData"
)

// Cache is a bbolt file holding the saved roster.
type Cache struct {
	db *bbolt.DB
}

// DefaultPath returns the cache file under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding config dir: %w", err)
	}
	return filepath.Join(dir, "patrolctl", "officers.db"), nil
}

// Open opens or creates the cache at path.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening officer cache: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &Cache{db: db}, nil
}

// Load returns the saved roster, or a roster with one blank officer when
// nothing has been saved.
func (c *Cache) Load() (*ledger.Roster, error) {
	var officers []ledger.Officer
	err := c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucketName)).Get([]byte(Key))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &officers)
	})
	if err != nil {
		return nil, fmt.Errorf("loading officers: %w", err)
	}
	return ledger.RosterOf(officers), nil
}

// Save replaces the saved roster.
func (c *Cache) Save(roster *ledger.Roster) error {
	data, err := json.Marshal(roster.Officers())
	if err != nil {
		return fmt.Errorf("marshaling officers: %w", err)
	}
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(Key), data)
	})
}

// Clear forgets the saved roster.
func (c *Cache) Clear() error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(Key))
	})
}

// Close closes the cache file.
func (c *Cache) Close() error {
	return c.db.Close()
}
