package report

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.etcd.io/bbolt"
)

const citationBucketName = "citations"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// DB defines the interface for citation storage. Arrests are not stored.
type DB interface {
	// SaveCitation stores a citation, assigning the next sequential ID when
	// citation.ID is zero.
	SaveCitation(citation *Citation) error

	// GetCitation retrieves a citation by ID
	GetCitation(id int64) (*Citation, error)

	// ListCitations returns all citations in ID order
	ListCitations() ([]*Citation, error)

	// Close closes the database connection
	Close() error
}

// BoltDB implements the DB interface using BoltDB
type BoltDB struct {
	db *bbolt.DB
}

// NewBoltDB creates a new BoltDB instance
func NewBoltDB(path string) (*BoltDB, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(citationBucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &BoltDB{db: db}, nil
}

// itob encodes an ID big-endian so that bucket iteration follows ID order.
func itob(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

// SaveCitation saves a citation to the database
func (b *BoltDB) SaveCitation(citation *Citation) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(citationBucketName))
		if citation.ID == 0 {
			seq, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("allocating citation id: %w", err)
			}
			citation.ID = int64(seq)
		}
		data, err := json.Marshal(citation)
		if err != nil {
			return fmt.Errorf("marshaling citation: %w", err)
		}
		return bucket.Put(itob(citation.ID), data)
	})
}

// GetCitation retrieves a citation by ID
func (b *BoltDB) GetCitation(id int64) (*Citation, error) {
	var citation *Citation
	err := b.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(citationBucketName)).Get(itob(id))
		if data == nil {
			return fmt.Errorf("citation %d: %w", id, ErrNotFound)
		}
		return json.Unmarshal(data, &citation)
	})
	if err != nil {
		return nil, err
	}
	return citation, nil
}

// ListCitations returns all citations
func (b *BoltDB) ListCitations() ([]*Citation, error) {
	citations := make([]*Citation, 0)
	err := b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(citationBucketName)).ForEach(func(k, v []byte) error {
			var citation Citation
			if err := json.Unmarshal(v, &citation); err != nil {
				return fmt.Errorf("unmarshaling citation: %w", err)
			}
			citations = append(citations, &citation)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return citations, nil
}

// Close closes the database
func (b *BoltDB) Close() error {
	return b.db.Close()
}

// MemDB is an in-process DB used when no database file is configured.
// Records are lost on restart.
type MemDB struct {
	mu        sync.RWMutex
	citations map[int64]*Citation
	nextID    int64
}

// NewMemDB creates an empty in-memory store.
func NewMemDB() *MemDB {
	return &MemDB{citations: make(map[int64]*Citation)}
}

// SaveCitation stores a copy of citation.
func (m *MemDB) SaveCitation(citation *Citation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if citation.ID == 0 {
		m.nextID++
		citation.ID = m.nextID
	} else if citation.ID > m.nextID {
		m.nextID = citation.ID
	}
	c := *citation
	m.citations[c.ID] = &c
	return nil
}

// GetCitation returns a copy of the stored citation.
func (m *MemDB) GetCitation(id int64) (*Citation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.citations[id]
	if !ok {
		return nil, fmt.Errorf("citation %d: %w", id, ErrNotFound)
	}
	out := *c
	return &out, nil
}

// ListCitations returns copies of every citation in ID order.
func (m *MemDB) ListCitations() ([]*Citation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	citations := make([]*Citation, 0, len(m.citations))
	for _, c := range m.citations {
		out := *c
		citations = append(citations, &out)
	}
	sort.Slice(citations, func(i, j int) bool {
		return citations[i].ID < citations[j].ID
	})
	return citations, nil
}

// Close is a no-op.
func (m *MemDB) Close() error {
	return nil
}
