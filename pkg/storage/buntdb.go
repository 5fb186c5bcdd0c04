package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/buntdb"

	"github.com/raykavin/tafx/pkg/core"
)

const (
	keyPrefix    = "result:"
	createdIndex = "created_index"
)

// BuntStorage keeps results as JSON documents in BuntDB
type BuntStorage struct {
	mu     sync.Mutex // guards lastID across a whole Save
	lastID int64
	db     *buntdb.DB
}

// FromMemory creates an in-memory storage
func FromMemory() (*BuntStorage, error) {
	return NewBuntStorage(":memory:")
}

// FromFile creates a file-based storage
func FromFile(file string) (*BuntStorage, error) {
	return NewBuntStorage(file)
}

// NewBuntStorage opens sourceFile and resumes ID assignment after the
// highest stored ID
func NewBuntStorage(sourceFile string) (*BuntStorage, error) {
	db, err := buntdb.Open(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open buntdb: %w", err)
	}

	err = db.CreateIndex(createdIndex, keyPrefix+"*", buntdb.IndexJSON("created_at"))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	s := &BuntStorage{db: db}
	err = db.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(keyPrefix+"*", func(key, _ string) bool {
			if id, err := strconv.ParseInt(strings.TrimPrefix(key, keyPrefix), 10, 64); err == nil && id > s.lastID {
				s.lastID = id
			}
			return true
		})
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func key(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

// Save assigns result the next ID and stores it. A failed write leaves
// both the result and the ID sequence untouched.
func (b *BuntStorage) Save(result *core.Result) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	stored := *result
	stored.ID = b.lastID + 1
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	content, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	err = b.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key(stored.ID), string(content), nil)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to store result: %w", err)
	}

	b.lastID = stored.ID
	*result = stored
	return nil
}

func (b *BuntStorage) Get(id int64) (*core.Result, error) {
	var result core.Result
	err := b.db.View(func(tx *buntdb.Tx) error {
		value, err := tx.Get(key(id))
		if errors.Is(err, buntdb.ErrNotFound) {
			return fmt.Errorf("id %d: %w", id, core.ErrResultNotFound)
		}
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(value), &result)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Results returns every result passing all filters, oldest first
func (b *BuntStorage) Results(filters ...core.ResultFilter) ([]*core.Result, error) {
	results := make([]*core.Result, 0)

	err := b.db.View(func(tx *buntdb.Tx) error {
		var decodeErr error
		err := tx.Ascend(createdIndex, func(_, value string) bool {
			var result core.Result
			if decodeErr = json.Unmarshal([]byte(value), &result); decodeErr != nil {
				return false
			}
			if matches(result, filters) {
				results = append(results, &result)
			}
			return true
		})
		if decodeErr != nil {
			return fmt.Errorf("failed to decode result: %w", decodeErr)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// Close closes the database connection
func (b *BuntStorage) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

func matches(result core.Result, filters []core.ResultFilter) bool {
	for _, filter := range filters {
		if !filter(result) {
			return false
		}
	}
	return true
}
