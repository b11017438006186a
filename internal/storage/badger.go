// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/AhmedFarag1/go-clean-code/internal/staff"
)

const badgerKeyPrefix = "employee/"

// BadgerStore persists employees in an embedded Badger key-value database.
// One record per key, JSON-encoded, under the "employee/" prefix.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens (or creates) a Badger database in dir.
func NewBadgerStore(dir string) (*BadgerStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("badger store: directory is required")
	}
	// Badger's default logger writes unstructured lines to stderr; keep the
	// service's log stream clean and report failures through wrapped errors.
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger store: open %s: %w", dir, err)
	}
	return &BadgerStore{db: db}, nil
}

func badgerKey(id string) []byte {
	return []byte(badgerKeyPrefix + id)
}

// Put inserts or overwrites the record for employee.ID.
func (s *BadgerStore) Put(ctx context.Context, employee staff.Employee) error {
	data, err := json.Marshal(employee)
	if err != nil {
		return fmt.Errorf("badger store: encode employee: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(employee.ID), data)
	})
	if err != nil {
		return fmt.Errorf("badger store: put %s: %w", employee.ID, err)
	}
	return nil
}

// Get returns the record for id, or ErrNotFound.
func (s *BadgerStore) Get(ctx context.Context, id string) (staff.Employee, error) {
	var employee staff.Employee
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &employee)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return staff.Employee{}, ErrNotFound
	}
	if err != nil {
		return staff.Employee{}, fmt.Errorf("badger store: get %s: %w", id, err)
	}
	return employee, nil
}

// List returns all records sorted by ID.
func (s *BadgerStore) List(ctx context.Context) ([]staff.Employee, error) {
	var out []staff.Employee
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(badgerKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			var employee staff.Employee
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &employee)
			})
			if err != nil {
				return err
			}
			out = append(out, employee)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badger store: list: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Delete removes the record for id, or returns ErrNotFound.
func (s *BadgerStore) Delete(ctx context.Context, id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		// Badger's Delete is a blind write; check existence first so missing
		// IDs surface as ErrNotFound.
		if _, err := txn.Get(badgerKey(id)); err != nil {
			return err
		}
		return txn.Delete(badgerKey(id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("badger store: delete %s: %w", id, err)
	}
	return nil
}

// Ping verifies the database has not been closed.
func (s *BadgerStore) Ping(ctx context.Context) error {
	if s.db.IsClosed() {
		return fmt.Errorf("badger store: database closed")
	}
	return nil
}

// Close flushes and closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
