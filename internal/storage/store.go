// SPDX-License-Identifier: MIT

// Package storage defines the persistence port for employee records and its
// implementations. Callers depend on the Store interface only; the concrete
// backend (memory, file, badger, sqlite) is chosen by configuration at
// startup.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/AhmedFarag1/go-clean-code/internal/staff"
)

// ErrNotFound is returned when no employee exists for the requested ID.
var ErrNotFound = errors.New("employee not found")

// Store is the persistence contract for employee records.
type Store interface {
	// Put inserts or overwrites the record for employee.ID.
	Put(ctx context.Context, employee staff.Employee) error
	// Get returns the record for id, or ErrNotFound.
	Get(ctx context.Context, id string) (staff.Employee, error)
	// List returns all records sorted by ID.
	List(ctx context.Context) ([]staff.Employee, error)
	// Delete removes the record for id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}

// Config selects and configures a storage backend.
type Config struct {
	Backend string // "memory", "file", "badger" or "sqlite"
	Path    string // file path, badger directory or sqlite database file
}

// Open constructs the Store selected by cfg.
func Open(cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(cfg.Path)
	case "badger":
		return NewBadgerStore(cfg.Path)
	case "sqlite":
		return NewSQLiteStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
