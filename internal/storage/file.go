// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/renameio/v2"

	"github.com/AhmedFarag1/go-clean-code/internal/staff"
)

// FileStore persists employees as a single JSON document. Writes go through
// renameio so a crash mid-write never leaves a torn file behind: the pending
// file is fsynced and atomically renamed over the old one.
type FileStore struct {
	mu        sync.RWMutex
	path      string
	employees map[string]staff.Employee
}

// NewFileStore opens (or creates) the JSON store at path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("file store: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("file store: create directory: %w", err)
	}

	s := &FileStore{
		path:      path,
		employees: make(map[string]staff.Employee),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("file store: read %s: %w", path, err)
	}
	if len(data) > 0 {
		var records []staff.Employee
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("file store: parse %s: %w", path, err)
		}
		for _, e := range records {
			s.employees[e.ID] = e
		}
	}
	return s, nil
}

// flush writes the full record set atomically. Callers must hold the write lock.
func (s *FileStore) flush() error {
	records := make([]staff.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		records = append(records, e)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	pending, err := renameio.NewPendingFile(s.path, renameio.WithPermissions(0o600))
	if err != nil {
		return fmt.Errorf("create pending store file: %w", err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()

	enc := json.NewEncoder(pending)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	// CloseAtomicallyReplace: fsync + rename (durable + atomic)
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace store file: %w", err)
	}
	return nil
}

// Put inserts or overwrites the record for employee.ID.
func (s *FileStore) Put(ctx context.Context, employee staff.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, existed := s.employees[employee.ID]
	s.employees[employee.ID] = employee
	if err := s.flush(); err != nil {
		// Roll the in-memory state back so memory and disk stay consistent.
		if existed {
			s.employees[employee.ID] = prev
		} else {
			delete(s.employees, employee.ID)
		}
		return err
	}
	return nil
}

// Get returns the record for id, or ErrNotFound.
func (s *FileStore) Get(ctx context.Context, id string) (staff.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.employees[id]
	if !ok {
		return staff.Employee{}, ErrNotFound
	}
	return e, nil
}

// List returns all records sorted by ID.
func (s *FileStore) List(ctx context.Context) ([]staff.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]staff.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Delete removes the record for id, or returns ErrNotFound.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.employees[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.employees, id)
	if err := s.flush(); err != nil {
		s.employees[id] = prev
		return err
	}
	return nil
}

// Ping verifies the store directory is still writable.
func (s *FileStore) Ping(ctx context.Context) error {
	_, err := os.Stat(filepath.Dir(s.path))
	return err
}

// Close is a no-op; every mutation is flushed synchronously.
func (s *FileStore) Close() error { return nil }
