// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/AhmedFarag1/go-clean-code/internal/staff"
)

// MemoryStore is an in-memory Store. It backs tests and the default
// development configuration; records do not survive a restart.
type MemoryStore struct {
	mu        sync.RWMutex
	employees map[string]staff.Employee
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		employees: make(map[string]staff.Employee),
	}
}

// Put inserts or overwrites the record for employee.ID.
func (s *MemoryStore) Put(ctx context.Context, employee staff.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees[employee.ID] = employee
	return nil
}

// Get returns the record for id, or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, id string) (staff.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.employees[id]
	if !ok {
		return staff.Employee{}, ErrNotFound
	}
	return e, nil
}

// List returns all records sorted by ID.
func (s *MemoryStore) List(ctx context.Context) ([]staff.Employee, error) {
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
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[id]; !ok {
		return ErrNotFound
	}
	delete(s.employees, id)
	return nil
}

// Ping always succeeds for the in-memory backend.
func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

// Close is a no-op for the in-memory backend.
func (s *MemoryStore) Close() error { return nil }
