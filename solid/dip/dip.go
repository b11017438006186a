// SPDX-License-Identifier: MIT

// Package dip demonstrates the dependency inversion principle.
//
// Archiver, the high-level policy, depends on the small Store abstraction it
// defines itself. FileStore and MemStore are low-level details that plug in
// underneath; swapping disk for memory changes nothing in Archiver. This is
// the same shape internal/storage uses at service scale.
package dip

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Store is the abstraction the archiver owns. Implementations depend on it,
// not the other way around.
type Store interface {
	Save(name string, data []byte) error
	Load(name string) ([]byte, error)
}

// Archiver is high-level logic that works against any Store.
type Archiver struct {
	store Store
}

// NewArchiver wires the archiver to a store.
func NewArchiver(store Store) *Archiver {
	return &Archiver{store: store}
}

// Archive stores a named document.
func (a *Archiver) Archive(name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("archive: name is required")
	}
	return a.store.Save(name, data)
}

// Retrieve loads a named document.
func (a *Archiver) Retrieve(name string) ([]byte, error) {
	return a.store.Load(name)
}

// FileStore keeps documents as files under a root directory. Writes are
// atomic so a crash never leaves a half-written document.
type FileStore struct {
	root string
}

// NewFileStore creates the root directory if needed.
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("file store: create root: %w", err)
	}
	return &FileStore{root: root}, nil
}

func (s *FileStore) Save(name string, data []byte) error {
	return renameio.WriteFile(filepath.Join(s.root, name), data, 0o600)
}

func (s *FileStore) Load(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.root, name))
}

// MemStore keeps documents in a map. Handy for tests, which is precisely the
// point of inverting the dependency.
type MemStore struct {
	docs map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string][]byte)}
}

func (s *MemStore) Save(name string, data []byte) error {
	s.docs[name] = append([]byte(nil), data...)
	return nil
}

func (s *MemStore) Load(name string) ([]byte, error) {
	data, ok := s.docs[name]
	if !ok {
		return nil, fmt.Errorf("load %s: %w", name, os.ErrNotExist)
	}
	return append([]byte(nil), data...), nil
}
