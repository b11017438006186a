// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedFarag1/go-clean-code/internal/staff"
)

func sampleEmployee(id, name string) staff.Employee {
	return staff.Employee{
		ID:        id,
		Name:      name,
		Email:     name + "@example.com",
		Position:  "engineer",
		Salary:    5000,
		HiredAt:   time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}

// runStoreContract exercises the behaviour every Store implementation must
// share. Backend-specific wrinkles get their own tests below.
func runStoreContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing returns ErrNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete missing returns ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, store.Delete(ctx, "missing"), ErrNotFound)
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		want := sampleEmployee("emp-1", "ada")
		require.NoError(t, store.Put(ctx, want))

		got, err := store.Get(ctx, "emp-1")
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("employee mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("put overwrites existing record", func(t *testing.T) {
		updated := sampleEmployee("emp-1", "ada")
		updated.Salary = 6000
		require.NoError(t, store.Put(ctx, updated))

		got, err := store.Get(ctx, "emp-1")
		require.NoError(t, err)
		assert.Equal(t, 6000.0, got.Salary)
	})

	t.Run("list is sorted by ID", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, sampleEmployee("emp-3", "carol")))
		require.NoError(t, store.Put(ctx, sampleEmployee("emp-2", "bob")))

		employees, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, employees, 3)
		assert.Equal(t, "emp-1", employees[0].ID)
		assert.Equal(t, "emp-2", employees[1].ID)
		assert.Equal(t, "emp-3", employees[2].ID)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "emp-2"))
		_, err := store.Get(ctx, "emp-2")
		assert.ErrorIs(t, err, ErrNotFound)

		employees, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, employees, 2)
	})

	t.Run("ping succeeds", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}

func TestMemoryStore_Contract(t *testing.T) {
	store := NewMemoryStore()
	defer func() {
		require.NoError(t, store.Close())
	}()
	runStoreContract(t, store)
}

func TestFileStore_Contract(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "employees.json"))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()
	runStoreContract(t, store)
}

func TestBadgerStore_Contract(t *testing.T) {
	store, err := NewBadgerStore(t.TempDir())
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()
	runStoreContract(t, store)
}

func TestSQLiteStore_Contract(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "staff.db"))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()
	runStoreContract(t, store)
}

func TestOpen_SelectsBackend(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default is memory", Config{}, false},
		{"memory", Config{Backend: "memory"}, false},
		{"file", Config{Backend: "file", Path: filepath.Join(dir, "f.json")}, false},
		{"sqlite", Config{Backend: "sqlite", Path: filepath.Join(dir, "f.db")}, false},
		{"unknown backend", Config{Backend: "cassandra"}, true},
		{"file without path", Config{Backend: "file"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Open(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, store.Close())
		})
	}
}
