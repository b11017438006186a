// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedFarag1/go-clean-code/internal/staff"
)

func TestFileStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, sampleEmployee("emp-1", "ada")))
	require.NoError(t, store.Put(ctx, sampleEmployee("emp-2", "bob")))
	require.NoError(t, store.Close())

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	employees, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "ada", employees[0].Name)
}

func TestFileStore_WritesWellFormedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), sampleEmployee("emp-1", "ada")))

	// Every flush replaces the file atomically, so the on-disk document is
	// complete at all times.
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []staff.Employee
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "emp-1", records[0].ID)
}

func TestFileStore_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestFileStore_RequiresPath(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}
