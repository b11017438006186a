// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedFarag1/go-clean-code/internal/log"
	"github.com/AhmedFarag1/go-clean-code/internal/staff"
)

func newCachedStore(t *testing.T) (*CachedStore, *MemoryStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	backing := NewMemoryStore()
	cached, err := NewCachedStore(backing, RedisConfig{
		Addr: mr.Addr(),
		TTL:  time.Minute,
	}, log.WithComponent("cache-test"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, cached.Close())
	})
	return cached, backing, mr
}

func TestCachedStore_PutFillsCache(t *testing.T) {
	cached, _, mr := newCachedStore(t)

	want := sampleEmployee("emp-1", "ada")
	require.NoError(t, cached.Put(context.Background(), want))

	raw, err := mr.Get("employee:emp-1")
	require.NoError(t, err)

	var got staff.Employee
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
}

func TestCachedStore_GetServesFromCache(t *testing.T) {
	cached, backing, _ := newCachedStore(t)
	ctx := context.Background()

	require.NoError(t, cached.Put(ctx, sampleEmployee("emp-1", "ada")))

	// Remove the record from the backing store; a cached read must still work.
	require.NoError(t, backing.Delete(ctx, "emp-1"))

	got, err := cached.Get(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "ada", got.Name)
}

func TestCachedStore_GetFillsCacheOnMiss(t *testing.T) {
	cached, backing, mr := newCachedStore(t)
	ctx := context.Background()

	// Record exists only in the backing store.
	require.NoError(t, backing.Put(ctx, sampleEmployee("emp-2", "bob")))
	require.False(t, mr.Exists("employee:emp-2"))

	got, err := cached.Get(ctx, "emp-2")
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Name)
	assert.True(t, mr.Exists("employee:emp-2"), "read-through must fill the cache")
}

func TestCachedStore_DeleteInvalidates(t *testing.T) {
	cached, _, mr := newCachedStore(t)
	ctx := context.Background()

	require.NoError(t, cached.Put(ctx, sampleEmployee("emp-1", "ada")))
	require.True(t, mr.Exists("employee:emp-1"))

	require.NoError(t, cached.Delete(ctx, "emp-1"))
	assert.False(t, mr.Exists("employee:emp-1"))

	_, err := cached.Get(ctx, "emp-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCachedStore_DeleteSurvivesInvalidateFailure(t *testing.T) {
	cached, backing, mr := newCachedStore(t)
	ctx := context.Background()

	require.NoError(t, cached.Put(ctx, sampleEmployee("emp-1", "ada")))

	mr.SetError("cache down")
	require.NoError(t, cached.Delete(ctx, "emp-1"))
	mr.SetError("")

	// The backing store dropped the record even though invalidation failed.
	_, err := backing.Get(ctx, "emp-1")
	require.ErrorIs(t, err, ErrNotFound)

	// The stale cached copy is still served, but only until its TTL expires.
	got, err := cached.Get(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "ada", got.Name)

	mr.FastForward(2 * time.Minute)
	_, err = cached.Get(ctx, "emp-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCachedStore_DegradesWhenRedisDown(t *testing.T) {
	cached, backing, mr := newCachedStore(t)
	ctx := context.Background()

	require.NoError(t, backing.Put(ctx, sampleEmployee("emp-3", "carol")))

	// Cache failures must fall back to the backing store, not fail the call.
	mr.Close()

	got, err := cached.Get(ctx, "emp-3")
	require.NoError(t, err)
	assert.Equal(t, "carol", got.Name)

	require.NoError(t, cached.Put(ctx, sampleEmployee("emp-4", "dave")))
	got, err = cached.Get(ctx, "emp-4")
	require.NoError(t, err)
	assert.Equal(t, "dave", got.Name)
}

func TestCachedStore_ConnectFailure(t *testing.T) {
	_, err := NewCachedStore(NewMemoryStore(), RedisConfig{
		Addr: "127.0.0.1:1", // nothing listens here
	}, log.WithComponent("cache-test"))
	assert.Error(t, err)
}
