package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wattbot/retrieval/core"
	"github.com/wattbot/retrieval/storage"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := OpenCache("", true)
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestCachePutGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	key := core.IDFromContent("bge-m3\x00some passage")
	vector := []float32{0.1, 0.2, 0.3}

	t.Run("miss before put", func(t *testing.T) {
		_, found, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("hit after put", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, vector))
		got, found, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, vector, got)
	})

	t.Run("put replaces previous value", func(t *testing.T) {
		replacement := []float32{9, 8, 7}
		require.NoError(t, cache.Put(ctx, key, replacement))
		got, found, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, replacement, got)
	})
}

func TestCacheDiskBacked(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	key := core.IDFromContent("persisted")

	cache, err := OpenCache(dir, false)
	require.NoError(t, err)
	require.NoError(t, cache.Put(ctx, key, []float32{1, 2}))
	require.NoError(t, cache.Close())

	reopened, err := OpenCache(dir, false)
	require.NoError(t, err)
	defer reopened.Close()

	got, found, err := reopened.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []float32{1, 2}, got)
}

func TestCacheClosed(t *testing.T) {
	cache, err := OpenCache("", true)
	require.NoError(t, err)
	require.NoError(t, cache.Close())

	ctx := context.Background()
	_, _, err = cache.Get(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, cache.Put(ctx, 1, nil), storage.ErrStorageClosed)
}
