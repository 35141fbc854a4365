package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreSetGetDelete(t *testing.T) {
	kv := MemStore()

	bz, err := kv.Get([]byte("hello"))
	require.NoError(t, err)
	assert.Nil(t, bz)

	require.NoError(t, kv.Set([]byte("hello"), []byte("world")))
	bz, err = kv.Get([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), bz)

	has, err := kv.Has([]byte("hello"))
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, kv.Delete([]byte("hello")))
	bz, err = kv.Get([]byte("hello"))
	require.NoError(t, err)
	assert.Nil(t, bz)
	has, err = kv.Has([]byte("hello"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCacheWrapWriteCommits(t *testing.T) {
	kv := MemStore()
	require.NoError(t, kv.Set([]byte("a"), []byte("1")))

	cache := kv.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))

	// Uncommitted write is visible in the cache...
	bz, err := cache.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), bz)
	// ...and reads fall through to the backing store...
	bz, err = cache.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), bz)
	// ...but the backing store does not see it yet.
	bz, err = kv.Get([]byte("b"))
	require.NoError(t, err)
	assert.Nil(t, bz)

	require.NoError(t, cache.Write())
	bz, err = kv.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), bz)
}

func TestCacheWrapDiscardRollsBack(t *testing.T) {
	kv := MemStore()
	require.NoError(t, kv.Set([]byte("a"), []byte("1")))

	cache := kv.CacheWrap()
	require.NoError(t, cache.Set([]byte("a"), []byte("overwritten")))
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("a")))

	cache.Discard()

	bz, err := kv.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), bz, "discarded writes must not leak")
	bz, err = kv.Get([]byte("b"))
	require.NoError(t, err)
	assert.Nil(t, bz)
}

func TestCacheWrapShadowsDelete(t *testing.T) {
	kv := MemStore()
	require.NoError(t, kv.Set([]byte("a"), []byte("1")))

	cache := kv.CacheWrap()
	require.NoError(t, cache.Delete([]byte("a")))

	bz, err := cache.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, bz, "delete must shadow the backing value")
	has, err := cache.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, cache.Write())
	bz, err = kv.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, bz)
}

func TestCacheWrapRecursive(t *testing.T) {
	kv := MemStore()
	first := kv.CacheWrap()
	require.NoError(t, first.Set([]byte("k"), []byte("v1")))

	second := first.CacheWrap()
	require.NoError(t, second.Set([]byte("k"), []byte("v2")))

	// Inner discard leaves the outer layer untouched.
	second.Discard()
	bz, err := first.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), bz)

	require.NoError(t, first.Write())
	bz, err = kv.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), bz)
}

func TestNonAtomicBatchCollectsOps(t *testing.T) {
	kv := MemStore()
	batch := NewNonAtomicBatch(kv)
	require.NoError(t, batch.Set([]byte("x"), []byte("1")))
	require.NoError(t, batch.Delete([]byte("y")))
	assert.Len(t, batch.ShowOps(), 2)

	require.NoError(t, batch.Write())
	assert.Len(t, batch.ShowOps(), 0)

	bz, err := kv.Get([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), bz)
}
