package covault

// This file defines the public interfaces for interacting with stores.
// KVStore is the basic contract all backing stores must implement.

// SetDeleter is the write subset of a KVStore. Batches implement only
// this part, collecting writes to be applied later.
type SetDeleter interface {
	// Set sets the key. Errors on nil key.
	Set(key, value []byte) error

	// Delete deletes the key. Errors on nil key.
	Delete(key []byte) error
}

// ReadOnlyKVStore is the read subset of a KVStore.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Errors on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Errors on nil key.
	Has(key []byte) (bool, error)
}

// KVStore is a simple interface to get/set data.
//
// For simplicity, we require all backing stores to implement this
// interface. They *may* implement other methods as well, but at least
// these are required.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
}

// Batch groups writes so they may be applied to a store together.
type Batch interface {
	SetDeleter
	Write() error
}

// CacheableKVStore is a KVStore that supports savepoints via
// CacheWrapping. All writes applied to the returned KVCacheWrap stay
// invisible to this store until Write is called on the wrap.
//
// Like Postgresql SAVEPOINT / ROLLBACK TO SAVEPOINT.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a scratch-pad of uncommitted data over a backing
// store. All queries see the cached writes layered over the backing
// data.
//
// At the end, call Write to apply the cached data, or Discard to drop
// it as if it never happened.
type KVCacheWrap interface {
	// CacheableKVStore allows us to use this Cache recursively.
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data.
	Discard()
}
