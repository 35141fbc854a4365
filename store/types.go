package store

import "github.com/covault-io/covault"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = covault.ReadOnlyKVStore
type KVStore = covault.KVStore
type SetDeleter = covault.SetDeleter
type Batch = covault.Batch
type CacheableKVStore = covault.CacheableKVStore
type KVCacheWrap = covault.KVCacheWrap
