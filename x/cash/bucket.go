package cash

import (
	"github.com/covault-io/covault"
	"github.com/covault-io/covault/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Bucket is a type-safe wrapper around orm.Bucket storing one Set per
// address
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, orm.NewSimpleObj(nil, new(Set))),
	}
}

// GetOrCreate will return the object if present, or create an empty
// wallet under this address otherwise
func (b Bucket) GetOrCreate(db covault.KVStore, key covault.Address) (orm.Object, error) {
	obj, err := b.Get(db, key)
	if err == nil && obj == nil {
		obj = NewWallet(key)
	}
	return obj, err
}
