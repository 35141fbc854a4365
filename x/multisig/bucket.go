package multisig

import (
	"github.com/covault-io/covault"
	"github.com/covault-io/covault/errors"
	"github.com/covault-io/covault/orm"
)

const (
	// TransactionBucketName is where we store the ledger records
	TransactionBucketName = "mstx"
	// ConfirmationBucketName is where we store per-owner approvals
	ConfirmationBucketName = "msconf"
	// SequenceName is an auto-increment ID counter for transactions
	SequenceName = "id"
)

// TransactionBucket is a type-safe wrapper around orm.Bucket holding
// the append-only transaction ledger. External indices start at 0 and
// follow submission order; internally the auto-increment sequence
// starts at 1, so the stored key is always index+1.
type TransactionBucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewTransactionBucket initializes a TransactionBucket with default
// name
func NewTransactionBucket() TransactionBucket {
	bucket := orm.NewBucket(TransactionBucketName,
		orm.NewSimpleObj(nil, new(Transaction)))
	return TransactionBucket{
		Bucket: bucket,
		idSeq:  bucket.Sequence(SequenceName),
	}
}

// Create appends a new record to the ledger and returns the index it
// was stored under.
func (b TransactionBucket) Create(db covault.KVStore, tx *Transaction) (int64, error) {
	val, err := b.idSeq.NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "id sequence")
	}
	index := val - 1
	if err := b.Bucket.Save(db, orm.NewSimpleObj(txKey(index), tx)); err != nil {
		return 0, err
	}
	return index, nil
}

// Update overwrites the record stored under the given index. The
// index must have been assigned by Create before.
func (b TransactionBucket) Update(db covault.KVStore, index int64, tx *Transaction) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(txKey(index), tx))
}

// GetTransaction returns the record with the given index.
func (b TransactionBucket) GetTransaction(db covault.ReadOnlyKVStore, index int64) (*Transaction, error) {
	if index < 0 {
		return nil, errors.Wrapf(errors.ErrNotFound, "transaction %d", index)
	}
	obj, err := b.Get(db, txKey(index))
	if err != nil {
		return nil, errors.Wrap(err, "bucket lookup")
	}
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "transaction %d", index)
	}

	tx, ok := obj.Value().(*Transaction)
	if !ok {
		return nil, errors.Wrapf(errors.ErrModel, "invalid type: %T", obj.Value())
	}
	return tx, nil
}

// Count returns the number of records appended so far.
func (b TransactionBucket) Count(db covault.ReadOnlyKVStore) (int64, error) {
	val, _, err := b.idSeq.Latest(db)
	return val, err
}

// txKey is the ledger key for a given external index.
func txKey(index int64) []byte {
	return orm.EncodeSequence(index + 1)
}

// ConfirmationBucket stores one Approval per (transaction, owner)
// pair. A missing record means the owner did not confirm.
type ConfirmationBucket struct {
	orm.Bucket
}

// NewConfirmationBucket initializes a ConfirmationBucket with default
// name
func NewConfirmationBucket() ConfirmationBucket {
	return ConfirmationBucket{
		Bucket: orm.NewBucket(ConfirmationBucketName,
			orm.NewSimpleObj(nil, new(Approval))),
	}
}

// Confirmed returns true iff the owner has a standing confirmation of
// the given transaction.
func (b ConfirmationBucket) Confirmed(db covault.ReadOnlyKVStore, index int64, owner covault.Address) (bool, error) {
	obj, err := b.Get(db, confirmationKey(index, owner))
	if err != nil {
		return false, errors.Wrap(err, "bucket lookup")
	}
	if obj == nil || obj.Value() == nil {
		return false, nil
	}
	a, ok := obj.Value().(*Approval)
	if !ok {
		return false, errors.Wrapf(errors.ErrModel, "invalid type: %T", obj.Value())
	}
	return a.Confirmed, nil
}

// Confirm records the owner's standing confirmation.
func (b ConfirmationBucket) Confirm(db covault.KVStore, index int64, owner covault.Address) error {
	obj := orm.NewSimpleObj(confirmationKey(index, owner), &Approval{Confirmed: true})
	return b.Save(db, obj)
}

// Revoke removes the owner's standing confirmation.
func (b ConfirmationBucket) Revoke(db covault.KVStore, index int64, owner covault.Address) error {
	return b.Delete(db, confirmationKey(index, owner))
}

// confirmationKey builds the composite (transaction, owner) key.
func confirmationKey(index int64, owner covault.Address) []byte {
	key := txKey(index)
	return append(key, owner...)
}
