package multisig

import (
	"sync"

	"github.com/covault-io/covault"
	"github.com/covault-io/covault/coin"
	"github.com/covault-io/covault/errors"
	"github.com/covault-io/covault/orm"
	"github.com/covault-io/covault/x/cash"
	"github.com/rs/zerolog"
)

// Vault is the quorum engine. It owns the transaction ledger, the
// confirmation records and the balance book exclusively; nothing
// else mutates them.
//
// Every operation is serialized through a single mutex, so a vault
// can be shared between goroutines. The mutex is released for the
// duration of the external call made inside Execute; during that
// window the executing flag rejects any state changing re-entry
// instead of queueing it.
type Vault struct {
	mu        sync.Mutex
	executing bool

	db       covault.CacheableKVStore
	owners   *OwnerSet
	address  covault.Address
	executor Executor

	txs   TransactionBucket
	confs ConfirmationBucket
	ctrl  cash.Controller
	log   *EventLog
}

// NewVault creates a vault with a fixed owner set. The owner list and
// threshold are validated once here; they cannot change afterwards.
//
// When executor is nil the vault pays transaction amounts out of its
// own balance (see PayoutExecutor). Use zerolog.Nop() to disable
// audit emission.
func NewVault(db covault.CacheableKVStore, owners []covault.Address, threshold int, executor Executor, logger zerolog.Logger) (*Vault, error) {
	set, err := NewOwnerSet(owners, threshold)
	if err != nil {
		return nil, errors.Wrap(err, "owner set")
	}

	ctrl := cash.NewController(cash.NewBucket())
	address := VaultAddress(set.Owners(), threshold)
	if executor == nil {
		executor = NewPayoutExecutor(address, ctrl)
	}

	return &Vault{
		db:       db,
		owners:   set,
		address:  address,
		executor: executor,
		txs:      NewTransactionBucket(),
		confs:    NewConfirmationBucket(),
		ctrl:     ctrl,
		log:      NewEventLog(logger),
	}, nil
}

// VaultAddress derives the deterministic funding address of a vault
// from its owner list and threshold.
func VaultAddress(owners []covault.Address, threshold int) covault.Address {
	var data []byte
	for _, o := range owners {
		data = append(data, o...)
	}
	data = append(data, orm.EncodeSequence(int64(threshold))...)
	return covault.NewAddress(data)
}

// Address returns the funding address of this vault. Deposits are
// credited to it and the default executor pays out of it.
func (v *Vault) Address() covault.Address {
	return v.address
}

// IsOwner returns true iff the address belongs to the owner set.
func (v *Vault) IsOwner(addr covault.Address) bool {
	return v.owners.IsOwner(addr)
}

// Owners returns a copy of the owner addresses in registration order.
func (v *Vault) Owners() []covault.Address {
	return v.owners.Owners()
}

// Threshold returns the confirmation quorum of this vault.
func (v *Vault) Threshold() int {
	return v.owners.Threshold()
}

// Submit appends a new transaction to the ledger and returns its
// index. Indices follow submission order and are never reused. With
// autoConfirm the caller's confirmation is recorded in the same
// atomic step, as if Confirm was called within the submission.
func (v *Vault) Submit(caller, dest covault.Address, amount coin.Coin, payload []byte, autoConfirm bool) (int64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.executing {
		return 0, errors.Wrap(ErrReentrancy, "submit")
	}
	if !v.owners.IsOwner(caller) {
		return 0, errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", caller)
	}

	tx := &Transaction{
		Destination: dest.Clone(),
		Amount:      amount,
		Payload:     append([]byte(nil), payload...),
	}
	if autoConfirm {
		tx.Confirmations = 1
	}

	cache := v.db.CacheWrap()
	index, err := v.txs.Create(cache, tx)
	if err != nil {
		cache.Discard()
		return 0, err
	}
	if autoConfirm {
		if err := v.confs.Confirm(cache, index, caller); err != nil {
			cache.Discard()
			return 0, err
		}
	}
	if err := cache.Write(); err != nil {
		return 0, errors.Wrap(err, "commit")
	}

	v.log.Append(Event{
		Type:        EventSubmit,
		Actor:       caller,
		Index:       index,
		Destination: tx.Destination,
		Amount:      tx.Amount,
	})
	if autoConfirm {
		v.log.Append(Event{Type: EventConfirm, Actor: caller, Index: index})
	}
	return index, nil
}

// Confirm records the caller's approval of the transaction and
// increments its confirmation counter by exactly one.
func (v *Vault) Confirm(caller covault.Address, index int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.executing {
		return errors.Wrap(ErrReentrancy, "confirm")
	}
	tx, err := v.pending(caller, index)
	if err != nil {
		return err
	}

	confirmed, err := v.confs.Confirmed(v.db, index, caller)
	if err != nil {
		return err
	}
	if confirmed {
		return errors.Wrapf(ErrAlreadyConfirmed, "transaction %d by %s", index, caller)
	}

	tx.Confirmations++
	cache := v.db.CacheWrap()
	if err := v.confs.Confirm(cache, index, caller); err != nil {
		cache.Discard()
		return err
	}
	if err := v.txs.Update(cache, index, tx); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "commit")
	}

	v.log.Append(Event{Type: EventConfirm, Actor: caller, Index: index})
	return nil
}

// Revoke withdraws the caller's standing approval of the transaction
// and decrements its confirmation counter by exactly one. Revoke is
// the exact inverse of Confirm.
func (v *Vault) Revoke(caller covault.Address, index int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.executing {
		return errors.Wrap(ErrReentrancy, "revoke")
	}
	tx, err := v.pending(caller, index)
	if err != nil {
		return err
	}

	confirmed, err := v.confs.Confirmed(v.db, index, caller)
	if err != nil {
		return err
	}
	if !confirmed {
		return errors.Wrapf(ErrNotConfirmed, "transaction %d by %s", index, caller)
	}

	tx.Confirmations--
	cache := v.db.CacheWrap()
	if err := v.confs.Revoke(cache, index, caller); err != nil {
		cache.Discard()
		return err
	}
	if err := v.txs.Update(cache, index, tx); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "commit")
	}

	v.log.Append(Event{Type: EventRevoke, Actor: caller, Index: index})
	return nil
}

// Execute performs the transaction's external call once the quorum is
// met. The executed mark is staged before the call so a re-entrant
// callee can never observe an unexecuted transaction; if the call
// fails everything staged is rolled back and ErrCallFailed is
// returned, leaving the transaction eligible for a later attempt.
func (v *Vault) Execute(caller covault.Address, index int64) error {
	v.mu.Lock()

	if v.executing {
		v.mu.Unlock()
		return errors.Wrap(ErrReentrancy, "execute")
	}
	tx, err := v.pending(caller, index)
	if err != nil {
		v.mu.Unlock()
		return err
	}
	if tx.Confirmations < int64(v.owners.Threshold()) {
		v.mu.Unlock()
		return errors.Wrapf(ErrNotEnoughConfirmations,
			"%d of %d", tx.Confirmations, v.owners.Threshold())
	}

	// Stage the executed mark, then leave the trust boundary. The
	// executing flag stays set for the whole window so no mutation
	// can slip in through the callee.
	v.executing = true
	cache := v.db.CacheWrap()
	tx.Executed = true
	if err := v.txs.Update(cache, index, tx); err != nil {
		cache.Discard()
		v.executing = false
		v.mu.Unlock()
		return err
	}
	v.mu.Unlock()

	callErr := v.executor.Invoke(cache, tx.Destination, tx.Amount, tx.Payload)

	v.mu.Lock()
	defer func() {
		v.executing = false
		v.mu.Unlock()
	}()

	if callErr != nil {
		cache.Discard()
		return errors.Wrapf(ErrCallFailed, "transaction %d: %s", index, callErr)
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "commit")
	}

	v.log.Append(Event{
		Type:        EventExecute,
		Actor:       caller,
		Index:       index,
		Destination: tx.Destination,
		Amount:      tx.Amount,
	})
	return nil
}

// Deposit credits the vault balance. This is the only operation open
// to callers outside the owner set.
func (v *Vault) Deposit(sender covault.Address, amount coin.Coin) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.executing {
		return errors.Wrap(ErrReentrancy, "deposit")
	}
	if err := sender.Validate(); err != nil {
		return errors.Wrap(err, "sender")
	}
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrInput, "non-positive deposit: %v", &amount)
	}

	cache := v.db.CacheWrap()
	if err := v.ctrl.IssueCoins(cache, v.address, amount); err != nil {
		cache.Discard()
		return err
	}
	balance, err := v.ctrl.Balance(cache, v.address)
	if err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "commit")
	}

	v.log.Append(Event{
		Type:    EventDeposit,
		Actor:   sender,
		Index:   -1,
		Amount:  amount,
		Balance: balance.Clone(),
	})
	return nil
}

// GetTransaction returns an immutable snapshot of the record stored
// under the given index.
func (v *Vault) GetTransaction(index int64) (*Transaction, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx, err := v.txs.GetTransaction(v.db, index)
	if err != nil {
		return nil, err
	}
	return tx.Copy().(*Transaction), nil
}

// IsConfirmed returns true iff the owner has a standing confirmation
// of the given transaction.
func (v *Vault) IsConfirmed(index int64, owner covault.Address) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, err := v.txs.GetTransaction(v.db, index); err != nil {
		return false, err
	}
	return v.confs.Confirmed(v.db, index, owner)
}

// Count returns the number of transactions submitted so far.
func (v *Vault) Count() (int64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.txs.Count(v.db)
}

// Balance returns the coins currently held by the vault.
func (v *Vault) Balance() (coin.Coins, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.ctrl.Balance(v.db, v.address)
}

// Events returns a snapshot of the audit trail.
func (v *Vault) Events() []Event {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.log.Events()
}

// pending loads a transaction after the common owner, existence and
// not-yet-executed checks shared by confirm, revoke and execute.
func (v *Vault) pending(caller covault.Address, index int64) (*Transaction, error) {
	if !v.owners.IsOwner(caller) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", caller)
	}
	tx, err := v.txs.GetTransaction(v.db, index)
	if err != nil {
		return nil, err
	}
	if tx.Executed {
		return nil, errors.Wrapf(ErrAlreadyExecuted, "transaction %d", index)
	}
	return tx, nil
}
