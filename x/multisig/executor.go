package multisig

import (
	"github.com/covault-io/covault"
	"github.com/covault-io/covault/coin"
	"github.com/covault-io/covault/x/cash"
)

// Executor performs the one external call made during Execute. The
// vault treats the callee as fully opaque: it does not interpret the
// payload, does not retry, and only cares whether an error was
// returned.
//
// The given store is the staging area of the execution. Writes done
// by the executor are committed or rolled back together with the
// executed mark of the transaction.
type Executor interface {
	Invoke(db covault.KVStore, dest covault.Address, amount coin.Coin, payload []byte) error
}

// PayoutExecutor is the production executor: it pays the transaction
// amount out of the vault's balance to the destination. The payload
// is opaque to the vault and carries no meaning here.
type PayoutExecutor struct {
	source covault.Address
	ctrl   cash.Controller
}

var _ Executor = PayoutExecutor{}

// NewPayoutExecutor returns an executor paying out of the given
// source account.
func NewPayoutExecutor(source covault.Address, ctrl cash.Controller) PayoutExecutor {
	return PayoutExecutor{
		source: source,
		ctrl:   ctrl,
	}
}

// Invoke moves the amount from the vault to the destination. A zero
// amount is a noop that always succeeds.
func (e PayoutExecutor) Invoke(db covault.KVStore, dest covault.Address, amount coin.Coin, payload []byte) error {
	if amount.IsZero() {
		return nil
	}
	return e.ctrl.MoveCoins(db, e.source, dest, amount)
}
