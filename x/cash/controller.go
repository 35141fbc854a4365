package cash

import (
	"github.com/covault-io/covault"
	"github.com/covault-io/covault/coin"
	"github.com/covault-io/covault/errors"
)

// Controller is the functionality needed by other extensions to move
// value around. It does not check permissions.
type Controller struct {
	bucket Bucket
}

// NewController returns a controller using the given bucket to store
// the balances
func NewController(bucket Bucket) Controller {
	return Controller{bucket: bucket}
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c Controller) MoveCoins(db covault.KVStore, src, dest covault.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrInput, "non-positive transfer: %v", &amount)
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "source %s", src)
	}
	if !AsSet(sender).Contains(amount) {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds in %s", src)
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := AsSet(sender).Subtract(amount); err != nil {
		return err
	}
	if err := AsSet(recipient).Add(amount); err != nil {
		return err
	}

	// save them and return
	if err := c.bucket.Save(db, sender); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c Controller) IssueCoins(db covault.KVStore, dest covault.Address, amount coin.Coin) error {
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := AsSet(recipient).Add(amount); err != nil {
		return err
	}

	return c.bucket.Save(db, recipient)
}

// Balance returns the coins held under the given address. A missing
// wallet is reported as nil coins, not as an error.
func (c Controller) Balance(db covault.ReadOnlyKVStore, addr covault.Address) (coin.Coins, error) {
	obj, err := c.bucket.Get(db, addr)
	if err != nil {
		return nil, err
	}
	return Coins(obj), nil
}
