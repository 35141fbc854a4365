package cash

import (
	"encoding/json"

	"github.com/covault-io/covault"
	"github.com/covault-io/covault/coin"
	"github.com/covault-io/covault/errors"
	"github.com/covault-io/covault/orm"
)

var _ orm.CloneableData = (*Set)(nil)

// Set is the balance of one account: an ordered collection of coins,
// at most one per currency.
type Set struct {
	Coins coin.Coins `json:"coins"`
}

// Validate requires that all coins are in alphabetical order
func (s *Set) Validate() error {
	return s.Coins.Validate()
}

// Copy makes a new set with the same coins
func (s *Set) Copy() orm.CloneableData {
	return &Set{
		Coins: s.Coins.Clone(),
	}
}

// Marshal implements covault.Persistent.
func (s *Set) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

// Unmarshal implements covault.Persistent.
func (s *Set) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, s)
}

// Add modifies the set to hold the given coin in addition to what is
// already there
func (s *Set) Add(c coin.Coin) error {
	cs, err := s.Coins.Add(c)
	if err != nil {
		return err
	}
	s.Coins = cs
	return nil
}

// Subtract modifies the set to hold less of the given coin
func (s *Set) Subtract(c coin.Coin) error {
	return s.Add(c.Negative())
}

// Contains returns true if the set holds at least this much coin
func (s *Set) Contains(c coin.Coin) bool {
	return s.Coins.Contains(c)
}

//--- Wallet object plumbing

// NewWallet creates an empty wallet object with this address as key
func NewWallet(key covault.Address) orm.Object {
	return orm.NewSimpleObj(key, new(Set))
}

// WalletWith creates an wallet object with the given coins
func WalletWith(key covault.Address, coins ...*coin.Coin) (orm.Object, error) {
	obj := NewWallet(key)
	set := AsSet(obj)
	for _, c := range coins {
		if err := set.Add(*c); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// AsSet safely extracts a Set value from the object
func AsSet(obj orm.Object) *Set {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Set)
}

// Coins returns the coins stored in the given wallet object
func Coins(obj orm.Object) coin.Coins {
	set := AsSet(obj)
	if set == nil {
		return nil
	}
	return set.Coins
}

// AsCoins is a helper that asserts the wallet object is non-empty
func AsCoins(obj orm.Object) (coin.Coins, error) {
	set := AsSet(obj)
	if set == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "wallet")
	}
	return set.Coins, nil
}
