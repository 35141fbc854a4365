package multisig

import (
	"encoding/json"
	"strconv"

	"github.com/covault-io/covault"
	"github.com/covault-io/covault/coin"
	"github.com/covault-io/covault/errors"
	"github.com/covault-io/covault/orm"
)

const (
	// To avoid burning CPU, this is the maximum number of owners
	// allowed to be part of a single vault.
	maxOwnersAllowed = 100
)

// OwnerSet is the immutable registry of identities allowed to drive a
// vault, together with the activation threshold. It is validated once
// during vault construction and never mutated afterwards.
type OwnerSet struct {
	owners    []covault.Address
	threshold int
}

// NewOwnerSet validates the given owners and threshold and returns
// the immutable registry. Validation checks, in order: the list is
// not empty, the threshold is within [1, len(owners)], every address
// is a valid non-zero address, and there are no duplicates.
func NewOwnerSet(owners []covault.Address, threshold int) (*OwnerSet, error) {
	switch n := len(owners); {
	case n == 0:
		return nil, errors.Wrap(errors.ErrEmpty, "no owners")
	case n > maxOwnersAllowed:
		return nil, errors.Wrap(errors.ErrModel, "too many owners")
	}
	if threshold < 1 || threshold > len(owners) {
		return nil, errors.Wrapf(errors.ErrInput, "threshold must be within [1, %d]", len(owners))
	}

	seen := make(map[string]struct{}, len(owners))
	cpy := make([]covault.Address, len(owners))
	for i, o := range owners {
		if err := o.Validate(); err != nil {
			return nil, errors.Field(
				"Owners."+strconv.Itoa(i), err, "invalid owner")
		}
		if _, ok := seen[string(o)]; ok {
			return nil, errors.Wrapf(errors.ErrDuplicate, "owner %s", o)
		}
		seen[string(o)] = struct{}{}
		cpy[i] = o.Clone()
	}

	return &OwnerSet{owners: cpy, threshold: threshold}, nil
}

// IsOwner returns true iff the address is part of the registry.
func (s *OwnerSet) IsOwner(addr covault.Address) bool {
	for _, o := range s.owners {
		if o.Equals(addr) {
			return true
		}
	}
	return false
}

// Owners returns the registered addresses in their original order.
// The returned slice is a copy and can be safely modified.
func (s *OwnerSet) Owners() []covault.Address {
	res := make([]covault.Address, len(s.owners))
	for i, o := range s.owners {
		res[i] = o.Clone()
	}
	return res
}

// Threshold returns the number of distinct confirmations required
// before a transaction may execute.
func (s *OwnerSet) Threshold() int {
	return s.threshold
}

var _ orm.CloneableData = (*Transaction)(nil)

// Transaction is a single ledger record: a proposed external action
// with its confirmation counter and terminal executed flag. Records
// are append only and indices are never reused.
type Transaction struct {
	Destination   covault.Address `json:"destination"`
	Amount        coin.Coin       `json:"amount"`
	Payload       []byte          `json:"payload,omitempty"`
	Executed      bool            `json:"executed"`
	Confirmations int64           `json:"confirmations"`
}

// Validate ensures the record can be persisted.
func (t *Transaction) Validate() error {
	if err := t.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if !t.Amount.IsZero() {
		if err := t.Amount.Validate(); err != nil {
			return errors.Wrap(err, "amount")
		}
		if !t.Amount.IsPositive() {
			return errors.Wrap(errors.ErrInput, "negative amount")
		}
	}
	if t.Confirmations < 0 {
		return errors.Wrap(errors.ErrModel, "negative confirmation count")
	}
	return nil
}

// Copy produces an independent copy of the record.
func (t *Transaction) Copy() orm.CloneableData {
	return &Transaction{
		Destination:   t.Destination.Clone(),
		Amount:        t.Amount,
		Payload:       append([]byte(nil), t.Payload...),
		Executed:      t.Executed,
		Confirmations: t.Confirmations,
	}
}

// Marshal implements covault.Persistent.
func (t *Transaction) Marshal() ([]byte, error) {
	return json.Marshal(t)
}

// Unmarshal implements covault.Persistent.
func (t *Transaction) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, t)
}

var _ orm.CloneableData = (*Approval)(nil)

// Approval marks one owner's standing confirmation of one
// transaction. The record is deleted when the confirmation is
// revoked, so presence of a record means the owner confirms.
type Approval struct {
	Confirmed bool `json:"confirmed"`
}

// Validate implements orm.CloneableData.
func (a *Approval) Validate() error {
	if !a.Confirmed {
		// An unconfirmed approval is never stored, it is deleted.
		return errors.Wrap(errors.ErrModel, "approval without confirmation")
	}
	return nil
}

// Copy implements orm.CloneableData.
func (a *Approval) Copy() orm.CloneableData {
	return &Approval{Confirmed: a.Confirmed}
}

// Marshal implements covault.Persistent.
func (a *Approval) Marshal() ([]byte, error) {
	return json.Marshal(a)
}

// Unmarshal implements covault.Persistent.
func (a *Approval) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, a)
}
