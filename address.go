package covault

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/covault-io/covault/errors"
)

// AddressLength is the length of all addresses. You can modify it in
// init() before any addresses are calculated, but it must not change
// during the lifetime of the kvstore.
var AddressLength = 20

// Address is a collision-free, one-way digest identifying an account
// that may hold funds or participate in a vault owner set.
//
// It will be of size AddressLength.
type Address []byte

// NewAddress hashes arbitrary input data into a valid address.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return h[:AddressLength]
}

// ParseAddress accepts address in a hex format and returns the binary
// representation.
func ParseAddress(enc string) (Address, error) {
	val, err := hex.DecodeString(enc)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "hex decode: %s", err)
	}
	a := Address(val)
	return a, a.Validate()
}

// Equals checks if two addresses are the same.
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// Clone returns an independent copy of this address.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	cpy := make(Address, len(a))
	copy(cpy, a)
	return cpy
}

// Validate returns an error if the address is not the proper size or
// is the all-zero value. The zero address cannot be derived from any
// input and is rejected to catch uninitialized identities early.
func (a Address) Validate() error {
	if len(a) == 0 {
		return errors.Wrap(errors.ErrEmpty, "address missing")
	}
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address length: %X", []byte(a))
	}
	if bytes.Equal(a, make([]byte, AddressLength)) {
		return errors.Wrap(errors.ErrInput, "zero address")
	}
	return nil
}

// String returns a human readable hex encoding.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// MarshalJSON provides a hex representation for JSON, to override the
// standard base64 []byte encoding.
func (a Address) MarshalJSON() ([]byte, error) {
	return marshalHex(a)
}

// UnmarshalJSON parses an address from its hex representation.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	if len(enc) == 0 {
		*a = nil
		return nil
	}
	val, err := hex.DecodeString(enc)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "hex decode: %s", err)
	}
	*a = val
	return nil
}

// marshalHex serializes bytes as an upper-case hex JSON string.
func marshalHex(bz []byte) ([]byte, error) {
	s := strings.ToUpper(hex.EncodeToString(bz))
	return json.Marshal(s)
}
