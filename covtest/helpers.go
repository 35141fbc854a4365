package covtest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/covault-io/covault"
)

// addressCounter makes sure each NewAddress call returns a different
// value, also when used from concurrent tests.
var addressCounter int64

// NewAddress returns a new, valid address. Each call returns a
// different value, derived deterministically from a process-wide
// counter.
func NewAddress() covault.Address {
	n := atomic.AddInt64(&addressCounter, 1)
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(n))
	return covault.NewAddress(raw)
}

// NewAddresses returns n fresh addresses.
func NewAddresses(n int) []covault.Address {
	res := make([]covault.Address, n)
	for i := range res {
		res[i] = NewAddress()
	}
	return res
}
