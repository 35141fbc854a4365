package covault

// Marshaller is anything that can be represented in binary.
//
// Marshal may validate the data before serializing it and unless you
// previously validated the struct, errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal.
//
// This is separated from Marshaller, as Unmarshal almost always
// requires a pointer, and functions that only need to marshal bytes
// can use the Marshaller interface to access non-pointers.
//
// As with Marshaller, this may do internal validation on the data and
// errors should be expected.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}
