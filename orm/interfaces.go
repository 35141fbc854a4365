package orm

import "github.com/covault-io/covault"

// Cloneable is an object that can be cloned into an empty copy of
// itself, ready to be filled with parsed data.
type Cloneable interface {
	Clone() Object
}

// CloneableData is data that can be copied and validated. All models
// stored in a bucket implement this interface.
type CloneableData interface {
	covault.Persistent
	Validate() error
	Copy() CloneableData
}

// Object wraps a key plus a value to store under it, with validation.
type Object interface {
	Cloneable

	// Key returns the key to store the object under.
	Key() []byte
	// SetKey may be used to update the key.
	SetKey([]byte)

	// Value gets the value stored in the object.
	Value() CloneableData

	// Validate returns an error if the object is not ready to be
	// persisted.
	Validate() error
}
