package errors

import "strings"

// Append clubs together all provided errors. Nil values are ignored.
//
// If given only nil values, nil is returned. If given a single error,
// that error is returned unchanged. Otherwise a multi error instance
// that implements the unpacker interface is returned.
func Append(errs ...error) error {
	var collect []error
	for _, err := range errs {
		switch e := err.(type) {
		case nil:
			// Skip.
		case *multiError:
			collect = append(collect, e.errs...)
		default:
			if !isNilErr(err) {
				collect = append(collect, err)
			}
		}
	}

	switch len(collect) {
	case 0:
		return nil
	case 1:
		return collect[0]
	default:
		return &multiError{errs: collect}
	}
}

// multiError is a group of errors clubbed together. This is a flat
// structure - a multiError must never contain another multiError.
type multiError struct {
	errs []error
}

var _ unpacker = (*multiError)(nil)

func (e *multiError) Error() string {
	switch len(e.errs) {
	case 0:
		return "no errors"
	case 1:
		return e.errs[0].Error()
	}
	msgs := make([]string, len(e.errs))
	for i, err := range e.errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unpack implements the unpacker interface.
func (e *multiError) Unpack() []error {
	return e.errs
}

// unpacker is implemented by errors that are a collection of other
// errors. Is and FieldErrors descend into every member.
type unpacker interface {
	Unpack() []error
}
