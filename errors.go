package vec

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the sentinel behind every checked-access failure.
// Match with errors.Is.
var ErrOutOfRange = errors.New("index out of range")

// OutOfRangeError is returned by At when the index does not name a live
// element. It records the offending index and the vector length at the
// time of the access.
type OutOfRangeError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("vec: index %d out of range [0, %d)", e.Index, e.Len)
}

// Unwrap makes errors.Is(err, ErrOutOfRange) hold.
func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
