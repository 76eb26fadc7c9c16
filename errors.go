package arraylist

import "errors"

var (
	// ErrInvalidCapacity is returned by NewSized for a non-positive capacity.
	ErrInvalidCapacity = errors.New("arraylist: capacity must be greater than 0")

	// ErrAllocation is returned when a requested or doubled capacity cannot
	// be represented. A true out-of-memory condition aborts the Go runtime
	// and is not reported through this value.
	ErrAllocation = errors.New("arraylist: cannot allocate buffer")

	// ErrIndexOutOfRange is returned for any index outside the valid range
	// of the addressed operation.
	ErrIndexOutOfRange = errors.New("arraylist: index out of range")

	// ErrCapacityExceeded is returned when an insertion into a bound
	// (fixed-capacity) list would require growth.
	ErrCapacityExceeded = errors.New("arraylist: bound buffer is full")
)
