// Package arraylist provides a generic growable list that can run on its
// own heap-allocated storage or on a caller-supplied fixed buffer, for
// callers that must avoid dynamic allocation.
package arraylist

import (
	"fmt"
	"math"

	"github.com/graxinc/arraylist/internal"
)

type mode uint8

const (
	owned mode = iota // list allocated the buffer and may replace it
	bound             // caller supplied the buffer, capacity is fixed
)

// List is an ordered, index-addressable sequence of elements with a
// logical length and an allocated capacity.
//
// An owned list grows by doubling its buffer when full. A list bound to
// external storage via Bind never reallocates; insertions past its
// capacity fail with ErrCapacityExceeded.
//
// The zero value is an empty owned list, ready to use.
//
// A List is not safe for concurrent use, and a non-zero List must not be
// copied by assignment. Use Move to transfer ownership and Clone to
// duplicate contents.
type List[T comparable] struct {
	elems []T // len(elems) is the capacity
	count int
	mode  mode
}

// New returns an empty owned list with no buffer.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// NewSized returns an owned list with a buffer of exactly capacity
// elements. Capacity must be greater than 0.
func NewSized[T comparable](capacity int) (*List[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return &List[T]{elems: make([]T, capacity)}, nil
}

// Bind switches the list to caller-supplied storage. The buffer's length
// becomes the fixed capacity, the logical length resets to 0 and any
// previously owned buffer is dropped. The caller must keep the buffer
// alive for as long as the list uses it and must not access it elsewhere
// in the meantime.
func (l *List[T]) Bind(buffer []T) {
	l.elems = buffer
	l.count = 0
	l.mode = bound
}

// Len returns the number of valid elements.
func (l *List[T]) Len() int { return l.count }

// Cap returns the total buffer size in elements.
func (l *List[T]) Cap() int { return len(l.elems) }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.count == 0 }

// Owned reports whether the list allocated its own buffer. It returns
// false only after Bind.
func (l *List[T]) Owned() bool { return l.mode == owned }

// Get returns a copy of the element at index i.
func (l *List[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.count {
		var zero T
		return zero, fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, l.count)
	}
	return l.elems[i], nil
}

// At returns a pointer to the element at index i. The pointer aims into
// the backing buffer: any mutation that grows the list may relocate the
// buffer, so the pointer must not be retained across mutating calls.
func (l *List[T]) At(i int) (*T, error) {
	if i < 0 || i >= l.count {
		return nil, fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, l.count)
	}
	return &l.elems[i], nil
}

// Set replaces the element at index i.
func (l *List[T]) Set(i int, value T) error {
	if i < 0 || i >= l.count {
		return fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, l.count)
	}
	l.elems[i] = value
	return nil
}

// Slice returns a view of the valid elements. Like At pointers, the view
// is invalidated by any mutation that grows the list.
func (l *List[T]) Slice() []T {
	return l.elems[:l.count]
}

// Clear resets the logical length to 0. The buffer and capacity are kept;
// previously returned pointers and slices become logically stale.
func (l *List[T]) Clear() {
	l.count = 0
}

// grow replaces the buffer with one of doubled capacity. The live buffer
// is untouched until the replacement is fully built, so a failure leaves
// the list exactly as it was.
func (l *List[T]) grow() error {
	if l.mode == bound {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, len(l.elems))
	}
	if len(l.elems) > math.MaxInt/2 {
		return fmt.Errorf("%w: doubling capacity %d overflows", ErrAllocation, len(l.elems))
	}
	l.elems = internal.Alloc(l.elems, l.count, internal.NextCap(len(l.elems)))
	return nil
}

// Append adds value at the end of the list, growing the buffer if the
// list is full.
func (l *List[T]) Append(value T) error {
	if l.count == len(l.elems) {
		if err := l.grow(); err != nil {
			return err
		}
	}
	l.elems[l.count] = value
	l.count++
	return nil
}

// Insert places value at index i, shifting elements at [i, Len()) one
// position up. i may equal Len(), which appends.
func (l *List[T]) Insert(i int, value T) error {
	if i < 0 || i > l.count {
		return fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, l.count)
	}
	if l.count == len(l.elems) {
		if err := l.grow(); err != nil {
			return err
		}
	}
	copy(l.elems[i+1:l.count+1], l.elems[i:l.count])
	l.elems[i] = value
	l.count++
	return nil
}

// RemoveAt deletes the element at index i, shifting elements at
// (i, Len()) one position down. Capacity is unchanged.
func (l *List[T]) RemoveAt(i int) error {
	if i < 0 || i >= l.count {
		return fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, l.count)
	}
	copy(l.elems[i:l.count-1], l.elems[i+1:l.count])
	l.count--
	var zero T
	l.elems[l.count] = zero // don't pin the shifted-out element
	return nil
}

// IndexOf returns the index of the first element equal to value and
// whether one was found.
func (l *List[T]) IndexOf(value T) (int, bool) {
	for i := range l.count {
		if l.elems[i] == value {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether the list holds an element equal to value.
func (l *List[T]) Contains(value T) bool {
	_, ok := l.IndexOf(value)
	return ok
}

// Move transfers the buffer, mode, length and capacity to a new list and
// resets the receiver to an empty owned list. Pointers previously
// obtained via At remain valid for the returned list.
func (l *List[T]) Move() *List[T] {
	moved := &List[T]{elems: l.elems, count: l.count, mode: l.mode}
	*l = List[T]{}
	return moved
}

// Clone returns an owned, element-wise copy of the list with the same
// capacity. Cloning a bound list yields an owned one.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{
		elems: internal.Alloc(l.elems, l.count, len(l.elems)),
		count: l.count,
	}
}
