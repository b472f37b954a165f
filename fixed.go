package barf

import "iter"

// Fixed is a sink over a caller-supplied slice that never grows. It is
// the sink of choice when allocation is off the table: the caller hands
// over backing storage once and appends fail with ErrNotEnoughCapacity
// when it runs out.
type Fixed[T any] struct {
	buf []T // backing storage, used up to its capacity
	n   int // current write position
}

// Statically assert that Fixed implements Barfer.
var _ Barfer[byte] = (*Fixed[byte])(nil)

// NewFixed creates a Fixed sink over the full capacity of backing.
func NewFixed[T any](backing []T) *Fixed[T] {
	return &Fixed[T]{buf: backing[:cap(backing)]}
}

// Single appends one element, or fails with ErrNotEnoughCapacity if the
// backing slice is full.
func (f *Fixed[T]) Single(v T) error {
	if f.n >= len(f.buf) {
		return ErrNotEnoughCapacity
	}
	f.buf[f.n] = v
	f.n++
	return nil
}

// Many drains values until the sequence ends or capacity runs out.
// Elements appended before the failing one remain in the sink.
func (f *Fixed[T]) Many(values iter.Seq[T]) error {
	return Drain[T](f, values)
}

// Slice appends a group of elements all-or-nothing: if the group does not
// fit in the remaining capacity, the sink is left unchanged.
func (f *Fixed[T]) Slice(values []T) error {
	if f.n+len(values) > len(f.buf) {
		return ErrNotEnoughCapacity
	}
	f.n += copy(f.buf[f.n:], values)
	return nil
}

// Values returns a view of the appended elements.
func (f *Fixed[T]) Values() []T { return f.buf[:f.n] }

// Len returns the number of appended elements.
func (f *Fixed[T]) Len() int { return f.n }

// Cap returns the total capacity of the backing slice.
func (f *Fixed[T]) Cap() int { return len(f.buf) }

// Available returns the number of elements that can still be appended.
func (f *Fixed[T]) Available() int { return len(f.buf) - f.n }

// Reset allows the backing slice to be reused.
func (f *Fixed[T]) Reset() { f.n = 0 }
