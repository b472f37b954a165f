package barf

import (
	"iter"
	"slices"
)

// Buffer is a growable slice-backed sink. The zero value is ready to use.
//
// Appends to a Buffer cannot fail; every Barfer method returns a nil
// error. Growth is amortized by the runtime's append strategy.
type Buffer[T any] struct {
	values []T
}

// Statically assert that Buffer implements Barfer.
var _ Barfer[byte] = (*Buffer[byte])(nil)

// NewBuffer creates an empty Buffer.
func NewBuffer[T any]() *Buffer[T] {
	return &Buffer[T]{}
}

// NewBufferSize creates an empty Buffer with capacity pre-reserved for
// size elements.
func NewBufferSize[T any](size int) *Buffer[T] {
	return &Buffer[T]{values: make([]T, 0, size)}
}

// Single appends one element.
func (b *Buffer[T]) Single(v T) error {
	b.values = append(b.values, v)
	return nil
}

// Many drains values to completion, appending each element in order.
func (b *Buffer[T]) Many(values iter.Seq[T]) error {
	for v := range values {
		b.values = append(b.values, v)
	}
	return nil
}

// Slice appends a group of elements in one copy.
func (b *Buffer[T]) Slice(values []T) error {
	b.values = append(b.values, values...)
	return nil
}

// Values returns a view of the appended elements. The view is valid until
// the next append.
func (b *Buffer[T]) Values() []T { return b.values }

// Len returns the number of appended elements.
func (b *Buffer[T]) Len() int { return len(b.values) }

// Grow reserves capacity for at least n more elements.
func (b *Buffer[T]) Grow(n int) {
	b.values = slices.Grow(b.values, n)
}

// Reset empties the Buffer, retaining its capacity for reuse.
func (b *Buffer[T]) Reset() { b.values = b.values[:0] }
