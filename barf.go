// Package barf appends encodable values onto growable, caller-owned sinks.
//
// The core of the package is the Barfer capability: three append shapes
// (one value, a lazy sequence of values, a fixed-size group of values)
// over any sink type. Two default sinks are provided: Buffer, a growable
// slice, and Text, a UTF-8 string builder. Fixed wraps a caller-supplied
// slice when the sink must not grow.
//
// Variable-length integer adapters live in the optional subpackages
// leb128 and vint64; the core never imports them.
package barf

import "iter"

// Barfer is the append capability over a sink of elements T.
//
// A sink is exclusively owned by the caller; implementations mutate it in
// place and never retain a reference beyond the duration of a call.
// Appension only extends the sink at the tail: content appended by earlier
// calls is never reordered or modified.
//
// Implementations for sinks that cannot fail (growable in-memory buffers)
// return a nil error from every method. Bounded sinks report exhaustion
// with ErrNotEnoughCapacity. A failed call never leaves a partial encoding
// of the failing value in the sink.
type Barfer[T any] interface {
	// Single appends one element to the tail of the sink.
	Single(v T) error

	// Many drains values to completion, appending each produced element
	// in iteration order. The sequence is consumed exactly once and must
	// be finite. Elements appended before a failure remain in the sink.
	Many(values iter.Seq[T]) error

	// Slice appends a fixed-size group of elements. Observably equivalent
	// to Many over the group's natural order, but implementations may
	// pre-reserve capacity for the known size. An empty group is a no-op.
	Slice(values []T) error
}

// Drain appends every element of values with b.Single, stopping at the
// first failure. It is the fallback Many implementation for sink types
// that have no better strategy than one element at a time.
func Drain[T any](b Barfer[T], values iter.Seq[T]) error {
	for v := range values {
		if err := b.Single(v); err != nil {
			return err
		}
	}
	return nil
}
