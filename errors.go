package barf

import "errors"

var (
	// ErrNotEnoughCapacity indicates an append did not fit in the remaining
	// space of a fixed-capacity sink. The sink keeps the content it held
	// before the failing value.
	ErrNotEnoughCapacity = errors.New("barf: not enough capacity in fixed sink")

	// ErrInvalidUTF8 indicates raw bytes failed UTF-8 validation before
	// being appended to a text sink.
	ErrInvalidUTF8 = errors.New("barf: invalid UTF-8 byte sequence")

	// ErrInvalidRune indicates a rune outside the valid Unicode range
	// (or a surrogate half) was rejected instead of being replaced.
	ErrInvalidRune = errors.New("barf: invalid rune")
)
