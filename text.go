package barf

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Text is a growable UTF-8 sink whose element is a rune. The zero value
// is ready to use.
//
// Runes outside the valid Unicode range (and surrogate halves) are
// rejected with ErrInvalidRune rather than silently replaced, so the
// built string always reflects exactly the values that were appended.
type Text struct {
	b strings.Builder
}

// Statically assert that Text implements Barfer.
var _ Barfer[rune] = (*Text)(nil)

// Single appends one rune as its UTF-8 encoding.
func (t *Text) Single(r rune) error {
	if !utf8.ValidRune(r) {
		return ErrInvalidRune
	}
	t.b.WriteRune(r)
	return nil
}

// Many drains values to completion, appending each rune in order. Runes
// appended before an invalid one remain in the sink.
func (t *Text) Many(values iter.Seq[rune]) error {
	return Drain[rune](t, values)
}

// Slice appends a group of runes in order.
func (t *Text) Slice(values []rune) error {
	for _, r := range values {
		if err := t.Single(r); err != nil {
			return err
		}
	}
	return nil
}

// AppendString appends the UTF-8 bytes of s wholesale.
func (t *Text) AppendString(s string) {
	t.b.WriteString(s)
}

// AppendBytes appends raw bytes after UTF-8 validation. On malformed
// input it fails with ErrInvalidUTF8 and the sink is left unchanged.
func (t *Text) AppendBytes(p []byte) error {
	if !utf8.Valid(p) {
		return ErrInvalidUTF8
	}
	t.b.Write(p)
	return nil
}

// String returns the accumulated text.
func (t *Text) String() string { return t.b.String() }

// Len returns the accumulated length in bytes, not runes.
func (t *Text) Len() int { return t.b.Len() }

// Reset empties the sink.
func (t *Text) Reset() { t.b.Reset() }
