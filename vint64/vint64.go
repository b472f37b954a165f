// Package vint64 appends vint64-encoded integers to barf byte sinks.
//
// vint64 is a prefixed variable-length format: the count of trailing
// zero bits in the first byte, plus one, is the total encoded length
// (1 to 9 bytes). The value is shifted left by the length, or'd with a
// marker bit at position length-1, and laid out little-endian; a zero
// first byte means the full 8-byte value follows verbatim. Unlike
// LEB128, the length of a vint64 value is known from its first byte.
// Signed values are zigzag-mapped to unsigned first.
//
// Importing the package registers it as the barf encoding "vint64".
package vint64

import (
	"encoding/binary"
	"math/bits"

	"github.com/oy3o/barf"
)

// MaxLen is the maximum encoded length of a value.
const MaxLen = 9

func init() {
	barf.RegisterEncoding(encoding{})
}

type encoding struct{}

func (encoding) Name() string { return "vint64" }

func (encoding) AppendUint(dst barf.Barfer[byte], v uint64) error {
	return Uint(dst, v)
}

func (encoding) AppendInt(dst barf.Barfer[byte], v int64) error {
	return Int(dst, v)
}

// Len returns the encoded length of v in bytes, between 1 and MaxLen.
func Len(v uint64) int {
	if v >= 1<<56 {
		return MaxLen
	}
	return (bits.Len64(v|1) + 6) / 7
}

// Uint appends the vint64 encoding of v. The encoding is staged in full
// before a single Slice call, so a bounded sink never receives a partial
// value.
func Uint(dst barf.Barfer[byte], v uint64) error {
	length := Len(v)
	var buf [MaxLen]byte
	if length == MaxLen {
		// Values needing more than 56 bits: zero length byte, then the
		// raw value.
		binary.LittleEndian.PutUint64(buf[1:], v)
	} else {
		binary.LittleEndian.PutUint64(buf[:8], (v<<1|1)<<(length-1))
	}
	return dst.Slice(buf[:length])
}

// Int appends the vint64 encoding of v's zigzag mapping, so values near
// zero of either sign encode short.
func Int(dst barf.Barfer[byte], v int64) error {
	return Uint(dst, uint64(v<<1)^uint64(v>>63))
}
