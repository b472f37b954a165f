// Package leb128 appends LEB128-encoded integers to barf byte sinks.
//
// LEB128 packs an integer into base-128 groups, least significant group
// first, with the high bit of every byte but the last set as a
// continuation marker. Unsigned values use plain 7-bit payloads; signed
// values use sign-extended two's complement.
//
// Importing the package registers it as the barf encoding "leb128".
package leb128

import (
	"golang.org/x/exp/constraints"

	"github.com/oy3o/barf"
)

// MaxLen64 is the maximum encoded length of a 64-bit value.
const MaxLen64 = 10

func init() {
	barf.RegisterEncoding(encoding{})
}

type encoding struct{}

func (encoding) Name() string { return "leb128" }

func (encoding) AppendUint(dst barf.Barfer[byte], v uint64) error {
	return Uint(dst, v)
}

func (encoding) AppendInt(dst barf.Barfer[byte], v int64) error {
	return Int(dst, v)
}

// Uint appends the unsigned LEB128 encoding of v, between 1 and MaxLen64
// bytes. The encoding is staged in full before a single Slice call, so a
// bounded sink never receives a partial value.
func Uint[T constraints.Unsigned](dst barf.Barfer[byte], v T) error {
	var buf [MaxLen64]byte
	x := uint64(v)
	n := 0
	for x >= 0x80 {
		buf[n] = byte(x) | 0x80
		x >>= 7
		n++
	}
	buf[n] = byte(x)
	return dst.Slice(buf[:n+1])
}

// Int appends the signed LEB128 encoding of v, between 1 and MaxLen64
// bytes. Unlike zigzag schemes, signed LEB128 carries the sign in the
// final group, so small negative values stay short.
func Int[T constraints.Signed](dst barf.Barfer[byte], v T) error {
	var buf [MaxLen64]byte
	x := int64(v)
	n := 0
	for {
		b := byte(x) & 0x7f
		x >>= 7
		if (x == 0 && b&0x40 == 0) || (x == -1 && b&0x40 != 0) {
			buf[n] = b
			n++
			return dst.Slice(buf[:n])
		}
		buf[n] = b | 0x80
		n++
	}
}
