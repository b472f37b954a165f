package barf

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

var (
	BE = binary.BigEndian
	LE = binary.LittleEndian
	// Native is the byte order of the host.
	Native = binary.NativeEndian
)

// The helpers below append the fixed-width binary encoding of a primitive
// value to a byte sink. Multi-byte encodings are staged in a stack array
// and handed to Slice in one call, so a bounded sink either takes the
// whole value or rejects it without partial bytes.

// Bool appends a single byte: 1 for true, 0 for false.
func Bool(dst Barfer[byte], v bool) error {
	if v {
		return dst.Single(1)
	}
	return dst.Single(0)
}

// Uint8 appends a single byte.
func Uint8(dst Barfer[byte], v uint8) error {
	return dst.Single(v)
}

// Int8 appends a single byte.
func Int8(dst Barfer[byte], v int8) error {
	return dst.Single(uint8(v))
}

// Uint16 appends v as 2 bytes in the given order.
func Uint16(dst Barfer[byte], order binary.ByteOrder, v uint16) error {
	var buf [2]byte
	order.PutUint16(buf[:], v)
	return dst.Slice(buf[:])
}

// Uint32 appends v as 4 bytes in the given order.
func Uint32(dst Barfer[byte], order binary.ByteOrder, v uint32) error {
	var buf [4]byte
	order.PutUint32(buf[:], v)
	return dst.Slice(buf[:])
}

// Uint64 appends v as 8 bytes in the given order.
func Uint64(dst Barfer[byte], order binary.ByteOrder, v uint64) error {
	var buf [8]byte
	order.PutUint64(buf[:], v)
	return dst.Slice(buf[:])
}

// Int16 appends v as 2 bytes in the given order.
func Int16(dst Barfer[byte], order binary.ByteOrder, v int16) error {
	return Uint16(dst, order, uint16(v))
}

// Int32 appends v as 4 bytes in the given order.
func Int32(dst Barfer[byte], order binary.ByteOrder, v int32) error {
	return Uint32(dst, order, uint32(v))
}

// Int64 appends v as 8 bytes in the given order.
func Int64(dst Barfer[byte], order binary.ByteOrder, v int64) error {
	return Uint64(dst, order, uint64(v))
}

// Float32 appends the IEEE 754 bits of v as 4 bytes in the given order.
func Float32(dst Barfer[byte], order binary.ByteOrder, v float32) error {
	return Uint32(dst, order, math.Float32bits(v))
}

// Float64 appends the IEEE 754 bits of v as 8 bytes in the given order.
func Float64(dst Barfer[byte], order binary.ByteOrder, v float64) error {
	return Uint64(dst, order, math.Float64bits(v))
}

// String appends the UTF-8 bytes of s.
func String(dst Barfer[byte], s string) error {
	return dst.Slice([]byte(s))
}

// Rune appends the UTF-8 encoding of r, between 1 and utf8.UTFMax bytes.
// Invalid runes fail with ErrInvalidRune instead of being replaced.
func Rune(dst Barfer[byte], r rune) error {
	if !utf8.ValidRune(r) {
		return ErrInvalidRune
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return dst.Slice(buf[:n])
}
