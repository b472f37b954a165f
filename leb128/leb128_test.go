package leb128

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oy3o/barf"
)

// --- Reference decoders ---
//
// The library itself has no decoding surface; these exist only to close
// the round-trip loop in tests.

func decodeUint(t *testing.T, p []byte) uint64 {
	t.Helper()
	var v uint64
	var shift uint
	for i, b := range p {
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			require.Equal(t, len(p), i+1, "continuation bit clear before the last byte")
			return v
		}
		shift += 7
	}
	t.Fatal("continuation bit set on the last byte")
	return 0
}

func decodeInt(t *testing.T, p []byte) int64 {
	t.Helper()
	var v int64
	var shift uint
	for i, b := range p {
		v |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			require.Equal(t, len(p), i+1, "continuation bit clear before the last byte")
			if shift < 64 && b&0x40 != 0 {
				v |= -1 << shift
			}
			return v
		}
	}
	t.Fatal("continuation bit set on the last byte")
	return 0
}

func encodeUint(t *testing.T, v uint64) []byte {
	t.Helper()
	buf := barf.NewBuffer[byte]()
	require.NoError(t, Uint(buf, v))
	return buf.Values()
}

func encodeInt(t *testing.T, v int64) []byte {
	t.Helper()
	buf := barf.NewBuffer[byte]()
	require.NoError(t, Int(buf, v))
	return buf.Values()
}

// --- Tests ---

func TestUintVectors(t *testing.T) {
	vectors := []struct {
		value uint64
		want  []byte
	}{
		{0, []byte{0x00}},
		{63, []byte{0x3F}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xAC, 0x02}},
		{314159, []byte{0xAF, 0x96, 0x13}},
		{math.MaxUint64, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}},
	}
	for _, v := range vectors {
		assert.Equal(t, v.want, encodeUint(t, v.value), "value %d", v.value)
	}
}

func TestIntVectors(t *testing.T) {
	vectors := []struct {
		value int64
		want  []byte
	}{
		{0, []byte{0x00}},
		{-1, []byte{0x7F}},
		{63, []byte{0x3F}},
		{64, []byte{0xC0, 0x00}},
		{-64, []byte{0x40}},
		{-65, []byte{0xBF, 0x7F}},
		{-123456, []byte{0xC0, 0xBB, 0x78}},
		{math.MinInt64, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7F}},
	}
	for _, v := range vectors {
		assert.Equal(t, v.want, encodeInt(t, v.value), "value %d", v.value)
	}
}

func TestUintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 255, 16383, 16384, 1<<32 - 1, 1 << 56, math.MaxUint64}
	for bit := 0; bit < 64; bit++ {
		values = append(values, 1<<bit, 1<<bit-1, 1<<bit+1)
	}
	for _, v := range values {
		enc := encodeUint(t, v)
		require.LessOrEqual(t, len(enc), MaxLen64)
		assert.Equal(t, v, decodeUint(t, enc), "value %d", v)
	}
}

func TestIntRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 63, 64, -64, -65, math.MaxInt64, math.MinInt64}
	for bit := 0; bit < 63; bit++ {
		values = append(values, 1<<bit, -(1 << bit), 1<<bit-1, -(1<<bit)-1)
	}
	for _, v := range values {
		enc := encodeInt(t, v)
		require.LessOrEqual(t, len(enc), MaxLen64)
		assert.Equal(t, v, decodeInt(t, enc), "value %d", v)
	}
}

func TestNarrowWidths(t *testing.T) {
	buf := barf.NewBuffer[byte]()
	require.NoError(t, Uint(buf, uint16(300)))
	require.NoError(t, Uint(buf, uint8(7)))
	require.NoError(t, Int(buf, int32(-1)))
	assert.Equal(t, []byte{0xAC, 0x02, 0x07, 0x7F}, buf.Values())
}

func TestAtomicOnBoundedSink(t *testing.T) {
	sink := barf.NewFixed(make([]byte, 3))
	require.NoError(t, Uint(sink, uint64(300)))

	err := Uint(sink, uint64(314159))
	require.ErrorIs(t, err, barf.ErrNotEnoughCapacity)
	assert.Equal(t, []byte{0xAC, 0x02}, sink.Values(), "no partial encoding on failure")
}

func TestRegisteredEncoding(t *testing.T) {
	enc, ok := barf.LookupEncoding("leb128")
	require.True(t, ok)
	assert.Equal(t, "leb128", enc.Name())

	direct := barf.NewBuffer[byte]()
	viaRegistry := barf.NewBuffer[byte]()
	require.NoError(t, Uint(direct, uint64(314159)))
	require.NoError(t, enc.AppendUint(viaRegistry, 314159))
	assert.Equal(t, direct.Values(), viaRegistry.Values())

	direct.Reset()
	viaRegistry.Reset()
	require.NoError(t, Int(direct, int64(-123456)))
	require.NoError(t, enc.AppendInt(viaRegistry, -123456))
	assert.Equal(t, direct.Values(), viaRegistry.Values())
}

func BenchmarkUint(b *testing.B) {
	buf := barf.NewBuffer[byte]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		_ = Uint(buf, uint64(i)*2654435761)
	}
}
