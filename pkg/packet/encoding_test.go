package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendVarIntBoundaries(t *testing.T) {
	tests := []struct {
		value uint32
		want  []byte
	}{
		{0, []byte{0x00}},
		{123, []byte{123}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{129, []byte{0x81, 0x01}},
		{16383, []byte{0xff, 0x7f}},
		{16384, []byte{0x80, 0x80, 0x01}},
		{2097151, []byte{0xff, 0xff, 0x7f}},
		{2097152, []byte{0x80, 0x80, 0x80, 0x01}},
		{268435455, []byte{0xff, 0xff, 0xff, 0x7f}},
	}

	for _, tt := range tests {
		got := appendVarInt(nil, tt.value)
		assert.Equal(t, tt.want, got, "value %d", tt.value)
	}
}

func TestVarIntSizeClasses(t *testing.T) {
	tests := []struct {
		value uint32
		want  int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{2097151, 3},
		{2097152, 4},
		{268435455, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, varIntSize(tt.value), "value %d", tt.value)
		assert.Len(t, appendVarInt(nil, tt.value), tt.want, "value %d", tt.value)
	}
}

func TestDecodeVarIntRoundTrip(t *testing.T) {
	for _, value := range []uint32{0, 1, 127, 128, 16383, 16384, 2097151, 2097152, 268435455} {
		buf := appendVarInt(nil, value)

		got, n, err := decodeVarInt(buf)
		require.NoError(t, err, "value %d", value)
		assert.Equal(t, value, got)
		assert.Equal(t, len(buf), n)
	}
}

func TestDecodeVarIntMalformed(t *testing.T) {
	// A 4th byte with the continuation bit set exceeds the 4-byte budget.
	_, _, err := decodeVarInt([]byte{0xff, 0xff, 0xff, 0xff, 0x7f})
	assert.ErrorIs(t, err, ErrMalformedRemainingLength)

	_, _, err = decodeVarInt([]byte{0x80, 0x80, 0x80, 0x80})
	assert.ErrorIs(t, err, ErrMalformedRemainingLength)
}

func TestDecodeVarIntIncomplete(t *testing.T) {
	for _, buf := range [][]byte{nil, {0x80}, {0xff, 0xff}, {0x80, 0x80, 0x80}} {
		_, _, err := decodeVarInt(buf)
		assert.ErrorIs(t, err, ErrIncompletePacket, "buf %v", buf)
	}
}

func TestDecodeUint16(t *testing.T) {
	v, n, ok := decodeUint16([]byte{0x12, 0x34})
	require.True(t, ok)
	assert.Equal(t, uint16(0x1234), v)
	assert.Equal(t, 2, n)

	_, _, ok = decodeUint16([]byte{0x12})
	assert.False(t, ok)
}

func TestDecodePacketIDZero(t *testing.T) {
	_, _, err := decodePacketID([]byte{0x00, 0x00})
	assert.ErrorIs(t, err, ErrInvalidPacketID)
}

func TestDecodeString(t *testing.T) {
	s, n, err := decodeString([]byte{0x00, 0x05, 't', 'o', 'p', 'i', 'c'})
	require.NoError(t, err)
	assert.Equal(t, "topic", s)
	assert.Equal(t, 7, n)

	// Declared length overruns the buffer.
	_, _, err = decodeString([]byte{0x00, 0x05, 't', 'o'})
	assert.ErrorIs(t, err, ErrMalformedPacket)

	// Invalid UTF-8.
	_, _, err = decodeString([]byte{0x00, 0x02, 0xff, 0xfe})
	assert.ErrorIs(t, err, ErrInvalidUTF8)

	// Null characters are forbidden in MQTT strings.
	_, _, err = decodeString([]byte{0x00, 0x01, 0x00})
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestDecodeBytesZeroCopy(t *testing.T) {
	buf := []byte{0x00, 0x03, 1, 2, 3, 0xaa}
	data, n, ok := decodeBytes(buf)
	require.True(t, ok)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte{1, 2, 3}, data)
	// The returned slice is a view over the input, not a copy.
	assert.Same(t, &buf[2], &data[0])
}

func TestDecodeFixedHeader(t *testing.T) {
	typ, flags, remaining, n, err := DecodeFixedHeader([]byte{0x3d, 0x88, 0x02})
	require.NoError(t, err)
	assert.Equal(t, TypePublish, typ)
	assert.Equal(t, byte(0x0d), flags)
	assert.Equal(t, uint32(264), remaining)
	assert.Equal(t, 3, n)
}

func TestDecodeFixedHeaderIncomplete(t *testing.T) {
	for _, buf := range [][]byte{nil, {0x30}, {0x30, 0x80}, {0x30, 0xff, 0xff}} {
		_, _, _, _, err := DecodeFixedHeader(buf)
		assert.ErrorIs(t, err, ErrIncompletePacket, "buf %v", buf)
	}
}
