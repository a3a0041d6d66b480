package packet

import (
	"encoding/binary"
	"unicode/utf8"
)

// appendVarInt appends a variable byte integer to dst.
// The value must already be within MaxRemainingLength.
// MQTT 3.1.1 Section 2.2.3
func appendVarInt(dst []byte, value uint32) []byte {
	for {
		encodedByte := byte(value & 0x7F)
		value >>= 7
		if value > 0 {
			encodedByte |= 0x80
		}
		dst = append(dst, encodedByte)
		if value == 0 {
			return dst
		}
	}
}

// decodeVarInt decodes a variable byte integer from buf.
// It returns ErrIncompletePacket if buf ends while the continuation bit is
// still set, and ErrMalformedRemainingLength if the encoding exceeds 4 bytes.
// MQTT 3.1.1 Section 2.2.3
func decodeVarInt(buf []byte) (value uint32, n int, err error) {
	var multiplier uint32 = 1

	for i := 0; i < len(buf); i++ {
		if i == 4 {
			return 0, 0, ErrMalformedRemainingLength
		}
		encodedByte := buf[i]
		value += uint32(encodedByte&0x7F) * multiplier

		if encodedByte&0x80 == 0 {
			return value, i + 1, nil
		}
		multiplier *= 128
	}
	if len(buf) >= 4 {
		// Four continuation bytes already consumed.
		return 0, 0, ErrMalformedRemainingLength
	}
	return 0, 0, ErrIncompletePacket
}

// varIntSize returns the number of bytes needed to encode a value as a
// variable byte integer.
func varIntSize(value uint32) int {
	switch {
	case value < 128:
		return 1
	case value < 16384:
		return 2
	case value < 2097152:
		return 3
	default:
		return 4
	}
}

// appendUint16 appends a 16-bit unsigned integer in big-endian order.
func appendUint16(dst []byte, value uint16) []byte {
	return append(dst, byte(value>>8), byte(value))
}

// decodeUint16 decodes a 16-bit unsigned integer from big-endian bytes.
func decodeUint16(buf []byte) (value uint16, n int, ok bool) {
	if len(buf) < 2 {
		return 0, 0, false
	}
	return binary.BigEndian.Uint16(buf), 2, true
}

// decodePacketID decodes a packet identifier, rejecting zero.
func decodePacketID(buf []byte) (id uint16, n int, err error) {
	id, n, ok := decodeUint16(buf)
	if !ok {
		return 0, 0, ErrMalformedPacket
	}
	if id == 0 {
		return 0, 0, ErrInvalidPacketID
	}
	return id, n, nil
}

// appendString appends a UTF-8 string with a 2-byte length prefix.
// The string length must already be within MaxFieldLength; Encode validates
// field lengths before any byte is written.
func appendString(dst []byte, s string) []byte {
	dst = appendUint16(dst, uint16(len(s)))
	return append(dst, s...)
}

// appendBytes appends binary data with a 2-byte length prefix.
func appendBytes(dst []byte, data []byte) []byte {
	dst = appendUint16(dst, uint16(len(data)))
	return append(dst, data...)
}

// decodeBytes decodes a length-prefixed binary field from buf.
// The returned slice references the original buffer (zero-copy); the caller
// must treat it as immutable.
func decodeBytes(buf []byte) (data []byte, n int, ok bool) {
	if len(buf) < 2 {
		return nil, 0, false
	}
	dlen := int(binary.BigEndian.Uint16(buf))
	if len(buf) < 2+dlen {
		return nil, 0, false
	}
	return buf[2 : 2+dlen], 2 + dlen, true
}

// decodeString decodes a length-prefixed UTF-8 string from buf.
// Returns ErrMalformedPacket on truncation and ErrInvalidUTF8 on invalid
// string content.
func decodeString(buf []byte) (s string, n int, err error) {
	data, n, ok := decodeBytes(buf)
	if !ok {
		return "", 0, ErrMalformedPacket
	}
	if err := validateUTF8(data); err != nil {
		return "", 0, err
	}
	return string(data), n, nil
}

// validateUTF8 validates that a byte slice is valid UTF-8 without null
// characters or surrogate code points.
// MQTT 3.1.1 Section 1.5.3
func validateUTF8(data []byte) error {
	if !utf8.Valid(data) {
		return ErrInvalidUTF8
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == 0 {
			return ErrInvalidUTF8
		}
		if r >= 0xD800 && r <= 0xDFFF {
			return ErrInvalidUTF8
		}
		i += size
	}
	return nil
}

// fieldSize returns the encoded size of a length-prefixed field body.
func fieldSize(n int) int {
	return 2 + n
}

// DecodeFixedHeader decodes the fixed header from buf.
// It returns the packet type, the type-specific flags, the remaining length
// and the number of header bytes consumed. ErrIncompletePacket means more
// bytes are needed before the header can be parsed.
func DecodeFixedHeader(buf []byte) (t Type, flags byte, remaining uint32, n int, err error) {
	if len(buf) < 2 {
		return 0, 0, 0, 0, ErrIncompletePacket
	}

	t = Type(buf[0] >> 4)
	flags = buf[0] & 0x0F

	remaining, varIntLen, err := decodeVarInt(buf[1:])
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return t, flags, remaining, 1 + varIntLen, nil
}
