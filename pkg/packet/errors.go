package packet

import "errors"

// Sentinel errors for packet encoding and decoding.
var (
	// ErrMalformedPacket indicates the packet structure is invalid.
	ErrMalformedPacket = errors.New("malformed packet")

	// ErrMalformedRemainingLength indicates the remaining length encoding is invalid.
	ErrMalformedRemainingLength = errors.New("malformed remaining length")

	// ErrPacketTooLarge indicates the packet exceeds the maximum remaining length.
	ErrPacketTooLarge = errors.New("packet too large")

	// ErrInvalidPacketType indicates an unknown or reserved packet type.
	ErrInvalidPacketType = errors.New("invalid packet type")

	// ErrInvalidFlags indicates invalid fixed header flags for the packet type.
	ErrInvalidFlags = errors.New("invalid packet flags")

	// ErrInvalidQoS indicates an invalid QoS level.
	ErrInvalidQoS = errors.New("invalid QoS level")

	// ErrInvalidProtocolName indicates the CONNECT protocol name is not "MQTT".
	ErrInvalidProtocolName = errors.New("invalid protocol name")

	// ErrUnsupportedProtocolLevel indicates a CONNECT protocol level other than 4.
	ErrUnsupportedProtocolLevel = errors.New("unsupported protocol level")

	// ErrInvalidUTF8 indicates a string field contains invalid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 string")

	// ErrInvalidPacketID indicates a zero packet identifier where a non-zero
	// one is required.
	ErrInvalidPacketID = errors.New("invalid packet identifier")

	// ErrPacketIDRequired indicates a QoS > 0 PUBLISH without a packet identifier.
	ErrPacketIDRequired = errors.New("packet identifier required")

	// ErrInvalidLength indicates a string or binary field exceeds the 16-bit
	// length prefix budget.
	ErrInvalidLength = errors.New("invalid field length")

	// ErrIncompletePacket indicates more data is needed to complete the packet.
	// It is a suspend signal rather than a failure: the caller should retry
	// once more bytes have arrived.
	ErrIncompletePacket = errors.New("incomplete packet")
)
