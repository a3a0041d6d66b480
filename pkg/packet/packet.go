package packet

// Packet is the interface implemented by all MQTT 3.1.1 control packets.
// The set of implementations is closed: appendBody is unexported so no type
// outside this package can satisfy the interface, which keeps type switches
// over packets exhaustive.
type Packet interface {
	// Type returns the packet type.
	Type() Type

	// EncodedSize returns the remaining length of the packet: the number of
	// bytes its variable header and payload occupy after the fixed header's
	// length field. It is a total function and never fails; structural
	// violations are reported by Encode instead.
	EncodedSize() int

	// flags returns the four type-specific flag bits of the fixed header.
	flags() byte

	// validate reports structural invariants the caller controls, checked
	// before Encode writes anything.
	validate() error

	// appendBody appends the variable header and payload to dst.
	// It must only be called after validate has passed.
	appendBody(dst []byte) []byte
}

// Encode appends the full wire form of p to dst: the fixed header byte, the
// remaining length (size, normally obtained from p.EncodedSize) and the body.
// If p violates a structural invariant, dst is returned unchanged alongside
// the error.
func Encode(dst []byte, p Packet, size int) ([]byte, error) {
	switch p.Type() {
	case TypePingreq, TypePingresp, TypeDisconnect:
		// Nothing to compute: header byte plus a zero remaining length.
		return append(dst, byte(p.Type())<<4, 0), nil
	}

	if size < 0 || size > MaxRemainingLength {
		return dst, ErrPacketTooLarge
	}
	if err := p.validate(); err != nil {
		return dst, err
	}

	dst = append(dst, byte(p.Type())<<4|p.flags())
	dst = appendVarInt(dst, uint32(size))
	return p.appendBody(dst), nil
}

// Append encodes p with its own EncodedSize. It is shorthand for
// Encode(dst, p, p.EncodedSize()).
func Append(dst []byte, p Packet) ([]byte, error) {
	return Encode(dst, p, p.EncodedSize())
}

// Decode decodes a single packet from body, a buffer holding exactly the
// bytes after the fixed header (the fixed header's type and flags having
// already been read, e.g. via DecodeFixedHeader). Byte-buffer fields of the
// returned packet alias body and must not be mutated.
func Decode(t Type, flags byte, body []byte) (Packet, error) {
	// Validate reserved flag bits. MQTT 3.1.1 Section 2.2.2
	switch t {
	case TypeConnect, TypeConnack, TypePuback, TypePubrec, TypePubcomp,
		TypeSuback, TypeUnsuback, TypePingreq, TypePingresp, TypeDisconnect:
		if flags != 0 {
			return nil, ErrInvalidFlags
		}
	case TypePubrel, TypeSubscribe, TypeUnsubscribe:
		if flags != 0x02 {
			return nil, ErrInvalidFlags
		}
	case TypePublish:
		// PUBLISH flags carry DUP/QoS/RETAIN, validated in decodePublish.
	default:
		return nil, ErrInvalidPacketType
	}

	switch t {
	case TypeConnect:
		return decodeConnect(body)
	case TypeConnack:
		return decodeConnack(body)
	case TypePublish:
		return decodePublish(flags, body)
	case TypePuback:
		return decodePuback(body)
	case TypePubrec:
		return decodePubrec(body)
	case TypePubrel:
		return decodePubrel(body)
	case TypePubcomp:
		return decodePubcomp(body)
	case TypeSubscribe:
		return decodeSubscribe(body)
	case TypeSuback:
		return decodeSuback(body)
	case TypeUnsubscribe:
		return decodeUnsubscribe(body)
	case TypeUnsuback:
		return decodeUnsuback(body)
	case TypePingreq:
		return decodePingreq(body)
	case TypePingresp:
		return decodePingresp(body)
	default: // TypeDisconnect
		return decodeDisconnect(body)
	}
}
