package packet

// Unsubscribe represents an MQTT UNSUBSCRIBE packet.
// MQTT 3.1.1 Section 3.10
type Unsubscribe struct {
	PacketID     uint16
	TopicFilters []string
}

// Type returns TypeUnsubscribe.
func (u *Unsubscribe) Type() Type {
	return TypeUnsubscribe
}

// EncodedSize returns the remaining length of the UNSUBSCRIBE packet.
func (u *Unsubscribe) EncodedSize() int {
	n := 2 // packet ID
	for _, filter := range u.TopicFilters {
		n += fieldSize(len(filter))
	}
	return n
}

func (u *Unsubscribe) flags() byte {
	return UnsubscribeFlags
}

func (u *Unsubscribe) validate() error {
	if u.PacketID == 0 {
		return ErrInvalidPacketID
	}
	// The protocol forbids an UNSUBSCRIBE without topic filters.
	if len(u.TopicFilters) == 0 {
		return ErrMalformedPacket
	}
	for _, filter := range u.TopicFilters {
		if len(filter) > MaxFieldLength {
			return ErrInvalidLength
		}
	}
	return nil
}

func (u *Unsubscribe) appendBody(dst []byte) []byte {
	dst = appendUint16(dst, u.PacketID)
	for _, filter := range u.TopicFilters {
		dst = appendString(dst, filter)
	}
	return dst
}

// decodeUnsubscribe decodes an UNSUBSCRIBE packet body.
func decodeUnsubscribe(buf []byte) (*Unsubscribe, error) {
	pos := 0
	id, n, err := decodePacketID(buf[pos:])
	if err != nil {
		return nil, err
	}
	u := &Unsubscribe{PacketID: id}
	pos += n

	for pos < len(buf) {
		filter, n, err := decodeString(buf[pos:])
		if err != nil {
			return nil, err
		}
		u.TopicFilters = append(u.TopicFilters, filter)
		pos += n
	}

	// Must name at least one topic filter. MQTT 3.1.1 Section 3.10.3
	if len(u.TopicFilters) == 0 {
		return nil, ErrMalformedPacket
	}
	return u, nil
}

// Unsuback represents an MQTT UNSUBACK packet. It carries no per-filter
// status in this protocol version.
// MQTT 3.1.1 Section 3.11
type Unsuback struct {
	PacketID uint16
}

// Type returns TypeUnsuback.
func (u *Unsuback) Type() Type {
	return TypeUnsuback
}

// EncodedSize returns the remaining length: the 2-byte packet identifier.
func (u *Unsuback) EncodedSize() int {
	return 2
}

func (u *Unsuback) flags() byte {
	return 0
}

func (u *Unsuback) validate() error {
	return validatePacketID(u.PacketID)
}

func (u *Unsuback) appendBody(dst []byte) []byte {
	return appendUint16(dst, u.PacketID)
}

func decodeUnsuback(buf []byte) (*Unsuback, error) {
	id, err := decodeAckPacketID(buf)
	if err != nil {
		return nil, err
	}
	return &Unsuback{PacketID: id}, nil
}
