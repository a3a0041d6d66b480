package packet

// Publish represents an MQTT PUBLISH packet.
// MQTT 3.1.1 Section 3.3
type Publish struct {
	// Fixed header flags
	Dup    bool // Duplicate delivery flag
	QoS    QoS  // Quality of Service level
	Retain bool // Retain flag

	// Variable header
	Topic    string
	PacketID uint16 // non-zero, set if and only if QoS > 0

	// Payload, appended raw; its length is implied by the remaining length.
	Payload []byte
}

// Type returns TypePublish.
func (p *Publish) Type() Type {
	return TypePublish
}

// EncodedSize returns the remaining length of the PUBLISH packet.
func (p *Publish) EncodedSize() int {
	n := fieldSize(len(p.Topic)) + len(p.Payload)
	if p.QoS > QoS0 {
		n += 2
	}
	return n
}

func (p *Publish) flags() byte {
	var flags byte
	if p.Retain {
		flags |= PublishFlagRetain
	}
	flags |= byte(p.QoS) << 1
	if p.Dup {
		flags |= PublishFlagDup
	}
	return flags
}

func (p *Publish) validate() error {
	if !p.QoS.Valid() {
		return ErrInvalidQoS
	}
	if p.QoS == QoS0 {
		// A QoS 0 PUBLISH carries neither a packet identifier nor DUP.
		if p.PacketID != 0 {
			return ErrMalformedPacket
		}
		if p.Dup {
			return ErrMalformedPacket
		}
	} else if p.PacketID == 0 {
		return ErrPacketIDRequired
	}
	if len(p.Topic) > MaxFieldLength {
		return ErrInvalidLength
	}
	return nil
}

func (p *Publish) appendBody(dst []byte) []byte {
	dst = appendString(dst, p.Topic)
	if p.QoS > QoS0 {
		dst = appendUint16(dst, p.PacketID)
	}
	return append(dst, p.Payload...)
}

// decodePublish decodes a PUBLISH packet body. flags are the fixed header
// flags (lower 4 bits of the first byte). The payload aliases buf.
func decodePublish(flags byte, buf []byte) (*Publish, error) {
	p := &Publish{
		Retain: flags&PublishFlagRetain != 0,
		QoS:    QoS((flags >> 1) & 0x03),
		Dup:    flags&PublishFlagDup != 0,
	}

	if !p.QoS.Valid() {
		return nil, ErrInvalidQoS
	}
	// DUP must be 0 for QoS 0. MQTT 3.1.1 Section 3.3.1.1
	if p.QoS == QoS0 && p.Dup {
		return nil, ErrMalformedPacket
	}

	pos := 0
	topic, n, err := decodeString(buf[pos:])
	if err != nil {
		return nil, err
	}
	p.Topic = topic
	pos += n

	if p.QoS > QoS0 {
		id, n, err := decodePacketID(buf[pos:])
		if err != nil {
			return nil, err
		}
		p.PacketID = id
		pos += n
	}

	p.Payload = buf[pos:]
	return p, nil
}
