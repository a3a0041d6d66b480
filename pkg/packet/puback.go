package packet

// The QoS 1 and QoS 2 acknowledgment packets all carry a single non-zero
// packet identifier and nothing else.
// MQTT 3.1.1 Sections 3.4 to 3.7

// Puback represents an MQTT PUBACK packet (QoS 1 acknowledgment).
type Puback struct {
	PacketID uint16
}

// Pubrec represents an MQTT PUBREC packet (QoS 2 part 1).
type Pubrec struct {
	PacketID uint16
}

// Pubrel represents an MQTT PUBREL packet (QoS 2 part 2).
type Pubrel struct {
	PacketID uint16
}

// Pubcomp represents an MQTT PUBCOMP packet (QoS 2 part 3).
type Pubcomp struct {
	PacketID uint16
}

// Type returns TypePuback.
func (p *Puback) Type() Type { return TypePuback }

// Type returns TypePubrec.
func (p *Pubrec) Type() Type { return TypePubrec }

// Type returns TypePubrel.
func (p *Pubrel) Type() Type { return TypePubrel }

// Type returns TypePubcomp.
func (p *Pubcomp) Type() Type { return TypePubcomp }

// EncodedSize returns the remaining length: the 2-byte packet identifier.
func (p *Puback) EncodedSize() int { return 2 }
func (p *Pubrec) EncodedSize() int { return 2 }
func (p *Pubrel) EncodedSize() int { return 2 }
func (p *Pubcomp) EncodedSize() int { return 2 }

func (p *Puback) flags() byte { return 0 }
func (p *Pubrec) flags() byte { return 0 }
func (p *Pubrel) flags() byte { return PubrelFlags }
func (p *Pubcomp) flags() byte { return 0 }

func (p *Puback) validate() error { return validatePacketID(p.PacketID) }
func (p *Pubrec) validate() error { return validatePacketID(p.PacketID) }
func (p *Pubrel) validate() error { return validatePacketID(p.PacketID) }
func (p *Pubcomp) validate() error { return validatePacketID(p.PacketID) }

func (p *Puback) appendBody(dst []byte) []byte { return appendUint16(dst, p.PacketID) }
func (p *Pubrec) appendBody(dst []byte) []byte { return appendUint16(dst, p.PacketID) }
func (p *Pubrel) appendBody(dst []byte) []byte { return appendUint16(dst, p.PacketID) }
func (p *Pubcomp) appendBody(dst []byte) []byte { return appendUint16(dst, p.PacketID) }

func validatePacketID(id uint16) error {
	if id == 0 {
		return ErrInvalidPacketID
	}
	return nil
}

// decodeAckPacketID decodes a body consisting of exactly one packet identifier.
func decodeAckPacketID(buf []byte) (uint16, error) {
	if len(buf) != 2 {
		return 0, ErrMalformedPacket
	}
	id, _, err := decodePacketID(buf)
	return id, err
}

func decodePuback(buf []byte) (*Puback, error) {
	id, err := decodeAckPacketID(buf)
	if err != nil {
		return nil, err
	}
	return &Puback{PacketID: id}, nil
}

func decodePubrec(buf []byte) (*Pubrec, error) {
	id, err := decodeAckPacketID(buf)
	if err != nil {
		return nil, err
	}
	return &Pubrec{PacketID: id}, nil
}

func decodePubrel(buf []byte) (*Pubrel, error) {
	id, err := decodeAckPacketID(buf)
	if err != nil {
		return nil, err
	}
	return &Pubrel{PacketID: id}, nil
}

func decodePubcomp(buf []byte) (*Pubcomp, error) {
	id, err := decodeAckPacketID(buf)
	if err != nil {
		return nil, err
	}
	return &Pubcomp{PacketID: id}, nil
}
