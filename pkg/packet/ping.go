package packet

// Pingreq represents an MQTT PINGREQ packet.
// MQTT 3.1.1 Section 3.12
type Pingreq struct{}

// Type returns TypePingreq.
func (p *Pingreq) Type() Type {
	return TypePingreq
}

// EncodedSize returns 0: PINGREQ has no variable header or payload.
func (p *Pingreq) EncodedSize() int {
	return 0
}

func (p *Pingreq) flags() byte { return 0 }
func (p *Pingreq) validate() error { return nil }
func (p *Pingreq) appendBody(dst []byte) []byte { return dst }

func decodePingreq(buf []byte) (*Pingreq, error) {
	if len(buf) != 0 {
		return nil, ErrMalformedPacket
	}
	return &Pingreq{}, nil
}

// Pingresp represents an MQTT PINGRESP packet.
// MQTT 3.1.1 Section 3.13
type Pingresp struct{}

// Type returns TypePingresp.
func (p *Pingresp) Type() Type {
	return TypePingresp
}

// EncodedSize returns 0: PINGRESP has no variable header or payload.
func (p *Pingresp) EncodedSize() int {
	return 0
}

func (p *Pingresp) flags() byte { return 0 }
func (p *Pingresp) validate() error { return nil }
func (p *Pingresp) appendBody(dst []byte) []byte { return dst }

func decodePingresp(buf []byte) (*Pingresp, error) {
	if len(buf) != 0 {
		return nil, ErrMalformedPacket
	}
	return &Pingresp{}, nil
}
