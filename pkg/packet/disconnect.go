package packet

// Disconnect represents an MQTT DISCONNECT packet. In 3.1.1 it has no
// variable header or payload.
// MQTT 3.1.1 Section 3.14
type Disconnect struct{}

// Type returns TypeDisconnect.
func (d *Disconnect) Type() Type {
	return TypeDisconnect
}

// EncodedSize returns 0: DISCONNECT has no variable header or payload.
func (d *Disconnect) EncodedSize() int {
	return 0
}

func (d *Disconnect) flags() byte { return 0 }
func (d *Disconnect) validate() error { return nil }
func (d *Disconnect) appendBody(dst []byte) []byte { return dst }

func decodeDisconnect(buf []byte) (*Disconnect, error) {
	if len(buf) != 0 {
		return nil, ErrMalformedPacket
	}
	return &Disconnect{}, nil
}
