package packet

// ConnackReturnCode is the CONNACK return code.
// MQTT 3.1.1 Section 3.2.2.3
type ConnackReturnCode byte

const (
	ConnectionAccepted          ConnackReturnCode = 0x00
	ConnectionRefusedVersion    ConnackReturnCode = 0x01 // unacceptable protocol version
	ConnectionRefusedIdentifier ConnackReturnCode = 0x02 // identifier rejected
	ConnectionRefusedServer     ConnackReturnCode = 0x03 // server unavailable
	ConnectionRefusedBadAuth    ConnackReturnCode = 0x04 // bad user name or password
	ConnectionRefusedNotAuth    ConnackReturnCode = 0x05 // not authorized
)

// String returns the string representation of the return code.
func (c ConnackReturnCode) String() string {
	switch c {
	case ConnectionAccepted:
		return "accepted"
	case ConnectionRefusedVersion:
		return "unacceptable protocol version"
	case ConnectionRefusedIdentifier:
		return "identifier rejected"
	case ConnectionRefusedServer:
		return "server unavailable"
	case ConnectionRefusedBadAuth:
		return "bad user name or password"
	case ConnectionRefusedNotAuth:
		return "not authorized"
	default:
		return "reserved"
	}
}

// Connack represents an MQTT CONNACK packet.
// MQTT 3.1.1 Section 3.2
type Connack struct {
	SessionPresent bool
	ReturnCode     ConnackReturnCode
}

// Type returns TypeConnack.
func (c *Connack) Type() Type {
	return TypeConnack
}

// EncodedSize returns the remaining length of the CONNACK packet.
func (c *Connack) EncodedSize() int {
	return 2 // acknowledge flags + return code
}

func (c *Connack) flags() byte {
	return 0
}

func (c *Connack) validate() error {
	return nil
}

func (c *Connack) appendBody(dst []byte) []byte {
	var ackFlags byte
	if c.SessionPresent {
		ackFlags = 0x01
	}
	return append(dst, ackFlags, byte(c.ReturnCode))
}

// decodeConnack decodes a CONNACK packet body.
func decodeConnack(buf []byte) (*Connack, error) {
	if len(buf) != 2 {
		return nil, ErrMalformedPacket
	}

	// Bits 7-1 of the acknowledge flags must be 0.
	if buf[0]&0xFE != 0 {
		return nil, ErrMalformedPacket
	}
	return &Connack{
		SessionPresent: buf[0]&0x01 != 0,
		ReturnCode:     ConnackReturnCode(buf[1]),
	}, nil
}
