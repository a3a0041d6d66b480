package packet

// LastWill is the Will Message a client declares on CONNECT, published by
// the server on its behalf if the connection drops unexpectedly.
type LastWill struct {
	QoS     QoS
	Retain  bool
	Topic   string
	Message []byte
}

// Connect represents an MQTT CONNECT packet.
// MQTT 3.1.1 Section 3.1
type Connect struct {
	CleanSession bool
	KeepAlive    uint16 // seconds
	LastWill     *LastWill

	ClientID string

	// Username and Password are present on the wire only when their flag is
	// set; a set flag with an empty value is legal.
	UsernameFlag bool
	Username     string
	PasswordFlag bool
	Password     []byte
}

// connectFlag bit positions in the connect flags byte.
// MQTT 3.1.1 Section 3.1.2.3
const (
	connectFlagCleanSession = 1 << 1
	connectFlagWill         = 1 << 2
	connectFlagWillRetain   = 1 << 5
	connectFlagPassword     = 1 << 6
	connectFlagUsername     = 1 << 7

	connectWillQoSShift = 3
	connectWillQoSMask  = 0x03
)

// Type returns TypeConnect.
func (c *Connect) Type() Type {
	return TypeConnect
}

// EncodedSize returns the remaining length of the CONNECT packet.
func (c *Connect) EncodedSize() int {
	// Protocol name + level + connect flags + keep alive
	n := fieldSize(len(ProtocolName)) + 1 + 1 + 2

	n += fieldSize(len(c.ClientID))

	if w := c.LastWill; w != nil {
		n += fieldSize(len(w.Topic)) + fieldSize(len(w.Message))
	}
	if c.UsernameFlag {
		n += fieldSize(len(c.Username))
	}
	if c.PasswordFlag {
		n += fieldSize(len(c.Password))
	}
	return n
}

func (c *Connect) flags() byte {
	return 0
}

// connectFlags packs the connect flags byte. The reserved bit 0 stays zero.
func (c *Connect) connectFlags() byte {
	var flags byte
	if c.CleanSession {
		flags |= connectFlagCleanSession
	}
	if w := c.LastWill; w != nil {
		flags |= connectFlagWill
		flags |= byte(w.QoS) << connectWillQoSShift
		if w.Retain {
			flags |= connectFlagWillRetain
		}
	}
	if c.PasswordFlag {
		flags |= connectFlagPassword
	}
	if c.UsernameFlag {
		flags |= connectFlagUsername
	}
	return flags
}

func (c *Connect) validate() error {
	if len(c.ClientID) > MaxFieldLength {
		return ErrInvalidLength
	}
	if w := c.LastWill; w != nil {
		if !w.QoS.Valid() {
			return ErrInvalidQoS
		}
		if len(w.Topic) > MaxFieldLength || len(w.Message) > MaxFieldLength {
			return ErrInvalidLength
		}
	}
	if c.UsernameFlag && len(c.Username) > MaxFieldLength {
		return ErrInvalidLength
	}
	if c.PasswordFlag && len(c.Password) > MaxFieldLength {
		return ErrInvalidLength
	}
	return nil
}

func (c *Connect) appendBody(dst []byte) []byte {
	dst = appendString(dst, ProtocolName)
	dst = append(dst, ProtocolLevel, c.connectFlags())
	dst = appendUint16(dst, c.KeepAlive)
	dst = appendString(dst, c.ClientID)

	if w := c.LastWill; w != nil {
		dst = appendString(dst, w.Topic)
		dst = appendBytes(dst, w.Message)
	}
	if c.UsernameFlag {
		dst = appendString(dst, c.Username)
	}
	if c.PasswordFlag {
		dst = appendBytes(dst, c.Password)
	}
	return dst
}

// decodeConnect decodes a CONNECT packet body.
func decodeConnect(buf []byte) (*Connect, error) {
	pos := 0

	name, n, err := decodeString(buf[pos:])
	if err != nil {
		return nil, err
	}
	pos += n
	if name != ProtocolName {
		return nil, ErrInvalidProtocolName
	}

	if pos >= len(buf) {
		return nil, ErrMalformedPacket
	}
	if buf[pos] != ProtocolLevel {
		return nil, ErrUnsupportedProtocolLevel
	}
	pos++

	if pos >= len(buf) {
		return nil, ErrMalformedPacket
	}
	flags := buf[pos]
	pos++

	// Reserved bit must be 0. MQTT 3.1.1 Section 3.1.2.1
	if flags&0x01 != 0 {
		return nil, ErrMalformedPacket
	}

	c := &Connect{
		CleanSession: flags&connectFlagCleanSession != 0,
		UsernameFlag: flags&connectFlagUsername != 0,
		PasswordFlag: flags&connectFlagPassword != 0,
	}

	willFlag := flags&connectFlagWill != 0
	willQoS := QoS((flags >> connectWillQoSShift) & connectWillQoSMask)
	willRetain := flags&connectFlagWillRetain != 0

	// Will QoS and retain must be zero when no will is declared.
	if !willFlag && (willQoS != 0 || willRetain) {
		return nil, ErrMalformedPacket
	}
	if willFlag && !willQoS.Valid() {
		return nil, ErrInvalidQoS
	}

	// A password without a username is forbidden in 3.1.1.
	if c.PasswordFlag && !c.UsernameFlag {
		return nil, ErrMalformedPacket
	}

	keepAlive, n, ok := decodeUint16(buf[pos:])
	if !ok {
		return nil, ErrMalformedPacket
	}
	c.KeepAlive = keepAlive
	pos += n

	clientID, n, err := decodeString(buf[pos:])
	if err != nil {
		return nil, err
	}
	c.ClientID = clientID
	pos += n

	if willFlag {
		topic, n, err := decodeString(buf[pos:])
		if err != nil {
			return nil, err
		}
		pos += n

		message, n, ok := decodeBytes(buf[pos:])
		if !ok {
			return nil, ErrMalformedPacket
		}
		pos += n

		c.LastWill = &LastWill{
			QoS:     willQoS,
			Retain:  willRetain,
			Topic:   topic,
			Message: message,
		}
	}

	if c.UsernameFlag {
		username, n, err := decodeString(buf[pos:])
		if err != nil {
			return nil, err
		}
		c.Username = username
		pos += n
	}

	if c.PasswordFlag {
		password, n, ok := decodeBytes(buf[pos:])
		if !ok {
			return nil, ErrMalformedPacket
		}
		c.Password = password
		pos += n
	}

	if pos != len(buf) {
		return nil, ErrMalformedPacket
	}
	return c, nil
}
