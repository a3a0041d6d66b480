package packet

// Subscription is a single requested topic subscription.
type Subscription struct {
	TopicFilter string
	QoS         QoS
}

// Subscribe represents an MQTT SUBSCRIBE packet.
// MQTT 3.1.1 Section 3.8
type Subscribe struct {
	PacketID      uint16
	Subscriptions []Subscription
}

// Type returns TypeSubscribe.
func (s *Subscribe) Type() Type {
	return TypeSubscribe
}

// EncodedSize returns the remaining length of the SUBSCRIBE packet.
func (s *Subscribe) EncodedSize() int {
	n := 2 // packet ID
	for _, sub := range s.Subscriptions {
		n += fieldSize(len(sub.TopicFilter)) + 1 // filter + requested QoS byte
	}
	return n
}

func (s *Subscribe) flags() byte {
	return SubscribeFlags
}

func (s *Subscribe) validate() error {
	if s.PacketID == 0 {
		return ErrInvalidPacketID
	}
	// The protocol forbids a SUBSCRIBE without topic filters.
	if len(s.Subscriptions) == 0 {
		return ErrMalformedPacket
	}
	for _, sub := range s.Subscriptions {
		if !sub.QoS.Valid() {
			return ErrInvalidQoS
		}
		if len(sub.TopicFilter) > MaxFieldLength {
			return ErrInvalidLength
		}
	}
	return nil
}

func (s *Subscribe) appendBody(dst []byte) []byte {
	dst = appendUint16(dst, s.PacketID)
	for _, sub := range s.Subscriptions {
		dst = appendString(dst, sub.TopicFilter)
		dst = append(dst, byte(sub.QoS))
	}
	return dst
}

// decodeSubscribe decodes a SUBSCRIBE packet body.
func decodeSubscribe(buf []byte) (*Subscribe, error) {
	pos := 0
	id, n, err := decodePacketID(buf[pos:])
	if err != nil {
		return nil, err
	}
	s := &Subscribe{PacketID: id}
	pos += n

	for pos < len(buf) {
		filter, n, err := decodeString(buf[pos:])
		if err != nil {
			return nil, err
		}
		pos += n

		if pos >= len(buf) {
			return nil, ErrMalformedPacket
		}
		options := buf[pos]
		pos++

		// Bits 7-2 of the requested QoS byte are reserved and must be 0.
		if options&0xFC != 0 {
			return nil, ErrMalformedPacket
		}
		qos := QoS(options & 0x03)
		if !qos.Valid() {
			return nil, ErrInvalidQoS
		}

		s.Subscriptions = append(s.Subscriptions, Subscription{
			TopicFilter: filter,
			QoS:         qos,
		})
	}

	// Must request at least one topic filter. MQTT 3.1.1 Section 3.8.3
	if len(s.Subscriptions) == 0 {
		return nil, ErrMalformedPacket
	}
	return s, nil
}

// SubscribeReturnCode is a per-filter SUBACK return code. Its numeric value
// is the wire byte: the granted QoS on success, 0x80 on failure.
// MQTT 3.1.1 Section 3.9.3
type SubscribeReturnCode byte

const (
	SubscribeSuccessQoS0 SubscribeReturnCode = 0x00
	SubscribeSuccessQoS1 SubscribeReturnCode = 0x01
	SubscribeSuccessQoS2 SubscribeReturnCode = 0x02
	SubscribeFailure     SubscribeReturnCode = 0x80
)

// SubscribeSuccess returns the success return code granting qos.
func SubscribeSuccess(qos QoS) SubscribeReturnCode {
	return SubscribeReturnCode(qos)
}

// Granted returns the granted QoS and true if the code is a success code.
func (c SubscribeReturnCode) Granted() (QoS, bool) {
	if c > SubscribeSuccessQoS2 {
		return 0, false
	}
	return QoS(c), true
}

// Valid returns true if the code is a granted QoS or the failure code.
func (c SubscribeReturnCode) Valid() bool {
	return c <= SubscribeSuccessQoS2 || c == SubscribeFailure
}

// Suback represents an MQTT SUBACK packet.
// MQTT 3.1.1 Section 3.9
type Suback struct {
	PacketID uint16

	// ReturnCodes carries one code per requested filter, in request order.
	ReturnCodes []SubscribeReturnCode
}

// Type returns TypeSuback.
func (s *Suback) Type() Type {
	return TypeSuback
}

// EncodedSize returns the remaining length of the SUBACK packet.
func (s *Suback) EncodedSize() int {
	return 2 + len(s.ReturnCodes)
}

func (s *Suback) flags() byte {
	return 0
}

func (s *Suback) validate() error {
	if s.PacketID == 0 {
		return ErrInvalidPacketID
	}
	if len(s.ReturnCodes) == 0 {
		return ErrMalformedPacket
	}
	for _, code := range s.ReturnCodes {
		if !code.Valid() {
			return ErrMalformedPacket
		}
	}
	return nil
}

func (s *Suback) appendBody(dst []byte) []byte {
	dst = appendUint16(dst, s.PacketID)
	for _, code := range s.ReturnCodes {
		dst = append(dst, byte(code))
	}
	return dst
}

// decodeSuback decodes a SUBACK packet body.
func decodeSuback(buf []byte) (*Suback, error) {
	pos := 0
	id, n, err := decodePacketID(buf[pos:])
	if err != nil {
		return nil, err
	}
	pos += n

	if pos >= len(buf) {
		return nil, ErrMalformedPacket
	}

	s := &Suback{
		PacketID:    id,
		ReturnCodes: make([]SubscribeReturnCode, 0, len(buf)-pos),
	}
	for ; pos < len(buf); pos++ {
		code := SubscribeReturnCode(buf[pos])
		if !code.Valid() {
			return nil, ErrMalformedPacket
		}
		s.ReturnCodes = append(s.ReturnCodes, code)
	}
	return s, nil
}
