package control

import "github.com/bromq-dev/mqttwire/pkg/packet"

// Subscribe is a SUBSCRIBE control request. It holds the requested
// (topic filter, QoS) pairs in wire order together with a same-order outcome
// slot per entry. Every slot starts as Failure; entries the handler never
// visits are reported as failed in the acknowledgment.
type Subscribe struct {
	packetID uint16
	subs     []packet.Subscription
	codes    []packet.SubscribeReturnCode
}

// NewSubscribe wraps a decoded SUBSCRIBE packet.
func NewSubscribe(p *packet.Subscribe) *Subscribe {
	codes := make([]packet.SubscribeReturnCode, len(p.Subscriptions))
	for i := range codes {
		codes[i] = packet.SubscribeFailure
	}
	return &Subscribe{
		packetID: p.PacketID,
		subs:     p.Subscriptions,
		codes:    codes,
	}
}

func (s *Subscribe) isControl() {}

// PacketID returns the packet identifier of the request.
func (s *Subscribe) PacketID() uint16 {
	return s.packetID
}

// Len returns the number of requested topic filters.
func (s *Subscribe) Len() int {
	return len(s.subs)
}

// Entry returns a handle to the i-th requested subscription. The handle
// stays valid until Ack is called.
func (s *Subscribe) Entry(i int) Entry {
	return Entry{
		sub:  &s.subs[i],
		code: &s.codes[i],
	}
}

// Ack converts the request into its result: a SUBACK carrying exactly one
// return code per requested filter, in request order.
func (s *Subscribe) Ack() Result {
	return Result{
		kind: ResultSubscribe,
		response: &packet.Suback{
			PacketID:    s.packetID,
			ReturnCodes: s.codes,
		},
	}
}

// Entry is one requested subscription and its mutable outcome slot.
type Entry struct {
	sub  *packet.Subscription
	code *packet.SubscribeReturnCode
}

// Topic returns the requested topic filter.
func (e Entry) Topic() string {
	return e.sub.TopicFilter
}

// RequestedQoS returns the QoS level the client asked for.
func (e Entry) RequestedQoS() packet.QoS {
	return e.sub.QoS
}

// Subscribe marks the entry as granted at the given QoS.
func (e Entry) Subscribe(granted packet.QoS) {
	*e.code = packet.SubscribeSuccess(granted)
}

// Fail marks the entry as failed.
func (e Entry) Fail() {
	*e.code = packet.SubscribeFailure
}
