package control

import "github.com/bromq-dev/mqttwire/pkg/packet"

// Unsubscribe is an UNSUBSCRIBE control request. The filter list is
// read-only: UNSUBACK carries no per-filter outcome in this protocol version.
type Unsubscribe struct {
	packetID uint16
	filters  []string
}

// NewUnsubscribe wraps a decoded UNSUBSCRIBE packet.
func NewUnsubscribe(p *packet.Unsubscribe) *Unsubscribe {
	return &Unsubscribe{
		packetID: p.PacketID,
		filters:  p.TopicFilters,
	}
}

func (u *Unsubscribe) isControl() {}

// PacketID returns the packet identifier of the request.
func (u *Unsubscribe) PacketID() uint16 {
	return u.packetID
}

// Len returns the number of topic filters in the request.
func (u *Unsubscribe) Len() int {
	return len(u.filters)
}

// Filter returns the i-th topic filter.
func (u *Unsubscribe) Filter(i int) string {
	return u.filters[i]
}

// Ack converts the request into its result: an UNSUBACK echoing the packet
// identifier.
func (u *Unsubscribe) Ack() Result {
	return Result{
		kind:     ResultUnsubscribe,
		response: &packet.Unsuback{PacketID: u.packetID},
	}
}
