// Package control wraps decoded MQTT control-class packets (PING,
// DISCONNECT, SUBSCRIBE, UNSUBSCRIBE and connection-closed notifications) in
// request values a protocol handler consumes. Calling Ack on a value yields
// a Result carrying the acknowledgment packet to send, if any, without the
// handler doing per-topic bookkeeping by hand.
package control

import "github.com/bromq-dev/mqttwire/pkg/packet"

// Control is the closed set of control requests handed to a protocol
// handler: Ping, Disconnect, Subscribe, Unsubscribe and Closed. The handler
// must call Ack (exactly once) on each value it receives.
type Control interface {
	isControl()
}

// ResultKind identifies which control request a Result acknowledges.
type ResultKind uint8

const (
	ResultPing ResultKind = iota
	ResultDisconnect
	ResultSubscribe
	ResultUnsubscribe
	ResultClosed
)

// String returns the string representation of the result kind.
func (k ResultKind) String() string {
	switch k {
	case ResultPing:
		return "ping"
	case ResultDisconnect:
		return "disconnect"
	case ResultSubscribe:
		return "subscribe"
	case ResultUnsubscribe:
		return "unsubscribe"
	case ResultClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Result is the outcome of acknowledging a control request.
type Result struct {
	kind     ResultKind
	response packet.Packet
}

// Kind returns the kind of control request this result acknowledges.
func (r Result) Kind() ResultKind {
	return r.kind
}

// Response returns the acknowledgment packet to encode and send, or nil when
// the request carries no wire-level acknowledgment (DISCONNECT, Closed).
func (r Result) Response() packet.Packet {
	return r.response
}

// Wrap lifts a decoded packet into its control request. ok is false for
// packet types that are not control-class (PUBLISH and the acknowledgment
// packets flow through the session layer instead).
func Wrap(p packet.Packet) (c Control, ok bool) {
	switch p := p.(type) {
	case *packet.Pingreq:
		return Ping{}, true
	case *packet.Disconnect:
		return Disconnect{}, true
	case *packet.Subscribe:
		return NewSubscribe(p), true
	case *packet.Unsubscribe:
		return NewUnsubscribe(p), true
	default:
		return nil, false
	}
}

// Ping is a PINGREQ control request.
type Ping struct{}

func (Ping) isControl() {}

// Ack acknowledges the ping; the result responds with a PINGRESP.
func (Ping) Ack() Result {
	return Result{kind: ResultPing, response: &packet.Pingresp{}}
}

// Disconnect is a DISCONNECT control request. It has no wire-level
// acknowledgment; the caller closes the connection after handling it.
type Disconnect struct{}

func (Disconnect) isControl() {}

// Ack acknowledges the disconnect.
func (Disconnect) Ack() Result {
	return Result{kind: ResultDisconnect}
}

// Closed notifies the handler that the connection was dropped. It exists so
// the handler learns about the drop through the same conversion protocol as
// wire packets; its result carries no payload.
type Closed struct {
	isError bool
}

// NewClosed creates a connection-closed notification. isError reports
// whether the connection ended due to an error.
func NewClosed(isError bool) Closed {
	return Closed{isError: isError}
}

func (Closed) isControl() {}

// IsError reports whether the connection closed due to an error.
func (c Closed) IsError() bool {
	return c.isError
}

// Ack acknowledges the notification.
func (c Closed) Ack() Result {
	return Result{kind: ResultClosed}
}
