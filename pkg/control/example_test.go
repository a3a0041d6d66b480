package control_test

import (
	"fmt"

	"github.com/bromq-dev/mqttwire/pkg/control"
	"github.com/bromq-dev/mqttwire/pkg/packet"
)

// Example shows the full control flow: a decoded SUBSCRIBE is wrapped, the
// handler grants or fails each entry, and the acknowledgment is serialized.
func Example() {
	frame := []byte{
		0x82, 0x0d, 0x00, 0x2a,
		0x00, 0x04, 't', 'e', 's', 't', 0x01,
		0x00, 0x01, '#', 0x02,
	}

	typ, flags, _, n, err := packet.DecodeFixedHeader(frame)
	if err != nil {
		panic(err)
	}
	p, err := packet.Decode(typ, flags, frame[n:])
	if err != nil {
		panic(err)
	}

	c, _ := control.Wrap(p)
	sub := c.(*control.Subscribe)
	for i := 0; i < sub.Len(); i++ {
		e := sub.Entry(i)
		if e.Topic() == "#" {
			// Refuse full-tree subscriptions.
			e.Fail()
			continue
		}
		e.Subscribe(e.RequestedQoS())
	}

	out, err := packet.Append(nil, sub.Ack().Response())
	if err != nil {
		panic(err)
	}
	fmt.Printf("% x\n", out)
	// Output: 90 04 00 2a 01 80
}
