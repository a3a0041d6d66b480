package packet

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oneByteReader delivers a single byte per Read call, forcing the reader to
// reassemble frames from maximally fragmented input.
type oneByteReader struct {
	data []byte
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	p[0] = r.data[0]
	r.data = r.data[1:]
	return 1, nil
}

func TestReaderReadPacket(t *testing.T) {
	frame := mustEncode(t, &Publish{QoS: QoS1, Topic: "a/b", PacketID: 3, Payload: []byte("hi")})

	r := NewReader(bytes.NewReader(frame), 0)
	p, err := r.ReadPacket()
	require.NoError(t, err)

	pub, ok := p.(*Publish)
	require.True(t, ok)
	assert.Equal(t, "a/b", pub.Topic)
	assert.Equal(t, uint16(3), pub.PacketID)
	assert.Equal(t, []byte("hi"), pub.Payload)
}

func TestReaderFragmentedInput(t *testing.T) {
	var stream []byte
	stream = mustEncode(t, &Pingreq{})
	stream, _ = Append(stream, &Subscribe{
		PacketID:      5,
		Subscriptions: []Subscription{{TopicFilter: "x", QoS: QoS1}},
	})
	stream, _ = Append(stream, &Disconnect{})

	r := NewReader(&oneByteReader{data: stream}, 0)

	p1, err := r.ReadPacket()
	require.NoError(t, err)
	assert.Equal(t, TypePingreq, p1.Type())

	p2, err := r.ReadPacket()
	require.NoError(t, err)
	assert.Equal(t, TypeSubscribe, p2.Type())

	p3, err := r.ReadPacket()
	require.NoError(t, err)
	assert.Equal(t, TypeDisconnect, p3.Type())

	_, err = r.ReadPacket()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderTruncatedFrame(t *testing.T) {
	frame := mustEncode(t, &Publish{QoS: QoS0, Topic: "topic", Payload: []byte("data")})

	// One byte short of the declared remaining length: the reader keeps
	// waiting for input and surfaces EOF rather than reading out of bounds.
	r := NewReader(bytes.NewReader(frame[:len(frame)-1]), 0)
	_, err := r.ReadPacket()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderMalformedRemainingLength(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x30, 0xff, 0xff, 0xff, 0xff, 0x01}), 0)
	_, err := r.ReadPacket()
	assert.ErrorIs(t, err, ErrMalformedRemainingLength)
}

func TestReaderPacketsOwnTheirMemory(t *testing.T) {
	var stream []byte
	stream, _ = Append(stream, &Publish{QoS: QoS0, Topic: "t", Payload: []byte("first")})
	stream, _ = Append(stream, &Publish{QoS: QoS0, Topic: "t", Payload: []byte("xxxxx")})

	r := NewReader(bytes.NewReader(stream), 0)

	p1, err := r.ReadPacket()
	require.NoError(t, err)
	_, err = r.ReadPacket()
	require.NoError(t, err)

	// The first packet's payload must survive the second read.
	assert.Equal(t, []byte("first"), p1.(*Publish).Payload)
}
