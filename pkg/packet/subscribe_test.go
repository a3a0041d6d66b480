package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSubscribeRejectsEmptyFilters(t *testing.T) {
	_, err := Append(nil, &Subscribe{PacketID: 1})
	assert.ErrorIs(t, err, ErrMalformedPacket)

	_, err = Append(nil, &Unsubscribe{PacketID: 1})
	assert.ErrorIs(t, err, ErrMalformedPacket)

	_, err = Append(nil, &Suback{PacketID: 1})
	assert.ErrorIs(t, err, ErrMalformedPacket)
}

func TestEncodeSubscribeRejectsZeroPacketID(t *testing.T) {
	_, err := Append(nil, &Subscribe{
		Subscriptions: []Subscription{{TopicFilter: "t", QoS: QoS0}},
	})
	assert.ErrorIs(t, err, ErrInvalidPacketID)

	_, err = Append(nil, &Unsubscribe{TopicFilters: []string{"t"}})
	assert.ErrorIs(t, err, ErrInvalidPacketID)

	_, err = Append(nil, &Puback{})
	assert.ErrorIs(t, err, ErrInvalidPacketID)
}

func TestDecodeSubscribeRejectsEmptyFilters(t *testing.T) {
	// Just a packet identifier, no payload entries.
	_, err := Decode(TypeSubscribe, SubscribeFlags, []byte{0x00, 0x01})
	assert.ErrorIs(t, err, ErrMalformedPacket)

	_, err = Decode(TypeUnsubscribe, UnsubscribeFlags, []byte{0x00, 0x01})
	assert.ErrorIs(t, err, ErrMalformedPacket)
}

func TestDecodeSubscribeRejectsReservedQoSBits(t *testing.T) {
	body := []byte{0x00, 0x01, 0x00, 0x01, 't', 0x04}
	_, err := Decode(TypeSubscribe, SubscribeFlags, body)
	assert.ErrorIs(t, err, ErrMalformedPacket)
}

func TestDecodeSubscribeRejectsQoS3(t *testing.T) {
	body := []byte{0x00, 0x01, 0x00, 0x01, 't', 0x03}
	_, err := Decode(TypeSubscribe, SubscribeFlags, body)
	assert.ErrorIs(t, err, ErrInvalidQoS)
}

func TestDecodeSubscribeMissingQoSByte(t *testing.T) {
	body := []byte{0x00, 0x01, 0x00, 0x01, 't'}
	_, err := Decode(TypeSubscribe, SubscribeFlags, body)
	assert.ErrorIs(t, err, ErrMalformedPacket)
}

func TestDecodeSubscribePreservesOrder(t *testing.T) {
	p := &Subscribe{
		PacketID: 9,
		Subscriptions: []Subscription{
			{TopicFilter: "z", QoS: QoS2},
			{TopicFilter: "a", QoS: QoS0},
			{TopicFilter: "m", QoS: QoS1},
		},
	}
	frame := mustEncode(t, p)
	decoded, err := decodeFrame(t, frame)
	require.NoError(t, err)

	s, ok := decoded.(*Subscribe)
	require.True(t, ok)
	assert.Equal(t, p.Subscriptions, s.Subscriptions)
}

func TestDecodeSubackRejectsInvalidCode(t *testing.T) {
	// 0x03 is neither a granted QoS nor the 0x80 failure code.
	body := []byte{0x00, 0x01, 0x03}
	_, err := Decode(TypeSuback, 0, body)
	assert.ErrorIs(t, err, ErrMalformedPacket)
}

func TestDecodeSubackRejectsEmptyCodes(t *testing.T) {
	_, err := Decode(TypeSuback, 0, []byte{0x00, 0x01})
	assert.ErrorIs(t, err, ErrMalformedPacket)
}

func TestSubscribeReturnCodeGranted(t *testing.T) {
	qos, ok := SubscribeSuccessQoS2.Granted()
	assert.True(t, ok)
	assert.Equal(t, QoS2, qos)

	_, ok = SubscribeFailure.Granted()
	assert.False(t, ok)
}
