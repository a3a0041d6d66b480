package packet

import (
	"errors"
	"io"
)

// Reader reads MQTT packets from an io.Reader, buffering partial input until
// a complete frame is available.
type Reader struct {
	r   io.Reader
	buf []byte
	pos int
	end int
}

// NewReader creates a new packet reader.
func NewReader(r io.Reader, bufSize int) *Reader {
	if bufSize < 1024 {
		bufSize = 1024
	}
	return &Reader{
		r:   r,
		buf: make([]byte, bufSize),
	}
}

// fill reads more data into the buffer.
func (r *Reader) fill() error {
	// Shift remaining data to the beginning
	if r.pos > 0 {
		copy(r.buf, r.buf[r.pos:r.end])
		r.end -= r.pos
		r.pos = 0
	}

	// Grow buffer if needed
	if r.end == len(r.buf) {
		newBuf := make([]byte, len(r.buf)*2)
		copy(newBuf, r.buf)
		r.buf = newBuf
	}

	n, err := r.r.Read(r.buf[r.end:])
	if n > 0 {
		r.end += n
	}
	if err != nil && n > 0 {
		// Let the buffered bytes be consumed first.
		return nil
	}
	return err
}

// available returns the number of unread bytes in the buffer.
func (r *Reader) available() int {
	return r.end - r.pos
}

// ReadPacket reads and decodes the next packet. It blocks on the underlying
// reader until a complete frame has arrived. Decoded packets own their
// memory and stay valid across subsequent reads.
func (r *Reader) ReadPacket() (Packet, error) {
	var (
		t         Type
		flags     byte
		remaining uint32
		headerLen int
	)
	for {
		var err error
		t, flags, remaining, headerLen, err = DecodeFixedHeader(r.buf[r.pos:r.end])
		if err == nil {
			break
		}
		if !errors.Is(err, ErrIncompletePacket) {
			return nil, err
		}
		if err := r.fill(); err != nil {
			return nil, err
		}
	}

	if remaining > MaxRemainingLength {
		return nil, ErrPacketTooLarge
	}

	totalLen := headerLen + int(remaining)
	for r.available() < totalLen {
		if err := r.fill(); err != nil {
			return nil, err
		}
	}

	// Decode is zero-copy, so hand it a frame copy the reader never reuses.
	body := make([]byte, remaining)
	copy(body, r.buf[r.pos+headerLen:r.pos+totalLen])
	r.pos += totalLen

	return Decode(t, flags, body)
}
