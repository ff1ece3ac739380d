package wire

import (
	"encoding/binary"
	"fmt"
)

const (
	// Magic is the constant every frame header must carry. A header with a
	// different value means the framing boundary is lost and the connection
	// cannot be recovered.
	Magic uint32 = 0x9E2B83C1

	// HeaderSize is the fixed size of the frame header in bytes
	// (4 bytes magic + 4 bytes payload length).
	HeaderSize = 8

	// MaxPayloadSize caps a single frame payload. Command responses can carry
	// image buffers, so the limit is generous, but a corrupted length field
	// must never drive an arbitrarily large allocation.
	MaxPayloadSize = 256 << 20 // 256 MB
)

// All integers on the wire are big endian (network byte order).

// EncodeFrame wraps payload into a full frame: magic, payload length, payload.
// The payload must not be empty; zero-length frames are invalid on this protocol.
func EncodeFrame(payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("refusing to encode empty payload")
	}
	if len(payload) > MaxPayloadSize {
		return nil, fmt.Errorf("payload of %d bytes exceeds limit of %d", len(payload), MaxPayloadSize)
	}

	buf := make([]byte, HeaderSize+len(payload))
	binary.BigEndian.PutUint32(buf[:4], Magic)
	binary.BigEndian.PutUint32(buf[4:8], uint32(len(payload)))
	copy(buf[HeaderSize:], payload)
	return buf, nil
}

// PutHeader writes a frame header for a payload of the given size into the
// first HeaderSize bytes of dst. dst must be at least HeaderSize long. Callers
// that want to avoid the copy in EncodeFrame can write header and payload
// separately (e.g. via net.Buffers).
func PutHeader(dst []byte, payloadSize int) {
	binary.BigEndian.PutUint32(dst[:4], Magic)
	binary.BigEndian.PutUint32(dst[4:8], uint32(payloadSize))
}

// DecodeHeader parses a frame header and returns the payload length the
// caller must read next. The payload itself is read separately once its
// length is known, so the receiver can allocate exactly the right amount.
//
// An error is returned for a bad magic value, a zero payload length or a
// length beyond MaxPayloadSize. All of these are fatal to the connection:
// no resynchronization is attempted.
func DecodeHeader(header []byte) (payloadSize uint32, err error) {
	if len(header) < HeaderSize {
		return 0, fmt.Errorf("short header: got %d bytes, need %d", len(header), HeaderSize)
	}

	magic := binary.BigEndian.Uint32(header[:4])
	if magic != Magic {
		return 0, fmt.Errorf("bad network header magic: 0x%08X", magic)
	}

	payloadSize = binary.BigEndian.Uint32(header[4:8])
	if payloadSize == 0 {
		return 0, fmt.Errorf("empty payload")
	}
	if payloadSize > MaxPayloadSize {
		return 0, fmt.Errorf("payload of %d bytes exceeds limit of %d", payloadSize, MaxPayloadSize)
	}

	return payloadSize, nil
}
