package wire

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// TestFrameRoundTrip tests that payloads survive encode plus header decode
func TestFrameRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("a"),
		[]byte("vget /cameras"),
		[]byte("vset /camera/0/location 10.5 -20 30"),
		bytes.Repeat([]byte{0xAB}, 4096),
	}

	for i, payload := range payloads {
		frame, err := EncodeFrame(payload)
		if err != nil {
			t.Fatalf("payload %d: failed to encode: %v", i, err)
		}

		if len(frame) != HeaderSize+len(payload) {
			t.Errorf("payload %d: frame size = %d, want %d", i, len(frame), HeaderSize+len(payload))
		}

		size, err := DecodeHeader(frame[:HeaderSize])
		if err != nil {
			t.Fatalf("payload %d: failed to decode header: %v", i, err)
		}
		if int(size) != len(payload) {
			t.Errorf("payload %d: decoded size = %d, want %d", i, size, len(payload))
		}
		if !bytes.Equal(frame[HeaderSize:], payload) {
			t.Errorf("payload %d: body doesn't match after round trip", i)
		}
	}
}

// TestEncodeEmptyPayload tests that zero-length payloads are refused
func TestEncodeEmptyPayload(t *testing.T) {
	if _, err := EncodeFrame(nil); err == nil {
		t.Error("EncodeFrame(nil) should fail")
	}
	if _, err := EncodeFrame([]byte{}); err == nil {
		t.Error("EncodeFrame(empty) should fail")
	}
}

// TestDecodeHeader tests header validation
func TestDecodeHeader(t *testing.T) {
	makeHeader := func(magic, size uint32) []byte {
		h := make([]byte, HeaderSize)
		binary.BigEndian.PutUint32(h[:4], magic)
		binary.BigEndian.PutUint32(h[4:8], size)
		return h
	}

	tests := []struct {
		name    string
		header  []byte
		wantErr bool
		want    uint32
	}{
		{name: "valid header", header: makeHeader(Magic, 42), want: 42},
		{name: "bad magic", header: makeHeader(0xDEADBEEF, 42), wantErr: true},
		{name: "zero payload length", header: makeHeader(Magic, 0), wantErr: true},
		{name: "oversized payload length", header: makeHeader(Magic, MaxPayloadSize+1), wantErr: true},
		{name: "short header", header: []byte{0x9E, 0x2B}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := DecodeHeader(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Errorf("DecodeHeader() = %d, want error", size)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeHeader() failed: %v", err)
			}
			if size != tt.want {
				t.Errorf("DecodeHeader() = %d, want %d", size, tt.want)
			}
		})
	}
}

// TestPutHeader tests the copy-free header writer against EncodeFrame
func TestPutHeader(t *testing.T) {
	payload := []byte("vget /objects")

	frame, err := EncodeFrame(payload)
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	header := make([]byte, HeaderSize)
	PutHeader(header, len(payload))

	if !bytes.Equal(header, frame[:HeaderSize]) {
		t.Errorf("PutHeader() = %x, want %x", header, frame[:HeaderSize])
	}
}
