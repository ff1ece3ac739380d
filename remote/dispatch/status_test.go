package dispatch

import (
	"bytes"
	"testing"
)

// TestExecStatusPayload tests the on-wire serialization of every status type
func TestExecStatusPayload(t *testing.T) {
	tests := []struct {
		name   string
		status ExecStatus
		want   []byte
	}{
		{name: "ok text", status: OK("640x480"), want: []byte("640x480")},
		{name: "ok empty text is a single space", status: OK(""), want: []byte(" ")},
		{name: "binary bytes pass through", status: OKBinary([]byte{0x00, 0xFF, 0x10}), want: []byte{0x00, 0xFF, 0x10}},
		{name: "empty binary is a single space", status: OKBinary(nil), want: []byte(" ")},
		{name: "error is prefixed", status: Error("no such camera"), want: []byte("error no such camera")},
		{name: "invalid argument is prefixed", status: InvalidArgument, want: []byte("error argument is invalid")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Payload(); !bytes.Equal(got, tt.want) {
				t.Errorf("Payload() = %q, want %q", got, tt.want)
			}
		})
	}
}
