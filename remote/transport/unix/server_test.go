package unix

import (
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/scenecv/scenecv/remote/common"
	"github.com/scenecv/scenecv/remote/transport"
	"github.com/scenecv/scenecv/remote/wire"
)

// startEchoTransport boots a unix server transport that echoes every message
func startEchoTransport(t *testing.T) (transport.IServerTransport, string) {
	t.Helper()

	endpoint := filepath.Join(t.TempDir(), "scenecv.sock")
	tr := NewUnixServerTransport()
	tr.RegisterHandler(func(_ string, message string) []byte {
		return []byte(message)
	})

	go func() {
		_ = tr.Listen(common.ServerConfig{Endpoint: endpoint, PollIntervalMillis: 20})
	}()

	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, err := os.Stat(endpoint); err == nil {
			return tr, endpoint
		}
		if time.Now().After(deadline) {
			t.Fatal("transport did not start listening")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// dialAndPing connects a raw client and exchanges one echo frame, proving the
// server is serving this particular connection
func dialAndPing(t *testing.T, endpoint string) net.Conn {
	t.Helper()

	conn, err := net.Dial("unix", endpoint)
	if err != nil {
		t.Fatalf("failed to dial %s: %v", endpoint, err)
	}

	frame, err := wire.EncodeFrame([]byte("ping"))
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	if _, err := conn.Write(frame); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	header := make([]byte, wire.HeaderSize)
	if _, err := io.ReadFull(conn, header); err != nil {
		t.Fatalf("failed to read response header: %v", err)
	}
	size, err := wire.DecodeHeader(header)
	if err != nil {
		t.Fatalf("invalid response header: %v", err)
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(conn, payload); err != nil {
		t.Fatalf("failed to read response payload: %v", err)
	}
	if string(payload) != "ping" {
		t.Fatalf("response = %q, want %q", payload, "ping")
	}

	_ = conn.SetReadDeadline(time.Time{})
	return conn
}

// TestStopClosesAllConnections tests that Stop tears down every live
// connection. Unix peers all report the same unnamed remote address, so this
// also guards the registry against keying connections by peer address: one
// peer disconnecting must not deregister the others.
func TestStopClosesAllConnections(t *testing.T) {
	tr, endpoint := startEchoTransport(t)

	first := dialAndPing(t, endpoint)
	defer first.Close()
	second := dialAndPing(t, endpoint)
	defer second.Close()

	// A third peer comes and goes; the survivors must stay registered.
	third := dialAndPing(t, endpoint)
	_ = third.Close()
	time.Sleep(50 * time.Millisecond)

	if err := tr.Stop(); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}

	for i, conn := range []net.Conn{first, second} {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, err := conn.Read(make([]byte, 1))
		if err == nil {
			t.Fatalf("connection %d received data after Stop", i)
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			t.Errorf("connection %d still open after Stop", i)
		}
	}
}

// TestStopTwice tests that a repeated Stop is a no-op instead of a panic
func TestStopTwice(t *testing.T) {
	tr, _ := startEchoTransport(t)

	if err := tr.Stop(); err != nil {
		t.Fatalf("Stop() failed: %v", err)
	}
	if err := tr.Stop(); err != nil {
		t.Errorf("second Stop() failed: %v", err)
	}
}
