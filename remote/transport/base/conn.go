package base

import (
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/scenecv/scenecv/remote/transport"
	"github.com/scenecv/scenecv/remote/wire"
)

// closeWriter is implemented by stream connections that support shutting
// down the write direction separately (e.g. *net.TCPConn, *net.UnixConn).
type closeWriter interface {
	CloseWrite() error
}

// ClientConnection owns one accepted connection. Exactly one goroutine runs
// its receive loop; responses may be written from other goroutines through
// WriteFrame, which serializes all writes on the connection.
type ClientConnection struct {
	conn         net.Conn
	endpoint     string
	handler      transport.ReceivedFunc
	pollInterval time.Duration

	stopped atomic.Bool
	writeMu sync.Mutex

	// onClose is invoked exactly once when the receive loop exits,
	// after the socket has been shut down
	onClose func(*ClientConnection)
}

// NewClientConnection wraps an accepted connection. The handler is invoked
// synchronously for every received message; onClose (optional) runs once the
// connection is torn down on any exit path.
func NewClientConnection(conn net.Conn, handler transport.ReceivedFunc, pollInterval time.Duration, onClose func(*ClientConnection)) *ClientConnection {
	return &ClientConnection{
		conn:         conn,
		endpoint:     conn.RemoteAddr().String(),
		handler:      handler,
		pollInterval: pollInterval,
		onClose:      onClose,
	}
}

// Endpoint returns the peer identity of this connection
func (c *ClientConnection) Endpoint() string {
	return c.endpoint
}

// Serve runs the receive loop until a terminal condition occurs. It must be
// called from exactly one goroutine; no other goroutine may read this socket.
// On every exit path the socket is shut down and closed, so a dead connection
// never leaks a listening-socket slot.
func (c *ClientConnection) Serve() {
	defer c.teardown()

	header := make([]byte, wire.HeaderSize)

	for !c.stopped.Load() {
		// Header first: its length field tells us how much to allocate for
		// the payload.
		if err := ReadExact(c.conn, header, c.pollInterval, c.stopped.Load); err != nil {
			c.logTerminal("header", err)
			return
		}

		payloadSize, err := wire.DecodeHeader(header)
		if err != nil {
			// A corrupted framing boundary cannot be resynchronized safely;
			// fail the connection instead of scanning for the next frame.
			Logger.Errorf("Protocol error from %s: %v", c.endpoint, err)
			return
		}

		payload := make([]byte, payloadSize)
		if err := ReadExact(c.conn, payload, c.pollInterval, c.stopped.Load); err != nil {
			c.logTerminal("payload", err)
			return
		}

		metricFramesIn.Inc()
		metricBytesIn.Add(wire.HeaderSize + int(payloadSize))

		resp := c.handler(c.endpoint, string(payload))
		if resp == nil {
			continue
		}

		if err := c.WriteFrame(resp); err != nil {
			Logger.Errorf("Failed to write response to %s: %v", c.endpoint, err)
			return
		}
	}
}

// Stop requests a cooperative shutdown. The receive loop observes the flag at
// the top of each iteration and between read retries; a read blocked without
// a poll interval only unblocks when the socket is closed, so callers needing
// immediate termination should follow up with ForceClose.
func (c *ClientConnection) Stop() {
	c.stopped.Store(true)
}

// ForceClose stops the connection and closes the socket out from under the
// receive loop, unblocking any in-progress read immediately.
func (c *ClientConnection) ForceClose() {
	c.Stop()
	_ = c.conn.Close()
}

// WriteFrame frames payload and writes it to the connection. Writes are
// serialized: concurrent callers never interleave bytes on the socket.
func (c *ClientConnection) WriteFrame(payload []byte) error {
	header := make([]byte, wire.HeaderSize)
	wire.PutHeader(header, len(payload))

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	// Header and payload in one writev call
	buffers := net.Buffers{header, payload}
	n, err := buffers.WriteTo(c.conn)
	if err == nil {
		metricFramesOut.Inc()
		metricBytesOut.Add(int(n))
	}
	return err
}

// teardown shuts the socket down for both directions and closes it, then
// notifies the owner. Runs exactly once, from the receive loop's goroutine.
func (c *ClientConnection) teardown() {
	c.stopped.Store(true)

	if cw, ok := c.conn.(closeWriter); ok {
		_ = cw.CloseWrite()
	}
	_ = c.conn.Close()

	if c.onClose != nil {
		c.onClose(c)
	}
}

// logTerminal logs the terminal condition of a read with the severity the
// condition deserves
func (c *ClientConnection) logTerminal(stage string, err error) {
	switch {
	case errors.Is(err, ErrStopRequested):
		Logger.Infof("Connection to %s stopped", c.endpoint)
	case errors.Is(err, ErrPeerClosed):
		Logger.Infof("Connection gracefully closed by client %s", c.endpoint)
	case errors.Is(err, ErrConnAborted):
		Logger.Errorf("Connection to %s aborted while reading %s: %v", c.endpoint, stage, err)
	default:
		Logger.Errorf("Unexpected socket error from %s while reading %s: %v", c.endpoint, stage, err)
	}
}
