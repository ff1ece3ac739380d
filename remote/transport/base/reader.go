package base

import (
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
	"time"
)

// --------------------------------------------------------------------------
// Terminal conditions
// --------------------------------------------------------------------------

var (
	// ErrPeerClosed is returned when the peer closed the connection cleanly.
	// Partially read bytes are never treated as a complete message.
	ErrPeerClosed = errors.New("connection gracefully closed by the peer")

	// ErrConnAborted is returned when the connection was torn down abruptly
	// (reset, aborted or already disconnected).
	ErrConnAborted = errors.New("connection aborted unexpectedly")

	// ErrStopRequested is returned when a cooperative stop was observed while
	// waiting for data.
	ErrStopRequested = errors.New("stop requested")
)

// --------------------------------------------------------------------------
// Exact reads on a stream socket
// --------------------------------------------------------------------------

// ReadExact reads exactly len(buf) bytes from conn.
//
// Partial reads are normal on stream sockets, so the read loops at increasing
// offsets until the buffer is full or a terminal condition occurs. Instead of
// busy-polling a non-blocking socket, each attempt blocks for at most
// pollInterval (via a read deadline); a deadline expiry means "no data yet",
// not an error, and the loop retries after consulting the stopped callback.
// With pollInterval <= 0 the read blocks without a deadline and a pending
// stop can only take effect through a concurrent close of the socket.
//
// Outcome of a single read attempt:
//   - some bytes read: advance and continue, even mid-deadline
//   - deadline expired: retry (the would-block condition of a stream socket)
//   - EOF: the peer closed cleanly, return ErrPeerClosed
//   - reset/aborted/not connected: return ErrConnAborted
//   - anything else: return the error as-is
//
// A nil error means the buffer holds exactly the requested bytes. Any
// non-nil error means the caller must consider this connection dead.
func ReadExact(conn net.Conn, buf []byte, pollInterval time.Duration, stopped func() bool) error {
	offset := 0
	for offset < len(buf) {
		if stopped != nil && stopped() {
			return ErrStopRequested
		}

		if pollInterval > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(pollInterval)); err != nil {
				return fmt.Errorf("failed to set read deadline: %v", err)
			}
		}

		n, err := conn.Read(buf[offset:])
		if n > 0 {
			offset += n
			continue
		}

		if err == nil {
			// A (0, nil) read is allowed by the io.Reader contract; treat it
			// like a would-block and try again.
			continue
		}

		if classified := classifyReadError(err); classified != nil {
			return classified
		}
		// Deadline expired with no data: keep waiting.
	}
	return nil
}

// classifyReadError maps a read error onto the terminal conditions above.
// A nil return means the error was a would-block (deadline expiry) and the
// read should be retried.
func classifyReadError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrPeerClosed
	}

	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ENOTCONN) ||
		errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("%w: %v", ErrConnAborted, err)
	}

	return err
}
