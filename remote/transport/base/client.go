package base

import (
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/scenecv/scenecv/remote/common"
	"github.com/scenecv/scenecv/remote/transport"
	"github.com/scenecv/scenecv/remote/wire"
)

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IClientConnector defines the interface for transport-specific connection operations
type IClientConnector interface {
	// Connect establishes a single connection to the given endpoint
	Connect(endpoint string) (net.Conn, error)

	// UpgradeConnection applies protocol-specific settings to an established connection
	UpgradeConnection(conn net.Conn, config common.ClientConfig) error

	// GetName returns the name of the transport type (e.g., "unix", "tcp")
	GetName() string
}

// -----------------------------------------------------------
// Helper Types
// -----------------------------------------------------------

// clientTransport implements the core client transport functionality
// independent of the specific transport medium (unix, tcp, etc.).
//
// The command protocol has no request IDs: every request frame is answered by
// exactly one response frame on the same connection, in order. The transport
// therefore serializes requests with a mutex instead of correlating
// responses asynchronously.
type clientTransport struct {
	connector IClientConnector
	config    common.ClientConfig
	conn      net.Conn
	mu        sync.Mutex
}

// -----------------------------------------------------------
// Transport Factory Method (used for tcp, unix, etc.)
// -----------------------------------------------------------

// NewBaseClientTransport creates a new base client transport with the specified connector
func NewBaseClientTransport(connector IClientConnector) transport.IClientTransport {
	return &clientTransport{connector: connector}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IClientTransport)
// --------------------------------------------------------------------------

func (t *clientTransport) Connect(config common.ClientConfig) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.config = config
	if err := t.reconnect(); err != nil {
		return err
	}

	Logger.Infof("Connected to %s using %s transport", config.Endpoint, t.connector.GetName())
	return nil
}

func (t *clientTransport) Send(req []byte) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return nil, fmt.Errorf("not connected")
	}

	var lastErr error
	for attempt := 0; attempt <= t.config.RetryCount; attempt++ {
		if attempt > 0 {
			Logger.Warningf("Retrying request (attempt %d/%d) after error: %v",
				attempt, t.config.RetryCount, lastErr)
			if err := t.reconnect(); err != nil {
				lastErr = err
				continue
			}
		}

		resp, err := t.roundTrip(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("request failed after %d retries: %v", t.config.RetryCount, lastErr)
}

func (t *clientTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// reconnect (re-)establishes the underlying connection. Caller must hold mu.
func (t *clientTransport) reconnect() error {
	if t.conn != nil {
		_ = t.conn.Close()
		t.conn = nil
	}

	conn, err := t.connector.Connect(t.config.Endpoint)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %v", t.config.Endpoint, err)
	}

	if err := t.connector.UpgradeConnection(conn, t.config); err != nil {
		Logger.Warningf("Failed to tune connection to %s: %v", t.config.Endpoint, err)
	}

	t.conn = conn
	return nil
}

// roundTrip writes one request frame and reads the single response frame.
// Caller must hold mu.
func (t *clientTransport) roundTrip(req []byte) ([]byte, error) {
	frame, err := wire.EncodeFrame(req)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(t.config.TimeoutSecond) * time.Second
	if timeout > 0 {
		deadline := time.Now().Add(timeout)
		if err := t.conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("failed to set deadline: %v", err)
		}
	}

	if _, err := t.conn.Write(frame); err != nil {
		return nil, fmt.Errorf("failed to write request: %v", err)
	}

	header := make([]byte, wire.HeaderSize)
	if _, err := io.ReadFull(t.conn, header); err != nil {
		return nil, fmt.Errorf("failed to read response header: %v", err)
	}

	payloadSize, err := wire.DecodeHeader(header)
	if err != nil {
		return nil, fmt.Errorf("invalid response header: %v", err)
	}

	payload := make([]byte, payloadSize)
	if _, err := io.ReadFull(t.conn, payload); err != nil {
		return nil, fmt.Errorf("failed to read response payload: %v", err)
	}

	return payload, nil
}
