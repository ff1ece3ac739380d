package transport

import (
	"github.com/scenecv/scenecv/remote/common"
)

// --------------------------------------------------------------------------
// Server Transport
// --------------------------------------------------------------------------

// ReceivedFunc is called synchronously by a server transport once per framed
// message pulled off a connection. It receives the peer endpoint and the
// message text and returns the response payload to be framed and written back
// on the same connection. A nil response means "send nothing".
//
// The function runs on the connection's own goroutine, so a slow handler
// blocks only that connection.
type ReceivedFunc func(endpoint string, message string) (resp []byte)

// IServerTransport is the interface for the server side of the framed
// message transport
type IServerTransport interface {
	// RegisterHandler registers the handler invoked for every received message.
	// Must be called before Listen.
	RegisterHandler(handler ReceivedFunc)
	// Listen starts accepting connections and blocks until Stop is called
	// or the listener fails
	Listen(config common.ServerConfig) error
	// Stop closes the listener and tears down all active connections
	Stop() error
}

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// IClientTransport is the interface for the client side of the framed
// message transport
type IClientTransport interface {
	// Connect initializes the transport with the given configuration
	Connect(config common.ClientConfig) error
	// Send sends one framed request and waits for the single response frame
	Send(req []byte) (resp []byte, err error)
	// Close closes the transport connection
	Close() error
}
