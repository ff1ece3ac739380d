package base

import (
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/scenecv/scenecv/remote/common"
	"github.com/scenecv/scenecv/remote/transport"
)

var Logger = common.GetLogger("transport")

// Connection metrics, shared by all server transports
var (
	metricConnsAccepted = metrics.GetOrCreateCounter("scenecv_connections_accepted_total")
	metricConnsClosed   = metrics.GetOrCreateCounter("scenecv_connections_closed_total")
	metricFramesIn      = metrics.GetOrCreateCounter("scenecv_frames_received_total")
	metricFramesOut     = metrics.GetOrCreateCounter("scenecv_frames_sent_total")
	metricBytesIn       = metrics.GetOrCreateCounter("scenecv_bytes_received_total")
	metricBytesOut      = metrics.GetOrCreateCounter("scenecv_bytes_sent_total")
)

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IServerConnector defines the interface for transport-specific server operations
type IServerConnector interface {
	// Listen creates a listener and returns it
	Listen(config common.ServerConfig) (net.Listener, error)

	// UpgradeConnection applies protocol-specific settings to an accepted connection
	UpgradeConnection(conn net.Conn, config common.ServerConfig) error

	// GetName returns the name of the transport type (e.g., "unix", "tcp")
	GetName() string
}

// -----------------------------------------------------------
// Helper Types
// -----------------------------------------------------------

// serverTransport implements the core server transport functionality.
//
// The connection registry is keyed by a per-transport connection id, not by
// the peer address: peer addresses are not unique (every accepted unix
// connection reports the same unnamed address), and a shared key would let
// one closing peer deregister all the others.
type serverTransport struct {
	connector  IServerConnector
	handler    transport.ReceivedFunc
	config     common.ServerConfig
	listener   net.Listener
	conns      *xsync.MapOf[uint64, *ClientConnection]
	nextConnID atomic.Uint64
	stopping   chan struct{}
	stopOnce   sync.Once
}

// -----------------------------------------------------------
// Transport Factory Method (used for tcp, unix, etc.)
// -----------------------------------------------------------

// NewBaseServerTransport creates a new base server transport that runs one
// receive loop per accepted connection
func NewBaseServerTransport(connector IServerConnector) transport.IServerTransport {
	return &serverTransport{
		connector: connector,
		conns:     xsync.NewMapOf[uint64, *ClientConnection](),
		stopping:  make(chan struct{}),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IServerTransport)
// --------------------------------------------------------------------------

func (t *serverTransport) RegisterHandler(handler transport.ReceivedFunc) {
	t.handler = handler
}

func (t *serverTransport) Listen(config common.ServerConfig) error {
	if t.handler == nil {
		return fmt.Errorf("no handler registered")
	}
	t.config = config

	// Create listener using the connector
	listener, err := t.connector.Listen(config)
	if err != nil {
		return fmt.Errorf("failed to create listener: %v", err)
	}
	t.listener = listener

	Logger.Infof("Starting %s server on %s", t.connector.GetName(), config.Endpoint)

	// Accept connections
	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-t.stopping:
				return nil
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			Logger.Errorf("Accept error: %v", err)
			continue
		}

		t.handleConnection(conn)
	}
}

func (t *serverTransport) Stop() error {
	var err error
	t.stopOnce.Do(func() {
		close(t.stopping)
		if t.listener != nil {
			err = t.listener.Close()
		}
	})

	// Tear down all active connections. Stop alone is advisory while a read
	// is blocked, so the socket is closed as well.
	t.conns.Range(func(_ uint64, cc *ClientConnection) bool {
		cc.ForceClose()
		return true
	})

	return err
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// handleConnection registers an accepted connection and spawns its receive loop
func (t *serverTransport) handleConnection(conn net.Conn) {
	if err := t.connector.UpgradeConnection(conn, t.config); err != nil {
		Logger.Warningf("Failed to tune connection from %s: %v", conn.RemoteAddr(), err)
	}

	pollInterval := time.Duration(t.config.PollIntervalMillis) * time.Millisecond

	id := t.nextConnID.Add(1)
	cc := NewClientConnection(conn, t.handler, pollInterval, func(closed *ClientConnection) {
		t.conns.Delete(id)
		metricConnsClosed.Inc()
		Logger.Debugf("Connection %d (%s) deregistered", id, closed.Endpoint())
	})

	t.conns.Store(id, cc)
	metricConnsAccepted.Inc()
	Logger.Infof("New client connected from %s (connection %d)", cc.Endpoint(), id)

	go cc.Serve()
}
