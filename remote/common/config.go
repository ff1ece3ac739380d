package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Socket configuration structs (shared by client and server)
// --------------------------------------------------------------------------

// SocketConf holds generic socket buffer settings
type SocketConf struct {
	// WriteBufferSize is the size of the socket write buffer in bytes (0 = OS default)
	WriteBufferSize int
	// ReadBufferSize is the size of the socket read buffer in bytes (0 = OS default)
	ReadBufferSize int
}

// TCPConf holds TCP-specific tuning options
type TCPConf struct {
	// TCPNoDelay disables Nagle's algorithm when true
	TCPNoDelay bool
	// TCPKeepAliveSec is the keep-alive interval in seconds (0 = disabled)
	TCPKeepAliveSec int
	// TCPLingerSec is the linger time in seconds (negative = OS default)
	TCPLingerSec int
}

// --------------------------------------------------------------------------
// Server configuration struct
// --------------------------------------------------------------------------

// ServerConfig holds all configuration parameters for the remote-control server.
type ServerConfig struct {
	// Endpoint is the address the command server listens on
	// (e.g. "0.0.0.0:9000" for tcp, "/tmp/scenecv.sock" for unix)
	Endpoint string

	// PollIntervalMillis bounds how long a connection read blocks before the
	// stop flag is rechecked. This is the replacement for busy-polling a
	// non-blocking socket: absence of data within the interval is treated as
	// "no data yet", never as an error.
	PollIntervalMillis int

	// MetricsEndpoint is the address of the side HTTP listener exposing
	// Prometheus metrics (empty = disabled)
	MetricsEndpoint string

	// Socket tuning
	Socket SocketConf
	TCP    TCPConf

	// Logging configuration
	LogLevel string
}

// String returns a formatted string representation of the configuration
func (c *ServerConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Command Server")
	addField("Endpoint", c.Endpoint)
	addField("Poll Interval", fmt.Sprintf("%d ms", c.PollIntervalMillis))
	if c.MetricsEndpoint != "" {
		addField("Metrics Endpoint", c.MetricsEndpoint)
	} else {
		addField("Metrics Endpoint", "disabled")
	}

	addSection("Socket")
	addField("Write Buffer", strconv.Itoa(c.Socket.WriteBufferSize))
	addField("Read Buffer", strconv.Itoa(c.Socket.ReadBufferSize))
	addField("TCP NoDelay", fmt.Sprintf("%t", c.TCP.TCPNoDelay))
	addField("TCP KeepAlive", fmt.Sprintf("%d sec", c.TCP.TCPKeepAliveSec))
	addField("TCP Linger", fmt.Sprintf("%d sec", c.TCP.TCPLingerSec))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}

// --------------------------------------------------------------------------
// Client configuration struct
// --------------------------------------------------------------------------

// ClientConfig holds all configuration parameters for the command client.
type ClientConfig struct {
	// Endpoint is the address of the command server
	Endpoint string
	// TimeoutSecond is the per-request timeout in seconds (0 = no timeout)
	TimeoutSecond int
	// RetryCount is how many times a failed request is retried on a fresh connection
	RetryCount int

	// Socket tuning
	Socket SocketConf
	TCP    TCPConf
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Client Configuration")
	addField("Endpoint", c.Endpoint)
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))
	addField("Retry Count", strconv.Itoa(int(math.Max(0, float64(c.RetryCount)))))

	return sb.String()
}
