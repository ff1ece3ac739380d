// Package transport defines the interfaces for the framed message transport
// connecting command clients to the command server, with pluggable stream
// implementations (TCP, Unix sockets).
//
// The server side accepts connections and runs one receive loop per
// connection; every received frame is handed to a registered handler whose
// return value is framed and written back on the same connection. The client
// side is a simple sequential request/response transport.
//
// The base subpackage contains the protocol-agnostic implementation; the tcp
// and unix subpackages supply the stream-specific connectors.
package transport
