// Package base provides the protocol-agnostic implementation of the framed
// message transport, independent of the specific stream medium (TCP, Unix
// sockets). It is extended with medium-specific connectors by the tcp and
// unix packages.
//
// Key Components:
//
//   - IClientConnector/IServerConnector: Interfaces for medium-specific
//     operations (dialing, listening, socket tuning).
//
//   - ReadExact: Exact-size reads on a stream socket with explicit
//     classification of terminal conditions. "No data yet" (a deadline
//     expiry standing in for the would-block condition of a non-blocking
//     socket) is retried transparently; a clean close, an abrupt abort and
//     unexpected errors each fail the read so the caller can tear the
//     connection down.
//
//   - ClientConnection: Owner of one accepted connection. A single goroutine
//     runs its receive loop (header, validate, payload, dispatch); writes
//     are serialized with a per-connection mutex so responses from other
//     goroutines never interleave on the socket. Every exit path shuts the
//     socket down and closes it.
//
//   - serverTransport: Accept loop that spawns one ClientConnection per
//     inbound connection and tracks them in a concurrent registry for
//     teardown on Stop.
//
//   - clientTransport: Sequential request/response client. The protocol has
//     no request IDs, so requests are serialized and each response is
//     matched to its request by ordering.
//
// Thread Safety:
//
//	All public methods are thread-safe. Exactly one goroutine reads a given
//	connection; transport errors are fatal to that connection only.
package base
