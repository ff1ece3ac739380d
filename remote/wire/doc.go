// Package wire implements the framed message protocol used between the
// command server and its clients. Every message - request or response, text
// or binary - travels as one frame:
//
//	offset 0: uint32 magic            (constant 0x9E2B83C1, big endian)
//	offset 4: uint32 payload_length   (> 0, big endian)
//	offset 8: byte[payload_length]    payload
//
// The header-then-payload split lets the receiver allocate exactly
// payload_length bytes before reading the body, so no unbounded buffering or
// delimiter scanning is needed. The codec is pure and stateless; all I/O is
// done by the transport layer.
package wire
