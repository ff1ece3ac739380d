// Package client provides the client side of the remote-control protocol:
// it frames command lines, sends them over a pluggable transport and decodes
// the single response frame each command produces into text, binary data or
// an error.
package client
