// Package tcp implements the TCP socket transport for the remote-control
// system. It provides concrete implementations of the base package's
// connector interfaces for TCP connections, including socket tuning
// (NoDelay, keep-alive, linger, buffer sizes) driven by configuration.
//
// See the base package documentation for the underlying transport mechanics.
package tcp
