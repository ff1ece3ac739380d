// Package unix implements the Unix domain socket transport for the
// remote-control system, useful when the controlling client runs on the same
// machine as the server. It extends the base transport with Unix
// socket-specific connectors while inheriting the framing, receive loop and
// error handling from the base package.
package unix
