// Package server assembles the remote-control plane: it owns the command
// dispatcher, binds the scene's command handlers to it, and connects the
// framed message transport so that every received frame is dispatched as one
// command and answered with exactly one response frame.
//
// The command table is built once before the first connection is accepted
// and is read-only afterwards, so dispatch needs no locking. Dispatch runs
// synchronously on the receiving connection's goroutine; a slow command
// blocks only its own connection.
//
// The server also exposes a few introspection commands (/server/version,
// /server/status, /server/help) and, when configured, a side HTTP listener
// with Prometheus metrics.
package server
