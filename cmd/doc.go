// Package cmd implements the command-line interface for the scenecv
// remote-control server. It provides a hierarchical command structure with
// operations for running the server and interacting with it as a client.
//
// The package is organized into several subpackages:
//
//   - serve: Commands for starting and configuring the scenecv server
//   - exec: Commands for sending command lines to a running server
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See scenecv -help for a list of all commands.
package cmd
