// Package common provides core data structures and utilities shared across
// the remote-control system. It defines configuration structures and the
// logging front-end used by the transport, dispatcher and server packages.
//
// The package focuses on:
//   - Configuration structures for client and server components
//   - Socket tuning options shared by all stream transports
//   - A leveled, named logger with consistent formatting across the application
//
// Key Components:
//
//   - ServerConfig: Configuration for the command server, including the listen
//     endpoint, the read poll interval, the optional metrics listener and
//     socket tuning parameters.
//
//   - ClientConfig: Configuration for client components, controlling connection
//     parameters, timeouts, and retry behavior.
//
//   - ILogger / GetLogger: Leveled loggers registered by package name. Levels
//     are applied globally via InitLoggers from the server configuration.
package common
