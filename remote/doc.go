// Package remote provides the remote-control plane of the scenecv system:
// a framed message transport over stream sockets plus a pattern-based
// command dispatcher executing against live in-process scene state.
//
// The package is organized into several subpackages:
//
//   - common: Configuration structures and the logging front-end shared by
//     all remote-control components.
//
//   - wire: The length-prefixed frame codec (magic + payload length +
//     payload) used for every request and response.
//
//   - transport: Stream transport abstractions with pluggable
//     implementations (TCP, Unix sockets). The base subpackage contains the
//     receive loop, exact-read logic and connection lifecycle shared by all
//     media.
//
//   - dispatch: The command router matching incoming command lines against
//     registered patterns with typed placeholders, and the ExecStatus result
//     envelope.
//
//   - handlers: The command surface binding dispatcher patterns to scene
//     operations (cameras, objects, view modes).
//
//   - server: The assembled command server: transport + dispatcher + scene,
//     plus introspection commands and optional Prometheus metrics.
//
//   - client: The client side: framing command lines and decoding responses.
package remote
