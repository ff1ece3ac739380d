// Package handlers binds the command surface of the remote-control system to
// a scene. Each handler owns one slice of the surface (cameras, objects,
// view modes) and registers its patterns on a dispatcher; registration order
// within a handler is match priority.
//
// Handlers receive argument tokens that the dispatcher has already validated
// in kind, and re-parse them into concrete values. A handler never panics
// across the dispatcher boundary: every failure is reported as an error
// status.
package handlers
