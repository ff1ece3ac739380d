// Package scene models the live in-process state the remote-control command
// surface operates on: camera-like sensors, named objects, the player pawn
// and the active view mode.
//
// The real rendering/simulation engine is an external collaborator; this
// package is the narrow interface the command handlers see. Sensor captures
// produce deterministic synthetic images so the binary response path can be
// exercised without an engine.
//
// All types are safe for concurrent use. Sensors and objects are held in
// concurrent maps for lookup plus an ordered slice for stable enumeration,
// since command responses list them in registration order.
package scene
