// Package dispatch implements the pattern-based command router of the
// remote-control system.
//
// A command pattern is a whitespace-delimited sequence of literal segments
// and typed placeholders, e.g.
//
//	vget /cameras
//	vget /camera/[uint]/location
//	vset /camera/[uint]/location [float] [float] [float]
//	vset /viewmode [str]
//
// Placeholders come in three kinds: [uint], [float] and [str], and may stand
// alone or be embedded in a slash-delimited path as above. Matching is
// positional with exact arity - no optional or variadic segments, and a
// placeholder binds exactly one slash-delimited piece. Numeric placeholders
// validate strictly: a piece that fails to parse makes the pattern a
// non-match rather than being coerced to a default.
//
// Patterns are tried in registration order and the first match wins, so
// overlapping patterns are disambiguated purely by registration order. The
// dispatcher logs a warning when a newly registered pattern is provably
// shadowed by an earlier one.
//
// Every dispatched command produces exactly one ExecStatus: success with
// text, success with binary data, or an error naming the problem.
package dispatch
