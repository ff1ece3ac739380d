package scene

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Value types
// --------------------------------------------------------------------------

// Vector is a position or scale in world space.
type Vector struct {
	X, Y, Z float64
}

// String formats the vector as three space-separated numbers, the form the
// command protocol uses for locations and scales.
func (v Vector) String() string {
	return formatFloats(v.X, v.Y, v.Z)
}

// Rotator is an orientation in degrees.
type Rotator struct {
	Pitch, Yaw, Roll float64
}

// String formats the rotator as "pitch yaw roll".
func (r Rotator) String() string {
	return formatFloats(r.Pitch, r.Yaw, r.Roll)
}

// Color is an annotation color with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// String formats the color as "r g b".
func (c Color) String() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

// formatFloats renders floats with the shortest exact representation,
// space separated
func formatFloats(values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, " ")
}
