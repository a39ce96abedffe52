package maze

import "github.com/mmsim/micromouse-core/internal/units"

// Direction is one of the four cardinal directions a tile wall or a
// mouse heading can take.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all four directions in a fixed, stable order, used
// when iterating walls so output (e.g. the numeric maze codec) is
// deterministic.
var Directions = [4]Direction{North, East, South, West}

var directionNames = map[Direction]string{
	North: "N",
	East:  "E",
	South: "S",
	West:  "W",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "?"
}

// directionAngles is the canonical angle mapping: EAST=0, NORTH=90,
// WEST=180, SOUTH=270 degrees.
var directionAngles = map[Direction]units.Angle{
	East:  units.DegreesToAngle(0),
	North: units.DegreesToAngle(90),
	West:  units.DegreesToAngle(180),
	South: units.DegreesToAngle(270),
}

// Angle returns the canonical heading angle for this direction.
func (d Direction) Angle() units.Angle {
	return directionAngles[d]
}

// Opposite returns the direction's opposite (N<->S, E<->W).
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

// RotatedClockwise returns the direction 90 degrees clockwise from d
// (e.g. North -> East). Directions is declared in clockwise order, so
// this is just (d+1) mod 4.
func (d Direction) RotatedClockwise() Direction {
	return Direction((int(d) + 1) % 4)
}

// RotatedCounterClockwise returns the direction 90 degrees
// counter-clockwise from d (e.g. North -> West).
func (d Direction) RotatedCounterClockwise() Direction {
	return Direction((int(d) + 3) % 4)
}

// Delta returns the (dx, dy) tile offset of moving one tile in direction d.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// DirectionFromChar parses the single-character direction codes used by
// the controller wall-declaration API ('n','e','s','w', case-insensitive).
func DirectionFromChar(ch byte) (Direction, bool) {
	switch ch {
	case 'n', 'N':
		return North, true
	case 'e', 'E':
		return East, true
	case 's', 'S':
		return South, true
	case 'w', 'W':
		return West, true
	}
	return North, false
}

// DirectionFromDegrees snaps a rotation (in degrees, any range) to the
// nearest cardinal direction, matching the reference's
// getCurrentDiscretizedRotation (45-degree-wide buckets centered on each
// cardinal angle).
func DirectionFromDegrees(deg float64) Direction {
	a := units.DegreesToAngle(deg + 45)
	bucket := int(a.RadiansZeroTo2Pi() / units.DegreesToAngle(90).RadiansZeroTo2Pi())
	switch bucket {
	case 0:
		return East
	case 1:
		return North
	case 2:
		return West
	default:
		return South
	}
}
