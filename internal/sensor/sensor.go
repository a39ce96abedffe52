// Package sensor implements the mouse's distance sensors: each one casts
// a fan of rays from a world-frame position and heading into the maze,
// across its half field of view, and reports the distance to the
// nearest wall any ray in the fan crosses, clamped to its maximum
// range. Sensors know nothing about the mouse that carries them; the
// mouse package owns the positioning and calls UpdateReading once per
// tick, the same separation the reference keeps between Sensor and
// Mouse::getSensorReadings.
package sensor

import (
	"math"

	"github.com/mmsim/micromouse-core/internal/maze"
	"github.com/mmsim/micromouse-core/internal/units"
)

// RaysPerSensor is the number of rays swept evenly across a sensor's
// [dir-halfFov, dir+halfFov] cone each reading.
const RaysPerSensor = 9

// Sensor models a single analog or digital rangefinder mounted on the
// mouse, reading the closest wall crossed by any ray in its
// [dir-halfFov, dir+halfFov] cone.
type Sensor struct {
	initialPosition  units.Cartesian
	initialDirection units.Angle
	halfFOV          units.Angle
	maxRange         units.Length
	readDuration     units.Duration

	lastReading units.Length
}

// NewSensor constructs a Sensor already placed in world-frame position
// and direction (the mouse package performs that placement at parse
// time, mirroring MouseParser::getSensors).
func NewSensor(position units.Cartesian, direction, halfFOV units.Angle, maxRange units.Length, readDuration units.Duration) *Sensor {
	return &Sensor{
		initialPosition:  position,
		initialDirection: direction,
		halfFOV:          halfFOV,
		maxRange:         maxRange,
		readDuration:     readDuration,
		lastReading:      maxRange,
	}
}

func (s *Sensor) InitialPosition() units.Cartesian  { return s.initialPosition }
func (s *Sensor) InitialDirection() units.Angle     { return s.initialDirection }
func (s *Sensor) HalfFOV() units.Angle              { return s.halfFOV }
func (s *Sensor) MaxRange() units.Length            { return s.maxRange }
func (s *Sensor) ReadDuration() units.Duration      { return s.readDuration }
func (s *Sensor) LastReading() units.Length         { return s.lastReading }

// UpdateReading recomputes the sensor's reading given the mouse's
// current pose (the world-frame offset and rotation applied to the
// sensor's initial position/direction since parse time) and the maze
// it is reading against.
func (s *Sensor) UpdateReading(currentPosition units.Cartesian, currentDirection units.Angle, m *maze.Maze, cellSize units.Length) {
	s.lastReading = ReadCone(currentPosition, currentDirection, s.halfFOV, s.maxRange, m, cellSize)
}

// ReadCone sweeps RaysPerSensor rays evenly across
// [dir-halfFov, dir+halfFov] and returns the shortest distance any of
// them travels before crossing a wall (§4.G): the sensor reports
// whatever is closest anywhere in its cone, not just what sits
// directly on its centerline. A zero halfFov degenerates to a single
// ray along dir.
func ReadCone(origin units.Cartesian, dir, halfFov units.Angle, maxRange units.Length, m *maze.Maze, cellSize units.Length) units.Length {
	closest := maxRange
	n := RaysPerSensor
	if halfFov == 0 {
		n = 1
	}
	for i := 0; i < n; i += 1 {
		frac := 0.0
		if n > 1 {
			frac = float64(i)/float64(n-1)*2 - 1
		}
		ray := dir.Add(units.Angle(frac * float64(halfFov)))
		if d := Read(origin, ray, maxRange, m, cellSize); d < closest {
			closest = d
		}
	}
	return closest
}

// Read casts a single ray from origin along dir through m, stepping
// cell boundary by cell boundary (a DDA-style grid walk) up to
// maxRange, and returns the distance to the first wall it crosses.
func Read(origin units.Cartesian, dir units.Angle, maxRange units.Length, m *maze.Maze, cellSize units.Length) units.Length {
	if m == nil || cellSize <= 0 {
		return maxRange
	}

	dx := dir.Cos()
	dy := dir.Sin()

	const step = 0.001 // meters; fine enough to not skip a wall plane
	traveled := 0.0
	x, y := float64(origin.X), float64(origin.Y)

	for traveled < float64(maxRange) {
		cellX := int(math.Floor(x / float64(cellSize)))
		cellY := int(math.Floor(y / float64(cellSize)))

		nx, ny := x+dx*step, y+dy*step
		nextCellX := int(math.Floor(nx / float64(cellSize)))
		nextCellY := int(math.Floor(ny / float64(cellSize)))

		if nextCellX != cellX || nextCellY != cellY {
			d, ok := crossingDirection(cellX, cellY, nextCellX, nextCellY)
			if ok {
				if m.HasWall(cellX, cellY, d) {
					return units.Length(traveled)
				}
			} else {
				// Diagonal step across a cell corner: treat either
				// bounding wall as blocking, matching a conservative
				// grid raycast.
				if _, ok := m.TileAt(nextCellX, nextCellY); !ok {
					return units.Length(traveled)
				}
			}
		}

		if _, ok := m.TileAt(nextCellX, nextCellY); !ok {
			return units.Length(traveled)
		}

		x, y = nx, ny
		traveled += step
	}
	return maxRange
}

func crossingDirection(cx, cy, nx, ny int) (maze.Direction, bool) {
	switch {
	case nx == cx+1 && ny == cy:
		return maze.East, true
	case nx == cx-1 && ny == cy:
		return maze.West, true
	case ny == cy+1 && nx == cx:
		return maze.North, true
	case ny == cy-1 && nx == cx:
		return maze.South, true
	}
	return 0, false
}

// ViewPolygon returns the triangular fan approximating the sensor's
// field of view, for overlay rendering in the mouse controller's maze
// belief view (§4.H). It is purely cosmetic and plays no part in Read.
func (s *Sensor) ViewPolygon(currentPosition units.Cartesian, currentDirection units.Angle, nRays int) units.Polygon {
	if nRays < 2 {
		nRays = 2
	}
	poly := make(units.Polygon, 0, nRays+1)
	poly = append(poly, currentPosition)
	for i := 0; i <= nRays; i += 1 {
		frac := float64(i)/float64(nRays) - 0.5
		theta := currentDirection.Add(units.Angle(2 * float64(s.halfFOV) * frac))
		poly = append(poly, units.Cartesian{
			X: currentPosition.X + units.Length(float64(s.maxRange)*theta.Cos()),
			Y: currentPosition.Y + units.Length(float64(s.maxRange)*theta.Sin()),
		})
	}
	return poly
}
