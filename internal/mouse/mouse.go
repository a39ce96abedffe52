// Package mouse models the physical mouse: its body/collision geometry,
// its wheels and sensors, and its pose in the maze. A Mouse is built
// once from a Description at a fixed initial pose (internal/mouse's
// Build) and then driven either by the continuous wheel-speed API
// (synth.go) or by the kinematic integrator (Update, §4.E) which both
// share the per-wheel rate equation in internal/kinematics.
package mouse

import (
	"sync"

	"github.com/mmsim/micromouse-core/internal/kinematics"
	"github.com/mmsim/micromouse-core/internal/maze"
	"github.com/mmsim/micromouse-core/internal/sensor"
	"github.com/mmsim/micromouse-core/internal/units"
)

// Mouse is the simulator's physical mouse. A single mutex guards its
// entire mutable state (current pose, wheel/sensor state and elapsed
// sim time), mirroring the reference's m_updateMutex discipline.
type Mouse struct {
	mu sync.Mutex

	name string

	initialTranslation      units.Cartesian
	initialRotation         units.Angle
	initialBodyPolygons     []units.Polygon
	initialCollisionPolygon units.Polygon

	wheels     map[string]*Wheel
	wheelOrder []string

	sensors     map[string]*sensor.Sensor
	sensorOrder []string

	wheelAdjustmentFactors map[string]wheelAdjustment
	// curveTurnA, curveTurnB are the (A, B) pair solved once at build
	// time so that setWheelSpeedsForMovement(fraction, curveTurnA,
	// curveTurnB) traces a quarter-circle arc spanning one maze cell
	// (§4.F); see recomputeSynthesisFactors.
	curveTurnA float64
	curveTurnB float64

	currentTranslation units.Cartesian
	currentRotation    units.Angle
	currentGyro        units.AngularVelocity
	elapsedSimTime     units.Duration

	maze     *maze.Maze
	cellSize units.Length
}

func (m *Mouse) Lock()   { m.mu.Lock() }
func (m *Mouse) Unlock() { m.mu.Unlock() }

func (m *Mouse) Name() string { return m.name }

func (m *Mouse) InitialTranslation() units.Cartesian { return m.initialTranslation }
func (m *Mouse) InitialRotation() units.Angle        { return m.initialRotation }

func (m *Mouse) WheelNames() []string {
	out := make([]string, len(m.wheelOrder))
	copy(out, m.wheelOrder)
	return out
}

func (m *Mouse) Wheel(name string) (*Wheel, bool) {
	w, ok := m.wheels[name]
	return w, ok
}

func (m *Mouse) SensorNames() []string {
	out := make([]string, len(m.sensorOrder))
	copy(out, m.sensorOrder)
	return out
}

func (m *Mouse) Sensor(name string) (*sensor.Sensor, bool) {
	s, ok := m.sensors[name]
	return s, ok
}

func (m *Mouse) Maze() *maze.Maze { return m.maze }

// CurrentTranslation returns the mouse's current world-frame position.
func (m *Mouse) CurrentTranslation() units.Cartesian {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTranslation
}

// CurrentRotation returns the mouse's current heading.
func (m *Mouse) CurrentRotation() units.Angle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentRotation
}

// CurrentGyro returns the mouse's current rotational rate.
func (m *Mouse) CurrentGyro() units.AngularVelocity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentGyro
}

// ElapsedSimTime returns total simulated time the mouse has been updated for.
func (m *Mouse) ElapsedSimTime() units.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsedSimTime
}

// Teleport forcibly relocates the mouse (used by the omniscient
// reset/teleport controller operations). It does not touch wheel or
// sensor state.
func (m *Mouse) Teleport(translation units.Cartesian, rotation units.Angle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTranslation = translation
	m.currentRotation = rotation
	m.currentGyro = 0
}

// CurrentBodyPolygons returns the mouse's body polygons transformed to
// its current pose, for rendering.
func (m *Mouse) CurrentBodyPolygons() []units.Polygon {
	m.mu.Lock()
	translation, rotation := m.currentTranslation, m.currentRotation
	m.mu.Unlock()

	out := make([]units.Polygon, len(m.initialBodyPolygons))
	for i, p := range m.initialBodyPolygons {
		out[i] = p.RotateAroundPoint(rotation-m.initialRotation, m.initialTranslation).
			Translate(translation.Sub(m.initialTranslation))
	}
	return out
}

// CurrentCollisionPolygon returns the mouse's collision envelope
// transformed to its current pose.
func (m *Mouse) CurrentCollisionPolygon() units.Polygon {
	m.mu.Lock()
	translation, rotation := m.currentTranslation, m.currentRotation
	m.mu.Unlock()

	return m.initialCollisionPolygon.
		RotateAroundPoint(rotation-m.initialRotation, m.initialTranslation).
		Translate(translation.Sub(m.initialTranslation))
}

// DiscretizedTile returns the maze tile the mouse currently occupies,
// per its current position and the maze's cell size.
func (m *Mouse) DiscretizedTile() (x, y int) {
	pos := m.CurrentTranslation()
	if m.cellSize <= 0 {
		return 0, 0
	}
	x = int(float64(pos.X) / float64(m.cellSize))
	y = int(float64(pos.Y) / float64(m.cellSize))
	return x, y
}

// DiscretizedDirection snaps the mouse's current heading to the
// nearest cardinal direction, exactly as the reference's
// getCurrentDiscretizedRotation does.
func (m *Mouse) DiscretizedDirection() maze.Direction {
	return maze.DirectionFromDegrees(m.CurrentRotation().Degrees())
}

// Update advances the mouse's pose by dt, integrating every wheel's
// forward and rotational rate contribution (internal/kinematics) and
// accumulating each wheel's own rotation for encoder reads. This is
// the simulator's per-tick physics step (§4.E): forward rate is
// averaged across wheels, radial rate is summed, matching
// Mouse::update/getRatesOfChange in the reference.
func (m *Mouse) Update(dt units.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var forwardSum units.LinearVelocity
	var radialSum units.AngularVelocity
	n := 0

	for _, name := range m.wheelOrder {
		w := m.wheels[name]
		linear := w.AngularVelocity().TimesRadius(w.Radius())
		forward, radial := kinematics.RatesOfChange(
			m.initialTranslation, m.initialRotation,
			w.InitialPosition(), w.InitialDirection(),
			linear,
		)
		forwardSum += forward
		radialSum += radial
		n += 1

		w.accumulateRotation(w.AngularVelocity().TimesDuration(dt))
	}

	var avgForward units.LinearVelocity
	var avgRadial units.AngularVelocity
	if n > 0 {
		avgForward = units.LinearVelocity(float64(forwardSum) / float64(n))
		avgRadial = units.AngularVelocity(float64(radialSum) / float64(n))
	}

	heading := m.currentRotation
	distance := avgForward.TimesDuration(dt)
	m.currentTranslation = m.currentTranslation.Add(units.Cartesian{
		X: units.Length(distance.Meters() * heading.Cos()),
		Y: units.Length(distance.Meters() * heading.Sin()),
	})
	m.currentRotation += avgRadial.TimesDuration(dt)
	m.currentGyro = avgRadial
	m.elapsedSimTime += dt

	for _, name := range m.sensorOrder {
		s := m.sensors[name]
		s.UpdateReading(m.currentTranslation, m.currentRotation, m.maze, m.cellSize)
	}
}
