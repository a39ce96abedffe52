package mouse

import (
	"github.com/mmsim/micromouse-core/internal/maze"
	"github.com/mmsim/micromouse-core/internal/sensor"
	"github.com/mmsim/micromouse-core/internal/units"
)

// Build places a parsed Description into world space at the given
// initial pose and attaches it to m, producing a ready-to-run Mouse.
// cellSize is the maze's tile edge length, needed by sensors to cast
// rays against m. This mirrors MouseParser's role in the reference:
// the description file only ever speaks in the mouse-local frame, and
// every wheel, sensor and body polygon is rotated and translated into
// world space exactly once, at build time.
func (d *Description) Build(initialTranslation units.Cartesian, initialRotation units.Angle, m *maze.Maze, cellSize units.Length) (*Mouse, error) {
	bodyPolygons := make([]units.Polygon, 0, len(d.BodyPolygons))
	for _, b := range d.BodyPolygons {
		poly := make(units.Polygon, len(b.Vertices))
		for i, v := range b.Vertices {
			poly[i] = v.cartesian()
		}
		placed := poly.RotateAroundPoint(initialRotation, units.Cartesian{}).Translate(initialTranslation)
		bodyPolygons = append(bodyPolygons, placed)
	}

	collisionPolygons := append([]units.Polygon{}, bodyPolygons...)
	if d.CollisionCircleR > 0 {
		center := d.CenterOfMass.cartesian().RotateAroundPoint(initialRotation, units.Cartesian{}).Add(initialTranslation)
		n := d.CollisionCircleN
		if n < 3 {
			n = 12
		}
		collisionPolygons = append(collisionPolygons, units.CreateCirclePolygon(center, units.Length(d.CollisionCircleR), n))
	}
	collisionPolygon := units.ConvexHull(collisionPolygons...)

	wheels := make(map[string]*Wheel, len(d.Wheels))
	wheelOrder := make([]string, 0, len(d.Wheels))
	for _, w := range d.Wheels {
		pos := w.Position.cartesian().RotateAroundPoint(initialRotation, units.Cartesian{}).Add(initialTranslation)
		dir := initialRotation.Add(units.DegreesToAngle(w.DirectionDegrees))
		encoderType := EncoderAbsolute
		if w.Encoder == "relative" {
			encoderType = EncoderRelative
		}
		ticks := w.TicksPerRevolution
		if ticks <= 0 {
			ticks = 360
		}
		wheels[w.Name] = newWheel(pos, dir, units.Length(w.RadiusMeters), units.RPMToAngularVelocity(w.MaxRPM), encoderType, ticks)
		wheelOrder = append(wheelOrder, w.Name)
	}
	sortStrings(wheelOrder)

	sensors := make(map[string]*sensor.Sensor, len(d.Sensors))
	sensorOrder := make([]string, 0, len(d.Sensors))
	for _, s := range d.Sensors {
		pos := s.Position.cartesian().RotateAroundPoint(initialRotation, units.Cartesian{}).Add(initialTranslation)
		dir := initialRotation.Add(units.DegreesToAngle(s.DirectionDegrees))
		maxRange := units.Length(s.MaxRangeMeters)
		if maxRange <= 0 {
			maxRange = units.Length(1)
		}
		sensors[s.Name] = sensor.NewSensor(pos, dir, units.DegreesToAngle(s.HalfFOVDegrees), maxRange, units.Duration(s.ReadDurationSec))
		sensorOrder = append(sensorOrder, s.Name)
	}
	sortStrings(sensorOrder)

	mouse := &Mouse{
		name:                    d.Name,
		initialTranslation:      initialTranslation,
		initialRotation:         initialRotation,
		initialBodyPolygons:     bodyPolygons,
		initialCollisionPolygon: collisionPolygon,
		wheels:                  wheels,
		wheelOrder:              wheelOrder,
		sensors:                 sensors,
		sensorOrder:             sensorOrder,
		currentTranslation:      initialTranslation,
		currentRotation:         initialRotation,
		maze:                    m,
		cellSize:                cellSize,
		wheelAdjustmentFactors:  make(map[string]wheelAdjustment, len(wheels)),
	}
	mouse.recomputeSynthesisFactors()
	return mouse, nil
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i += 1 {
		for j := i; j > 0 && s[j] < s[j-1]; j -= 1 {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
