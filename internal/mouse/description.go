package mouse

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mmsim/micromouse-core/internal/simerrors"
	"github.com/mmsim/micromouse-core/internal/units"
)

// pointSpec is a single 2D point in the mouse-local frame (meters),
// relative to the mouse's center of rotation at zero rotation.
type pointSpec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p pointSpec) cartesian() units.Cartesian {
	return units.Cartesian{X: units.Length(p.X), Y: units.Length(p.Y)}
}

// bodySpec describes a single convex polygon contributing to the
// mouse's body (rendered shape) or collision envelope.
type bodySpec struct {
	Vertices []pointSpec `json:"vertices"`
}

// wheelSpec describes one drive wheel, mouse-local.
type wheelSpec struct {
	Name               string  `json:"name"`
	Position           pointSpec `json:"position"`
	DirectionDegrees   float64 `json:"directionDegrees"`
	RadiusMeters       float64 `json:"radiusMeters"`
	MaxRPM             float64 `json:"maxRpm"`
	Encoder            string  `json:"encoder"` // "absolute" or "relative"
	TicksPerRevolution float64 `json:"ticksPerRevolution"`
}

// sensorSpec describes one distance sensor, mouse-local.
type sensorSpec struct {
	Name             string  `json:"name"`
	Position         pointSpec `json:"position"`
	DirectionDegrees float64 `json:"directionDegrees"`
	HalfFOVDegrees   float64 `json:"halfFovDegrees"`
	MaxRangeMeters   float64 `json:"maxRangeMeters"`
	ReadDurationSec  float64 `json:"readDurationSeconds"`
}

// Description is the parsed contents of a mouse description file: the
// body/collision polygons and the wheel/sensor layouts, all still in
// the mouse-local frame. Build places them into world space at a given
// initial pose, producing a ready-to-run *Mouse.
type Description struct {
	Name              string       `json:"name"`
	BodyPolygons      []bodySpec   `json:"bodyPolygons"`
	CenterOfMass      pointSpec    `json:"centerOfMass"`
	Wheels            []wheelSpec  `json:"wheels"`
	Sensors           []sensorSpec `json:"sensors"`
	CollisionCircleR  float64      `json:"collisionCircleRadiusMeters"`
	CollisionCircleN  int          `json:"collisionCircleVertices"`
}

// ParseMouseFile reads and validates a mouse description file. It does
// not yet place anything into world space; call Build for that.
func ParseMouseFile(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &simerrors.MalformedMouseError{Path: path, Reason: err.Error()}
	}
	var d Description
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &simerrors.MalformedMouseError{Path: path, Reason: err.Error()}
	}
	if err := d.validate(); err != nil {
		return nil, &simerrors.MalformedMouseError{Path: path, Reason: err.Error()}
	}
	return &d, nil
}

func (d *Description) validate() error {
	if len(d.Wheels) == 0 {
		return fmt.Errorf("mouse description has no wheels")
	}
	seen := make(map[string]bool, len(d.Wheels))
	for _, w := range d.Wheels {
		if w.Name == "" {
			return fmt.Errorf("wheel with empty name")
		}
		if seen[w.Name] {
			return fmt.Errorf("duplicate wheel name %q", w.Name)
		}
		seen[w.Name] = true
		if w.RadiusMeters <= 0 {
			return fmt.Errorf("wheel %q has non-positive radius", w.Name)
		}
		if w.Encoder != "" && w.Encoder != "absolute" && w.Encoder != "relative" {
			return fmt.Errorf("wheel %q has unknown encoder type %q", w.Name, w.Encoder)
		}
	}
	seenSensors := make(map[string]bool, len(d.Sensors))
	for _, s := range d.Sensors {
		if s.Name == "" {
			return fmt.Errorf("sensor with empty name")
		}
		if seenSensors[s.Name] {
			return fmt.Errorf("duplicate sensor name %q", s.Name)
		}
		seenSensors[s.Name] = true
	}
	return nil
}
