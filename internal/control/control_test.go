package control

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmsim/micromouse-core/internal/maze"
	"github.com/mmsim/micromouse-core/internal/mazegraphic"
	"github.com/mmsim/micromouse-core/internal/mouse"
	"github.com/mmsim/micromouse-core/internal/simcontext"
	"github.com/mmsim/micromouse-core/internal/simerrors"
	"github.com/mmsim/micromouse-core/internal/units"
)

const testMouseJSON = `{
  "name": "test",
  "bodyPolygons": [{"vertices": [{"x": -0.03, "y": -0.03}, {"x": 0.03, "y": -0.03}, {"x": 0.03, "y": 0.03}, {"x": -0.03, "y": 0.03}]}],
  "wheels": [
    {"name": "left", "position": {"x": 0, "y": 0.03}, "directionDegrees": 0, "radiusMeters": 0.015, "maxRpm": 3000, "encoder": "absolute", "ticksPerRevolution": 360},
    {"name": "right", "position": {"x": 0, "y": -0.03}, "directionDegrees": 0, "radiusMeters": 0.015, "maxRpm": 3000, "encoder": "absolute", "ticksPerRevolution": 360}
  ],
  "sensors": [
    {"name": "front", "position": {"x": 0.03, "y": 0}, "directionDegrees": 0, "halfFovDegrees": 5, "maxRangeMeters": 1, "readDurationSeconds": 0}
  ]
}`

func buildTestRig(t *testing.T) (*Interface, *mouse.Mouse, *simcontext.RuntimeState) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mouse.json")
	if err := os.WriteFile(path, []byte(testMouseJSON), 0o644); err != nil {
		t.Fatalf("write mouse json: %v", err)
	}
	desc, err := mouse.ParseMouseFile(path)
	if err != nil {
		t.Fatalf("ParseMouseFile: %v", err)
	}

	columns := make([][]maze.BasicTile, 4)
	for x := range columns {
		columns[x] = make([]maze.BasicTile, 4)
		for y := range columns[x] {
			columns[x][y] = maze.NewBasicTile(nil)
		}
	}
	m, err := maze.NewMaze(columns, true)
	if err != nil {
		t.Fatalf("NewMaze: %v", err)
	}

	cellSize := units.Length(0.18)
	mouseInst, err := desc.Build(units.Cartesian{X: cellSize / 2, Y: cellSize / 2}, units.Angle(0), m, cellSize)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	overlay := mazegraphic.NewOverlay(nil)
	clock := simcontext.NewClock()
	rt := simcontext.NewRuntimeState()
	logger := simcontext.NewLogger("test")

	iface := New(m, mouseInst, overlay, clock, rt, logger, Options{
		InterfaceType:    simerrors.Discrete,
		AllowOmniscience: false,
		DiscreteForwardFraction: 0.5,
		DiscreteTurnFraction:    0.5,
	}, 1)
	return iface, mouseInst, rt
}

func TestWrongInterfaceTypeRejectsDiscreteCall(t *testing.T) {
	iface, _, _ := buildTestRig(t)
	iface.options.InterfaceType = simerrors.Continuous

	_, err := iface.WallFront()
	if err == nil {
		t.Fatal("WallFront succeeded with a continuous-only interface, want error")
	}
	wrongType, ok := err.(*simerrors.WrongInterfaceTypeError)
	if !ok {
		t.Fatalf("error type = %T, want *WrongInterfaceTypeError", err)
	}
	if wrongType.Required != simerrors.Discrete {
		t.Errorf("Required = %v, want Discrete", wrongType.Required)
	}
}

func TestOmniscienceForbiddenByDefault(t *testing.T) {
	iface, _, _ := buildTestRig(t)
	_, err := iface.CurrentXTile()
	if err == nil {
		t.Fatal("CurrentXTile succeeded without omniscience, want error")
	}
	if _, ok := err.(*simerrors.OmniscienceForbiddenError); !ok {
		t.Fatalf("error type = %T, want *OmniscienceForbiddenError", err)
	}
}

func TestContinuousOnlyCallRejectedOnDiscreteInterface(t *testing.T) {
	iface, _, _ := buildTestRig(t)
	_, err := iface.ReadGyro()
	if err == nil {
		t.Fatal("ReadGyro succeeded on a discrete interface, want error")
	}
	if _, ok := err.(*simerrors.WrongInterfaceTypeError); !ok {
		t.Fatalf("error type = %T, want *WrongInterfaceTypeError", err)
	}
}

// runPhysics drives the mouse's integrator and the runtime's tick
// broadcast in the background until stop is closed.
func runPhysics(m *mouse.Mouse, rt *simcontext.RuntimeState, stop chan struct{}) {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.Update(units.Duration(0.001))
			rt.Tick()
		}
	}
}

func TestMoveForwardAdvancesOneTile(t *testing.T) {
	iface, m, rt := buildTestRig(t)
	startX, _ := m.DiscretizedTile()

	stop := make(chan struct{})
	go runPhysics(m, rt, stop)
	defer close(stop)

	done := make(chan error, 1)
	go func() { done <- iface.MoveForward(1) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("MoveForward: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("MoveForward did not complete within 5s")
	}

	endX, _ := m.DiscretizedTile()
	if endX != startX+1 {
		t.Errorf("ending tile x = %d, want %d", endX, startX+1)
	}
}

func TestTurnLeftRotates90Degrees(t *testing.T) {
	iface, m, rt := buildTestRig(t)
	start := m.CurrentRotation()

	stop := make(chan struct{})
	go runPhysics(m, rt, stop)
	defer close(stop)

	done := make(chan error, 1)
	go func() { done <- iface.TurnLeft(1) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("TurnLeft: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("TurnLeft did not complete within 5s")
	}

	delta := (m.CurrentRotation() - start).Degrees()
	if delta < 89 || delta > 91 {
		t.Errorf("rotation delta = %v degrees, want ~90", delta)
	}
}

// ReadSensor must normalize to 0 = nothing within range, 1 = an
// obstacle at zero range (§3/§4.G) -- the inverse of the raw
// distance-over-max-range fraction.
func TestReadSensorNormalizationIsInverseOfRawDistance(t *testing.T) {
	iface, m, _ := buildTestRig(t)
	iface.options.InterfaceType = simerrors.Continuous

	m.Update(units.Duration(0))

	got, err := iface.ReadSensor("front")
	if err != nil {
		t.Fatalf("ReadSensor: %v", err)
	}

	s, ok := m.Sensor("front")
	if !ok {
		t.Fatal("sensor 'front' missing")
	}
	raw := s.LastReading()
	maxRange := s.MaxRange()
	want := 1 - float64(raw/maxRange)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ReadSensor = %v, want %v (1 - raw/maxRange)", got, want)
	}
	if raw < maxRange && got <= 0 {
		t.Errorf("ReadSensor = %v for a wall seen at %v < max range %v, want > 0", got, raw, maxRange)
	}
}
