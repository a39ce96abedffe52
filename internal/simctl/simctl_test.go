package simctl

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmsim/micromouse-core/internal/maze"
	"github.com/mmsim/micromouse-core/internal/mouse"
	"github.com/mmsim/micromouse-core/internal/simcontext"
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

func buildTestMouse(t *testing.T) *mouse.Mouse {
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
	mz, err := maze.NewMaze(columns, true)
	if err != nil {
		t.Fatalf("NewMaze: %v", err)
	}

	cellSize := units.Length(0.18)
	m, err := desc.Build(units.Cartesian{X: cellSize / 2, Y: cellSize / 2}, units.Angle(0), mz, cellSize)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return m
}

// TestDriverStepsMouseAndTicksRuntime checks the two things a real
// discrete-interface controller depends on: the mouse's integrator
// actually advances over wall-clock time, and every step broadcasts on
// the RuntimeState so a blocked WaitUntil wakes up.
func TestDriverStepsMouseAndTicksRuntime(t *testing.T) {
	m := buildTestMouse(t)
	if err := m.MoveForward(1.0); err != nil {
		t.Fatalf("MoveForward: %v", err)
	}
	startX := m.CurrentTranslation().X

	clock := simcontext.NewClock()
	rt := simcontext.NewRuntimeState()
	d := NewDriver(m, clock, rt, units.Duration(0.001))

	stop := make(chan struct{})
	go d.Run(stop)
	defer close(stop)

	woke := make(chan struct{})
	go func() {
		rt.WaitUntil(func() bool { return m.CurrentTranslation().X > startX })
		close(woke)
	}()

	select {
	case <-woke:
	case <-time.After(2 * time.Second):
		t.Fatal("WaitUntil never woke; driver did not advance the mouse and tick the runtime")
	}
}

// TestDriverSkipsUpdatesWhilePaused checks that a paused Clock halts
// the physics step without stopping the tick broadcast itself (a
// paused run still lets blocked callers re-check their condition).
func TestDriverSkipsUpdatesWhilePaused(t *testing.T) {
	m := buildTestMouse(t)
	if err := m.MoveForward(1.0); err != nil {
		t.Fatalf("MoveForward: %v", err)
	}

	clock := simcontext.NewClock()
	clock.Pause()
	rt := simcontext.NewRuntimeState()
	d := NewDriver(m, clock, rt, units.Duration(0.001))

	stop := make(chan struct{})
	go d.Run(stop)
	defer close(stop)

	start := m.CurrentTranslation()
	time.Sleep(50 * time.Millisecond)
	if end := m.CurrentTranslation(); !start.ApproxEqual(end) {
		t.Errorf("mouse moved from %+v to %+v while paused, want unchanged", start, end)
	}
}

// TestDriverStopsOnQuit checks that RuntimeState.Quit() causes Run to
// return promptly rather than ticking forever.
func TestDriverStopsOnQuit(t *testing.T) {
	m := buildTestMouse(t)
	clock := simcontext.NewClock()
	rt := simcontext.NewRuntimeState()
	d := NewDriver(m, clock, rt, units.Duration(0.001))

	done := make(chan struct{})
	go func() {
		d.Run(make(chan struct{}))
		close(done)
	}()

	rt.Quit()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
}
