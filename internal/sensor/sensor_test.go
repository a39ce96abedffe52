package sensor

import (
	"math"
	"testing"

	"github.com/mmsim/micromouse-core/internal/maze"
	"github.com/mmsim/micromouse-core/internal/units"
)

func openMaze(t *testing.T, width, height int) *maze.Maze {
	t.Helper()
	columns := make([][]maze.BasicTile, width)
	for x := range columns {
		columns[x] = make([]maze.BasicTile, height)
		for y := range columns[x] {
			columns[x][y] = maze.NewBasicTile(nil)
		}
	}
	m, err := maze.NewMaze(columns, true)
	if err != nil {
		t.Fatalf("NewMaze: %v", err)
	}
	return m
}

func TestReadHitsOuterWall(t *testing.T) {
	m := openMaze(t, 2, 2)
	cellSize := units.Length(0.18)

	origin := units.Cartesian{X: units.Length(0.09), Y: units.Length(0.09)}
	reading := Read(origin, units.Angle(0), units.Length(1), m, cellSize)

	// The east outer wall sits at x = 2*cellSize = 0.36m; from x=0.09
	// travelling east, the ray should stop near 0.27m, well short of
	// the 1m max range.
	if float64(reading) >= 1 {
		t.Fatalf("reading = %v, want < 1 (should hit the outer wall)", reading)
	}
	if math.Abs(float64(reading)-0.27) > 0.01 {
		t.Errorf("reading = %v, want near 0.27", reading)
	}
}

func TestReadClampsToMaxRangeInLargeOpenMaze(t *testing.T) {
	m := openMaze(t, 50, 50)
	cellSize := units.Length(0.18)
	origin := units.Cartesian{X: units.Length(0.09), Y: units.Length(0.09)}

	reading := Read(origin, units.Angle(0), units.Length(0.3), m, cellSize)
	if float64(reading) != 0.3 {
		t.Errorf("reading = %v, want clamped to max range 0.3", reading)
	}
}

func TestReadZeroCellSizeReturnsMaxRange(t *testing.T) {
	m := openMaze(t, 2, 2)
	reading := Read(units.Cartesian{}, units.Angle(0), units.Length(1), m, 0)
	if float64(reading) != 1 {
		t.Errorf("reading = %v, want max range when cellSize is zero", reading)
	}
}

// TestReadConeDetectsWallOffCenterline checks the §4.G requirement
// that a wall within the FOV cone but not on the sensor's centerline
// still gets detected. The sensor sits at the center of a cell whose
// north edge is walled and east edge is open; pointed 35 degrees off
// the cell's diagonal, a lone ray exits through the open east edge and
// sails on, but several rays within its 25-degree half-FOV are steep
// enough to cross the walled north edge first.
func TestReadConeDetectsWallOffCenterline(t *testing.T) {
	origin := units.Cartesian{X: units.Length(0.09), Y: units.Length(0.09)}
	cellSize := units.Length(0.18)
	columns := make([][]maze.BasicTile, 5)
	columns[0] = []maze.BasicTile{
		maze.NewBasicTile(map[maze.Direction]bool{maze.North: true}),
		maze.NewBasicTile(nil),
		maze.NewBasicTile(nil),
	}
	for x := 1; x < 5; x += 1 {
		columns[x] = []maze.BasicTile{maze.NewBasicTile(nil), maze.NewBasicTile(nil), maze.NewBasicTile(nil)}
	}
	m, err := maze.NewMaze(columns, true)
	if err != nil {
		t.Fatalf("NewMaze: %v", err)
	}

	dir := units.DegreesToAngle(35)
	halfFov := units.DegreesToAngle(25)
	maxRange := units.Length(0.3)

	straight := Read(origin, dir, maxRange, m, cellSize)
	if float64(straight) < 0.29 {
		t.Fatalf("single straight-ahead ray unexpectedly hit something near %v; test setup invalid", straight)
	}

	cone := ReadCone(origin, dir, halfFov, maxRange, m, cellSize)
	if float64(cone) >= 0.2 {
		t.Errorf("ReadCone = %v, want it to detect the walled north edge via an off-centerline ray within its FOV", cone)
	}
}

func TestUpdateReadingSetsLastReading(t *testing.T) {
	m := openMaze(t, 2, 2)
	s := NewSensor(units.Cartesian{X: units.Length(0.09), Y: units.Length(0.09)}, units.Angle(0), units.DegreesToAngle(15), units.Length(1), units.Duration(0))
	s.UpdateReading(units.Cartesian{X: units.Length(0.09), Y: units.Length(0.09)}, units.Angle(0), m, units.Length(0.18))
	if s.LastReading() >= units.Length(1) {
		t.Errorf("LastReading = %v, want it updated below max range", s.LastReading())
	}
}
