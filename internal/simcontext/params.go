package simcontext

import "github.com/mmsim/micromouse-core/internal/units"

// Params is the immutable set of run-wide configuration values: the
// maze file, the mouse description file, and the physical/time
// constants the simulation holds fixed for the life of a run. It is
// built once at startup (by cmd/simviewer or a test harness) and
// passed by value from then on.
type Params struct {
	MazeFile  string
	MouseFile string

	CellSize units.Length

	// AllowOmniscience gates the omniscience-only MouseInterface
	// operations (getting the true maze, the mouse's true pose). A
	// competition run sets this false; a development/debug run may
	// set it true.
	AllowOmniscience bool

	// RandomSeed seeds the simulation's PRNG (maze generation, sensor
	// noise if ever enabled). Zero means "derive from wall clock".
	RandomSeed uint64

	// TickRate is the fixed physics step used when driving the
	// simulation off of Clock rather than a caller-supplied dt.
	TickRate units.Duration
}

// DefaultParams returns the simulator's baseline configuration: a
// standard quarter-size micromouse cell and a 1kHz physics tick,
// omniscience disabled.
func DefaultParams() Params {
	return Params{
		CellSize:         units.Length(0.18),
		AllowOmniscience: false,
		TickRate:         units.Duration(0.001),
	}
}
