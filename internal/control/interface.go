// Package control implements MouseInterface, the dual
// discrete/continuous API a controller drives the simulated mouse
// through. It is a direct port of sim::MouseInterface
// (original_source/src/sim/MouseInterface.h): the same four operation
// groups (any-interface, continuous-only, discrete-only, omniscience),
// the same ENSURE_*-style guards — here returning typed errors instead
// of aborting the process, since this is a library a controller links
// against rather than a standalone binary.
package control

import (
	"sync"

	"github.com/mmsim/micromouse-core/internal/maze"
	"github.com/mmsim/micromouse-core/internal/mazegraphic"
	"github.com/mmsim/micromouse-core/internal/mouse"
	"github.com/mmsim/micromouse-core/internal/simcontext"
	"github.com/mmsim/micromouse-core/internal/simerrors"
)

// Options configures a MouseInterface instance: which half of the
// dual interface the controller is allowed to call, whether
// omniscience operations are permitted, and which runes setTileText
// accepts.
type Options struct {
	InterfaceType     simerrors.InterfaceType
	AllowOmniscience  bool
	AllowableTileText []rune

	// DiscreteForwardFraction is the fraction of the mouse's max speed
	// (§4.F's fractionOfMaxSpeed) the discrete moveForward sugar drives
	// at; DiscreteTurnFraction is the fraction turnLeft/turnRight/
	// turnAround drive at. Both are in [0, 1].
	DiscreteForwardFraction float64
	DiscreteTurnFraction    float64
}

// Interface is one controller's bound view of a running simulation:
// the ground-truth maze, the physical mouse, the controller's belief
// overlay, and the shared clock/runtime used for delay() and the
// discrete blocking moves.
type Interface struct {
	trueMaze *maze.Maze
	mouse    *mouse.Mouse
	overlay  *mazegraphic.Overlay
	clock    *simcontext.Clock
	runtime  *simcontext.RuntimeState
	logger   *simcontext.Logger
	options  Options

	rng *simcontext.Rand

	mu           sync.Mutex
	inputButtons map[int]bool
}

// New builds a MouseInterface bound to m/mz, using overlay as the
// controller's maze-belief store. randomSeed seeds GetRandom's stream.
func New(trueMaze *maze.Maze, m *mouse.Mouse, overlay *mazegraphic.Overlay, clock *simcontext.Clock, runtime *simcontext.RuntimeState, logger *simcontext.Logger, opts Options, randomSeed uint64) *Interface {
	if opts.DiscreteForwardFraction <= 0 {
		opts.DiscreteForwardFraction = 0.5
	}
	if opts.DiscreteTurnFraction <= 0 {
		opts.DiscreteTurnFraction = 0.5
	}
	return &Interface{
		trueMaze:     trueMaze,
		mouse:        m,
		overlay:      overlay,
		clock:        clock,
		runtime:      runtime,
		logger:       logger,
		options:      opts,
		rng:          simcontext.NewRand(randomSeed),
		inputButtons: make(map[int]bool),
	}
}

func (i *Interface) ensureDiscrete(op string) error {
	if i.options.InterfaceType != simerrors.Discrete {
		return &simerrors.WrongInterfaceTypeError{Op: op, Required: simerrors.Discrete}
	}
	return nil
}

func (i *Interface) ensureContinuous(op string) error {
	if i.options.InterfaceType != simerrors.Continuous {
		return &simerrors.WrongInterfaceTypeError{Op: op, Required: simerrors.Continuous}
	}
	return nil
}

func (i *Interface) ensureOmniscience(op string) error {
	if !i.options.AllowOmniscience {
		return &simerrors.OmniscienceForbiddenError{Op: op}
	}
	return nil
}

// ----- Any-interface methods -----

func (i *Interface) Debug(s string) { i.logger.Infof("debug: %s", s) }
func (i *Interface) Info(s string)  { i.logger.Infof("info: %s", s) }
func (i *Interface) Warn(s string)  { i.logger.Warnf("warn: %s", s) }
func (i *Interface) Error(s string) { i.logger.Warnf("error: %s", s) }

// GetRandom returns a uniform random value in [0,1), seeded once at
// Interface construction for reproducible controller runs.
func (i *Interface) GetRandom() float64 { return i.rng.Float64() }

// Millis returns the number of milliseconds of simulated clock time
// that have passed, adjusted for the clock's speed/pause state.
func (i *Interface) Millis() int64 { return i.clock.Elapsed().Milliseconds() }

// Delay blocks the calling goroutine for the given number of
// simulated milliseconds, or until Quit is called.
func (i *Interface) Delay(milliseconds int) error {
	target := i.clock.Elapsed().Milliseconds() + int64(milliseconds)
	return i.runtime.WaitUntil(func() bool {
		return i.clock.Elapsed().Milliseconds() >= target
	})
}

// Quit requests cooperative shutdown of every blocked call on this Interface.
func (i *Interface) Quit() { i.runtime.Quit() }

func (i *Interface) SetTileColor(x, y int, color byte) { i.overlay.SetTileColor(x, y, color) }
func (i *Interface) ClearTileColor(x, y int)            { i.overlay.ClearTileColor(x, y) }
func (i *Interface) ClearAllTileColor()                 { i.overlay.ClearAllTileColor() }

func (i *Interface) SetTileText(x, y int, text string) error { return i.overlay.SetTileText(x, y, text) }
func (i *Interface) ClearTileText(x, y int)                  { i.overlay.ClearTileText(x, y) }
func (i *Interface) ClearAllTileText()                       { i.overlay.ClearAllTileText() }

func (i *Interface) SetTileFogginess(x, y int, foggy bool) { i.overlay.SetTileFogginess(x, y, foggy) }

func (i *Interface) DeclareWall(x, y int, direction byte, wallExists bool) error {
	d, ok := maze.DirectionFromChar(direction)
	if !ok {
		return &simerrors.OutOfRangeError{Param: "direction", Value: float64(direction)}
	}
	i.overlay.DeclareWall(x, y, d, wallExists)
	return nil
}

func (i *Interface) UndeclareWall(x, y int, direction byte) error {
	d, ok := maze.DirectionFromChar(direction)
	if !ok {
		return &simerrors.OutOfRangeError{Param: "direction", Value: float64(direction)}
	}
	i.overlay.UndeclareWall(x, y, d)
	return nil
}

func (i *Interface) DeclareTileDistance(x, y, distance int) { i.overlay.DeclareTileDistance(x, y, distance) }
func (i *Interface) UndeclareTileDistance(x, y int)         { i.overlay.UndeclareTileDistance(x, y) }

// ResetPosition teleports the mouse back to its initial pose. This is
// an omniscience-adjacent reset available on any interface, matching
// the reference (it is listed under "any interface" methods there).
func (i *Interface) ResetPosition() {
	i.mouse.Teleport(i.mouse.InitialTranslation(), i.mouse.InitialRotation())
}

func (i *Interface) InputButtonPressed(button int) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.inputButtons[button]
}

func (i *Interface) AcknowledgeInputButtonPressed(button int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.inputButtons, button)
}

// PressInputButton is called by the viewer/driver, not the
// controller, to simulate an operator pressing a physical button.
func (i *Interface) PressInputButton(button int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.inputButtons[button] = true
}
