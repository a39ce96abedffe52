// Package simctl is the tick driver: it steps a Mouse's integrator at
// a fixed simulated-time rate and broadcasts each step on a
// RuntimeState, independent of whatever is drawing frames or driving a
// controller. It is the headless generalization of the teacher's
// RunDesktop render loop (main.go: wall-clock dt each frame, clamped,
// fed to World.Update) into a dedicated physics thread a viewer or a
// competition runner starts once and leaves running.
package simctl

import (
	"time"

	"github.com/mmsim/micromouse-core/internal/mouse"
	"github.com/mmsim/micromouse-core/internal/simcontext"
	"github.com/mmsim/micromouse-core/internal/units"
)

// Driver ticks a Mouse's integrator by a fixed simulated-time step on
// every real-time tick of that same duration, scaled by the Clock's
// speed multiplier and skipped while the Clock is paused. Every tick
// also calls RuntimeState.Tick, which is what wakes a discrete
// interface's blocked Delay/MoveForward/TurnLeft/TurnRight/TurnAround
// call to re-check whether it has reached its target.
type Driver struct {
	mouse    *mouse.Mouse
	clock    *simcontext.Clock
	runtime  *simcontext.RuntimeState
	tickRate units.Duration
}

// NewDriver builds a Driver for m, using tickRate as both the
// simulated step size and the real-time ticker period (a tickRate of
// zero or less falls back to a 1kHz step, matching
// simcontext.DefaultParams).
func NewDriver(m *mouse.Mouse, clock *simcontext.Clock, runtime *simcontext.RuntimeState, tickRate units.Duration) *Driver {
	if tickRate <= 0 {
		tickRate = units.Duration(0.001)
	}
	return &Driver{mouse: m, clock: clock, runtime: runtime, tickRate: tickRate}
}

// Run blocks, stepping the physics loop once per tick until stop is
// closed or the driver's RuntimeState is told to Quit.
func (d *Driver) Run(stop <-chan struct{}) {
	interval := time.Duration(float64(d.tickRate) * float64(time.Second))
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if d.runtime.Quitting() {
				return
			}
			if !d.clock.IsPaused() {
				d.mouse.Update(d.tickRate * units.Duration(d.clock.Speed()))
			}
			d.runtime.Tick()
		}
	}
}
