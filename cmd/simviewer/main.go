// Command simviewer opens a window showing a maze, a mouse built from
// a description file, and the mouse's sensor cones, and lets a human
// drive it manually (I/K forward-back, J/L turn) to sanity-check a
// maze/mouse pair visually. WASD/arrows pan the camera and E/R zoom.
//
// It is a debug tool, not a controller: it drives the Mouse directly
// rather than going through a MouseInterface, since there is no
// controller program to mediate.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/mmsim/micromouse-core/internal/maze"
	"github.com/mmsim/micromouse-core/internal/mazegraphic"
	"github.com/mmsim/micromouse-core/internal/mouse"
	"github.com/mmsim/micromouse-core/internal/simcontext"
	"github.com/mmsim/micromouse-core/internal/simctl"
	"github.com/mmsim/micromouse-core/internal/simviewer"
	"github.com/mmsim/micromouse-core/internal/units"
)

func main() {
	mazePath := flag.String("maze", "", "path to a maze file")
	mousePath := flag.String("mouse", "", "path to a mouse description file")
	cellSize := flag.Float64("cellsize", 0.18, "maze cell size in metres")
	driveFraction := flag.Float64("speed", 0.6, "manual-drive fraction of max wheel speed")
	flag.Parse()

	if *mazePath == "" || *mousePath == "" {
		fmt.Fprintln(os.Stderr, "usage: simviewer -maze <file> -mouse <file>")
		os.Exit(1)
	}

	trueMaze, err := maze.Load(*mazePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load maze: %v\n", err)
		os.Exit(1)
	}

	desc, err := mouse.ParseMouseFile(*mousePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load mouse: %v\n", err)
		os.Exit(1)
	}

	cs := units.Length(*cellSize)
	m, err := desc.Build(units.Cartesian{X: cs / 2, Y: cs / 2}, units.Angle(0), trueMaze, cs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build mouse: %v\n", err)
		os.Exit(1)
	}

	overlay := mazegraphic.NewOverlay(nil)
	scene := &simviewer.Scene{Maze: trueMaze, Overlay: overlay, Mouse: m, CellSize: cs}

	// The physics step runs on its own ticker, independent of the
	// render frame rate, the same separation a real competition run
	// needs between "how often does the integrator step" and "how
	// often does a controller's discrete move get woken up."
	clock := simcontext.NewClock()
	runtime := simcontext.NewRuntimeState()
	driver := simctl.NewDriver(m, clock, runtime, simcontext.DefaultParams().TickRate)
	stopDriver := make(chan struct{})
	go driver.Run(stopDriver)
	defer close(stopDriver)
	defer runtime.Quit()

	cfg := simviewer.Config{
		Title: fmt.Sprintf("simviewer: %s", desc.Name),
		Scene: scene,
		OnFrame: func(dt float64, window *glfw.Window) {
			var forwardFactor, turnFactor float64
			if window.GetKey(glfw.KeyI) == glfw.Press {
				forwardFactor += 1.0
			}
			if window.GetKey(glfw.KeyK) == glfw.Press {
				forwardFactor -= 1.0
			}
			if window.GetKey(glfw.KeyJ) == glfw.Press {
				turnFactor += 1.0
			}
			if window.GetKey(glfw.KeyL) == glfw.Press {
				turnFactor -= 1.0
			}
			if forwardFactor == 0 && turnFactor == 0 {
				m.Stop()
			} else {
				m.SetWheelSpeedsForMovement(*driveFraction, forwardFactor, turnFactor)
			}
		},
	}

	if err := simviewer.RunDesktop(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "simviewer: %v\n", err)
		os.Exit(1)
	}
}
