package simviewer

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// InputButtonSink receives PressInputButton calls for keys the viewer
// forwards into a running MouseInterface; control.Interface satisfies
// this directly.
type InputButtonSink interface {
	PressInputButton(button int)
}

// Config configures one RunDesktop invocation.
type Config struct {
	Title   string
	Scene   *Scene
	Buttons InputButtonSink // may be nil

	// OnFrame runs once per frame before drawing, useful for the
	// caller to advance its own simulation loop in lockstep with
	// vsync and read keyboard state for manual driving; may be nil.
	OnFrame func(dt float64, window *glfw.Window)
}

// RunDesktop opens a window and blocks, drawing Config.Scene every
// frame until the window is closed, the same loop shape as the
// teacher's RunDesktop: lock the OS thread, init glfw/gl, init audio,
// then loop on ShouldClose.
func RunDesktop(cfg Config) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Title)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	audio, err := NewAudioSystem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		audio = nil
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	input := NewInput()
	cam := Camera{
		X:    float64(cfg.Scene.Maze.Width()) * cfg.Scene.CellSize.Meters() / 2,
		Y:    float64(cfg.Scene.Maze.Height()) * cfg.Scene.CellSize.Meters() / 2,
		Zoom: DefaultZoom,
	}

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()

		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}
		PanAndZoom(&cam, window, dt)
		if cfg.Buttons != nil && input.JustPressed(window, glfw.KeySpace) {
			cfg.Buttons.PressInputButton(0)
			if audio != nil {
				audio.PlayChirp()
			}
		}

		if cfg.OnFrame != nil {
			cfg.OnFrame(dt, window)
		}

		fbW, fbH := window.GetFramebufferSize()
		rend.BeginFrame(cam, fbW, fbH, 0.05, 0.05, 0.07)
		cfg.Scene.Draw(rend)

		window.SwapBuffers()
	}
	return nil
}
