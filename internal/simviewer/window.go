// Package simviewer is an optional glfw/gl desktop consumer of the
// simulator core: it draws the true maze, the mouse's body and
// sensors, and the controller's belief overlay, and forwards a
// handful of keys into the running MouseInterface as input buttons.
// Nothing in internal/ or cmd/mazecheck depends on this package.
package simviewer

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	WindowWidth  = 900
	WindowHeight = 900
)

func initWindow(title string) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(WindowWidth, WindowHeight, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}
