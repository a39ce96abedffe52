package simviewer

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Input tracks previous-frame key state to detect just-pressed edges,
// the same bookkeeping the teacher's Input type uses for JustPressed.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// PanAndZoom moves the camera with WASD/arrow keys and zooms with E/R.
func PanAndZoom(cam *Camera, window *glfw.Window, dt float64) {
	panRate := 2.0 // metres/sec
	if window.GetKey(glfw.KeyW) == glfw.Press || window.GetKey(glfw.KeyUp) == glfw.Press {
		cam.Y -= panRate * dt
	}
	if window.GetKey(glfw.KeyS) == glfw.Press || window.GetKey(glfw.KeyDown) == glfw.Press {
		cam.Y += panRate * dt
	}
	if window.GetKey(glfw.KeyA) == glfw.Press || window.GetKey(glfw.KeyLeft) == glfw.Press {
		cam.X -= panRate * dt
	}
	if window.GetKey(glfw.KeyD) == glfw.Press || window.GetKey(glfw.KeyRight) == glfw.Press {
		cam.X += panRate * dt
	}

	zoomRate := 1.4
	if window.GetKey(glfw.KeyE) == glfw.Press {
		cam.Zoom *= 1 + zoomRate*dt
	}
	if window.GetKey(glfw.KeyR) == glfw.Press {
		cam.Zoom *= 1 - zoomRate*dt
	}
	cam.Clamp()
}
