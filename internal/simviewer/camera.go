package simviewer

const (
	MinZoom     = 40.0  // screen pixels per world metre
	MaxZoom     = 900.0
	DefaultZoom = 260.0
)

// Camera maps world metres to screen pixels: X/Y are the world point
// centred on screen, Zoom is pixels per metre.
type Camera struct {
	X, Y float64
	Zoom float64
}

func (c *Camera) Clamp() {
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}
}
