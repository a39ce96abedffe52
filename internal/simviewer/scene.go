package simviewer

import (
	"github.com/mmsim/micromouse-core/internal/maze"
	"github.com/mmsim/micromouse-core/internal/mazegraphic"
	"github.com/mmsim/micromouse-core/internal/mouse"
	"github.com/mmsim/micromouse-core/internal/units"
)

var (
	wallColor      = Color{0.9, 0.9, 0.95, 1}
	bodyColor      = Color{0.2, 0.7, 0.95, 1}
	collisionColor = Color{1, 1, 1, 0.6}
	sensorColor    = Color{1, 0.55, 0.1, 0.35}
	gridColor      = Color{0.25, 0.25, 0.3, 1}
)

// overlayPalette maps a controller-declared tile color byte to an RGB
// tint, an 8-color wheel since the overlay leaves the byte's meaning
// up to the controller.
func overlayPalette(b byte) Color {
	palette := [8]Color{
		{0.8, 0.2, 0.2, 0.55},
		{0.2, 0.8, 0.2, 0.55},
		{0.2, 0.4, 0.9, 0.55},
		{0.9, 0.9, 0.2, 0.55},
		{0.8, 0.2, 0.8, 0.55},
		{0.2, 0.8, 0.8, 0.55},
		{0.9, 0.55, 0.2, 0.55},
		{0.6, 0.6, 0.6, 0.55},
	}
	return palette[int(b)%len(palette)]
}

// Scene draws one frame's view of a running simulation: ground-truth
// maze walls, the controller's overlay, and the mouse's geometry.
type Scene struct {
	Maze     *maze.Maze
	Overlay  *mazegraphic.Overlay
	Mouse    *mouse.Mouse
	CellSize units.Length
}

func pt(c units.Cartesian) [2]float32 {
	return [2]float32{float32(c.X.Meters()), float32(c.Y.Meters())}
}

func (sc *Scene) Draw(r *Renderer) {
	cs := sc.CellSize.Meters()

	// Tile grid + overlay fill, one quad per tile.
	quadSegs := make([][4]float32, 0, sc.Maze.Width()*sc.Maze.Height()*2)
	for x := 0; x < sc.Maze.Width(); x++ {
		for y := 0; y < sc.Maze.ColumnHeight(x); y++ {
			x0, y0 := float32(float64(x)*cs), float32(float64(y)*cs)
			x1, y1 := float32(float64(x+1)*cs), float32(float64(y+1)*cs)

			belief := sc.Overlay.TileAt(x, y)
			if belief.HasColor {
				r.FilledConvexPolygon([][2]float32{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}, overlayPalette(belief.Color))
			}

			quadSegs = append(quadSegs, [4]float32{x0, y0, x1, y0}, [4]float32{x0, y0, x0, y1})
		}
	}
	r.Lines(quadSegs, gridColor)

	// True walls.
	wallSegs := make([][4]float32, 0, 256)
	for x := 0; x < sc.Maze.Width(); x++ {
		for y := 0; y < sc.Maze.ColumnHeight(x); y++ {
			x0, y0 := float32(float64(x)*cs), float32(float64(y)*cs)
			x1, y1 := float32(float64(x+1)*cs), float32(float64(y+1)*cs)
			if sc.Maze.HasWall(x, y, maze.North) {
				wallSegs = append(wallSegs, [4]float32{x0, y1, x1, y1})
			}
			if sc.Maze.HasWall(x, y, maze.South) {
				wallSegs = append(wallSegs, [4]float32{x0, y0, x1, y0})
			}
			if sc.Maze.HasWall(x, y, maze.East) {
				wallSegs = append(wallSegs, [4]float32{x1, y0, x1, y1})
			}
			if sc.Maze.HasWall(x, y, maze.West) {
				wallSegs = append(wallSegs, [4]float32{x0, y0, x0, y1})
			}
		}
	}
	r.Lines(wallSegs, wallColor)

	// Controller-declared walls, drawn inset so they're visible
	// alongside (not on top of) the ground truth.
	declaredSegs := make([][4]float32, 0, 64)
	inset := float32(cs) * 0.08
	for x := 0; x < sc.Maze.Width(); x++ {
		for y := 0; y < sc.Maze.ColumnHeight(x); y++ {
			belief := sc.Overlay.TileAt(x, y)
			x0, y0 := float32(float64(x)*cs), float32(float64(y)*cs)
			x1, y1 := float32(float64(x+1)*cs), float32(float64(y+1)*cs)
			if belief.DeclaredWalls[maze.North] {
				declaredSegs = append(declaredSegs, [4]float32{x0, y1 - inset, x1, y1 - inset})
			}
			if belief.DeclaredWalls[maze.South] {
				declaredSegs = append(declaredSegs, [4]float32{x0, y0 + inset, x1, y0 + inset})
			}
			if belief.DeclaredWalls[maze.East] {
				declaredSegs = append(declaredSegs, [4]float32{x1 - inset, y0, x1 - inset, y1})
			}
			if belief.DeclaredWalls[maze.West] {
				declaredSegs = append(declaredSegs, [4]float32{x0 + inset, y0, x0 + inset, y1})
			}
		}
	}
	r.Lines(declaredSegs, Color{0.9, 0.3, 0.3, 1})

	sc.drawMouse(r)
}

func (sc *Scene) drawMouse(r *Renderer) {
	m := sc.Mouse
	m.Lock()
	bodyPolys := m.CurrentBodyPolygons()
	collision := m.CurrentCollisionPolygon()
	pos := m.CurrentTranslation()
	dir := m.CurrentRotation()
	sensorNames := m.SensorNames()
	m.Unlock()

	for _, poly := range bodyPolys {
		verts := make([][2]float32, len(poly))
		for i, v := range poly {
			verts[i] = pt(v)
		}
		r.FilledConvexPolygon(verts, bodyColor)
	}

	collisionVerts := make([][2]float32, len(collision))
	for i, v := range collision {
		collisionVerts[i] = pt(v)
	}
	r.PolygonOutline(collisionVerts, collisionColor)

	for _, name := range sensorNames {
		s, ok := m.Sensor(name)
		if !ok {
			continue
		}
		reading := s.LastReading()
		if reading <= 0 {
			continue
		}
		view := s.ViewPolygon(pos, dir, 8)
		verts := make([][2]float32, len(view))
		for i, v := range view {
			verts[i] = pt(v)
		}
		r.FilledConvexPolygon(verts, sensorColor)
	}
}
