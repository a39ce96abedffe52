package simviewer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO
// offset parameters.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// maxShapeVerts bounds the per-frame streaming vertex buffer; a maze
// and mouse this simulator draws never come close to this many
// vertices in one frame.
const maxShapeVerts = 1 << 16

// Renderer draws flat-colored 2D geometry (wall segments, polygons,
// overlay tiles) in world-metre space, following the VAO/VBO/uniform
// setup the teacher's Renderer uses for its chunk program, simplified
// to a single program since nothing here needs textures.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uCamera     int32
	uZoom       int32
	uResolution int32

	// vertBuf is a reusable per-frame accumulator: 6 float32s per
	// vertex (x, y, r, g, b, a).
	vertBuf []float32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(shapeVertSrc, shapeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("shape program: %w", err)
	}

	r := &Renderer{prog: prog, vertBuf: make([]float32, 0, 4096)}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(6 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxShapeVerts*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	r.vao = vao
	r.vbo = vbo

	gl.UseProgram(prog)
	r.uCamera = gl.GetUniformLocation(prog, gl.Str("uCamera\x00"))
	r.uZoom = gl.GetUniformLocation(prog, gl.Str("uZoom\x00"))
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.prog)
}

func (r *Renderer) BeginFrame(cam Camera, fbW, fbH int, clearR, clearG, clearB float32) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(clearR, clearG, clearB, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.Uniform2f(r.uCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.uZoom, float32(cam.Zoom))
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))
}

// pushVertex appends one (x, y, r, g, b, a) vertex to the frame's
// streaming buffer.
func (r *Renderer) pushVertex(x, y float32, c Color) {
	r.vertBuf = append(r.vertBuf, x, y, c.R, c.G, c.B, c.A)
}

// Color is a flat RGBA tint, components in [0,1].
type Color struct{ R, G, B, A float32 }

// Lines draws a disjoint set of line segments; pts holds consecutive
// (x0,y0,x1,y1) pairs, one segment each.
func (r *Renderer) Lines(segments [][4]float32, c Color) {
	if len(segments) == 0 {
		return
	}
	r.vertBuf = r.vertBuf[:0]
	for _, s := range segments {
		r.pushVertex(s[0], s[1], c)
		r.pushVertex(s[2], s[3], c)
	}
	r.flush(gl.LINES)
}

// FilledConvexPolygon draws a convex polygon (world-metre vertices,
// in order) as a triangle fan.
func (r *Renderer) FilledConvexPolygon(verts [][2]float32, c Color) {
	if len(verts) < 3 {
		return
	}
	r.vertBuf = r.vertBuf[:0]
	for i := 1; i < len(verts)-1; i++ {
		r.pushVertex(verts[0][0], verts[0][1], c)
		r.pushVertex(verts[i][0], verts[i][1], c)
		r.pushVertex(verts[i+1][0], verts[i+1][1], c)
	}
	r.flush(gl.TRIANGLES)
}

// PolygonOutline draws a closed polygon outline.
func (r *Renderer) PolygonOutline(verts [][2]float32, c Color) {
	if len(verts) < 2 {
		return
	}
	segments := make([][4]float32, 0, len(verts))
	for i := range verts {
		j := (i + 1) % len(verts)
		segments = append(segments, [4]float32{verts[i][0], verts[i][1], verts[j][0], verts[j][1]})
	}
	r.Lines(segments, c)
}

func (r *Renderer) flush(mode uint32) {
	if len(r.vertBuf) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.vertBuf)*4, gl.Ptr(r.vertBuf))
	gl.DrawArrays(mode, 0, int32(len(r.vertBuf)/6))
}
