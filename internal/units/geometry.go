package units

import "math"

// Cartesian is a point in a 2D plane, in meters.
type Cartesian struct {
	X, Y Length
}

func NewCartesian(x, y Length) Cartesian { return Cartesian{X: x, Y: y} }

// Rho is the Euclidean distance from the origin.
func (c Cartesian) Rho() Length {
	return Length(math.Hypot(float64(c.X), float64(c.Y)))
}

// Theta is the angle from the positive X axis, via atan2.
func (c Cartesian) Theta() Angle {
	return Angle(math.Atan2(float64(c.Y), float64(c.X)))
}

func (c Cartesian) Add(o Cartesian) Cartesian {
	return Cartesian{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Cartesian) Sub(o Cartesian) Cartesian {
	return Cartesian{X: c.X - o.X, Y: c.Y - o.Y}
}

func (c Cartesian) Scale(s float64) Cartesian {
	return Cartesian{X: Length(float64(c.X) * s), Y: Length(float64(c.Y) * s)}
}

// ApproxEqual reports whether two points are equal within PositionTolerance.
func (c Cartesian) ApproxEqual(o Cartesian) bool {
	dx := float64(c.X - o.X)
	dy := float64(c.Y - o.Y)
	return math.Hypot(dx, dy) <= float64(PositionTolerance)
}

// RotateAroundPoint rotates c by theta around pivot.
func (c Cartesian) RotateAroundPoint(theta Angle, pivot Cartesian) Cartesian {
	dx := float64(c.X - pivot.X)
	dy := float64(c.Y - pivot.Y)
	cosT := theta.Cos()
	sinT := theta.Sin()
	rx := dx*cosT - dy*sinT
	ry := dx*sinT + dy*cosT
	return Cartesian{X: pivot.X + Length(rx), Y: pivot.Y + Length(ry)}
}

// Polygon is an ordered list of vertices.
type Polygon []Cartesian

// Translate returns a copy of p shifted by delta.
func (p Polygon) Translate(delta Cartesian) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Add(delta)
	}
	return out
}

// RotateAroundPoint returns a copy of p rotated by theta about pivot.
func (p Polygon) RotateAroundPoint(theta Angle, pivot Cartesian) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.RotateAroundPoint(theta, pivot)
	}
	return out
}

// CreateCirclePolygon approximates a circle with nVerts vertices.
func CreateCirclePolygon(center Cartesian, radius Length, nVerts int) Polygon {
	if nVerts < 3 {
		nVerts = 3
	}
	out := make(Polygon, nVerts)
	for i := 0; i < nVerts; i += 1 {
		theta := Angle(2 * math.Pi * float64(i) / float64(nVerts))
		out[i] = Cartesian{
			X: center.X + Length(float64(radius)*theta.Cos()),
			Y: center.Y + Length(float64(radius)*theta.Sin()),
		}
	}
	return out
}

// Contains reports whether pt lies within p, using the ray-crossing test.
func (p Polygon) Contains(pt Cartesian) bool {
	inside := false
	n := len(p)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := float64(p[i].X), float64(p[i].Y)
		xj, yj := float64(p[j].X), float64(p[j].Y)
		px, py := float64(pt.X), float64(pt.Y)
		intersects := ((yi > py) != (yj > py)) &&
			(px < (xj-xi)*(py-yi)/(yj-yi)+xi)
		if intersects {
			inside = !inside
		}
	}
	return inside
}

// Intersects performs separating-axis intersection for two convex
// polygons. Used for optional collision detection between the mouse's
// collision polygon and maze walls.
func (p Polygon) Intersects(o Polygon) bool {
	if len(p) < 3 || len(o) < 3 {
		return false
	}
	for _, axis := range append(edgeNormals(p), edgeNormals(o)...) {
		pMin, pMax := projectOnto(p, axis)
		oMin, oMax := projectOnto(o, axis)
		if pMax < oMin || oMax < pMin {
			return false
		}
	}
	return true
}

func edgeNormals(p Polygon) []Cartesian {
	n := len(p)
	normals := make([]Cartesian, 0, n)
	for i := 0; i < n; i += 1 {
		a := p[i]
		b := p[(i+1)%n]
		edge := b.Sub(a)
		normals = append(normals, Cartesian{X: -edge.Y, Y: edge.X})
	}
	return normals
}

func projectOnto(p Polygon, axis Cartesian) (float64, float64) {
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, v := range p {
		d := float64(v.X)*float64(axis.X) + float64(v.Y)*float64(axis.Y)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// ConvexHull computes the convex hull (via monotone chain) of the union
// of vertices from all given polygons. This is the approximation the
// reference implementation uses in place of a true polygon union when
// deriving a mouse's collision polygon (see DESIGN.md).
func ConvexHull(polys ...Polygon) Polygon {
	var pts []Cartesian
	for _, poly := range polys {
		pts = append(pts, poly...)
	}
	if len(pts) < 3 {
		return append(Polygon{}, pts...)
	}

	sorted := append([]Cartesian{}, pts...)
	sortCartesians(sorted)
	sorted = dedupeCartesians(sorted)
	if len(sorted) < 3 {
		return sorted
	}

	cross := func(o, a, b Cartesian) float64 {
		return float64(a.X-o.X)*float64(b.Y-o.Y) - float64(a.Y-o.Y)*float64(b.X-o.X)
	}

	lower := make([]Cartesian, 0, len(sorted))
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]Cartesian, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i -= 1 {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return Polygon(hull)
}

func sortCartesians(pts []Cartesian) {
	// Simple insertion sort: hull inputs are tiny (body + a handful of
	// wheels/sensors), so O(n^2) is fine and keeps this dependency-free.
	for i := 1; i < len(pts); i += 1 {
		for j := i; j > 0 && less(pts[j], pts[j-1]); j -= 1 {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
}

func less(a, b Cartesian) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func dedupeCartesians(sorted []Cartesian) []Cartesian {
	out := sorted[:0:0]
	for i, p := range sorted {
		if i == 0 || !p.ApproxEqual(sorted[i-1]) {
			out = append(out, p)
		}
	}
	return out
}
