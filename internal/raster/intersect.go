package raster

import "math"

// Segment is the line segment from A to B.
type Segment struct {
	A, B Point
}

// Seg is shorthand for Segment{Point{x0, y0}, Point{x1, y1}}.
func Seg(x0, y0, x1, y1 float64) Segment {
	return Segment{Point{x0, y0}, Point{x1, y1}}
}

// implicit returns the line through s as A*x + B*y = C.
func (s Segment) implicit() (a, b, c float64) {
	a = s.A.Y - s.B.Y
	b = s.B.X - s.A.X
	c = a*s.A.X + b*s.A.Y
	return a, b, c
}

// Intersect returns where the lines through s1 and s2 cross. ok is false
// for parallel lines. With clamp, the result is limited to the extent of s1.
func Intersect(s1, s2 Segment, clamp bool) (p Point, ok bool) {
	a1, b1, c1 := s1.implicit()
	a2, b2, c2 := s2.implicit()

	det := a1*b2 - a2*b1
	if det == 0 {
		return Point{}, false
	}
	p = Point{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}
	if clamp {
		b := NewBbox(s1.A.X, s1.A.Y, s1.B.X, s1.B.Y)
		p.X = math.Min(math.Max(p.X, b.MinX), b.MaxX)
		p.Y = math.Min(math.Max(p.Y, b.MinY), b.MaxY)
	}
	return p, true
}
