package raster

import (
	"math"

	"chardraw/internal/terminal"
)

// arcEpsilon keeps both end angles of an arc inside it despite rounding.
const arcEpsilon = 1e-6

// normDeg maps an angle in degrees onto [0, 360).
func normDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// span of an arc from a0 to a1 degrees. Angles grow from +x towards +y,
// which is clockwise on screen.
type arcSpan struct {
	start, sweep float64
	full         bool
}

func newArcSpan(a0, a1 float64) arcSpan {
	sweep := a1 - a0
	if sweep >= 360 {
		return arcSpan{start: normDeg(a0), sweep: 360, full: true}
	}
	return arcSpan{start: normDeg(a0), sweep: normDeg(sweep)}
}

func (s arcSpan) contains(deg float64) bool {
	if s.full {
		return true
	}
	d := normDeg(deg - s.start)
	return d <= s.sweep+arcEpsilon || d >= 360-arcEpsilon
}

// angleOf returns the direction of offset dx, dy in degrees, measured on
// the unstretched circle.
func angleOf(dx, dy int, aspect float64) float64 {
	return normDeg(math.Atan2(float64(dy), float64(dx)/aspect) * 180 / math.Pi)
}

// arcEnd returns the point at angle deg on the stretched circle.
func arcEnd(cx, cy, r int, deg, aspect float64) Pixel {
	rad := deg * math.Pi / 180
	return Pixel{
		X: cx + Round(float64(r)*math.Cos(rad)*aspect),
		Y: cy + Round(float64(r)*math.Sin(rad)),
	}
}

// ArcPixels returns the pixels of the circle outline whose angle lies
// between a0 and a1 degrees. The sweep runs from a0 towards a1 in the
// direction of growing angles; a sweep of 360 or more is the full circle.
func ArcPixels(cx, cy, r int, a0, a1, aspect float64) []Pixel {
	aspect = aspectOrDefault(aspect)
	s := newArcSpan(a0, a1)
	all := CirclePixels(cx, cy, r, aspect)
	if s.full || r <= 0 {
		return all
	}
	var out []Pixel
	for _, p := range all {
		if s.contains(angleOf(p.X-cx, p.Y-cy, aspect)) {
			out = append(out, p)
		}
	}
	return out
}

// Arc draws the outline of the slice between a0 and a1: the arc itself
// and the two radii to its ends. A full circle is drawn without radii.
func Arc(sink PixelSink, cx, cy, r int, a0, a1, aspect float64, c terminal.Color) {
	aspect = aspectOrDefault(aspect)
	s := newArcSpan(a0, a1)
	if !s.full {
		LineP(sink, Pixel{cx, cy}, arcEnd(cx, cy, r, s.start, aspect), c)
		LineP(sink, Pixel{cx, cy}, arcEnd(cx, cy, r, s.start+s.sweep, aspect), c)
	}
	for _, p := range ArcPixels(cx, cy, r, a0, a1, aspect) {
		sink.Accept(p.X, p.Y, c)
	}
}

// FillArc fills the slice between a0 and a1. Slices wider than 180 degrees
// are filled as two halves so that every filled piece is convex.
func FillArc(sink PixelSink, cx, cy, r int, a0, a1, aspect float64, c terminal.Color) {
	aspect = aspectOrDefault(aspect)
	s := newArcSpan(a0, a1)
	if s.full {
		FillCircle(sink, cx, cy, r, aspect, c)
		return
	}
	if s.sweep > 180 {
		fillSector(sink, cx, cy, r, s.start, s.start+180, aspect, c)
		fillSector(sink, cx, cy, r, s.start+180, s.start+s.sweep, aspect, c)
		return
	}
	fillSector(sink, cx, cy, r, s.start, s.start+s.sweep, aspect, c)
}

func fillSector(sink PixelSink, cx, cy, r int, a0, a1, aspect float64, c terminal.Color) {
	var edge Collector
	edge.Pixels = ArcPixels(cx, cy, r, a0, a1, aspect)
	LineP(&edge, Pixel{cx, cy}, arcEnd(cx, cy, r, a0, aspect), c)
	LineP(&edge, Pixel{cx, cy}, arcEnd(cx, cy, r, a1, aspect), c)
	Rasterize(sink, edge.Pixels, c)
}
