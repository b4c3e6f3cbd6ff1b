package raster

import "chardraw/internal/terminal"

// DefaultAspect is the horizontal stretch applied to circles and arcs. A
// character cell is about twice as tall as it is wide, and so is each of
// its quadrant pixels; doubling x offsets makes circles look round.
const DefaultAspect = 2.0

func aspectOrDefault(aspect float64) float64 {
	if aspect <= 0 {
		return DefaultAspect
	}
	return aspect
}

// octant runs the midpoint circle algorithm for radius r and returns the
// offsets (x, y) with 0 <= x <= y of one eighth of the circle, x ascending.
func octant(r int) []Pixel {
	var pts []Pixel
	x, y, d := 0, r, 1-r
	for x <= y {
		pts = append(pts, Pixel{x, y})
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
	}
	return pts
}

// circleLoop returns the offsets of a circle of radius r in angular order,
// starting at angle 0 (+x) and turning towards +y. x offsets are scaled
// by aspect.
func circleLoop(r int, aspect float64) []Pixel {
	oct := octant(r)
	n := len(oct)
	loop := make([]Pixel, 0, 8*n)

	stretch := func(dx, dy int) {
		loop = append(loop, Pixel{Round(float64(dx) * aspect), dy})
	}
	for i := 0; i < n; i++ {
		stretch(oct[i].Y, oct[i].X)
	}
	for i := n - 1; i >= 0; i-- {
		stretch(oct[i].X, oct[i].Y)
	}
	for i := 0; i < n; i++ {
		stretch(-oct[i].X, oct[i].Y)
	}
	for i := n - 1; i >= 0; i-- {
		stretch(-oct[i].Y, oct[i].X)
	}
	for i := 0; i < n; i++ {
		stretch(-oct[i].Y, -oct[i].X)
	}
	for i := n - 1; i >= 0; i-- {
		stretch(-oct[i].X, -oct[i].Y)
	}
	for i := 0; i < n; i++ {
		stretch(oct[i].X, -oct[i].Y)
	}
	for i := n - 1; i >= 0; i-- {
		stretch(oct[i].Y, -oct[i].X)
	}
	return loop
}

// CirclePixels returns the outline of the circle around cx, cy, sorted by
// row then column and without duplicates. Neighbouring points that the
// stretch pulled apart are joined by lines, so the outline is connected.
// A radius of zero or less yields the centre pixel.
func CirclePixels(cx, cy, r int, aspect float64) []Pixel {
	if r <= 0 {
		return []Pixel{{cx, cy}}
	}
	loop := circleLoop(r, aspectOrDefault(aspect))

	var out Collector
	prev := loop[len(loop)-1]
	for _, p := range loop {
		Line(&out, cx+prev.X, cy+prev.Y, cx+p.X, cy+p.Y, 0)
		prev = p
	}
	return out.Unique()
}

// Circle draws the outline of a circle.
func Circle(sink PixelSink, cx, cy, r int, aspect float64, c terminal.Color) {
	for _, p := range CirclePixels(cx, cy, r, aspect) {
		sink.Accept(p.X, p.Y, c)
	}
}

// FillCircle draws a filled circle.
func FillCircle(sink PixelSink, cx, cy, r int, aspect float64, c terminal.Color) {
	Rasterize(sink, CirclePixels(cx, cy, r, aspect), c)
}
