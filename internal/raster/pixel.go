// Package raster holds the stateless drawing algorithms. Every primitive
// emits pixels into a PixelSink, so the same geometry can be drawn onto a
// surface or collected for a later fill pass.
package raster

import (
	"cmp"
	"math"
	"slices"

	"chardraw/internal/terminal"
)

// Pixel is an integer pixel coordinate.
type Pixel struct {
	X, Y int
}

// Point is a floating-point coordinate, rounded to a Pixel when drawn.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

// Pixel rounds p half away from zero.
func (p Point) Pixel() Pixel {
	return Pixel{Round(p.X), Round(p.Y)}
}

// Round coerces a coordinate to a pixel index.
func Round(v float64) int {
	return int(math.Round(v))
}

// PixelSink consumes drawn pixels.
type PixelSink interface {
	Accept(x, y int, c terminal.Color)
}

// SinkFunc adapts a function to PixelSink.
type SinkFunc func(x, y int, c terminal.Color)

// Accept calls f(x, y, c).
func (f SinkFunc) Accept(x, y int, c terminal.Color) {
	f(x, y, c)
}

// Collector is a PixelSink that records pixels in emission order.
// Duplicates are kept.
type Collector struct {
	Pixels []Pixel
}

// Accept appends x, y.
func (c *Collector) Accept(x, y int, _ terminal.Color) {
	c.Pixels = append(c.Pixels, Pixel{x, y})
}

// Reset empties the collector, keeping its storage.
func (c *Collector) Reset() {
	c.Pixels = c.Pixels[:0]
}

// Unique returns the collected pixels sorted by row then column, without
// duplicates.
func (c *Collector) Unique() []Pixel {
	out := slices.Clone(c.Pixels)
	SortPixels(out)
	return slices.Compact(out)
}

// Emit forwards every collected pixel to sink.
func (c *Collector) Emit(sink PixelSink, col terminal.Color) {
	for _, p := range c.Pixels {
		sink.Accept(p.X, p.Y, col)
	}
}

// SortPixels orders pixels by row, then column.
func SortPixels(ps []Pixel) {
	slices.SortFunc(ps, func(a, b Pixel) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
