package raster

import (
	"slices"

	"chardraw/internal/terminal"
)

// Rasterize fills the shape bounded by pixels with one horizontal span per
// row, from the leftmost to the rightmost pixel on that row. A row holding
// a single pixel draws just that pixel. The result is exact only for
// convex shapes, which cross every row at most twice.
func Rasterize(sink PixelSink, pixels []Pixel, c terminal.Color) {
	if len(pixels) == 0 {
		return
	}
	sorted := slices.Clone(pixels)
	SortPixels(sorted)

	first := sorted[0]
	last := first
	for _, p := range sorted[1:] {
		if p.Y != first.Y {
			span(sink, first, last, c)
			first = p
		}
		last = p
	}
	span(sink, first, last, c)
}

func span(sink PixelSink, from, to Pixel, c terminal.Color) {
	if from.X == to.X {
		sink.Accept(from.X, from.Y, c)
		return
	}
	Line(sink, from.X, from.Y, to.X, to.Y, c)
}
