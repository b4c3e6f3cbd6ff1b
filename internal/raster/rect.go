package raster

import "chardraw/internal/terminal"

// Rect draws the rectangle with corners x0, y0 and x1, y1 in any order.
// A filled rectangle covers the same pixels as its outline plus the inside.
func Rect(sink PixelSink, x0, y0, x1, y1 int, c terminal.Color, fill bool) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if fill {
		for y := y0; y <= y1; y++ {
			Line(sink, x0, y, x1, y, c)
		}
		return
	}
	Line(sink, x0, y0, x1, y0, c)
	Line(sink, x1, y0, x1, y1, c)
	Line(sink, x1, y1, x0, y1, c)
	Line(sink, x0, y1, x0, y0, c)
}
