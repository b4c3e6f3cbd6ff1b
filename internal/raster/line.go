package raster

import "chardraw/internal/terminal"

// Line draws an 8-connected Bresenham line from x0, y0 to x1, y1. Both
// endpoints are emitted and the path has max(|dx|, |dy|)+1 pixels.
func Line(sink PixelSink, x0, y0, x1, y1 int, c terminal.Color) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)

	if dx >= dy {
		err := dx
		for x, y := x0, y0; ; x += sx {
			sink.Accept(x, y, c)
			if x == x1 {
				return
			}
			err -= 2 * dy
			if err < 0 {
				y += sy
				err += 2 * dx
			}
		}
	}

	err := dy
	for x, y := x0, y0; ; y += sy {
		sink.Accept(x, y, c)
		if y == y1 {
			return
		}
		err -= 2 * dx
		if err < 0 {
			x += sx
			err += 2 * dy
		}
	}
}

// LineP draws a line between two pixels.
func LineP(sink PixelSink, a, b Pixel, c terminal.Color) {
	Line(sink, a.X, a.Y, b.X, b.Y, c)
}
