package raster

import "chardraw/internal/terminal"

// Outline draws the closed polygon through points. Coordinates are rounded
// before drawing. A single point draws one pixel; no points draw nothing.
func Outline(sink PixelSink, points []Point, c terminal.Color) {
	if len(points) == 0 {
		return
	}
	if len(points) == 1 {
		p := points[0].Pixel()
		sink.Accept(p.X, p.Y, c)
		return
	}
	Polyline(sink, points, c)
	LineP(sink, points[len(points)-1].Pixel(), points[0].Pixel(), c)
}

// Polyline draws the open path through points.
func Polyline(sink PixelSink, points []Point, c terminal.Color) {
	switch len(points) {
	case 0:
		return
	case 1:
		p := points[0].Pixel()
		sink.Accept(p.X, p.Y, c)
		return
	}
	for i := 1; i < len(points); i++ {
		LineP(sink, points[i-1].Pixel(), points[i].Pixel(), c)
	}
}
