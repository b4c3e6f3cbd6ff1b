package raster

import "chardraw/internal/terminal"

// Polygon draws the closed polygon through points, filled when fill is
// set. Convex polygons are filled from their outline; concave ones get
// their outline drawn and their interior filled separately by FillConcave
// on the original vertices.
func Polygon(sink PixelSink, points []Point, c terminal.Color, fill bool) {
	var outline Collector
	Outline(&outline, points, c)

	switch {
	case !fill:
		outline.Emit(sink, c)
	case IsConvex(points):
		Rasterize(sink, outline.Pixels, c)
	default:
		outline.Emit(sink, c)
		FillConcave(sink, points, c)
	}
}
