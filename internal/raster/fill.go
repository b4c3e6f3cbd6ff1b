package raster

import (
	"math"
	"slices"

	"chardraw/internal/terminal"
)

// FillStats describes the work done by FillConcave.
type FillStats struct {
	Boxes   int // boxes taken from the work queue
	Filled  int // convex pieces rasterized
	Dropped int // concave pieces below the size limit
	Empty   int // boxes without area or without any part of the polygon
}

// areaEpsilon is the smallest piece area, in square pixels, that is filled.
// Clipping against inclusive box edges leaves slivers of zero area along
// the edges; their outlines would light pixels outside the polygon.
const areaEpsilon = 1e-6

// minSubdivision is the smallest box edge, in pixels, that is split further.
const minSubdivision = 1.0

// FillConvex rasterizes the interior of a convex polygon, outline included.
func FillConvex(sink PixelSink, points []Point, c terminal.Color) {
	var outline Collector
	Outline(&outline, points, c)
	Rasterize(sink, outline.Pixels, c)
}

// FillConcave fills a simple polygon of any shape. Its bounding box is cut
// into quarters; the part of the polygon inside each quarter is filled when
// it is convex and cut into quarters again when it is not. Pieces whose
// quarters would be smaller than a pixel are dropped; what remains of them
// lies on the polygon's outline. Pieces without area are skipped.
//
// Boxes are processed from a FIFO queue, so memory is bounded by the
// number of concave pieces on one level.
func FillConcave(sink PixelSink, points []Point, c terminal.Color) FillStats {
	var stats FillStats
	if len(points) == 0 {
		return stats
	}

	q := Bounds(points).Quarters()
	queue := q[:]
	for len(queue) > 0 {
		box := queue[0]
		queue = queue[1:]
		stats.Boxes++

		if box.Empty() {
			stats.Empty++
			continue
		}
		piece := simplify(Clip(points, box))
		if len(piece) < 3 || area(piece) <= areaEpsilon {
			stats.Empty++
			continue
		}
		if turnsAgree(piece) {
			FillConvex(sink, piece, c)
			stats.Filled++
			continue
		}
		if box.Width()/2 < minSubdivision || box.Height()/2 < minSubdivision {
			stats.Dropped++
			continue
		}
		q := box.Quarters()
		queue = append(queue, q[:]...)
	}
	return stats
}

// simplify removes repeated vertices and vertices the outline does not turn
// on, until none are left. The tip of a spike folded back onto itself is
// such a vertex, so a piece without area shrinks below three points.
func simplify(points []Point) []Point {
	points = distinct(points)
	for len(points) >= 3 {
		i := straight(points)
		if i < 0 {
			break
		}
		points = distinct(slices.Delete(points, i, i+1))
	}
	return points
}

// straight returns the index of the first vertex without a turn, or -1.
func straight(points []Point) int {
	n := len(points)
	for i := range points {
		if math.Abs(CrossProduct(points[(i+n-1)%n], points[i], points[(i+1)%n])) <= crossEpsilon {
			return i
		}
	}
	return -1
}

// area returns the unsigned area enclosed by points.
func area(points []Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}
