package raster

import "math"

// crossEpsilon absorbs rounding noise in cross products of clipped,
// floating-point vertices. Turns smaller than this count as straight.
const crossEpsilon = 1e-9

// CrossProduct returns the z component of (a-b) x (c-b), the turn at
// vertex b.
func CrossProduct(a, b, c Point) float64 {
	bax, bay := a.X-b.X, a.Y-b.Y
	bcx, bcy := c.X-b.X, c.Y-b.Y
	return bax*bcy - bay*bcx
}

// IsConvex reports whether the simple polygon through points is convex.
// Polygons of three or fewer points and polygons whose bounding box is at
// most one pixel thin are treated as convex. Collinear vertices do not
// break convexity.
func IsConvex(points []Point) bool {
	if len(points) <= 3 {
		return true
	}
	if b := Bounds(points); b.Width() <= 1 || b.Height() <= 1 {
		return true
	}
	// A repeated vertex would hide the turn it sits on.
	return turnsAgree(distinct(points))
}

// turnsAgree reports whether every turn along points goes the same way,
// ignoring straight ones.
func turnsAgree(points []Point) bool {
	n := len(points)
	if n <= 3 {
		return true
	}
	positive, negative := false, false
	for i := range points {
		cross := CrossProduct(points[i], points[(i+1)%n], points[(i+2)%n])
		if math.Abs(cross) <= crossEpsilon {
			continue
		}
		if cross > 0 {
			positive = true
		} else {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// distinct drops vertices that coincide with their predecessor, including
// a last vertex equal to the first.
func distinct(points []Point) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && near(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && near(out[len(out)-1], out[0]) {
		out = out[:len(out)-1]
	}
	return out
}

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) <= crossEpsilon && math.Abs(a.Y-b.Y) <= crossEpsilon
}
