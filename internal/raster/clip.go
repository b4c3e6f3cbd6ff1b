package raster

// Edge selects one side of a clip box.
type Edge int

const (
	Top Edge = iota
	Right
	Bottom
	Left
)

var edgeNames = [...]string{"top", "right", "bottom", "left"}

func (e Edge) String() string {
	if e < Top || e > Left {
		return "edge(?)"
	}
	return edgeNames[e]
}

// inside reports whether p lies on the box side of e. Points on the edge
// count as inside.
func (e Edge) inside(p Point, box Bbox) bool {
	switch e {
	case Top:
		return p.Y >= box.MinY
	case Right:
		return p.X <= box.MaxX
	case Bottom:
		return p.Y <= box.MaxY
	default:
		return p.X >= box.MinX
	}
}

// boundary returns a unit segment on the line through e. Only the line
// matters, and a unit segment stays well defined for boxes without area.
func (e Edge) boundary(box Bbox) Segment {
	switch e {
	case Top:
		return Seg(box.MinX, box.MinY, box.MinX+1, box.MinY)
	case Right:
		return Seg(box.MaxX, box.MinY, box.MaxX, box.MinY+1)
	case Bottom:
		return Seg(box.MaxX, box.MaxY, box.MaxX-1, box.MaxY)
	default:
		return Seg(box.MinX, box.MaxY, box.MinX, box.MaxY-1)
	}
}

// ClipPolygon clips the polygon through points against the half-plane of
// box selected by e (Sutherland-Hodgman). It returns nil when nothing is
// left.
func ClipPolygon(points []Point, box Bbox, e Edge) []Point {
	if len(points) == 0 {
		return nil
	}
	edge := e.boundary(box)
	var out []Point

	s := points[len(points)-1]
	sIn := e.inside(s, box)
	for _, p := range points {
		pIn := e.inside(p, box)
		if pIn != sIn {
			// The points lie on opposite sides, so the lines are not parallel.
			if x, ok := Intersect(Segment{s, p}, edge, false); ok {
				out = append(out, x)
			}
		}
		if pIn {
			out = append(out, p)
		}
		s, sIn = p, pIn
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Clip clips the polygon through points to box, one edge at a time. It
// returns nil as soon as a pass leaves nothing.
func Clip(points []Point, box Bbox) []Point {
	for _, e := range [...]Edge{Top, Right, Bottom, Left} {
		points = ClipPolygon(points, box, e)
		if points == nil {
			return nil
		}
	}
	return points
}
