package raster

import "math"

// Bbox is an axis-aligned box. Construct it with NewBbox so that
// Min <= Max holds on both axes.
type Bbox struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewBbox returns the box spanned by two corners in any order.
func NewBbox(x0, y0, x1, y1 float64) Bbox {
	return Bbox{
		MinX: math.Min(x0, x1),
		MinY: math.Min(y0, y1),
		MaxX: math.Max(x0, x1),
		MaxY: math.Max(y0, y1),
	}
}

// Width is MaxX - MinX.
func (b Bbox) Width() float64 { return b.MaxX - b.MinX }

// Height is MaxY - MinY.
func (b Bbox) Height() float64 { return b.MaxY - b.MinY }

// Size returns width and height.
func (b Bbox) Size() (w, h float64) { return b.Width(), b.Height() }

// Empty reports whether the box has no area.
func (b Bbox) Empty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Union returns the smallest box containing b and o.
func (b Bbox) Union(o Bbox) Bbox {
	return Bbox{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Contains reports whether p lies inside b, edges included.
func (b Bbox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Quarters splits b into four equal boxes: top-left, top-right,
// bottom-left, bottom-right.
func (b Bbox) Quarters() [4]Bbox {
	mx := b.MinX + b.Width()/2
	my := b.MinY + b.Height()/2
	return [4]Bbox{
		{b.MinX, b.MinY, mx, my},
		{mx, b.MinY, b.MaxX, my},
		{b.MinX, my, mx, b.MaxY},
		{mx, my, b.MaxX, b.MaxY},
	}
}

// Bounds returns the bounding box of points. An empty list yields the zero box.
func Bounds(points []Point) Bbox {
	if len(points) == 0 {
		return Bbox{}
	}
	b := Bbox{points[0].X, points[0].Y, points[0].X, points[0].Y}
	for _, p := range points[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// PixelBounds returns the bounding box of pixels.
func PixelBounds(pixels []Pixel) Bbox {
	points := make([]Point, len(pixels))
	for i, p := range pixels {
		points[i] = Point{float64(p.X), float64(p.Y)}
	}
	return Bounds(points)
}
