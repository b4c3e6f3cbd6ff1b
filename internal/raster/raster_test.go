package raster

import (
	"slices"
	"testing"
)

func collect(draw func(PixelSink)) []Pixel {
	var c Collector
	draw(&c)
	return c.Unique()
}

func pixelSet(ps []Pixel) map[Pixel]bool {
	m := make(map[Pixel]bool, len(ps))
	for _, p := range ps {
		m[p] = true
	}
	return m
}

func square(x0, y0, x1, y1 int) []Pixel {
	var ps []Pixel
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			ps = append(ps, Pixel{x, y})
		}
	}
	return ps
}

func TestLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []Pixel
	}{
		{"single point", 3, 4, 3, 4, []Pixel{{3, 4}}},
		{"horizontal", 0, 0, 3, 0, []Pixel{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical up", 1, 2, 1, 0, []Pixel{{1, 2}, {1, 1}, {1, 0}}},
		{"diagonal", 0, 0, 2, 2, []Pixel{{0, 0}, {1, 1}, {2, 2}}},
		{"shallow", 0, 0, 4, 2, []Pixel{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}},
		{"steep backwards", 0, 0, -1, -3, []Pixel{{0, 0}, {0, -1}, {-1, -2}, {-1, -3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Collector
			Line(&c, tt.x0, tt.y0, tt.x1, tt.y1, 0)
			if !slices.Equal(c.Pixels, tt.want) {
				t.Errorf("Line() = %v, want %v", c.Pixels, tt.want)
			}
		})
	}
}

func TestRasterizeSquareBoundary(t *testing.T) {
	boundary := []Pixel{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}
	got := collect(func(s PixelSink) { Rasterize(s, boundary, 0) })
	if want := square(0, 0, 2, 2); !slices.Equal(got, want) {
		t.Errorf("Rasterize() = %v, want %v", got, want)
	}

	// The same square through the outline walk.
	var outline Collector
	Outline(&outline, []Point{{0, 0}, {0, 2}, {2, 2}, {2, 0}}, 0)
	got = collect(func(s PixelSink) { Rasterize(s, outline.Pixels, 0) })
	if want := square(0, 0, 2, 2); !slices.Equal(got, want) {
		t.Errorf("Rasterize(outline) = %v, want %v", got, want)
	}
}

func TestRasterizeSinglePixelRows(t *testing.T) {
	got := collect(func(s PixelSink) {
		Rasterize(s, []Pixel{{5, 3}, {1, 1}, {4, 1}}, 0)
	})
	want := []Pixel{{1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 3}}
	if !slices.Equal(got, want) {
		t.Errorf("Rasterize() = %v, want %v", got, want)
	}

	var c Collector
	Rasterize(&c, nil, 0)
	if len(c.Pixels) != 0 {
		t.Errorf("Rasterize(nil) emitted %v", c.Pixels)
	}
}

func TestOutline(t *testing.T) {
	if got := collect(func(s PixelSink) { Outline(s, nil, 0) }); len(got) != 0 {
		t.Errorf("Outline(nil) = %v", got)
	}
	if got := collect(func(s PixelSink) { Outline(s, []Point{{1.4, 2.6}}, 0) }); !slices.Equal(got, []Pixel{{1, 3}}) {
		t.Errorf("Outline(single) = %v", got)
	}

	got := collect(func(s PixelSink) {
		Outline(s, []Point{{0, 0}, {3, 0}, {3, 3}, {0, 3}}, 0)
	})
	if len(got) != 12 {
		t.Errorf("square outline has %d pixels, want 12", len(got))
	}
	if pixelSet(got)[Pixel{1, 1}] {
		t.Error("outline touched the interior")
	}
}

func TestPolyline(t *testing.T) {
	got := collect(func(s PixelSink) {
		Polyline(s, []Point{{0, 0}, {2, 0}, {2, 2}}, 0)
	})
	want := []Pixel{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}
	if !slices.Equal(got, want) {
		t.Errorf("Polyline() = %v, want %v", got, want)
	}
}

func TestIsConvex(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   bool
	}{
		{"empty", nil, true},
		{"two points", []Point{{0, 0}, {5, 5}}, true},
		{"triangle", []Point{{0, 0}, {10, 3}, {4, 9}}, true},
		{"square", []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, true},
		{"square counter clockwise", []Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}, true},
		{"square with collinear points", []Point{{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 5}}, true},
		{"flat", []Point{{0, 0}, {3, 1}, {6, 0}, {9, 1}}, true},
		{"thin", []Point{{0, 0}, {1, 5}, {0, 10}, {1, 15}}, true},
		{"hexagon", []Point{{2, 0}, {6, 0}, {8, 4}, {6, 8}, {2, 8}, {0, 4}}, true},
		{"arrow", []Point{{0, 0}, {10, 0}, {10, 10}, {5, 5}, {0, 10}}, false},
		{"l shape", []Point{{0, 0}, {10, 0}, {10, 4}, {4, 4}, {4, 10}, {0, 10}}, false},
		{"repeated reflex vertex", []Point{{0, 0}, {10, 0}, {10, 10}, {5, 5}, {5, 5}, {0, 10}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConvex(tt.points); got != tt.want {
				t.Errorf("IsConvex() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCrossProduct(t *testing.T) {
	if got := CrossProduct(Pt(0, 1), Pt(0, 0), Pt(1, 0)); got != -1 {
		t.Errorf("CrossProduct = %v, want -1", got)
	}
	if got := CrossProduct(Pt(0, 0), Pt(1, 1), Pt(2, 2)); got != 0 {
		t.Errorf("collinear CrossProduct = %v, want 0", got)
	}
}

func TestBbox(t *testing.T) {
	b := NewBbox(5, 1, 2, 7)
	if b != (Bbox{2, 1, 5, 7}) {
		t.Errorf("NewBbox normalised to %+v", b)
	}
	if w, h := b.Size(); w != 3 || h != 6 {
		t.Errorf("Size() = %v,%v", w, h)
	}
	if b.Empty() || !NewBbox(1, 1, 1, 4).Empty() {
		t.Error("Empty() wrong")
	}
	if u := b.Union(NewBbox(0, 3, 1, 9)); u != (Bbox{0, 1, 5, 9}) {
		t.Errorf("Union() = %+v", u)
	}
	if !b.Contains(Pt(5, 7)) || b.Contains(Pt(5.1, 7)) {
		t.Error("Contains() wrong on the edge")
	}

	q := NewBbox(0, 0, 4, 2).Quarters()
	want := [4]Bbox{{0, 0, 2, 1}, {2, 0, 4, 1}, {0, 1, 2, 2}, {2, 1, 4, 2}}
	if q != want {
		t.Errorf("Quarters() = %v, want %v", q, want)
	}

	if got := Bounds([]Point{{3, 4}, {-1, 8}, {2, 0}}); got != (Bbox{-1, 0, 3, 8}) {
		t.Errorf("Bounds() = %+v", got)
	}
	if got := Bounds(nil); got != (Bbox{}) {
		t.Errorf("Bounds(nil) = %+v", got)
	}
}

func TestIntersect(t *testing.T) {
	p, ok := Intersect(Seg(0, 0, 10, 0), Seg(5, -5, 5, 5), false)
	if !ok || p != Pt(5, 0) {
		t.Errorf("Intersect() = %v, %v, want (5,0)", p, ok)
	}

	p, ok = Intersect(Seg(0, 0, 4, 4), Seg(0, 4, 4, 0), false)
	if !ok || p != Pt(2, 2) {
		t.Errorf("Intersect(diagonals) = %v, %v", p, ok)
	}

	if _, ok := Intersect(Seg(0, 0, 10, 0), Seg(0, 1, 10, 1), false); ok {
		t.Error("parallel lines intersect")
	}

	p, ok = Intersect(Seg(0, 0, 2, 0), Seg(5, -1, 5, 1), false)
	if !ok || p != Pt(5, 0) {
		t.Errorf("unclamped = %v, %v", p, ok)
	}
	p, ok = Intersect(Seg(0, 0, 2, 0), Seg(5, -1, 5, 1), true)
	if !ok || p != Pt(2, 0) {
		t.Errorf("clamped = %v, %v", p, ok)
	}
}

func TestClip(t *testing.T) {
	tri := []Point{{2, 2}, {8, 2}, {5, 7}}

	if got := Clip(tri, NewBbox(0, 0, 10, 10)); !slices.Equal(got, tri) {
		t.Errorf("Clip(containing box) = %v, want %v", got, tri)
	}
	if got := Clip(tri, NewBbox(2, 2, 8, 7)); !slices.Equal(got, tri) {
		t.Errorf("Clip(tight box) = %v, want %v", got, tri)
	}
	if got := Clip(tri, NewBbox(20, 20, 30, 30)); got != nil {
		t.Errorf("Clip(disjoint box) = %v, want nil", got)
	}
	if got := Clip(nil, NewBbox(0, 0, 1, 1)); got != nil {
		t.Errorf("Clip(nil) = %v", got)
	}

	sq := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	got := Clip(sq, NewBbox(5, -5, 15, 5))
	if b := Bounds(got); b != (Bbox{5, 0, 10, 5}) {
		t.Errorf("Clip(square) bounds = %+v, points %v", b, got)
	}
	if !IsConvex(got) {
		t.Errorf("clipped square is not convex: %v", got)
	}
}

func TestClipPolygonSingleEdge(t *testing.T) {
	sq := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	box := NewBbox(0, 0, 4, 10)

	got := ClipPolygon(sq, box, Right)
	want := []Point{{0, 0}, {4, 0}, {4, 10}, {0, 10}}
	if !slices.Equal(got, want) {
		t.Errorf("ClipPolygon(Right) = %v, want %v", got, want)
	}
	if got := ClipPolygon(sq, NewBbox(0, 20, 10, 30), Top); got != nil {
		t.Errorf("ClipPolygon(Top) = %v, want nil", got)
	}
	if Left.String() != "left" || Edge(9).String() != "edge(?)" {
		t.Error("Edge.String() wrong")
	}
}

func TestCollectorUnique(t *testing.T) {
	c := Collector{Pixels: []Pixel{{2, 1}, {0, 0}, {2, 1}, {1, 0}}}
	want := []Pixel{{0, 0}, {1, 0}, {2, 1}}
	if got := c.Unique(); !slices.Equal(got, want) {
		t.Errorf("Unique() = %v, want %v", got, want)
	}
	if len(c.Pixels) != 4 {
		t.Error("Unique() modified the collector")
	}
	c.Reset()
	if len(c.Pixels) != 0 {
		t.Error("Reset() kept pixels")
	}
}

func TestRect(t *testing.T) {
	outline := collect(func(s PixelSink) { Rect(s, 3, 2, 0, 0, 0, false) })
	if len(outline) != 10 {
		t.Errorf("outline has %d pixels, want 10", len(outline))
	}
	filled := collect(func(s PixelSink) { Rect(s, 3, 2, 0, 0, 0, true) })
	if want := square(0, 0, 3, 2); !slices.Equal(filled, want) {
		t.Errorf("filled = %v, want %v", filled, want)
	}
	fs := pixelSet(filled)
	for _, p := range outline {
		if !fs[p] {
			t.Errorf("outline pixel %v not covered by the fill", p)
		}
	}
}

func TestPolygon(t *testing.T) {
	sq := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}

	outline := collect(func(s PixelSink) { Polygon(s, sq, 0, false) })
	if len(outline) != 16 {
		t.Errorf("outline has %d pixels, want 16", len(outline))
	}
	filled := collect(func(s PixelSink) { Polygon(s, sq, 0, true) })
	if want := square(0, 0, 4, 4); !slices.Equal(filled, want) {
		t.Errorf("filled = %v, want %v", filled, want)
	}
}

func TestFillConvexRoundsVertices(t *testing.T) {
	got := collect(func(s PixelSink) {
		FillConvex(s, []Point{{0.4, 0.4}, {2.5, 0.4}, {2.5, 1.6}, {0.4, 1.6}}, 0)
	})
	if want := square(0, 0, 3, 2); !slices.Equal(got, want) {
		t.Errorf("FillConvex() = %v, want %v", got, want)
	}
}
