package surface

import (
	"errors"
	"testing"

	"chardraw/internal/terminal"
)

func TestGlyphRoundTrip(t *testing.T) {
	for m := Mask(0); m <= Full; m++ {
		got, ok := MaskOf(Glyph(m))
		if !ok || got != m {
			t.Errorf("MaskOf(Glyph(%d)) = %d, %v", m, got, ok)
		}
	}
}

func TestGlyphsDistinct(t *testing.T) {
	seen := make(map[rune]Mask)
	for m := Mask(0); m <= Full; m++ {
		g := Glyph(m)
		if prev, dup := seen[g]; dup {
			t.Errorf("masks %d and %d share glyph %q", prev, m, g)
		}
		seen[g] = m
		if back, _ := MaskOf(g); Glyph(back) != g {
			t.Errorf("Glyph(MaskOf(%q)) = %q", g, Glyph(back))
		}
	}
}

func TestMaskOfRejects(t *testing.T) {
	for _, r := range []rune{'x', '▁', '▔', '█' + 0x20, 0} {
		if _, ok := MaskOf(r); ok {
			t.Errorf("MaskOf(%q) accepted", r)
		}
	}
}

func TestQuadrantBit(t *testing.T) {
	tests := []struct {
		x, y int
		want Mask
	}{
		{0, 0, TopLeft},
		{1, 0, TopRight},
		{0, 1, BottomLeft},
		{1, 1, BottomRight},
		{6, 9, BottomLeft},
		{-1, -2, TopRight},
	}
	for _, tt := range tests {
		if got := QuadrantBit(tt.x, tt.y); got != tt.want {
			t.Errorf("QuadrantBit(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCellConversion(t *testing.T) {
	tests := []struct {
		x, y     int
		row, col int
	}{
		{0, 0, 0, 0},
		{1, 1, 0, 0},
		{2, 3, 1, 1},
		{7, 4, 2, 3},
		{-1, -1, -1, -1},
		{-3, 0, 0, -2},
	}
	for _, tt := range tests {
		row, col := CellOf(tt.x, tt.y)
		if row != tt.row || col != tt.col {
			t.Errorf("CellOf(%d,%d) = %d,%d, want %d,%d", tt.x, tt.y, row, col, tt.row, tt.col)
		}
	}

	if x, y := PixelOf(2, 3); x != 6 || y != 4 {
		t.Errorf("PixelOf(2,3) = %d,%d, want 6,4", x, y)
	}
}

func TestDimensions(t *testing.T) {
	s := New(terminal.NewBuffer(3, 5))
	if w, h := s.Dimensions(); w != 10 || h != 6 {
		t.Errorf("Dimensions() = %d,%d, want 10,6", w, h)
	}
}

func TestSetQuadrantAccumulates(t *testing.T) {
	orders := [][4][2]int{
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{1, 1}, {0, 1}, {1, 0}, {0, 0}},
		{{0, 1}, {1, 0}, {1, 1}, {0, 0}},
	}
	for _, order := range orders {
		buf := terminal.NewBuffer(1, 1)
		s := New(buf)
		for _, p := range order {
			s.SetQuadrant(p[0], p[1], terminal.Green, true)
		}
		if got := buf.Cell(0, 0); got.Rune != Glyph(Full) || got.Color != terminal.Green {
			t.Errorf("order %v: cell = %+v, want %q", order, got, Glyph(Full))
		}
		if s.CellMask(0, 0) != Full {
			t.Errorf("order %v: mask = %d", order, s.CellMask(0, 0))
		}
	}
}

func TestSetQuadrantKeepsNeighbours(t *testing.T) {
	buf := terminal.NewBuffer(1, 2)
	s := New(buf)

	s.SetQuadrant(0, 0, terminal.Default, true)
	s.SetQuadrant(3, 1, terminal.Default, true)
	s.SetQuadrant(0, 0, terminal.Default, true)

	if got := buf.Row(0); got != "▘▗" {
		t.Errorf("Row(0) = %q, want %q", got, "▘▗")
	}
	if !s.IsSet(0, 0) || s.IsSet(1, 0) || !s.IsSet(3, 1) {
		t.Error("IsSet disagrees with drawn quadrants")
	}
}

func TestSetQuadrantOutOfBounds(t *testing.T) {
	buf := terminal.NewBuffer(2, 2)
	s := New(buf)
	w, h := s.Dimensions()

	for _, p := range [][2]int{{-1, 0}, {w, 0}, {0, h}, {0, -1}, {w, h}} {
		s.SetQuadrant(p[0], p[1], terminal.Red, true)
	}
	if got := buf.String(); got != "" {
		t.Errorf("out-of-bounds writes changed the screen: %q", got)
	}
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if s.CellMask(row, col) != 0 {
				t.Errorf("cell %d,%d mask = %d", row, col, s.CellMask(row, col))
			}
		}
	}
}

func TestEraseToggles(t *testing.T) {
	buf := terminal.NewBuffer(1, 1)
	s := New(buf)

	s.SetQuadrant(0, 0, terminal.Default, true)
	s.SetQuadrant(1, 0, terminal.Default, true)
	s.SetQuadrant(0, 0, terminal.Default, false)
	if got := s.CellMask(0, 0); got != TopRight {
		t.Errorf("after erase mask = %d, want %d", got, TopRight)
	}
	if got := buf.Cell(0, 0).Rune; got != '▝' {
		t.Errorf("after erase glyph = %q", got)
	}

	s.SetMode(Erase)
	s.Accept(1, 0, terminal.Default)
	if got := buf.Cell(0, 0).Rune; got != Blank {
		t.Errorf("erase through Accept glyph = %q, want blank", got)
	}
	s.Accept(1, 0, terminal.Default)
	if !s.IsSet(1, 0) {
		t.Error("second erase should toggle the quadrant back on")
	}
}

func TestClear(t *testing.T) {
	buf := terminal.NewBuffer(2, 2)
	s := New(buf)
	s.SetQuadrant(3, 3, terminal.Default, true)
	s.Clear()
	if s.CellMask(1, 1) != 0 || buf.String() != "" {
		t.Error("Clear left content behind")
	}
}

func TestAttachReallocates(t *testing.T) {
	s := New(terminal.NewBuffer(1, 1))
	s.SetQuadrant(0, 0, terminal.Default, true)

	s.Attach(terminal.NewBuffer(2, 3))
	if w, h := s.Dimensions(); w != 6 || h != 4 {
		t.Errorf("Dimensions() after Attach = %d,%d", w, h)
	}
	if s.CellMask(0, 0) != 0 {
		t.Error("Attach kept old masks")
	}
}

// shrunk reports a larger size than it accepts, like a terminal that was
// resized while a frame was being drawn.
type shrunk struct {
	*terminal.Buffer
}

func (shrunk) Size() (int, int) { return 4, 4 }

func TestStaleSizeWritesAreSwallowed(t *testing.T) {
	buf := terminal.NewBuffer(1, 1)
	s := New(shrunk{buf})

	s.SetQuadrant(0, 0, terminal.Default, true)
	s.SetQuadrant(7, 7, terminal.Default, true)
	s.SetQuadrant(4, 0, terminal.Default, true)

	if got := buf.Cell(0, 0).Rune; got != '▘' {
		t.Errorf("in-range write lost: %q", got)
	}
	if n := s.TakeDropped(); n != 2 {
		t.Errorf("TakeDropped() = %d, want 2", n)
	}
	if n := s.TakeDropped(); n != 0 {
		t.Errorf("TakeDropped() after reset = %d", n)
	}
	if err := buf.SetCell(3, 3, 'x', terminal.Default); !errors.Is(err, terminal.ErrOutOfRange) {
		t.Fatalf("buffer should reject stale cells, got %v", err)
	}
}

func TestDecode(t *testing.T) {
	var got [][2]int
	Decode([]string{"▚x", " ▗"}, func(x, y int) {
		got = append(got, [2]int{x, y})
	})
	want := [][2]int{{0, 0}, {1, 1}, {3, 3}}
	if len(got) != len(want) {
		t.Fatalf("Decode = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Decode[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
