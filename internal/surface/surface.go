// Package surface packs 2x2 pixel quadrants into block element glyphs on a
// character-cell screen.
package surface

import (
	"chardraw/internal/terminal"
)

// Mode selects how a quadrant is composited into its cell.
type Mode int

const (
	// Set turns quadrants on (bitwise OR).
	Set Mode = iota
	// Erase toggles quadrants (bitwise XOR).
	Erase
)

func (m Mode) String() string {
	if m == Erase {
		return "erase"
	}
	return "set"
}

// Surface owns the quadrant masks of one screen. It is not safe for
// concurrent use; callers serialize access per surface.
type Surface struct {
	screen     terminal.Screen
	rows, cols int
	cells      []Mask
	mode       Mode
	dropped    int
}

// New creates a surface covering the whole screen.
func New(screen terminal.Screen) *Surface {
	s := &Surface{}
	s.Attach(screen)
	return s
}

// Attach binds the surface to screen and reallocates the grid at its
// current size. All masks are dropped.
func (s *Surface) Attach(screen terminal.Screen) {
	s.screen = screen
	s.rows, s.cols = screen.Size()
	s.rows, s.cols = max(s.rows, 0), max(s.cols, 0)
	s.cells = make([]Mask, s.rows*s.cols)
	s.dropped = 0
}

// Screen returns the attached screen.
func (s *Surface) Screen() terminal.Screen {
	return s.screen
}

// Dimensions returns the pixel extent: two pixels per cell on each axis.
func (s *Surface) Dimensions() (width, height int) {
	return s.cols * 2, s.rows * 2
}

// Cells returns the cell extent.
func (s *Surface) Cells() (rows, cols int) {
	return s.rows, s.cols
}

// SetMode changes the compositing mode used by Accept.
func (s *Surface) SetMode(m Mode) {
	s.mode = m
}

// Mode returns the compositing mode used by Accept.
func (s *Surface) Mode() Mode {
	return s.mode
}

// Accept composites pixel x, y with the current mode. It lets a Surface
// serve as the sink of any rasterizer.
func (s *Surface) Accept(x, y int, c terminal.Color) {
	s.SetQuadrant(x, y, c, s.mode == Set)
}

// SetQuadrant lights pixel x, y (on) or toggles it (!on) and redraws its
// cell. Pixels outside the surface are ignored.
func (s *Surface) SetQuadrant(x, y int, c terminal.Color, on bool) {
	w, h := s.Dimensions()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	row, col := CellOf(x, y)
	i := row*s.cols + col
	bit := QuadrantBit(x, y)
	if on {
		s.cells[i] |= bit
	} else {
		s.cells[i] ^= bit
	}
	s.write(row, col, Glyph(s.cells[i]), c)
}

// write forwards a glyph to the screen. A failed write only costs this
// cell; it is counted and the pass continues.
func (s *Surface) write(row, col int, r rune, c terminal.Color) {
	if err := s.screen.SetCell(row, col, r, c); err != nil {
		s.dropped++
	}
}

// Mask returns the mask of the cell holding pixel x, y.
func (s *Surface) Mask(x, y int) Mask {
	row, col := CellOf(x, y)
	return s.CellMask(row, col)
}

// CellMask returns the mask of a cell; 0 outside the grid.
func (s *Surface) CellMask(row, col int) Mask {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return 0
	}
	return s.cells[row*s.cols+col]
}

// IsSet reports whether pixel x, y is lit.
func (s *Surface) IsSet(x, y int) bool {
	return s.Mask(x, y)&QuadrantBit(x, y) != 0
}

// ClearCell forgets the mask of one cell without touching the screen.
// Text writers call it after overwriting the cell's glyph.
func (s *Surface) ClearCell(row, col int) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return
	}
	s.cells[row*s.cols+col] = 0
}

// Clear blanks every cell on the surface and on the screen.
func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = 0
	}
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			s.write(row, col, Blank, terminal.Default)
		}
	}
}

// TakeDropped returns the number of screen writes that failed since the
// last call and resets the counter.
func (s *Surface) TakeDropped() int {
	n := s.dropped
	s.dropped = 0
	return n
}

// CellOf returns the cell holding pixel x, y.
func CellOf(x, y int) (row, col int) {
	return floorDiv2(y), floorDiv2(x)
}

// PixelOf returns the top-left pixel of a cell.
func PixelOf(row, col int) (x, y int) {
	return col * 2, row * 2
}

func floorDiv2(v int) int {
	return v >> 1
}

// Decode calls fn for every lit pixel of rendered glyph lines. Runes that
// are not quadrant glyphs are skipped.
func Decode(lines []string, fn func(x, y int)) {
	for row, line := range lines {
		col := 0
		for _, r := range line {
			m, ok := MaskOf(r)
			if ok {
				x, y := PixelOf(row, col)
				for q := 0; q < 4; q++ {
					if m&(1<<q) != 0 {
						fn(x+q%2, y+q/2)
					}
				}
			}
			col += max(terminal.RuneWidth(r), 1)
		}
	}
}
