package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Cell is one character cell of a Buffer.
type Cell struct {
	Rune  rune
	Color Color
}

// Buffer is an in-memory Screen. It backs tests, snapshots and the MCP
// renderer, none of which have a terminal to draw on.
type Buffer struct {
	mu         sync.Mutex
	rows, cols int
	cells      []Cell
	refreshes  int
}

// NewBuffer returns a blank buffer of rows x cols cells.
func NewBuffer(rows, cols int) *Buffer {
	b := &Buffer{}
	b.Resize(rows, cols)
	return b
}

// Size returns the extent in cells.
func (b *Buffer) Size() (rows, cols int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rows, b.cols
}

// Resize changes the extent, keeping the overlapping content.
func (b *Buffer) Resize(rows, cols int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rows, cols = max(rows, 0), max(cols, 0)
	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i] = Cell{Rune: ' '}
	}
	for r := 0; r < min(rows, b.rows); r++ {
		copy(cells[r*cols:r*cols+min(cols, b.cols)], b.cells[r*b.cols:])
	}
	b.rows, b.cols, b.cells = rows, cols, cells
}

// SetCell stores a glyph. A double-width rune also claims the next column,
// which is marked with rune 0 so Lines can skip it.
func (b *Buffer) SetCell(row, col int, r rune, c Color) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return fmt.Errorf("cell %d,%d: %w", row, col, ErrOutOfRange)
	}
	b.cells[row*b.cols+col] = Cell{Rune: r, Color: c}
	if RuneWidth(r) == 2 && col+1 < b.cols {
		b.cells[row*b.cols+col+1] = Cell{Color: c}
	}
	return nil
}

// Cell returns the content at row, col. Out-of-range positions read as a
// blank cell.
func (b *Buffer) Cell(row, col int) Cell {
	b.mu.Lock()
	defer b.mu.Unlock()

	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return Cell{Rune: ' '}
	}
	return b.cells[row*b.cols+col]
}

// Refresh counts refreshes; a buffer has nothing to flush.
func (b *Buffer) Refresh() error {
	b.mu.Lock()
	b.refreshes++
	b.mu.Unlock()
	return nil
}

// Refreshes returns how often Refresh was called.
func (b *Buffer) Refreshes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.refreshes
}

// Row returns the text of one row, without trailing blanks.
func (b *Buffer) Row(row int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.row(row)
}

func (b *Buffer) row(row int) string {
	if row < 0 || row >= b.rows {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[row*b.cols : (row+1)*b.cols] {
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Lines returns every row, trailing blanks trimmed.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := make([]string, b.rows)
	for r := range lines {
		lines[r] = b.row(r)
	}
	return lines
}

// String joins Lines with newlines, dropping trailing empty rows.
func (b *Buffer) String() string {
	lines := b.Lines()
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Clear blanks every cell.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' '}
	}
}

// WriteANSI writes the rows kept by String, one per line, with each run of
// glyphs preceded by the colour escape from p. Blanks are never coloured.
func (b *Buffer) WriteANSI(w io.Writer, p *Palette) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	last := b.rows - 1
	for last >= 0 && b.row(last) == "" {
		last--
	}

	var sb strings.Builder
	for r := 0; r <= last; r++ {
		cells := b.cells[r*b.cols : (r+1)*b.cols]
		end := len(cells)
		for end > 0 && (cells[end-1].Rune == ' ' || cells[end-1].Rune == 0) {
			end--
		}
		var cur Color
		colored := false
		for _, c := range cells[:end] {
			if c.Rune == 0 {
				continue
			}
			if c.Rune != ' ' && (!colored || c.Color != cur) {
				sb.WriteString(p.Escape(c.Color))
				cur, colored = c.Color, true
			}
			sb.WriteRune(c.Rune)
		}
		if colored {
			sb.WriteString(ansiResetColor)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
