package terminal

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"
)

// ANSI escape codes for cursor control, colors and clearing
const (
	ansiEscape      = "\033["
	ansiHideCursor  = ansiEscape + "?25l"
	ansiShowCursor  = ansiEscape + "?25h"
	ansiResetColor  = ansiEscape + "0m"
	ansiClearScreen = ansiEscape + "2J"
	ansiDefaultFg   = ansiEscape + "39m"
	ansiTrueColorFg = ansiEscape + "38;2;" // followed by r;g;bm
	ansi256ColorFg  = ansiEscape + "38;5;" // followed by Nm
)

// ANSI is a Screen that writes cursor-addressed cells to a terminal.
// Cell writes are buffered until Refresh.
type ANSI struct {
	w          io.Writer
	palette    *Palette
	rows, cols int
	buf        bytes.Buffer
	color      Color
	colorSet   bool
}

// NewANSI creates a screen of rows x cols cells writing to w.
func NewANSI(w io.Writer, palette *Palette, rows, cols int) *ANSI {
	if palette == nil {
		palette = NewPalette(false)
	}
	return &ANSI{
		w:       w,
		palette: palette,
		rows:    max(rows, 0),
		cols:    max(cols, 0),
	}
}

// Open hides the cursor and clears the screen.
func (a *ANSI) Open() error {
	_, err := io.WriteString(a.w, ansiHideCursor+ansiClearScreen)
	return err
}

// Close resets colours, moves the cursor below the drawing and shows it again.
func (a *ANSI) Close() error {
	if err := a.Refresh(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(a.w, "%s%s%s", ansiResetColor, moveTo(a.rows, 0), ansiShowCursor)
	return err
}

// Size returns the screen extent in cells.
func (a *ANSI) Size() (rows, cols int) {
	return a.rows, a.cols
}

// Resize changes the addressable extent. It does not clear the terminal.
func (a *ANSI) Resize(rows, cols int) {
	a.rows, a.cols = max(rows, 0), max(cols, 0)
}

// SetCell queues a glyph at row, col.
func (a *ANSI) SetCell(row, col int, r rune, c Color) error {
	if row < 0 || row >= a.rows || col < 0 || col >= a.cols {
		return fmt.Errorf("cell %d,%d: %w", row, col, ErrOutOfRange)
	}
	if !utf8.ValidRune(r) {
		return fmt.Errorf("cell %d,%d: invalid rune %U", row, col, r)
	}
	a.buf.WriteString(moveTo(row, col))
	if !a.colorSet || a.color != c {
		a.buf.WriteString(a.palette.Escape(c))
		a.color, a.colorSet = c, true
	}
	a.buf.WriteRune(r)
	return nil
}

// Refresh flushes queued cells to the terminal.
func (a *ANSI) Refresh() error {
	if a.buf.Len() == 0 {
		return nil
	}
	_, err := a.w.Write(a.buf.Bytes())
	a.buf.Reset()
	if err != nil {
		return fmt.Errorf("failed to write to terminal: %w", err)
	}
	return nil
}

// moveTo returns the cursor position sequence for a zero-based cell.
func moveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", ansiEscape, row+1, col+1)
}
