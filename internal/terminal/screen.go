package terminal

import "errors"

// ErrOutOfRange is returned by a Screen for writes outside its extent.
var ErrOutOfRange = errors.New("cell out of range")

// Screen is a character-cell addressable output.
type Screen interface {
	// Size returns the extent in rows and columns.
	Size() (rows, cols int)

	// SetCell writes a single glyph with a colour at row, col.
	SetCell(row, col int, r rune, c Color) error

	// Refresh forces the physical display to show all writes so far.
	Refresh() error
}
