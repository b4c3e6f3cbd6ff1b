package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Size returns the size of the terminal behind f, or the fallback when f is
// not a terminal or cannot be queried.
func Size(f *os.File, fallbackRows, fallbackCols int) (rows, cols int) {
	if !IsTerminal(f) {
		return fallbackRows, fallbackCols
	}
	rows, cols, err := DetectSize(f.Fd())
	if err != nil {
		return fallbackRows, fallbackCols
	}
	return rows, cols
}
