package terminal

import (
	"unicode"

	"golang.org/x/text/width"
)

// RuneWidth returns the number of cells r occupies: 0 for control and
// combining runes, 2 for East Asian wide and fullwidth runes, 1 otherwise.
func RuneWidth(r rune) int {
	if r == 0 || unicode.IsControl(r) || unicode.Is(unicode.Mn, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// StringWidth returns the display width of s in cells.
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}

// Truncate returns the longest prefix of s that fits in cols cells.
func Truncate(s string, cols int) string {
	n := 0
	for i, r := range s {
		w := RuneWidth(r)
		if n+w > cols {
			return s[:i]
		}
		n += w
	}
	return s
}
