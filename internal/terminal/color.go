// Package terminal provides the character-cell surface the canvas draws on:
// colour handles and their palette, the Screen contract, an in-memory
// screen and an ANSI escape-sequence screen.
package terminal

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque handle into the active palette. Drawing code passes it
// through untouched; only a Screen interprets it.
type Color int

// Named colour handles. The numbering follows the classic curses colour
// pairs (green, red, cyan, white and black on a black background).
const (
	Default Color = iota
	Green
	Red
	Cyan
	White
	Black
)

// Generated colours occupy handles rampStart..paletteSize-1.
const (
	rampStart   = 8
	paletteSize = 256
	rampLen     = paletteSize - rampStart
)

// Ramp returns the i-th generated palette colour. i wraps around the ramp.
func Ramp(i int) Color {
	i %= rampLen
	if i < 0 {
		i += rampLen
	}
	return Color(rampStart + i)
}

var colorNames = map[string]Color{
	"default": Default,
	"green":   Green,
	"red":     Red,
	"cyan":    Cyan,
	"white":   White,
	"black":   Black,
}

// ParseColor accepts a colour name ("green"), a ramp entry ("ramp:12")
// or a raw palette index ("42").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Default, nil
	}
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	if rest, ok := strings.CutPrefix(s, "ramp:"); ok {
		i, err := strconv.Atoi(rest)
		if err != nil {
			return Default, fmt.Errorf("invalid ramp index %q: %w", rest, err)
		}
		return Ramp(i), nil
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 || i >= paletteSize {
		return Default, fmt.Errorf("unknown color %q", s)
	}
	return Color(i), nil
}

// String returns the colour's name or palette index.
func (c Color) String() string {
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return strconv.Itoa(int(c))
}
