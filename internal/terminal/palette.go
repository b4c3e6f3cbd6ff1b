package terminal

import (
	"fmt"
	"os"
	"strings"

	"chardraw/internal/config"
)

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// Palette maps colour handles to concrete colours and escape sequences.
type Palette struct {
	entries   [paletteSize]RGB
	sgr       map[Color]int // named handles rendered with 8-colour SGR codes
	trueColor bool
}

// Init builds the palette for the configured terminal. Applications call it
// once at start-up and hand the result to the screens they create.
func Init(cfg config.TerminalConfig) *Palette {
	trueColor := false
	switch cfg.TrueColor {
	case config.TrueColorOn:
		trueColor = true
	case config.TrueColorAuto:
		trueColor = SupportsTrueColor()
	}
	return NewPalette(trueColor)
}

// NewPalette returns the standard palette. trueColor selects 24-bit escape
// sequences for generated colours instead of the 256-colour cube.
func NewPalette(trueColor bool) *Palette {
	p := &Palette{
		trueColor: trueColor,
		sgr: map[Color]int{
			Default: 39,
			Green:   32,
			Red:     31,
			Cyan:    36,
			White:   37,
			Black:   30,
		},
	}
	p.entries[Green] = RGB{0, 205, 0}
	p.entries[Red] = RGB{205, 0, 0}
	p.entries[Cyan] = RGB{0, 205, 205}
	p.entries[White] = RGB{229, 229, 229}
	p.entries[Black] = RGB{0, 0, 0}

	// The ramp walks each channel in steps of 23, 33 and 53 thousandths,
	// wrapping at 1000.
	r, g, b := 0, 100, 20
	for c := rampStart; c < paletteSize; c++ {
		p.entries[c] = RGB{scale1000(r), scale1000(g), scale1000(b)}
		r = (r + 23) % 1000
		g = (g + 33) % 1000
		b = (b + 53) % 1000
	}
	return p
}

func scale1000(v int) uint8 {
	return uint8(v * 255 / 1000)
}

// TrueColor reports whether 24-bit escape sequences are emitted.
func (p *Palette) TrueColor() bool {
	return p.trueColor
}

// RGB returns the colour behind c. ok is false for handles outside the palette.
func (p *Palette) RGB(c Color) (rgb RGB, ok bool) {
	if c < 0 || int(c) >= paletteSize {
		return RGB{}, false
	}
	return p.entries[c], true
}

// Escape returns the SGR sequence selecting c as foreground colour.
// Unknown handles fall back to the terminal default.
func (p *Palette) Escape(c Color) string {
	if code, ok := p.sgr[c]; ok {
		return fmt.Sprintf("%s%dm", ansiEscape, code)
	}
	rgb, ok := p.RGB(c)
	if !ok {
		return ansiDefaultFg
	}
	if p.trueColor {
		return fmt.Sprintf("%s%d;%d;%dm", ansiTrueColorFg, rgb.R, rgb.G, rgb.B)
	}
	return fmt.Sprintf("%s%dm", ansi256ColorFg, rgbTo256(int(rgb.R), int(rgb.G), int(rgb.B)))
}

// SupportsTrueColor checks if the terminal supports 24-bit true color.
// macOS Terminal.app does not, iTerm2 and most modern terminals do; they
// announce it through COLORTERM.
func SupportsTrueColor() bool {
	colorterm := os.Getenv("COLORTERM")
	return strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit")
}

// rgbTo256 converts RGB values (0-255) to an ANSI 256-color palette index
// using the 6x6x6 color cube (indices 16-231).
func rgbTo256(r, g, b int) int {
	// (value * 5 + 127) / 255 rounds to the nearest cube step
	r6 := (r*5 + 127) / 255
	g6 := (g*5 + 127) / 255
	b6 := (b*5 + 127) / 255
	return 16 + 36*r6 + 6*g6 + b6
}
