package surface

// Mask flags the lit quadrants of one character cell.
type Mask uint8

// Quadrant bits. A pixel's bit is selected by (x%2) + (y%2)*2.
const (
	TopLeft     Mask = 1 << iota // 1
	TopRight                     // 2
	BottomLeft                   // 4
	BottomRight                  // 8

	Full = TopLeft | TopRight | BottomLeft | BottomRight
)

// Blank is the glyph of an empty cell.
const Blank = ' '

// glyphs maps every mask to its block element.
var glyphs = [16]rune{
	Blank, // 0
	'▘',   // 1 TL
	'▝',   // 2 TR
	'▀',   // 3 TL TR
	'▖',   // 4 BL
	'▌',   // 5 TL BL
	'▞',   // 6 TR BL
	'▛',   // 7 TL TR BL
	'▗',   // 8 BR
	'▚',   // 9 TL BR
	'▐',   // 10 TR BR
	'▜',   // 11 TL TR BR
	'▄',   // 12 BL BR
	'▙',   // 13 TL BL BR
	'▟',   // 14 TR BL BR
	'█',   // 15 full
}

// Block elements live in U+2580..U+259F.
const (
	blockBase = 0x2580
	blockLen  = 0x20
)

// masks is the inverse of glyphs over the block element range. Entries
// holding -1 are block elements that no mask renders to.
var masks = func() [blockLen]int8 {
	var inv [blockLen]int8
	for i := range inv {
		inv[i] = -1
	}
	for m, r := range glyphs {
		if r == Blank {
			continue
		}
		if inv[r-blockBase] != -1 {
			panic("surface: glyph table is not injective")
		}
		inv[r-blockBase] = int8(m)
	}
	return inv
}()

// Glyph returns the block element drawing m. Only the low four bits count.
func Glyph(m Mask) rune {
	return glyphs[m&Full]
}

// MaskOf returns the mask rendered as r. ok is false for runes that are
// not produced by Glyph.
func MaskOf(r rune) (m Mask, ok bool) {
	if r == Blank {
		return 0, true
	}
	if r < blockBase || r >= blockBase+blockLen {
		return 0, false
	}
	v := masks[r-blockBase]
	if v < 0 {
		return 0, false
	}
	return Mask(v), true
}

// QuadrantBit returns the bit of pixel x, y within its cell.
func QuadrantBit(x, y int) Mask {
	return 1 << (mod2(x) + mod2(y)*2)
}

func mod2(v int) int {
	return v & 1
}
