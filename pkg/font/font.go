// Package font is a fixed-width 3x5 bitmap font for the browser chrome.
//
// Every glyph occupies a 3x5 cell; callers advance the pen by Advance pixels
// per character. Letters are drawn in upper case. Runes without a glyph are
// drawn as a hollow box so that missing coverage is visible.
package font

import "unicode"

const (
	// GlyphWidth and GlyphHeight are the size of a glyph cell in pixels.
	GlyphWidth  = 3
	GlyphHeight = 5
	// Advance is the horizontal pen advance: one glyph plus one pixel of spacing.
	Advance = GlyphWidth + 1
)

// glyph rows are top to bottom; bit 2 is the leftmost column.
type glyph [GlyphHeight]uint8

var missing = glyph{0b111, 0b101, 0b101, 0b101, 0b111}

var glyphs = map[rune]glyph{
	' ': {0b000, 0b000, 0b000, 0b000, 0b000},
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b011, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b010, 0b010, 0b010},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},
	'A': {0b010, 0b101, 0b111, 0b101, 0b101},
	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
	'C': {0b011, 0b100, 0b100, 0b100, 0b011},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b110, 0b100, 0b111},
	'F': {0b111, 0b100, 0b110, 0b100, 0b100},
	'G': {0b011, 0b100, 0b101, 0b101, 0b011},
	'H': {0b101, 0b101, 0b111, 0b101, 0b101},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'J': {0b001, 0b001, 0b001, 0b101, 0b010},
	'K': {0b101, 0b101, 0b110, 0b101, 0b101},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'M': {0b101, 0b111, 0b111, 0b101, 0b101},
	'N': {0b110, 0b101, 0b101, 0b101, 0b101},
	'O': {0b010, 0b101, 0b101, 0b101, 0b010},
	'P': {0b110, 0b101, 0b110, 0b100, 0b100},
	'Q': {0b010, 0b101, 0b101, 0b110, 0b011},
	'R': {0b110, 0b101, 0b110, 0b101, 0b101},
	'S': {0b011, 0b100, 0b010, 0b001, 0b110},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'U': {0b101, 0b101, 0b101, 0b101, 0b111},
	'V': {0b101, 0b101, 0b101, 0b101, 0b010},
	'W': {0b101, 0b101, 0b111, 0b111, 0b101},
	'X': {0b101, 0b101, 0b010, 0b101, 0b101},
	'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
	'Z': {0b111, 0b001, 0b010, 0b100, 0b111},
	'.': {0b000, 0b000, 0b000, 0b000, 0b010},
	',': {0b000, 0b000, 0b000, 0b010, 0b100},
	':': {0b000, 0b010, 0b000, 0b010, 0b000},
	';': {0b000, 0b010, 0b000, 0b010, 0b100},
	'/': {0b001, 0b001, 0b010, 0b100, 0b100},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	'_': {0b000, 0b000, 0b000, 0b000, 0b111},
	'+': {0b000, 0b010, 0b111, 0b010, 0b000},
	'=': {0b000, 0b111, 0b000, 0b111, 0b000},
	'?': {0b111, 0b001, 0b010, 0b000, 0b010},
	'!': {0b010, 0b010, 0b010, 0b000, 0b010},
	'<': {0b001, 0b010, 0b100, 0b010, 0b001},
	'>': {0b100, 0b010, 0b001, 0b010, 0b100},
	'(': {0b001, 0b010, 0b010, 0b010, 0b001},
	')': {0b100, 0b010, 0b010, 0b010, 0b100},
	'[': {0b011, 0b010, 0b010, 0b010, 0b011},
	']': {0b110, 0b010, 0b010, 0b010, 0b110},
	'"': {0b101, 0b101, 0b000, 0b000, 0b000},
	'#': {0b101, 0b111, 0b101, 0b111, 0b101},
	'%': {0b101, 0b001, 0b010, 0b100, 0b101},
	'&': {0b010, 0b101, 0b010, 0b101, 0b011},
	'@': {0b111, 0b101, 0b111, 0b100, 0b011},
	'*': {0b000, 0b101, 0b010, 0b101, 0b000},
	'~': {0b000, 0b011, 0b110, 0b000, 0b000},
}

func init() {
	glyphs['\\'] = glyph{0b100, 0b100, 0b010, 0b001, 0b001}
	glyphs['\''] = glyph{0b010, 0b010, 0b000, 0b000, 0b000}
}

// HasGlyph reports whether ch has a dedicated glyph.
func HasGlyph(ch rune) bool {
	_, ok := glyphs[unicode.ToUpper(ch)]
	return ok
}

func lookup(ch rune) glyph {
	if g, ok := glyphs[unicode.ToUpper(ch)]; ok {
		return g
	}
	return missing
}

// DrawChar paints ch with its top-left corner at (px, py) into an RGBA buffer
// of the given dimensions. Pixels outside the buffer are skipped. Set pixels
// are written fully opaque; unset pixels are left untouched.
func DrawChar(buf []byte, width, height, px, py int, ch rune, r, g, b uint8) {
	gl := lookup(ch)
	for row := 0; row < GlyphHeight; row++ {
		y := py + row
		if y < 0 || y >= height {
			continue
		}
		bits := gl[row]
		for col := 0; col < GlyphWidth; col++ {
			if bits&(1<<(GlyphWidth-1-col)) == 0 {
				continue
			}
			x := px + col
			if x < 0 || x >= width {
				continue
			}
			i := (y*width + x) * 4
			if i+3 >= len(buf) {
				continue
			}
			buf[i+0] = r
			buf[i+1] = g
			buf[i+2] = b
			buf[i+3] = 255
		}
	}
}

// TextWidth returns the pen distance covered by s.
func TextWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	return n * Advance
}
