package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func countSet(buf []byte) int {
	n := 0
	for i := 3; i < len(buf); i += 4 {
		if buf[i] != 0 {
			n++
		}
	}
	return n
}

func TestDrawCharPaintsGlyphCell(t *testing.T) {
	const w, h = 8, 8
	buf := make([]byte, w*h*4)
	DrawChar(buf, w, h, 1, 1, '-', 10, 20, 30)

	// '-' is the middle row of the cell.
	for x := 1; x <= 3; x++ {
		i := (3*w + x) * 4
		assert.Equal(t, []byte{10, 20, 30, 255}, buf[i:i+4], "x=%d", x)
	}
	assert.Equal(t, 3, countSet(buf))
}

func TestDrawCharLowerCaseUsesUpperGlyph(t *testing.T) {
	const w, h = 4, 5
	lower := make([]byte, w*h*4)
	upper := make([]byte, w*h*4)
	DrawChar(lower, w, h, 0, 0, 'k', 1, 1, 1)
	DrawChar(upper, w, h, 0, 0, 'K', 1, 1, 1)
	assert.Equal(t, upper, lower)
}

func TestDrawCharMissingGlyphDrawsBox(t *testing.T) {
	const w, h = 3, 5
	buf := make([]byte, w*h*4)
	DrawChar(buf, w, h, 0, 0, '→', 255, 0, 0)
	assert.False(t, HasGlyph('→'))
	assert.Equal(t, 12, countSet(buf))
}

func TestDrawCharClipsToBuffer(t *testing.T) {
	const w, h = 2, 2
	buf := make([]byte, w*h*4)
	assert.NotPanics(t, func() {
		DrawChar(buf, w, h, -2, -3, 'W', 9, 9, 9)
		DrawChar(buf, w, h, 1, 1, 'W', 9, 9, 9)
		DrawChar(buf, w, h, 100, 100, 'W', 9, 9, 9)
	})
	// Only (1,1) can be reached by the second call: 'W' row 0 col 0 is set.
	assert.Equal(t, []byte{9, 9, 9, 255}, buf[(1*w+1)*4:(1*w+1)*4+4])
}

func TestTextWidth(t *testing.T) {
	assert.Equal(t, 0, TextWidth(""))
	assert.Equal(t, 12, TextWidth("abc"))
	assert.Equal(t, 8, TextWidth("é!"))
}
