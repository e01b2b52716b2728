// Package chrome paints the browser chrome (toolbar, tabs, URL bar, buttons)
// into a CPU-side RGBA frame buffer.
package chrome

import (
	"image"

	"github.com/fogleman/gg"

	"squ1d/pkg/font"
	"squ1d/pkg/gfx"
)

// Renderer owns a width*height*4 RGBA frame buffer, row-major and top-down.
type Renderer struct {
	width  int
	height int
	pix    []byte
	theme  gfx.Theme
}

// NewRenderer allocates a frame buffer of the given size, cleared to the
// theme background.
func NewRenderer(width, height int, theme gfx.Theme) *Renderer {
	r := &Renderer{theme: theme}
	r.Resize(width, height)
	return r
}

// Resize reallocates the frame buffer and clears it to the background color.
func (r *Renderer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	r.width = width
	r.height = height
	r.pix = make([]byte, width*height*4)
	r.Clear(r.theme.Background)
}

// Width returns the frame buffer width in pixels.
func (r *Renderer) Width() int { return r.width }

// Height returns the frame buffer height in pixels.
func (r *Renderer) Height() int { return r.height }

// Theme returns the palette used by the widget helpers.
func (r *Renderer) Theme() gfx.Theme { return r.theme }

// SetTheme replaces the palette. The buffer is not repainted.
func (r *Renderer) SetTheme(t gfx.Theme) { r.theme = t }

// FrameBuffer returns the live frame buffer. Callers must not modify it.
func (r *Renderer) FrameBuffer() []byte { return r.pix }

// Image wraps the live frame buffer as an image without copying.
func (r *Renderer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    r.pix,
		Stride: r.width * 4,
		Rect:   image.Rect(0, 0, r.width, r.height),
	}
}

// SavePNG writes the current frame buffer to a PNG file.
func (r *Renderer) SavePNG(filename string) error {
	return gg.SavePNG(filename, r.Image())
}

// Clear sets every pixel to c.
func (r *Renderer) Clear(c gfx.Color) {
	for i := 0; i < len(r.pix); i += 4 {
		r.pix[i+0] = c.R
		r.pix[i+1] = c.G
		r.pix[i+2] = c.B
		r.pix[i+3] = c.A
	}
}

// PutPixel overwrites the pixel at (x, y). Out-of-bounds writes are ignored.
func (r *Renderer) PutPixel(x, y int, c gfx.Color) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	i := (y*r.width + x) * 4
	r.pix[i+0] = c.R
	r.pix[i+1] = c.G
	r.pix[i+2] = c.B
	r.pix[i+3] = c.A
}

// FillRect fills rect, clipped to the buffer.
func (r *Renderer) FillRect(rect gfx.Rect, c gfx.Color) {
	r.fillSpan(
		int(rect.X),
		int(rect.Y),
		int(rect.X+rect.Width),
		int(rect.Y+rect.Height),
		c,
	)
}

// fillSpan fills [x1,x2)x[y1,y2) after clamping each edge to the buffer.
func (r *Renderer) fillSpan(x1, y1, x2, y2 int, c gfx.Color) {
	x1 = max(0, x1)
	y1 = max(0, y1)
	x2 = min(r.width, x2)
	y2 = min(r.height, y2)

	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			r.PutPixel(x, y, c)
		}
	}
}

// DrawRect strokes the outline of rect as four independently clipped strips.
// Strips overlap on rectangles thinner than twice the stroke.
func (r *Renderer) DrawRect(rect gfx.Rect, c gfx.Color, strokeWidth float32) {
	sw := float32(int(strokeWidth))

	// top
	r.fillSpan(int(rect.X), int(rect.Y), int(rect.X+rect.Width), int(rect.Y+sw), c)
	// bottom
	r.fillSpan(int(rect.X), int(rect.Y+rect.Height-sw), int(rect.X+rect.Width), int(rect.Y+rect.Height), c)
	// left
	r.fillSpan(int(rect.X), int(rect.Y), int(rect.X+sw), int(rect.Y+rect.Height), c)
	// right
	r.fillSpan(int(rect.X+rect.Width-sw), int(rect.Y), int(rect.X+rect.Width), int(rect.Y+rect.Height), c)
}

// DrawRoundedRect fills a horizontally inset band and a vertically inset band,
// leaving radius x radius corners unpainted. Corners come out square-cut;
// strokeWidth is accepted for API compatibility and ignored.
func (r *Renderer) DrawRoundedRect(rect gfx.Rect, c gfx.Color, radius, strokeWidth float32) {
	rad := float32(int(radius))

	r.fillSpan(
		int(rect.X+rad),
		int(rect.Y),
		int(rect.X+rect.Width-rad),
		int(rect.Y+rect.Height),
		c,
	)
	r.fillSpan(
		int(rect.X),
		int(rect.Y+rad),
		int(rect.X+rect.Width),
		int(rect.Y+rect.Height-rad),
		c,
	)
}

// DrawText draws text with the bitmap font starting at (x, y). The pen moves
// font.Advance pixels per rune; fontSize does not scale the glyphs.
func (r *Renderer) DrawText(text string, x, y float32, c gfx.Color, fontSize float32) {
	px := int(x)
	py := int(y)
	for _, ch := range text {
		font.DrawChar(r.pix, r.width, r.height, px, py, ch, c.R, c.G, c.B)
		px += font.Advance
	}
}

// DrawLine draws a DDA line from (x1,y1) to (x2,y2). When both deltas
// truncate to zero nothing is drawn, not even the start point.
func (r *Renderer) DrawLine(x1, y1, x2, y2 float32, c gfx.Color) {
	dx := int(x2 - x1)
	dy := int(y2 - y1)

	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return
	}

	xInc := float32(dx) / float32(steps)
	yInc := float32(dy) / float32(steps)

	for i := 0; i <= steps; i++ {
		r.PutPixel(
			int(x1+float32(i)*xInc),
			int(y1+float32(i)*yInc),
			c,
		)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
