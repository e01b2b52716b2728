package gfx

import "image"

// Bitmap is a top-down, row-major RGBA buffer together with the size it was
// produced at. An empty Pix means "nothing rendered yet".
type Bitmap struct {
	Width  int
	Height int
	Pix    []byte
}

// NewBitmap allocates a zeroed bitmap of the given size.
func NewBitmap(width, height int) Bitmap {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return Bitmap{Width: width, Height: height, Pix: make([]byte, width*height*4)}
}

// SolidBitmap allocates a bitmap filled with c.
func SolidBitmap(width, height int, c Color) Bitmap {
	b := NewBitmap(width, height)
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i+0] = c.R
		b.Pix[i+1] = c.G
		b.Pix[i+2] = c.B
		b.Pix[i+3] = c.A
	}
	return b
}

// Empty reports whether the bitmap holds no pixel data.
func (b Bitmap) Empty() bool {
	return len(b.Pix) == 0
}

// Reset empties the bitmap while keeping its backing storage.
func (b *Bitmap) Reset() {
	b.Pix = b.Pix[:0]
}

// At returns the color at (x, y), or the zero color outside the bitmap.
func (b Bitmap) At(x, y int) Color {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return Color{}
	}
	i := (y*b.Width + x) * 4
	if i+3 >= len(b.Pix) {
		return Color{}
	}
	return Color{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}
}

// Image wraps the bitmap as an image without copying. A bitmap whose buffer
// is shorter than its size yields an empty image.
func (b Bitmap) Image() *image.RGBA {
	if len(b.Pix) < b.Width*b.Height*4 {
		return image.NewRGBA(image.Rectangle{})
	}
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}
