package gfx

// Point is a position in window pixels.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	X, Y, Width, Height float32
}

// NewRect returns a rectangle with the given origin and size.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}
