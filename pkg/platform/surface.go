package platform

import (
	"errors"

	"squ1d/pkg/gfx"
)

// ErrSurfaceLost is returned by Lock when the surface can no longer be drawn to.
var ErrSurfaceLost = errors.New("surface lost")

// PixelFormat describes how a color is packed into a 32-bit pixel.
type PixelFormat int

const (
	// FormatARGB8888 packs 0xAARRGGBB.
	FormatARGB8888 PixelFormat = iota
	// FormatABGR8888 packs 0xAABBGGRR, which is R,G,B,A byte order in
	// little-endian memory.
	FormatABGR8888
)

// MapRGBA packs a color into f.
func (f PixelFormat) MapRGBA(r, g, b, a uint8) uint32 {
	switch f {
	case FormatABGR8888:
		return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
	default:
		return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	}
}

// Unmap unpacks a pixel in format f.
func (f PixelFormat) Unmap(p uint32) gfx.Color {
	a := uint8(p >> 24)
	switch f {
	case FormatABGR8888:
		return gfx.Color{R: uint8(p), G: uint8(p >> 8), B: uint8(p >> 16), A: a}
	default:
		return gfx.Color{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: a}
	}
}

func (f PixelFormat) String() string {
	switch f {
	case FormatABGR8888:
		return "ABGR8888"
	default:
		return "ARGB8888"
	}
}

// Pixels is a locked view of a surface. Stride is in pixels.
type Pixels struct {
	Data   []uint32
	Width  int
	Height int
	Stride int
	Format PixelFormat
}

// Set writes a packed pixel. Writes outside the surface are ignored.
func (p Pixels) Set(x, y int, v uint32) {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return
	}
	i := y*p.Stride + x
	if i >= len(p.Data) {
		return
	}
	p.Data[i] = v
}

// At returns the color at (x, y), or the zero color outside the surface.
func (p Pixels) At(x, y int) gfx.Color {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return gfx.Color{}
	}
	i := y*p.Stride + x
	if i >= len(p.Data) {
		return gfx.Color{}
	}
	return p.Format.Unmap(p.Data[i])
}

// Surface is a window's presentable pixel buffer. Pixels returned by Lock
// are valid until the matching Unlock.
type Surface interface {
	Lock() (Pixels, error)
	Unlock()
	Present() error
}

// Window delivers events and owns the surface frames are presented on.
type Window interface {
	Events() <-chan Event
	Surface() Surface
	Size() (width, height int)
	Close() error
}
