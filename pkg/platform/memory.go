package platform

import (
	"errors"
	"image"
	"sync"

	"github.com/fogleman/gg"

	"squ1d/pkg/gfx"
)

// MemorySurface is an off-screen Surface. Drawing goes to a back buffer
// and Present copies it to the front buffer read by Image.
type MemorySurface struct {
	mu        sync.Mutex
	width     int
	height    int
	format    PixelFormat
	back      []uint32
	front     []uint32
	locked    bool
	lost      bool
	presented int
}

// NewMemorySurface allocates a surface of the given size.
func NewMemorySurface(width, height int, format PixelFormat) *MemorySurface {
	s := &MemorySurface{format: format}
	s.Resize(width, height)
	return s
}

// Resize reallocates both buffers. Contents are discarded.
func (s *MemorySurface) Resize(width, height int) {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
	s.back = make([]uint32, width*height)
	s.front = make([]uint32, width*height)
}

// Lock implements Surface.
func (s *MemorySurface) Lock() (Pixels, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lost {
		return Pixels{}, ErrSurfaceLost
	}
	if s.locked {
		return Pixels{}, errors.New("surface already locked")
	}
	s.locked = true
	return Pixels{
		Data:   s.back,
		Width:  s.width,
		Height: s.height,
		Stride: s.width,
		Format: s.format,
	}, nil
}

// Unlock implements Surface.
func (s *MemorySurface) Unlock() {
	s.mu.Lock()
	s.locked = false
	s.mu.Unlock()
}

// Present implements Surface.
func (s *MemorySurface) Present() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lost {
		return ErrSurfaceLost
	}
	copy(s.front, s.back)
	s.presented++
	return nil
}

// Locked reports whether the surface is currently locked.
func (s *MemorySurface) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Presented returns how many frames have been presented.
func (s *MemorySurface) Presented() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presented
}

// Lose makes every later Lock and Present fail with ErrSurfaceLost.
func (s *MemorySurface) Lose() {
	s.mu.Lock()
	s.lost = true
	s.mu.Unlock()
}

// At returns the presented color at (x, y).
func (s *MemorySurface) At(x, y int) gfx.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return gfx.Color{}
	}
	return s.format.Unmap(s.front[y*s.width+x])
}

// Image returns a copy of the presented frame.
func (s *MemorySurface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for i, p := range s.front {
		c := s.format.Unmap(p)
		img.Pix[i*4+0] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = c.A
	}
	return img
}

// SavePNG writes the presented frame to a PNG file.
func (s *MemorySurface) SavePNG(path string) error {
	return gg.SavePNG(path, s.Image())
}

// HeadlessWindow is a Window without a display, backed by a MemorySurface.
// Events are injected with Post.
type HeadlessWindow struct {
	surface *MemorySurface
	events  chan Event
	mu      sync.Mutex
	closed  bool
}

// NewHeadlessWindow creates a window of the given size whose event queue
// holds up to buffer pending events.
func NewHeadlessWindow(width, height, buffer int) *HeadlessWindow {
	return &HeadlessWindow{
		surface: NewMemorySurface(width, height, FormatARGB8888),
		events:  make(chan Event, buffer),
	}
}

// Post queues ev. It reports false when the queue is full or the window closed.
func (w *HeadlessWindow) Post(ev Event) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	select {
	case w.events <- ev:
		return true
	default:
		return false
	}
}

// Resize resizes the surface and queues a ResizeEvent.
func (w *HeadlessWindow) Resize(width, height int) bool {
	w.surface.Resize(width, height)
	return w.Post(ResizeEvent{Width: width, Height: height})
}

// Events implements Window.
func (w *HeadlessWindow) Events() <-chan Event {
	return w.events
}

// Surface implements Window.
func (w *HeadlessWindow) Surface() Surface {
	return w.surface
}

// Memory returns the backing surface.
func (w *HeadlessWindow) Memory() *MemorySurface {
	return w.surface
}

// Size implements Window.
func (w *HeadlessWindow) Size() (int, int) {
	w.surface.mu.Lock()
	defer w.surface.mu.Unlock()
	return w.surface.width, w.surface.height
}

// Close implements Window. Later Posts are dropped.
func (w *HeadlessWindow) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}
