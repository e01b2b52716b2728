package fynewin

import (
	"errors"
	"image"
	"sync"

	"squ1d/pkg/platform"
)

// surface is double buffered: the browser draws into back, Present converts
// it into front, and fyne's raster reads a copy of front.
type surface struct {
	mu      sync.Mutex
	width   int
	height  int
	back    []uint32
	front   *image.RGBA
	locked  bool
	refresh func()
}

func newSurface(width, height int, refresh func()) *surface {
	s := &surface{refresh: refresh}
	s.setSize(width, height)
	return s
}

func (s *surface) size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// setSize records the drawable size and reports whether it changed.
// Buffers are reallocated lazily by Lock and Present.
func (s *surface) setSize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if width == s.width && height == s.height {
		return false
	}
	s.width, s.height = width, height
	return true
}

// Lock implements platform.Surface.
func (s *surface) Lock() (platform.Pixels, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locked {
		return platform.Pixels{}, errors.New("surface already locked")
	}
	if n := s.width * s.height; len(s.back) != n {
		s.back = make([]uint32, n)
	}
	s.locked = true
	return platform.Pixels{
		Data:   s.back,
		Width:  s.width,
		Height: s.height,
		Stride: s.width,
		Format: platform.FormatABGR8888,
	}, nil
}

// Unlock implements platform.Surface.
func (s *surface) Unlock() {
	s.mu.Lock()
	s.locked = false
	s.mu.Unlock()
}

// Present implements platform.Surface.
func (s *surface) Present() error {
	s.mu.Lock()
	w, h := s.width, s.height
	if len(s.back) != w*h {
		// Resized since the last Lock; the frame no longer fits.
		s.mu.Unlock()
		return nil
	}
	if s.front == nil || s.front.Rect.Dx() != w || s.front.Rect.Dy() != h {
		s.front = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	pix := s.front.Pix
	for i, p := range s.back {
		o := i * 4
		pix[o+0] = uint8(p)
		pix[o+1] = uint8(p >> 8)
		pix[o+2] = uint8(p >> 16)
		pix[o+3] = uint8(p >> 24)
	}
	s.mu.Unlock()

	if s.refresh != nil {
		s.refresh()
	}
	return nil
}

// snapshot returns a copy of the presented frame at the current size.
func (s *surface) snapshot() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	if s.front != nil {
		draw := s.front.Bounds().Intersect(img.Bounds())
		for y := draw.Min.Y; y < draw.Max.Y; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+draw.Dx()*4], s.front.Pix[y*s.front.Stride:])
		}
	}
	return img
}
