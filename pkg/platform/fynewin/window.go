// Package fynewin implements platform.Window on top of a fyne window.
//
// Frames are presented through a canvas.Raster that shows the last
// presented buffer. Input arrives on fyne's goroutine and is forwarded as
// platform events; the browser consumes them on its own loop goroutine.
package fynewin

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"squ1d/pkg/platform"
)

// eventBuffer is how many input events may queue up between frames.
const eventBuffer = 256

// Window is a fyne-backed platform.Window.
type Window struct {
	win     fyne.Window
	raster  *canvas.Raster
	surface *surface
	events  chan platform.Event
	log     zerolog.Logger

	mu     sync.Mutex
	closed bool
}

// New creates (but does not show) a window of the given size in pixels.
func New(a fyne.App, title string, width, height int) *Window {
	w := &Window{
		win:    a.NewWindow(title),
		events: make(chan platform.Event, eventBuffer),
		log:    zerolog.Nop(),
	}
	w.surface = newSurface(width, height, w.refresh)
	w.raster = canvas.NewRaster(w.frame)

	layer := &inputLayer{raster: w.raster, w: w}
	layer.ExtendBaseWidget(layer)

	w.win.SetContent(layer)
	w.win.SetPadded(false)
	w.win.SetMaster()
	w.win.Resize(fyne.NewSize(float32(width), float32(height)))
	w.win.SetCloseIntercept(func() {
		w.post(platform.QuitEvent{})
	})

	c := w.win.Canvas()
	c.SetOnTypedKey(func(e *fyne.KeyEvent) {
		if key := mapKey(e.Name); key != platform.KeyUnknown {
			w.post(platform.KeyEvent{Key: key})
		}
	})
	c.SetOnTypedRune(func(r rune) {
		w.post(platform.TextEvent{Rune: r})
	})
	for _, sc := range shortcuts {
		sc := sc // per-iteration copy; module targets go 1.21 loop semantics
		c.AddShortcut(&desktop.CustomShortcut{KeyName: sc.name, Modifier: sc.mod}, func(fyne.Shortcut) {
			w.post(platform.KeyEvent{Key: mapKey(sc.name), Mod: mapModifier(sc.mod)})
		})
	}
	return w
}

// SetLogger configures the logger used for dropped events.
func (w *Window) SetLogger(l zerolog.Logger) {
	w.log = l
}

// ShowAndRun shows the window and runs the fyne event loop. It must be
// called from the main goroutine and returns once the app quits.
func (w *Window) ShowAndRun() {
	w.win.ShowAndRun()
}

// Events implements platform.Window.
func (w *Window) Events() <-chan platform.Event {
	return w.events
}

// Surface implements platform.Window.
func (w *Window) Surface() platform.Surface {
	return w.surface
}

// Size implements platform.Window. It is the size of the last frame fyne drew.
func (w *Window) Size() (int, int) {
	return w.surface.size()
}

// Close implements platform.Window. It closes the fyne window, which
// quits the app.
func (w *Window) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	fyne.Do(w.win.Close)
	return nil
}

func (w *Window) post(ev platform.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.events <- ev:
	default:
		w.log.Warn().Type("event", ev).Msg("event queue full, dropping event")
	}
}

func (w *Window) refresh() {
	fyne.Do(w.raster.Refresh)
}

// frame is the raster generator. It runs on fyne's goroutine with the
// drawable size in pixels.
func (w *Window) frame(width, height int) image.Image {
	if w.surface.setSize(width, height) {
		w.post(platform.ResizeEvent{Width: width, Height: height})
	}
	return w.surface.snapshot()
}

func (w *Window) scale() float32 {
	s := w.win.Canvas().Scale()
	if s <= 0 {
		return 1
	}
	return s
}

// inputLayer hosts the raster and turns mouse presses into events.
type inputLayer struct {
	widget.BaseWidget
	raster *canvas.Raster
	w      *Window
}

var _ desktop.Mouseable = (*inputLayer)(nil)

func (l *inputLayer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.raster)
}

// MouseDown implements desktop.Mouseable.
func (l *inputLayer) MouseDown(e *desktop.MouseEvent) {
	s := l.w.scale()
	l.w.post(platform.MouseButtonEvent{
		X:      e.Position.X * s,
		Y:      e.Position.Y * s,
		Button: mapButton(e.Button),
	})
}

// MouseUp implements desktop.Mouseable.
func (l *inputLayer) MouseUp(*desktop.MouseEvent) {}
