// Package platform describes what the browser needs from a windowing system:
// a stream of input events and a lockable pixel surface to present frames on.
package platform

// Event is an input or window-system event.
type Event interface {
	isEvent()
}

// QuitEvent asks the browser to shut down, e.g. the window was closed.
type QuitEvent struct{}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota + 1
	MouseMiddle
	MouseRight
)

// MouseButtonEvent is a button press at window pixel coordinates.
type MouseButtonEvent struct {
	X, Y   float32
	Button MouseButton
}

// Key names a physical key. Letter keys use their upper-case letter.
type Key string

const (
	KeyUnknown   Key = ""
	KeyEscape    Key = "Escape"
	KeyReturn    Key = "Return"
	KeyEnter     Key = "Enter"
	KeyBackspace Key = "BackSpace"
	KeyTab       Key = "Tab"
	KeyLeft      Key = "Left"
	KeyRight     Key = "Right"
	KeyF5        Key = "F5"
	KeyL         Key = "L"
	KeyT         Key = "T"
	KeyW         Key = "W"
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Has reports whether all of mods are held.
func (m Modifier) Has(mods Modifier) bool {
	return m&mods == mods
}

// KeyEvent is a key press.
type KeyEvent struct {
	Key Key
	Mod Modifier
}

// TextEvent carries one typed character.
type TextEvent struct {
	Rune rune
}

// ResizeEvent reports the new drawable size in pixels.
type ResizeEvent struct {
	Width, Height int
}

func (QuitEvent) isEvent()        {}
func (MouseButtonEvent) isEvent() {}
func (KeyEvent) isEvent()         {}
func (TextEvent) isEvent()        {}
func (ResizeEvent) isEvent()      {}
