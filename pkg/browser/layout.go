package browser

import "squ1d/pkg/gfx"

// Chrome geometry in window pixels.
const (
	ToolbarHeight = 50

	buttonY    = 10
	buttonSize = 30

	tabStripY = 55
	tabWidth  = 100
	tabHeight = 25
	tabStep   = 105

	contentMarginX = 10
	contentTop     = 85
	contentBottom  = 10
)

// Button labels. The bitmap font has no arrow glyphs.
const (
	backLabel    = "<"
	forwardLabel = ">"
	refreshLabel = "R"
	newTabLabel  = "+"
)

func backButtonRect() gfx.Rect    { return gfx.NewRect(10, buttonY, buttonSize, buttonSize) }
func forwardButtonRect() gfx.Rect { return gfx.NewRect(50, buttonY, buttonSize, buttonSize) }
func refreshButtonRect() gfx.Rect { return gfx.NewRect(90, buttonY, buttonSize, buttonSize) }

func urlBarRect(width int) gfx.Rect {
	return gfx.NewRect(130, buttonY, float32(width-190), buttonSize)
}

func newTabButtonRect(width int) gfx.Rect {
	return gfx.NewRect(float32(width-50), buttonY, 40, buttonSize)
}

func tabRect(i int) gfx.Rect {
	return gfx.NewRect(float32(10+tabStep*i), tabStripY, tabWidth, tabHeight)
}

// ContentRect returns the region page content is composited into.
func ContentRect(width, height int) gfx.Rect {
	return gfx.NewRect(contentMarginX, contentTop,
		float32(width-2*contentMarginX), float32(height-contentTop-contentBottom))
}

// hit is what a click in the chrome landed on.
type hit int

const (
	hitNone hit = iota
	hitBack
	hitForward
	hitRefresh
	hitURLBar
	hitNewTab
	hitTab
)

// hitTest maps a click to a chrome element. For hitTab the tab index is returned.
func hitTest(x, y float32, width, tabCount int) (hit, int) {
	if y >= buttonY && y < buttonY+buttonSize {
		switch {
		case x >= 10 && x < 45:
			return hitBack, 0
		case x >= 50 && x < 85:
			return hitForward, 0
		case x >= 90 && x < 125:
			return hitRefresh, 0
		case x >= 130 && x < float32(width-60):
			return hitURLBar, 0
		case x >= float32(width-50) && x < float32(width-10):
			return hitNewTab, 0
		}
		return hitNone, 0
	}

	if y >= tabStripY && y < tabStripY+tabHeight && x >= 10 {
		i := int(x-10) / tabStep
		if i < tabCount && tabRect(i).Contains(gfx.Point{X: x, Y: y}) {
			return hitTab, i
		}
	}
	return hitNone, 0
}
