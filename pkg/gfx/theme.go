package gfx

// Theme is the palette used to paint the browser chrome.
type Theme struct {
	Background    Color
	ToolbarBG     Color
	TabBGInactive Color
	TabBGActive   Color
	TabText       Color
	ButtonBG      Color
	ButtonHover   Color
	URLBarBG      Color
	URLBarBorder  Color
	URLBarFocus   Color
	TextPrimary   Color
	TextSecondary Color
	Separator     Color
}

// DefaultTheme returns the light macOS-like palette.
func DefaultTheme() Theme {
	return Theme{
		Background:    RGB(255, 255, 255),
		ToolbarBG:     RGB(240, 240, 240),
		TabBGInactive: RGB(230, 230, 230),
		TabBGActive:   RGB(255, 255, 255),
		TabText:       RGB(60, 60, 60),
		ButtonBG:      RGB(220, 220, 220),
		ButtonHover:   RGB(200, 200, 200),
		URLBarBG:      RGB(250, 250, 250),
		URLBarBorder:  RGB(200, 200, 200),
		URLBarFocus:   RGB(100, 150, 255),
		TextPrimary:   RGB(0, 0, 0),
		TextSecondary: RGB(100, 100, 100),
		Separator:     RGB(200, 200, 200),
	}
}
