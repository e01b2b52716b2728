package chrome

import "squ1d/pkg/gfx"

// Text sizes passed to DrawText by the widgets. They are informational only.
const (
	tabFontSize    = 11
	urlFontSize    = 12
	buttonFontSize = 11
)

// DrawToolbar paints the toolbar strip across the full width.
func (r *Renderer) DrawToolbar(height int) {
	bar := gfx.NewRect(0, 0, float32(r.width), float32(height))
	r.FillRect(bar, r.theme.ToolbarBG)
	r.DrawRect(bar, r.theme.Separator, 1)
}

// DrawTab paints one tab of the tab strip with its title.
func (r *Renderer) DrawTab(rect gfx.Rect, title string, active bool) {
	bg := r.theme.TabBGInactive
	if active {
		bg = r.theme.TabBGActive
	}
	r.FillRect(rect, bg)
	r.DrawRoundedRect(rect, r.theme.Separator, 4, 1)
	r.DrawText(title, rect.X+10, rect.Y+5, r.theme.TabText, tabFontSize)
}

// DrawURLBar paints the address field. A focused field uses the focus border.
func (r *Renderer) DrawURLBar(rect gfx.Rect, url string, focused bool) {
	r.FillRect(rect, r.theme.URLBarBG)

	border := r.theme.URLBarBorder
	if focused {
		border = r.theme.URLBarFocus
	}
	r.DrawRoundedRect(rect, border, 6, 1)

	r.DrawText(url, rect.X+8, rect.Y+8, r.theme.TextPrimary, urlFontSize)
}

// DrawButton paints a toolbar button with a short label.
func (r *Renderer) DrawButton(rect gfx.Rect, label string, hovered bool) {
	bg := r.theme.ButtonBG
	if hovered {
		bg = r.theme.ButtonHover
	}
	r.FillRect(rect, bg)
	r.DrawRoundedRect(rect, r.theme.Separator, 4, 1)
	r.DrawText(label, rect.X+5, rect.Y+5, r.theme.TextPrimary, buttonFontSize)
}
