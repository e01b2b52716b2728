package browser

import (
	"context"
	"errors"
	"time"

	"squ1d/pkg/platform"
)

// FrameInterval is the delay between frames of Run.
const FrameInterval = 16 * time.Millisecond

// UpdateDisplay redraws the chrome into the frame buffer.
func (c *Controller) UpdateDisplay() {
	r := c.chrome
	r.Clear(r.Theme().Background)
	r.DrawToolbar(ToolbarHeight)

	r.DrawButton(backButtonRect(), backLabel, false)
	r.DrawButton(forwardButtonRect(), forwardLabel, false)
	r.DrawButton(refreshButtonRect(), refreshLabel, false)
	r.DrawURLBar(urlBarRect(c.width), c.urlText, c.urlFocused)
	r.DrawButton(newTabButtonRect(c.width), newTabLabel, false)

	for i := 0; i < c.tabs.Count(); i++ {
		tab := c.tabs.Tab(i)
		r.DrawTab(tabRect(i), tab.Title, tab.Active)
	}
}

// Composite copies the chrome into surface and overlays the active tab's
// page content. Content pixels replace the chrome outright. The overlay is
// bounded by the content's own size, the content area and the surface.
func (c *Controller) Composite(surface platform.Surface) error {
	px, err := surface.Lock()
	if err != nil {
		return err
	}
	defer surface.Unlock()

	fb := c.chrome.FrameBuffer()
	fw, fh := c.chrome.Width(), c.chrome.Height()
	w, h := min(fw, px.Width), min(fh, px.Height)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*fw + x) * 4
			px.Set(x, y, px.Format.MapRGBA(fb[i], fb[i+1], fb[i+2], fb[i+3]))
		}
	}

	tab := c.tabs.ActiveTab()
	if tab == nil || tab.Content.Empty() {
		return nil
	}
	page := tab.Content
	area := ContentRect(c.width, c.height)
	ox, oy := int(area.X), int(area.Y)
	rows := min(page.Height, int(area.Height))
	cols := min(page.Width, int(area.Width))

	for y := 0; y < rows; y++ {
		dy := oy + y
		if dy >= px.Height {
			break
		}
		for x := 0; x < cols; x++ {
			dx := ox + x
			if dx >= px.Width {
				break
			}
			i := (y*page.Width + x) * 4
			if i+3 >= len(page.Pix) {
				return nil
			}
			px.Set(dx, dy, px.Format.MapRGBA(page.Pix[i], page.Pix[i+1], page.Pix[i+2], page.Pix[i+3]))
		}
	}
	return nil
}

// RenderFrame applies any queued theme, redraws the chrome, composites it
// into surface and presents the result.
func (c *Controller) RenderFrame(surface platform.Surface) error {
	c.applyQueuedTheme()
	c.UpdateDisplay()
	if err := c.Composite(surface); err != nil {
		return err
	}
	return surface.Present()
}

// Run drives the frame loop until a QuitEvent arrives, the event channel
// is closed or ctx is cancelled. Each frame drains pending events, then
// redraws and presents. It returns an error only when the surface is lost.
func (c *Controller) Run(ctx context.Context, win platform.Window) error {
	if w, h := win.Size(); w > 0 && h > 0 {
		c.Resize(w, h)
	}

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	c.running = true
	c.log.Info().Int("width", c.width).Int("height", c.height).Msg("frame loop started")
	defer c.log.Info().Msg("frame loop stopped")

	for c.running {
		c.drainEvents(ctx, win.Events())
		if !c.running {
			break
		}

		if err := c.RenderFrame(win.Surface()); err != nil {
			if errors.Is(err, platform.ErrSurfaceLost) {
				c.running = false
				return err
			}
			c.log.Warn().Err(err).Msg("frame dropped")
		}

		select {
		case <-ctx.Done():
			c.running = false
		case <-ticker.C:
		}
	}
	return nil
}

func (c *Controller) drainEvents(ctx context.Context, events <-chan platform.Event) {
	for c.running {
		select {
		case ev, ok := <-events:
			if !ok {
				c.running = false
				return
			}
			c.HandleEvent(ctx, ev)
		default:
			return
		}
	}
}
