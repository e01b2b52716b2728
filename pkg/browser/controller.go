// Package browser is the window controller: it owns the chrome renderer,
// the tabs and the navigation history, dispatches input events and
// composites the active tab's page into the window surface every frame.
package browser

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/rs/zerolog"

	"squ1d/pkg/chrome"
	"squ1d/pkg/content"
	"squ1d/pkg/gfx"
	"squ1d/pkg/history"
	"squ1d/pkg/omnibox"
	"squ1d/pkg/platform"
	"squ1d/pkg/tabs"
)

// ErrInit is returned when the controller cannot be set up.
var ErrInit = errors.New("browser initialization failed")

// Options configures a Controller.
type Options struct {
	Width, Height int
	HomeURL       string
	Theme         gfx.Theme
	Pages         content.PageRenderer
	// Omnibox resolves typed URL-bar text. Nil uses a resolver without a script.
	Omnibox *omnibox.Resolver
	// Visits, when set, records every new navigation.
	Visits history.Recorder
	Logger zerolog.Logger
}

// Controller is the browser window controller. Apart from QueueTheme its
// methods must be called from a single goroutine.
type Controller struct {
	width   int
	height  int
	running bool

	urlFocused bool
	urlText    string
	currentURL string
	homeURL    string

	tabs    *tabs.Manager
	history *history.History
	chrome  *chrome.Renderer
	pages   content.PageRenderer
	omnibox *omnibox.Resolver
	visits  history.Recorder
	log     zerolog.Logger

	themes chan gfx.Theme
}

// New creates a controller with one tab on the home URL. The home page is
// not rendered until Navigate is called.
func New(opts Options) (*Controller, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: window size %dx%d", ErrInit, opts.Width, opts.Height)
	}
	if opts.Pages == nil {
		return nil, fmt.Errorf("%w: no page renderer", ErrInit)
	}
	if opts.Theme == (gfx.Theme{}) {
		opts.Theme = gfx.DefaultTheme()
	}
	if opts.Omnibox == nil {
		r, err := omnibox.New("", "")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInit, err)
		}
		opts.Omnibox = r
	}

	return &Controller{
		width:      opts.Width,
		height:     opts.Height,
		urlText:    opts.HomeURL,
		currentURL: opts.HomeURL,
		homeURL:    opts.HomeURL,
		tabs:       tabs.NewManager(opts.HomeURL),
		history:    history.New(),
		chrome:     chrome.NewRenderer(opts.Width, opts.Height, opts.Theme),
		pages:      opts.Pages,
		omnibox:    opts.Omnibox,
		visits:     opts.Visits,
		log:        opts.Logger,
		themes:     make(chan gfx.Theme, 1),
	}, nil
}

// Size returns the window size the chrome is laid out for.
func (c *Controller) Size() (int, int) { return c.width, c.height }

// Running reports whether the frame loop is active.
func (c *Controller) Running() bool { return c.running }

// CurrentURL returns the URL of the last navigation.
func (c *Controller) CurrentURL() string { return c.currentURL }

// URLBarText returns the text shown in the URL bar.
func (c *Controller) URLBarText() string { return c.urlText }

// URLBarFocused reports whether the URL bar has keyboard focus.
func (c *Controller) URLBarFocused() bool { return c.urlFocused }

// Tabs returns the tab manager.
func (c *Controller) Tabs() *tabs.Manager { return c.tabs }

// History returns the navigation history.
func (c *Controller) History() *history.History { return c.history }

// Chrome returns the chrome renderer.
func (c *Controller) Chrome() *chrome.Renderer { return c.chrome }

// Resize lays the chrome out for a new window size.
func (c *Controller) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == c.width && height == c.height) {
		return
	}
	c.width, c.height = width, height
	c.chrome.Resize(width, height)
	c.log.Debug().Int("width", width).Int("height", height).Msg("window resized")
}

// QueueTheme schedules t to be applied before the next frame. It may be
// called from any goroutine; only the latest queued theme is applied.
func (c *Controller) QueueTheme(t gfx.Theme) {
	for {
		select {
		case c.themes <- t:
			return
		default:
		}
		select {
		case <-c.themes:
		default:
		}
	}
}

func (c *Controller) applyQueuedTheme() {
	select {
	case t := <-c.themes:
		c.chrome.SetTheme(t)
		c.log.Debug().Msg("theme applied")
	default:
	}
}

// HandleEvent dispatches one platform event.
func (c *Controller) HandleEvent(ctx context.Context, ev platform.Event) {
	switch e := ev.(type) {
	case platform.QuitEvent:
		c.running = false
	case platform.MouseButtonEvent:
		if e.Button == platform.MouseLeft {
			c.HandleMouseClick(ctx, e.X, e.Y)
		}
	case platform.KeyEvent:
		c.HandleKeyPress(ctx, e.Key, e.Mod)
	case platform.TextEvent:
		c.HandleText(e.Rune)
	case platform.ResizeEvent:
		c.Resize(e.Width, e.Height)
	}
}

// HandleMouseClick reacts to a left click at window coordinates.
func (c *Controller) HandleMouseClick(ctx context.Context, x, y float32) {
	target, index := hitTest(x, y, c.width, c.tabs.Count())
	if target != hitURLBar && c.urlFocused {
		c.blurURLBar()
	}

	switch target {
	case hitBack:
		c.GoBack(ctx)
	case hitForward:
		c.GoForward(ctx)
	case hitRefresh:
		c.Refresh(ctx)
	case hitURLBar:
		c.focusURLBar()
	case hitNewTab:
		c.NewTab(ctx)
	case hitTab:
		c.SwitchTab(index)
	}
}

// HandleKeyPress reacts to a key press.
func (c *Controller) HandleKeyPress(ctx context.Context, key platform.Key, mod platform.Modifier) {
	switch {
	case mod.Has(platform.ModControl) && key == platform.KeyT:
		c.NewTab(ctx)
	case mod.Has(platform.ModControl) && key == platform.KeyW:
		c.CloseTab(c.tabs.ActiveIndex())
	case mod.Has(platform.ModControl) && key == platform.KeyL:
		c.focusURLBar()
	case mod.Has(platform.ModAlt) && key == platform.KeyLeft:
		c.GoBack(ctx)
	case mod.Has(platform.ModAlt) && key == platform.KeyRight:
		c.GoForward(ctx)
	case key == platform.KeyF5:
		c.Refresh(ctx)
	case key == platform.KeyEscape:
		c.blurURLBar()
	case key == platform.KeyReturn || key == platform.KeyEnter:
		if c.urlFocused {
			c.submitURLBar(ctx)
		}
	case key == platform.KeyBackspace:
		if c.urlFocused && c.urlText != "" {
			r := []rune(c.urlText)
			c.urlText = string(r[:len(r)-1])
		}
	case key == platform.KeyW && mod == 0:
		if !c.urlFocused {
			c.CloseTab(c.tabs.ActiveIndex())
		}
	}
}

// HandleText appends a typed character to the focused URL bar.
func (c *Controller) HandleText(r rune) {
	if !c.urlFocused || !unicode.IsPrint(r) {
		return
	}
	c.urlText += string(r)
}

func (c *Controller) focusURLBar() {
	if c.urlFocused {
		return
	}
	c.urlFocused = true
	c.urlText = c.currentURL
}

func (c *Controller) blurURLBar() {
	c.urlFocused = false
	c.urlText = c.currentURL
}

func (c *Controller) submitURLBar(ctx context.Context) {
	target := c.omnibox.Resolve(c.urlText)
	c.urlFocused = false
	if target == "" {
		c.urlText = c.currentURL
		return
	}
	c.Navigate(ctx, target)
}

// NewTab opens a tab on the home URL, switches to it and loads it.
func (c *Controller) NewTab(ctx context.Context) {
	i := c.tabs.CreateTab(c.homeURL)
	c.tabs.SwitchTab(i)
	c.Navigate(ctx, c.homeURL)
}

// SwitchTab activates the tab at index and shows its URL.
func (c *Controller) SwitchTab(index int) {
	c.tabs.SwitchTab(index)
	if tab := c.tabs.ActiveTab(); tab != nil {
		c.currentURL = tab.URL
		c.urlText = tab.URL
	}
}

// CloseTab closes the tab at index. Closing the last tab leaves the window
// without tabs; the content area then stays blank.
func (c *Controller) CloseTab(index int) {
	c.tabs.CloseTab(index)
	if tab := c.tabs.ActiveTab(); tab != nil {
		c.currentURL = tab.URL
		c.urlText = tab.URL
	}
}

// Navigate records url in the history and loads it into the active tab.
func (c *Controller) Navigate(ctx context.Context, url string) {
	c.history.Push(url)
	if c.visits != nil {
		if err := c.visits.Record(ctx, url); err != nil {
			c.log.Warn().Err(err).Str("url", url).Msg("failed to record visit")
		}
	}
	c.load(ctx, url)
}

// GoBack loads the previous history entry, if any.
func (c *Controller) GoBack(ctx context.Context) {
	if url, ok := c.history.Back(); ok {
		c.load(ctx, url)
	}
}

// GoForward loads the next history entry, if any.
func (c *Controller) GoForward(ctx context.Context) {
	if url, ok := c.history.Forward(); ok {
		c.load(ctx, url)
	}
}

// Refresh reloads the current URL without touching the history.
func (c *Controller) Refresh(ctx context.Context) {
	if c.currentURL != "" {
		c.load(ctx, c.currentURL)
	}
}

// load shows url in the active tab and renders it synchronously. A failed
// render leaves the tab blank with its placeholder title.
func (c *Controller) load(ctx context.Context, url string) {
	c.currentURL = url
	if !c.urlFocused {
		c.urlText = url
	}

	tab := c.tabs.ActiveTab()
	if tab == nil {
		return
	}
	tab.URL = url
	tab.Title = tabs.PlaceholderTitle
	tab.Content.Reset()

	area := ContentRect(c.width, c.height)
	w, h := int(area.Width), int(area.Height)
	if w <= 0 || h <= 0 {
		return
	}

	img, err := c.pages.Render(ctx, url, w, h)
	if err != nil {
		c.log.Warn().Err(err).Str("url", url).Msg("page render failed")
		return
	}
	if img.Empty() {
		return
	}
	tab.Content = img
	tab.Title = url
	c.log.Debug().Str("url", url).Int("width", img.Width).Int("height", img.Height).Msg("page rendered")
}
