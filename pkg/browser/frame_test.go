package browser

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squ1d/pkg/content"
	"squ1d/pkg/gfx"
	"squ1d/pkg/platform"
)

// composite runs one composition into a fresh surface and presents it.
func composite(t *testing.T, c *Controller, w, h int) *platform.MemorySurface {
	t.Helper()
	s := platform.NewMemorySurface(w, h, platform.FormatARGB8888)
	require.NoError(t, c.Composite(s))
	require.False(t, s.Locked(), "surface must be unlocked after composition")
	require.NoError(t, s.Present())
	return s
}

func fixedPage(img gfx.Bitmap) content.PageRenderer {
	return content.PageRendererFunc(func(context.Context, string, int, int) (gfx.Bitmap, error) {
		return img, nil
	})
}

func TestCompositeCopiesChrome(t *testing.T) {
	c := newTestController(t, 200, 150, solidPages(gfx.White))
	c.UpdateDisplay()
	s := composite(t, c, 200, 150)

	for _, p := range [][2]int{{0, 0}, {20, 20}, {199, 149}, {150, 60}} {
		assert.Equal(t, c.Chrome().Image().RGBAAt(p[0], p[1]), rgbaOf(s.At(p[0], p[1])), "pixel %v", p)
	}
	assert.Equal(t, c.Chrome().Theme().ToolbarBG, s.At(100, 45))
}

func TestCompositeOverlaysContent(t *testing.T) {
	c := newTestController(t, 200, 150, solidPages(gfx.Red))
	c.Navigate(context.Background(), "a")
	c.UpdateDisplay()
	s := composite(t, c, 200, 150)

	assert.Equal(t, gfx.Red, s.At(10, 85))
	assert.Equal(t, gfx.Red, s.At(189, 139))
	assert.Equal(t, gfx.White, s.At(9, 100))
	assert.Equal(t, gfx.White, s.At(190, 100))
	assert.Equal(t, gfx.White, s.At(100, 140))
}

func TestCompositeReplacesRatherThanBlends(t *testing.T) {
	translucent := gfx.Color{R: 0, G: 0, B: 255, A: 10}
	c := newTestController(t, 200, 150, fixedPage(gfx.SolidBitmap(5, 5, translucent)))
	c.Navigate(context.Background(), "a")
	c.UpdateDisplay()
	s := composite(t, c, 200, 150)

	assert.Equal(t, translucent, s.At(12, 87))
}

func TestCompositeUsesContentStride(t *testing.T) {
	page := gfx.NewBitmap(3, 2)
	colors := []gfx.Color{gfx.Red, gfx.Black, gfx.RGB(0, 255, 0), gfx.RGB(0, 0, 255), gfx.RGB(9, 9, 9), gfx.RGB(7, 7, 7)}
	for i, col := range colors {
		copy(page.Pix[i*4:], []byte{col.R, col.G, col.B, col.A})
	}

	c := newTestController(t, 200, 150, fixedPage(page))
	c.Navigate(context.Background(), "a")
	c.UpdateDisplay()
	s := composite(t, c, 200, 150)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, colors[y*3+x], s.At(10+x, 85+y), "content (%d,%d)", x, y)
		}
	}
	assert.Equal(t, gfx.White, s.At(13, 85), "past content width")
	assert.Equal(t, gfx.White, s.At(10, 87), "past content height")
}

func TestCompositeClipsOversizedContent(t *testing.T) {
	c := newTestController(t, 200, 150, fixedPage(gfx.SolidBitmap(500, 500, gfx.Red)))
	c.Navigate(context.Background(), "a")
	c.UpdateDisplay()
	s := composite(t, c, 200, 150)

	assert.Equal(t, gfx.Red, s.At(189, 139))
	assert.Equal(t, gfx.White, s.At(190, 85), "right of content area")
	assert.Equal(t, gfx.White, s.At(10, 140), "below content area")
}

func TestCompositeClipsToSmallerSurface(t *testing.T) {
	c := newTestController(t, 200, 150, solidPages(gfx.Red))
	c.Navigate(context.Background(), "a")
	c.UpdateDisplay()

	s := composite(t, c, 50, 90)
	assert.Equal(t, gfx.Red, s.At(49, 89))
	assert.Equal(t, c.Chrome().Theme().ToolbarBG, s.At(49, 45))
}

func TestCompositeTruncatedContentBuffer(t *testing.T) {
	page := gfx.SolidBitmap(4, 4, gfx.Red)
	page.Pix = page.Pix[:4*4*2+4]
	c := newTestController(t, 200, 150, fixedPage(page))
	c.Navigate(context.Background(), "a")
	c.UpdateDisplay()

	s := composite(t, c, 200, 150)
	assert.Equal(t, gfx.Red, s.At(10, 87))
	assert.Equal(t, gfx.White, s.At(11, 87))
}

func TestCompositeWithoutContent(t *testing.T) {
	c := newTestController(t, 200, 150, solidPages(gfx.Red))
	c.UpdateDisplay()
	s := composite(t, c, 200, 150)
	assert.Equal(t, gfx.White, s.At(100, 120))

	c.CloseTab(0)
	c.UpdateDisplay()
	s = composite(t, c, 200, 150)
	assert.Equal(t, gfx.White, s.At(100, 120))
}

func TestCompositeLockFailure(t *testing.T) {
	c := newTestController(t, 200, 150, solidPages(gfx.Red))
	s := platform.NewMemorySurface(200, 150, platform.FormatARGB8888)
	s.Lose()
	assert.ErrorIs(t, c.Composite(s), platform.ErrSurfaceLost)
	assert.ErrorIs(t, c.RenderFrame(s), platform.ErrSurfaceLost)
}

func TestUpdateDisplayDrawsTabs(t *testing.T) {
	c := newTestController(t, 400, 200, solidPages(gfx.White))
	c.NewTab(context.Background())
	c.UpdateDisplay()

	theme := c.Chrome().Theme()
	img := c.Chrome().Image()
	// Inside the tab below the label, away from the rounded border bands.
	assert.Equal(t, rgbaOf(theme.Separator), img.RGBAAt(15, 77))
	assert.Equal(t, rgbaOf(theme.Background), img.RGBAAt(112, 70), "gap between tabs")
	assert.Equal(t, rgbaOf(theme.Background), img.RGBAAt(230, 70), "no third tab")
}

func TestQueueThemeAppliedBeforeFrame(t *testing.T) {
	c := newTestController(t, 200, 150, solidPages(gfx.White))
	dark := gfx.DefaultTheme()
	dark.ToolbarBG = gfx.RGB(30, 30, 30)
	other := dark
	other.ToolbarBG = gfx.RGB(1, 1, 1)

	c.QueueTheme(other)
	c.QueueTheme(dark)

	s := platform.NewMemorySurface(200, 150, platform.FormatABGR8888)
	require.NoError(t, c.RenderFrame(s))
	assert.Equal(t, gfx.RGB(30, 30, 30), s.At(100, 45))
	assert.Equal(t, 1, s.Presented())
}

func TestRunStopsOnQuit(t *testing.T) {
	c := newTestController(t, 200, 150, solidPages(gfx.Red))
	win := platform.NewHeadlessWindow(320, 240, 8)
	require.True(t, win.Post(platform.QuitEvent{}))

	require.NoError(t, c.Run(context.Background(), win))
	assert.False(t, c.Running())
	w, h := c.Size()
	assert.Equal(t, 320, w, "controller adopts window size")
	assert.Equal(t, 240, h)
}

func TestRunPresentsFramesUntilCancelled(t *testing.T) {
	c := newTestController(t, 200, 150, solidPages(gfx.Red))
	win := platform.NewHeadlessWindow(200, 150, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, win) }()

	require.True(t, win.Post(platform.KeyEvent{Key: platform.KeyT, Mod: platform.ModControl}))
	assert.Eventually(t, func() bool {
		return win.Memory().At(50, 100) == gfx.Red
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunHandlesResize(t *testing.T) {
	c := newTestController(t, 200, 150, solidPages(gfx.Red))
	win := platform.NewHeadlessWindow(200, 150, 8)
	require.True(t, win.Resize(300, 180))
	require.True(t, win.Post(platform.QuitEvent{}))

	require.NoError(t, c.Run(context.Background(), win))
	assert.Equal(t, 300, c.Chrome().Width())
	assert.Equal(t, 180, c.Chrome().Height())
}

func TestRunReturnsSurfaceLost(t *testing.T) {
	c := newTestController(t, 200, 150, solidPages(gfx.Red))
	win := platform.NewHeadlessWindow(200, 150, 1)
	win.Memory().Lose()

	err := c.Run(context.Background(), win)
	assert.ErrorIs(t, err, platform.ErrSurfaceLost)
	assert.False(t, c.Running())
}
