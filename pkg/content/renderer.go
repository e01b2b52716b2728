// Package content bridges the browser chrome to the page renderer.
//
// Pages are rendered out of process: the renderer is handed a document and a
// target size and writes a bitmap artifact to a fixed path, which the bridge
// then decodes into an RGBA buffer.
package content

import (
	"context"
	"errors"
	"html"
	"os"
	"path/filepath"

	"squ1d/pkg/gfx"
)

var (
	// ErrRenderFailed is returned when the renderer exits unsuccessfully or
	// leaves no artifact behind.
	ErrRenderFailed = errors.New("page render failed")
	// ErrNoContent is returned when the artifact could not be decoded.
	ErrNoContent = errors.New("no rendered content")
)

//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mock_content

// PageRenderer renders the page identified by url at the given size.
type PageRenderer interface {
	Render(ctx context.Context, url string, width, height int) (gfx.Bitmap, error)
}

// PageRendererFunc adapts a function to PageRenderer.
type PageRendererFunc func(ctx context.Context, url string, width, height int) (gfx.Bitmap, error)

// Render calls f.
func (f PageRendererFunc) Render(ctx context.Context, url string, width, height int) (gfx.Bitmap, error) {
	return f(ctx, url, width, height)
}

// DefaultArtifactPath is where render artifacts are written unless configured otherwise.
func DefaultArtifactPath() string {
	return filepath.Join(os.TempDir(), "squ1d_render.bmp")
}

// PlaceholderDocument wraps url in the minimal document handed to the renderer.
// Fetching the real page is the renderer's job.
func PlaceholderDocument(url string) string {
	return "<html><body><h1>Loading: " + html.EscapeString(url) +
		"</h1><p>Page content would appear here.</p></body></html>"
}
