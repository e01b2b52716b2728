package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"squ1d/pkg/bmp"
	"squ1d/pkg/gfx"
)

// Invoker runs a renderer that writes a bitmap of the payload document,
// sized width x height, to artifactPath.
type Invoker interface {
	Invoke(ctx context.Context, payload string, width, height int, artifactPath string) error
}

// Bridge drives an Invoker and decodes the artifact it leaves behind.
// It is not safe for concurrent use: all renders share one artifact path.
type Bridge struct {
	invoker  Invoker
	artifact string
	log      zerolog.Logger
}

// NewBridge creates a bridge that renders through inv and exchanges
// artifacts at artifactPath. An empty path selects DefaultArtifactPath.
func NewBridge(inv Invoker, artifactPath string) *Bridge {
	if artifactPath == "" {
		artifactPath = DefaultArtifactPath()
	}
	return &Bridge{invoker: inv, artifact: artifactPath, log: zerolog.Nop()}
}

// SetLogger configures the logger used for render diagnostics.
func (b *Bridge) SetLogger(l zerolog.Logger) {
	b.log = l
}

// ArtifactPath returns the path of the intermediate bitmap.
func (b *Bridge) ArtifactPath() string {
	return b.artifact
}

// RequestRender renders the placeholder document for url and blocks until the
// renderer is done. A nil error means the renderer succeeded and the artifact exists.
func (b *Bridge) RequestRender(ctx context.Context, url string, width, height int) error {
	b.log.Debug().Str("url", url).Int("width", width).Int("height", height).Msg("render request")
	return b.invoke(ctx, PlaceholderDocument(url), width, height)
}

func (b *Bridge) invoke(ctx context.Context, payload string, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: invalid size %dx%d", ErrRenderFailed, width, height)
	}

	// A stale artifact from an earlier render must not be mistaken for this one.
	if err := os.Remove(b.artifact); err != nil && !errors.Is(err, fs.ErrNotExist) {
		b.log.Debug().Err(err).Str("artifact", b.artifact).Msg("could not remove stale artifact")
	}

	if err := b.invoker.Invoke(ctx, payload, width, height, b.artifact); err != nil {
		b.log.Warn().Err(err).Msg("renderer invocation failed")
		if errors.Is(err, ErrRenderFailed) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	if _, err := os.Stat(b.artifact); err != nil {
		b.log.Warn().Err(err).Msg("renderer left no artifact")
		return fmt.Errorf("%w: artifact missing: %w", ErrRenderFailed, err)
	}
	return nil
}

// RenderedContent decodes the current artifact. The result is empty when the
// artifact is missing or malformed.
func (b *Bridge) RenderedContent() gfx.Bitmap {
	img := bmp.Load(b.artifact)
	if img.Empty() {
		b.log.Warn().Str("artifact", b.artifact).Msg("failed to load rendered content")
	}
	return img
}

// Render implements PageRenderer.
func (b *Bridge) Render(ctx context.Context, url string, width, height int) (gfx.Bitmap, error) {
	if err := b.RequestRender(ctx, url, width, height); err != nil {
		return gfx.Bitmap{}, err
	}
	img := b.RenderedContent()
	if img.Empty() {
		return gfx.Bitmap{}, ErrNoContent
	}
	return img, nil
}

// RenderHTML renders document as-is. It never fails: when the renderer fails
// the result is an opaque white page of the requested size.
func (b *Bridge) RenderHTML(ctx context.Context, document string, width, height int) gfx.Bitmap {
	if err := b.invoke(ctx, document, width, height); err != nil {
		return gfx.SolidBitmap(width, height, gfx.White)
	}
	return b.RenderedContent()
}
