package content

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/net/html"
)

// CanvasInvoker renders the text blocks of a document in process with gg and
// writes the artifact in the same bitmap format as the external renderer.
// It has no layout engine: blocks are stacked top to bottom and word-wrapped.
type CanvasInvoker struct {
	Margin float64
}

// NewCanvasInvoker returns an in-process invoker with a 10px margin.
func NewCanvasInvoker() *CanvasInvoker {
	return &CanvasInvoker{Margin: 10}
}

type textBlock struct {
	tag  string
	text string
}

// blockColor mirrors the renderer's palette: headings blue, paragraphs black.
func blockColor(tag string) (r, g, b int) {
	switch tag {
	case "h1", "h2", "h3":
		return 50, 50, 200
	case "p":
		return 0, 0, 0
	case "div":
		return 200, 200, 200
	default:
		return 100, 100, 100
	}
}

// Invoke paints payload and writes a 24-bit bitmap to artifactPath.
func (c *CanvasInvoker) Invoke(ctx context.Context, payload string, width, height int, artifactPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: invalid size %dx%d", ErrRenderFailed, width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	lineHeight := dc.FontHeight() * 1.5
	y := c.Margin + dc.FontHeight()
	maxWidth := float64(width) - 2*c.Margin

	for _, blk := range extractBlocks(payload) {
		r, g, b := blockColor(blk.tag)
		dc.SetRGB255(r, g, b)
		for _, line := range dc.WordWrap(blk.text, maxWidth) {
			if y > float64(height) {
				break
			}
			dc.DrawString(line, c.Margin, y)
			y += lineHeight
		}
		y += lineHeight / 2
	}

	f, err := os.Create(artifactPath)
	if err != nil {
		return fmt.Errorf("creating artifact: %w", err)
	}
	if err := bmp.Encode(f, dc.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encoding artifact: %w", err)
	}
	return f.Close()
}

// extractBlocks collects the visible text of document grouped by the
// innermost block-level element it appears in.
func extractBlocks(document string) []textBlock {
	z := html.NewTokenizer(strings.NewReader(document))
	var blocks []textBlock
	var stack []string
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			return blocks
		case html.StartTagToken:
			name, _ := z.TagName()
			tag := string(name)
			switch tag {
			case "script", "style", "title", "head":
				skip++
			case "br", "hr", "img", "input", "link", "meta":
				continue
			}
			stack = append(stack, tag)
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			switch tag {
			case "script", "style", "title", "head":
				if skip > 0 {
					skip--
				}
			}
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i] == tag {
					stack = stack[:i]
					break
				}
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			text := strings.Join(strings.Fields(string(z.Text())), " ")
			if text == "" {
				continue
			}
			tag := "body"
			if len(stack) > 0 {
				tag = stack[len(stack)-1]
			}
			blocks = append(blocks, textBlock{tag: tag, text: text})
		}
	}
}
