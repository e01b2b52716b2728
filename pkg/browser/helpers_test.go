package browser

import (
	"image/color"

	"squ1d/pkg/gfx"
)

func rgbaOf(c gfx.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
