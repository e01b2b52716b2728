package fynewin

import (
	"image/color"

	"squ1d/pkg/gfx"
)

func rgba(c gfx.Color) color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
