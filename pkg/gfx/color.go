package gfx

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ColorFromHex builds an opaque color from a packed 0xRRGGBB value.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// ParseHexColor parses "#rrggbb", "rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("parsing color %q: %w", s, err)
		}
		return ColorFromHex(uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("parsing color %q: %w", s, err)
		}
		c := ColorFromHex(uint32(v >> 8))
		c.A = uint8(v & 0xFF)
		return c, nil
	default:
		return Color{}, fmt.Errorf("parsing color %q: want 6 or 8 hex digits", s)
	}
}

// Hex formats the color as "#rrggbb", appending alpha only when not opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// RGBA implements color.Color. Channels are treated as non-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A) * 0x101
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return
}

// Common colors.
var (
	White = RGB(255, 255, 255)
	Black = RGB(0, 0, 0)
	Red   = RGB(255, 0, 0)
)
