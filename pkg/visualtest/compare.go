// Package visualtest compares rendered frames pixel by pixel.
package visualtest

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/fogleman/gg"
)

// CompareResult contains the results of an image comparison
type CompareResult struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // Max color channel difference found
	Diff            *image.RGBA
}

// CompareOptions configures the image comparison
type CompareOptions struct {
	// Tolerance: maximum allowed difference per color channel (0-255).
	// Chrome frames are pixel exact, so 0 is the usual value.
	Tolerance int

	// FuzzyRadius: if > 0, a pixel matches if it matches any pixel within this radius.
	// Useful for placeholder pages whose text is antialiased.
	FuzzyRadius int

	// MaxDifferentPercent: if > 0, pass if the percentage of different pixels is <= this value
	MaxDifferentPercent float64

	// KeepDiff: if true, the result carries a diff image highlighting differences in red
	KeepDiff bool
}

// Compare compares two images pixel-by-pixel. Images with different bounds never match.
func Compare(actual, expected image.Image, opts CompareOptions) *CompareResult {
	actualBounds := actual.Bounds()
	expectedBounds := expected.Bounds()
	if actualBounds.Size() != expectedBounds.Size() {
		return &CompareResult{Match: false}
	}

	result := &CompareResult{
		Match:       true,
		TotalPixels: actualBounds.Dx() * actualBounds.Dy(),
	}
	if opts.KeepDiff {
		result.Diff = image.NewRGBA(image.Rect(0, 0, actualBounds.Dx(), actualBounds.Dy()))
	}

	for y := 0; y < actualBounds.Dy(); y++ {
		for x := 0; x < actualBounds.Dx(); x++ {
			ac := actual.At(actualBounds.Min.X+x, actualBounds.Min.Y+y)
			ec := expected.At(expectedBounds.Min.X+x, expectedBounds.Min.Y+y)
			diff := channelDiff(ac, ec)

			if diff > result.MaxDifference {
				result.MaxDifference = diff
			}

			gray := grayOf(ac)
			if diff > opts.Tolerance {
				matched := opts.FuzzyRadius > 0 &&
					fuzzyMatch(actual, expected, x, y, opts.FuzzyRadius, opts.Tolerance)
				if !matched {
					result.Match = false
					result.DifferentPixels++
					if result.Diff != nil {
						result.Diff.Set(x, y, color.RGBA{255, 0, 0, 255})
					}
					continue
				}
			}
			if result.Diff != nil {
				result.Diff.Set(x, y, color.RGBA{gray, gray, gray, 255})
			}
		}
	}

	// Check if percentage of different pixels is acceptable
	if !result.Match && opts.MaxDifferentPercent > 0 && result.TotalPixels > 0 {
		pct := float64(result.DifferentPixels) / float64(result.TotalPixels) * 100
		if pct <= opts.MaxDifferentPercent {
			result.Match = true
		}
	}

	return result
}

// CompareFiles loads two PNG files and compares them.
func CompareFiles(actualPath, expectedPath string, opts CompareOptions) (*CompareResult, error) {
	actualImg, err := LoadPNG(actualPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load actual image: %w", err)
	}
	expectedImg, err := LoadPNG(expectedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load expected image: %w", err)
	}
	if actualImg.Bounds().Size() != expectedImg.Bounds().Size() {
		return &CompareResult{Match: false}, fmt.Errorf("image dimensions differ: actual=%v, expected=%v",
			actualImg.Bounds(), expectedImg.Bounds())
	}
	return Compare(actualImg, expectedImg, opts), nil
}

// SaveDiff writes the diff image of r to path. It is a no-op without a diff.
func (r *CompareResult) SaveDiff(path string) error {
	if r.Diff == nil {
		return nil
	}
	return gg.SavePNG(path, r.Diff)
}

// LoadPNG decodes a PNG file.
func LoadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// fuzzyMatch checks if the actual pixel at (x, y) matches any expected pixel within radius.
// Coordinates are relative to each image's bounds.
func fuzzyMatch(actual, expected image.Image, x, y, radius, tolerance int) bool {
	ab := actual.Bounds()
	eb := expected.Bounds()
	ac := actual.At(ab.Min.X+x, ab.Min.Y+y)

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= eb.Dx() || ny < 0 || ny >= eb.Dy() {
				continue
			}
			if channelDiff(ac, expected.At(eb.Min.X+nx, eb.Min.Y+ny)) <= tolerance {
				return true
			}
		}
	}
	return false
}

func channelDiff(a, b color.Color) int {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()

	// Convert from 16-bit to 8-bit
	return max(
		absInt(int(ar>>8)-int(br>>8)),
		absInt(int(ag>>8)-int(bg>>8)),
		absInt(int(ab>>8)-int(bb>>8)),
		absInt(int(aa>>8)-int(ba>>8)),
	)
}

func grayOf(c color.Color) uint8 {
	r, _, _, _ := c.RGBA()
	return uint8(r >> 8)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
