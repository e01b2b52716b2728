package visualtest

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestCompareIdentical(t *testing.T) {
	a := solid(4, 4, color.RGBA{10, 20, 30, 255})
	b := solid(4, 4, color.RGBA{10, 20, 30, 255})
	res := Compare(a, b, CompareOptions{})
	assert.True(t, res.Match)
	assert.Equal(t, 16, res.TotalPixels)
	assert.Zero(t, res.MaxDifference)
}

func TestCompareTolerance(t *testing.T) {
	a := solid(2, 2, color.RGBA{100, 100, 100, 255})
	b := solid(2, 2, color.RGBA{103, 100, 100, 255})

	assert.False(t, Compare(a, b, CompareOptions{}).Match)
	res := Compare(a, b, CompareOptions{Tolerance: 3})
	assert.True(t, res.Match)
	assert.Equal(t, 3, res.MaxDifference)
}

func TestCompareSizeMismatch(t *testing.T) {
	res := Compare(solid(2, 2, color.RGBA{}), solid(3, 2, color.RGBA{}), CompareOptions{})
	assert.False(t, res.Match)
}

func TestCompareSubImageBounds(t *testing.T) {
	big := solid(10, 10, color.RGBA{0, 0, 0, 255})
	big.SetRGBA(5, 5, color.RGBA{255, 255, 255, 255})
	sub := big.SubImage(image.Rect(5, 5, 7, 7))

	want := solid(2, 2, color.RGBA{0, 0, 0, 255})
	want.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
	assert.True(t, Compare(sub, want, CompareOptions{}).Match)
}

func TestCompareFuzzyAndPercent(t *testing.T) {
	a := solid(5, 5, color.RGBA{0, 0, 0, 255})
	b := solid(5, 5, color.RGBA{0, 0, 0, 255})
	a.SetRGBA(2, 2, color.RGBA{255, 255, 255, 255})
	b.SetRGBA(3, 2, color.RGBA{255, 255, 255, 255})

	strict := Compare(a, b, CompareOptions{KeepDiff: true})
	assert.False(t, strict.Match)
	assert.Equal(t, 2, strict.DifferentPixels)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, strict.Diff.RGBAAt(2, 2))

	assert.True(t, Compare(a, b, CompareOptions{FuzzyRadius: 1}).Match)
	assert.True(t, Compare(a, b, CompareOptions{MaxDifferentPercent: 10}).Match)
}

func TestCompareFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	require.NoError(t, gg.SavePNG(a, solid(3, 3, color.RGBA{1, 2, 3, 255})))
	require.NoError(t, gg.SavePNG(b, solid(3, 3, color.RGBA{1, 2, 3, 255})))

	res, err := CompareFiles(a, b, CompareOptions{})
	require.NoError(t, err)
	assert.True(t, res.Match)

	c := filepath.Join(dir, "c.png")
	require.NoError(t, gg.SavePNG(c, solid(4, 3, color.RGBA{1, 2, 3, 255})))
	_, err = CompareFiles(a, c, CompareOptions{})
	assert.Error(t, err)

	_, err = CompareFiles(a, filepath.Join(dir, "missing.png"), CompareOptions{})
	assert.Error(t, err)
}

func TestSaveDiff(t *testing.T) {
	res := Compare(solid(2, 2, color.RGBA{A: 255}), solid(2, 2, color.RGBA{R: 9, A: 255}), CompareOptions{KeepDiff: true})
	path := filepath.Join(t.TempDir(), "diff.png")
	require.NoError(t, res.SaveDiff(path))

	img, err := LoadPNG(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())

	assert.NoError(t, (&CompareResult{}).SaveDiff(path))
}
