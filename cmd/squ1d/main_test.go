package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squ1d/pkg/browser"
	"squ1d/pkg/gfx"
)

// writeConfig writes a config file into dir with the canvas backend and any
// extra TOML appended.
func writeConfig(t *testing.T, dir, extra string) string {
	t.Helper()
	body := fmt.Sprintf(`home_url = "https://example.com"

[window]
width = 320
height = 240

[logging]
level = "error"

[renderer]
backend = "canvas"
artifact = %q
`, filepath.Join(dir, "render.bmp")) + extra

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func loadPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func rgba(c gfx.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "squ1d dev")
	assert.Contains(t, out, "commit: none")
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "")
	out := filepath.Join(dir, "frame.png")

	_, err := execute(t, "--config", cfg, "snapshot", "-o", out)
	require.NoError(t, err)

	img := loadPNG(t, out)
	assert.Equal(t, image.Rect(0, 0, 320, 240), img.Bounds())

	theme := gfx.DefaultTheme()
	assert.Equal(t, rgba(theme.ToolbarBG), color.RGBAModel.Convert(img.At(5, 5)))
	// bottom-right corner of the content area is page background
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, color.RGBAModel.Convert(img.At(305, 225)))
}

func TestSnapshotSizeFlags(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "")
	out := filepath.Join(dir, "frame.png")

	_, err := execute(t, "--config", cfg, "snapshot", "--width", "200", "--height", "150", "-o", out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 150), loadPNG(t, out).Bounds())
}

func TestSnapshotRecordsVisit(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, fmt.Sprintf("\n[history]\ndatabase = %q\n", filepath.Join(dir, "history.db")))

	_, err := execute(t, "--config", cfg, "snapshot", "example.org", "-o", filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	_, err = execute(t, "--config", cfg, "snapshot", "-o", filepath.Join(dir, "b.png"))
	require.NoError(t, err)

	out, err := execute(t, "--config", cfg, "history", "-n", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "https://example.org")
	assert.Contains(t, out, "https://example.com")

	out, err = execute(t, "--config", cfg, "history", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "https://example.com")
	assert.NotContains(t, out, "https://example.org")
}

func TestHistoryDisabled(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "")

	out, err := execute(t, "--config", cfg, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "history is disabled")
}

func TestRenderFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body><h1>Fetched</h1></body></html>"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	cfg := writeConfig(t, dir, "")
	out := filepath.Join(dir, "page.png")

	stdout, err := execute(t, "--config", cfg, "render", srv.URL, "--fetch", "--width", "64", "--height", "48", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "64x48")
	assert.Equal(t, image.Rect(0, 0, 64, 48), loadPNG(t, out).Bounds())
}

func TestRenderFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	dir := t.TempDir()
	cfg := writeConfig(t, dir, "")

	_, err := execute(t, "--config", cfg, "render", srv.URL, "--fetch", "-o", filepath.Join(dir, "page.png"))
	assert.Error(t, err)
}

func TestRenderFailureWritesWhitePage(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, fmt.Sprintf("path = %q\n", filepath.Join(dir, "missing-renderer")))
	// the appended path lands in the [renderer] table; switch the backend too
	body, err := os.ReadFile(cfg)
	require.NoError(t, err)
	body = bytes.Replace(body, []byte(`backend = "canvas"`), []byte(`backend = "process"`), 1)
	require.NoError(t, os.WriteFile(cfg, body, 0o600))

	out := filepath.Join(dir, "page.png")
	_, err = execute(t, "--config", cfg, "render", "https://example.com", "--width", "16", "--height", "8", "-o", out)
	require.NoError(t, err)

	img := loadPNG(t, out)
	assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, color.RGBAModel.Convert(img.At(8, 4)))
}

func TestRenderRejectsEmptySize(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "")

	_, err := execute(t, "--config", cfg, "render", "https://example.com", "--width", "0", "-o", filepath.Join(dir, "p.png"))
	assert.Error(t, err)
}

func TestInvalidConfigIsInitError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nwidth = 0\n"), 0o600))

	_, err := execute(t, "--config", path, "snapshot", "-o", filepath.Join(dir, "f.png"))
	assert.ErrorIs(t, err, browser.ErrInit)
}

func TestInvalidOmniboxScriptIsInitError(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "\n[omnibox]\nscript = \"var x = 1;\"\n")

	_, err := execute(t, "--config", cfg, "snapshot", "-o", filepath.Join(dir, "f.png"))
	assert.ErrorIs(t, err, browser.ErrInit)
}
