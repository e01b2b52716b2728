package content

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not available")
	}
	path := filepath.Join(t.TempDir(), "renderer.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestProcessInvokerPassesArguments(t *testing.T) {
	script := writeScript(t, `printf '%s|%s|%s|%s' "$2" "$3" "$4" "$5" > "$5"`)
	out := filepath.Join(t.TempDir(), "artifact")

	inv := NewProcessInvoker(script, "--flag")
	require.NoError(t, inv.Invoke(context.Background(), "<p>x</p>", 640, 480, out))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>|640|480|"+out, string(got))
}

func TestProcessInvokerNonZeroExit(t *testing.T) {
	script := writeScript(t, `echo "cannot render" >&2; exit 3`)
	err := NewProcessInvoker(script).Invoke(context.Background(), "doc", 1, 1, filepath.Join(t.TempDir(), "a"))
	require.ErrorIs(t, err, ErrRenderFailed)
	assert.Contains(t, err.Error(), "code 3")
	assert.Contains(t, err.Error(), "cannot render")
}

func TestProcessInvokerMissingExecutable(t *testing.T) {
	err := NewProcessInvoker(filepath.Join(t.TempDir(), "nope")).Invoke(context.Background(), "doc", 1, 1, "a")
	assert.ErrorIs(t, err, ErrRenderFailed)

	err = (&ProcessInvoker{}).Invoke(context.Background(), "doc", 1, 1, "a")
	assert.ErrorIs(t, err, ErrRenderFailed)
}

func TestBridgeWithProcessInvokerDegradesOnFailure(t *testing.T) {
	script := writeScript(t, `exit 1`)
	b := NewBridge(NewProcessInvoker(script), filepath.Join(t.TempDir(), "render.bmp"))

	img := b.RenderHTML(context.Background(), "<p>x</p>", 4, 2)
	assert.Len(t, img.Pix, 4*2*4)
	assert.Equal(t, 4, img.Width)
}
