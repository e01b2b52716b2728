package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ProcessInvoker runs an external renderer executable as
//
//	<Path> [Args...] <payload> <width> <height> <artifact>
//
// and treats a zero exit status as success.
type ProcessInvoker struct {
	Path string
	Args []string
}

// NewProcessInvoker returns an invoker for the renderer at path.
func NewProcessInvoker(path string, args ...string) *ProcessInvoker {
	return &ProcessInvoker{Path: path, Args: args}
}

// Invoke runs the renderer and waits for it to exit.
func (p *ProcessInvoker) Invoke(ctx context.Context, payload string, width, height int, artifactPath string) error {
	if p.Path == "" {
		return fmt.Errorf("%w: no renderer executable configured", ErrRenderFailed)
	}

	args := append(append([]string{}, p.Args...),
		payload,
		strconv.Itoa(width),
		strconv.Itoa(height),
		artifactPath,
	)
	cmd := exec.CommandContext(ctx, p.Path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s exited with code %d: %s", ErrRenderFailed, p.Path,
				exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("%w: running %s: %w", ErrRenderFailed, p.Path, err)
	}
	return nil
}
