// SPDX-License-Identifier: MIT
//
// File: render.go
// Role: Renderer port and the Graphviz implementation.

package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultDotBinary is the Graphviz executable looked up on PATH.
const DefaultDotBinary = "dot"

// ErrRendererUnavailable indicates the renderer binary could not be found.
// It matches ErrIO as well.
var ErrRendererUnavailable = fmt.Errorf("export: renderer unavailable: %w", ErrIO)

// Renderer converts a DOT file into an image file.
type Renderer interface {
	Render(ctx context.Context, dotPath, pngPath string) error
}

// Graphviz renders with `dot -Tpng in -o out`.
type Graphviz struct {
	// Binary is the executable name or path. Empty means DefaultDotBinary.
	Binary string
}

// Render runs Graphviz on dotPath, writing pngPath. The output directory is
// created if needed. Stderr of a failing run is folded into the error.
func (r Graphviz) Render(ctx context.Context, dotPath, pngPath string) error {
	bin := r.Binary
	if bin == "" {
		bin = DefaultDotBinary
	}
	resolved, err := exec.LookPath(bin)
	if err != nil {
		return &IOError{Op: "render", Path: pngPath, Err: fmt.Errorf("%w: %s: %v", ErrRendererUnavailable, bin, err)}
	}
	if _, err := os.Stat(dotPath); err != nil {
		return &IOError{Op: "render", Path: dotPath, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(pngPath), 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: filepath.Dir(pngPath), Err: err}
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, resolved, "-Tpng", dotPath, "-o", pngPath)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(err, ctxErr)
		}
		return &IOError{Op: "render", Path: pngPath, Err: err}
	}

	return nil
}
