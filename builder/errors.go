// SPDX-License-Identifier: MIT
// Package: incarcnet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with builderErrorf / wrapf.
//   • Builders never panic; validation panics are confined to WithX options.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord indicates a record the engine cannot place in a graph:
// empty jurisdiction, or a negative, NaN or infinite rate. Ingestion is
// expected to reject such rows earlier.
var ErrInvalidRecord = errors.New("builder: invalid record")

// ErrConstructFailed indicates the underlying graph refused an insertion.
// It should never surface for validated input.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>"; format may
// use %w to keep a lower-level error reachable through errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}

// wrapf keeps sentinel for errors.Is and prefixes method and detail.
func wrapf(method, detail string, sentinel error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, sentinel)
}
