// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: options, result type and sentinel errors of the dfs package.

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/incarcnet/core"
)

var (
	// ErrGraphNil is returned when DFS is called with a nil graph.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start handle is outside the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal.
	OnVisit func(h core.Handle) error

	// OnExit is invoked after all descendants of a vertex are explored
	// (post-order), before the vertex is appended to Result.Order.
	OnExit func(h core.Handle) error

	// MaxDepth, if non-negative, limits recursion depth. 0 visits only the root.
	MaxDepth int

	// FilterNeighbor, if non-nil, must return true for a neighbor to be entered.
	FilterNeighbor func(h core.Handle) bool

	// FullTraversal restarts from every unvisited vertex (forest traversal).
	FullTraversal bool

	// Reverse walks directed edges against their orientation.
	Reverse bool

	// Roots, when set with FullTraversal, fixes the order in which forest
	// roots are tried. Vertices missing from Roots are tried afterwards in
	// handle order.
	Roots []core.Handle
}

// DefaultOptions returns background context, no hooks, no depth limit and
// single-root traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(h core.Handle) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(h core.Handle) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit (>= 0).
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(h core.Handle) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers every vertex, one tree per unvisited root.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// WithReverse follows Incoming instead of Neighbors.
func WithReverse() Option {
	return func(o *Options) { o.Reverse = true }
}

// WithRoots sets the forest root order; it implies WithFullTraversal.
func WithRoots(roots []core.Handle) Option {
	return func(o *Options) {
		o.Roots = roots
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order lists vertices in finish order (post-order).
	Order []core.Handle

	// Depth maps each visited vertex to its depth in its tree.
	Depth map[core.Handle]int

	// Parent maps each non-root visited vertex to its discoverer.
	Parent map[core.Handle]core.Handle

	// Visited flags reached vertices.
	Visited map[core.Handle]bool

	// Forest lists the vertices of each tree in discovery order; one entry
	// per root.
	Forest [][]core.Handle

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
