// SPDX-License-Identifier: MIT
//
// File: dfs.go
// Role: recursive depth-first walker.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/incarcnet/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
	tree  int
}

// DFS performs depth-first search on g from start, or over every vertex
// when WithFullTraversal or WithRoots is given (start is then ignored).
func DFS(g *core.Graph, start core.Handle, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: handle %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	res := &Result{
		Order:   make([]core.Handle, 0, n),
		Depth:   make(map[core.Handle]int, n),
		Parent:  make(map[core.Handle]core.Handle, n),
		Visited: make(map[core.Handle]bool, n),
	}
	w := &walker{graph: g, opts: o, res: res}

	if !o.FullTraversal {
		return res, w.root(start)
	}

	roots := make([]core.Handle, 0, n+len(o.Roots))
	roots = append(roots, o.Roots...)
	roots = append(roots, g.Handles()...)
	for _, r := range roots {
		if res.Visited[r] || !g.HasVertex(r) {
			continue
		}
		if err := w.root(r); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (w *walker) root(h core.Handle) error {
	w.tree = len(w.res.Forest)
	w.res.Forest = append(w.res.Forest, nil)

	return w.traverse(h, 0)
}

// traverse visits h at depth, then recurses into unvisited neighbors.
func (w *walker) traverse(h core.Handle, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	w.res.Visited[h] = true
	w.res.Depth[h] = depth
	w.res.Forest[w.tree] = append(w.res.Forest[w.tree], h)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(h); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", h, err)
		}
	}

	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return w.exit(h)
	}

	var (
		edges []*core.Edge
		err   error
	)
	if w.opts.Reverse {
		edges, err = w.graph.Incoming(h)
	} else {
		edges, err = w.graph.Neighbors(h)
	}
	if err != nil {
		return fmt.Errorf("dfs: edges of %d: %w", h, err)
	}

	for _, e := range edges {
		next := e.Other(h)
		if next == h {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(next) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[next] {
			continue
		}
		w.res.Parent[next] = h
		if err := w.traverse(next, depth+1); err != nil {
			return err
		}
	}

	return w.exit(h)
}

// exit runs the post-order hook and records h as finished.
func (w *walker) exit(h core.Handle) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(h); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", h, err)
		}
	}
	w.res.Order = append(w.res.Order, h)

	return nil
}
