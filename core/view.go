// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Kept vertices are renumbered densely in their original creation order.
//   - Kept edges preserve insertion order.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

// InducedSubgraph returns a new Graph containing only the vertices in keep
// and the edges whose endpoints are both kept. The source graph is not
// mutated. Handles in the result are renumbered 0..len(kept)-1 following the
// source creation order; labels, weights and flags are preserved.
// Handles in keep that are not in g are ignored.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep []Handle) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)

	wanted := make(map[Handle]bool, len(keep))
	for _, h := range keep {
		if g.has(h) {
			wanted[h] = true
		}
	}

	remap := make(map[Handle]Handle, len(wanted))
	for _, v := range g.vertices {
		if !wanted[v.Handle] {
			continue
		}
		nh := Handle(len(out.vertices))
		out.vertices = append(out.vertices, &Vertex{Handle: nh, Label: v.Label})
		remap[v.Handle] = nh
	}

	for _, e := range g.edges {
		from, okFrom := remap[e.From]
		to, okTo := remap[e.To]
		if !okFrom || !okTo {
			continue
		}
		ne := &Edge{ID: len(out.edges), From: from, To: to, Weight: e.Weight, Directed: e.Directed}
		out.edges = append(out.edges, ne)
		out.adjacency[from] = append(out.adjacency[from], ne)
		switch {
		case out.directed:
			out.incoming[to] = append(out.incoming[to], ne)
		case from != to:
			out.adjacency[to] = append(out.adjacency[to], ne)
		}
	}

	return out
}
