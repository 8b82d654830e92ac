// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/Neighbors/
//       OutDegree/Degree.
// Determinism:
//   - Edges() and Neighbors() return insertion order.
// Concurrency:
//   - AddEdge under write lock, queries under read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge connects from and to with the given weight and returns the new edge.
//
// Steps:
//  1. Validate weight (finite) and loop constraint.
//  2. Validate both handles exist.
//  3. If multi-edges are disabled, reject an existing from→to (or from—to) edge.
//  4. Append to the edge catalog and adjacency; mirror for undirected graphs.
//
// Complexity: O(1) amortized, O(deg(from)) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to Handle, weight float64) (*Edge, error) {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil, ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return nil, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.has(from) {
		return nil, fmt.Errorf("%w: handle %d", ErrVertexNotFound, from)
	}
	if !g.has(to) {
		return nil, fmt.Errorf("%w: handle %d", ErrVertexNotFound, to)
	}
	if !g.allowMulti && g.connected(from, to) {
		return nil, ErrMultiEdgeNotAllowed
	}

	e := &Edge{
		ID:       len(g.edges),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
	}
	g.edges = append(g.edges, e)
	g.adjacency[from] = append(g.adjacency[from], e)
	switch {
	case g.directed:
		g.incoming[to] = append(g.incoming[to], e)
	case from != to:
		g.adjacency[to] = append(g.adjacency[to], e)
	}

	return e, nil
}

// connected reports whether an edge already joins from and to; callers hold mu.
func (g *Graph) connected(from, to Handle) bool {
	for _, e := range g.adjacency[from] {
		if e.From == from && e.To == to {
			return true
		}
		if !g.directed && e.Other(from) == to {
			return true
		}
	}

	return false
}

// HasEdge reports whether at least one edge joins from and to
// (respecting orientation on directed graphs).
func (g *Graph) HasEdge(from, to Handle) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.connected(from, to)
}

// Edges returns a snapshot of every edge in insertion order.
// Undirected edges appear once.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges (undirected edges count once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns the edges leaving h (directed) or incident to h
// (undirected), in insertion order. Parallel edges appear repeatedly;
// an undirected self-loop appears once.
func (g *Graph) Neighbors(h Handle) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(h) {
		return nil, fmt.Errorf("%w: handle %d", ErrVertexNotFound, h)
	}
	adj := g.adjacency[h]
	out := make([]*Edge, len(adj))
	copy(out, adj)

	return out, nil
}

// Incoming returns the edges entering h on a directed graph, in insertion
// order. On an undirected graph it is identical to Neighbors.
func (g *Graph) Incoming(h Handle) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(h) {
		return nil, fmt.Errorf("%w: handle %d", ErrVertexNotFound, h)
	}
	src := g.incoming[h]
	if !g.directed {
		src = g.adjacency[h]
	}
	out := make([]*Edge, len(src))
	copy(out, src)

	return out, nil
}

// OutDegree returns len(Neighbors(h)): the number of edges h is the source of
// in a directed graph, or the number of incident edges in an undirected one.
func (g *Graph) OutDegree(h Handle) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(h) {
		return 0, fmt.Errorf("%w: handle %d", ErrVertexNotFound, h)
	}

	return len(g.adjacency[h]), nil
}

// Degree returns the in, out and undirected incidence counts of h.
// Directed graphs fill in and out; undirected graphs fill undirected,
// counting a self-loop twice.
func (g *Graph) Degree(h Handle) (in, out, undirected int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(h) {
		return 0, 0, 0, fmt.Errorf("%w: handle %d", ErrVertexNotFound, h)
	}
	if g.directed {
		return len(g.incoming[h]), len(g.adjacency[h]), 0, nil
	}
	for _, e := range g.adjacency[h] {
		undirected++
		if e.From == e.To {
			undirected++
		}
	}

	return 0, 0, undirected, nil
}
