// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and NewGraph.
// Determinism:
//   - Handles are dense and assigned in creation order.
//   - Edge.ID is assigned in insertion order starting at 0.
// Concurrency:
//   - mu guards vertices, edges, adjacency and incoming.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates that AddVertex was called with an empty label.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrVertexNotFound indicates an operation referenced a handle outside the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Handle is the integer identity of a vertex inside one Graph.
// Handles are dense: a graph with n vertices uses exactly 0..n-1.
type Handle int

// Vertex is a node of the graph.
type Vertex struct {
	// Handle is the position of this vertex in creation order.
	Handle Handle

	// Label is the display name, usually a jurisdiction. Not unique.
	Label string
}

// Edge connects two vertices.
//
// For directed graphs the edge runs From→To. For undirected graphs From and To
// are the endpoints in the order they were passed to AddEdge; use Other to walk
// the edge from either side.
type Edge struct {
	// ID is the insertion index of the edge.
	ID int

	// From is the source (directed) or first endpoint (undirected).
	From Handle

	// To is the destination (directed) or second endpoint (undirected).
	To Handle

	// Weight is the rate gap or similarity score that admitted the edge.
	Weight float64

	// Directed mirrors the owning graph's orientation.
	Directed bool
}

// Other returns the endpoint of e opposite to h.
// For a self-loop it returns h itself.
func (e *Edge) Other(h Handle) Handle {
	if e.From == h {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of all edges (true = directed).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory graph data structure.
//
// vertices is indexed by Handle. adjacency[h] lists the edges leaving h
// (directed) or incident to h (undirected). incoming[h] lists edges entering h
// and is only populated for directed graphs.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool
	allowMulti bool
	allowLoops bool

	// Storage
	vertices  []*Vertex
	edges     []*Edge
	adjacency map[Handle][]*Edge
	incoming  map[Handle][]*Edge
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is undirected, without loops and without multi-edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[Handle][]*Edge),
		incoming:  make(map[Handle][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }
