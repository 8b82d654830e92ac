// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertex/Label/Vertices/
//       Handles/Lookup/VertexCount.
// Determinism:
//   - Vertices() and Handles() return creation order.
//   - Lookup() returns handles ascending.
// Concurrency:
//   - AddVertex under write lock, queries under read lock.

package core

import "fmt"

// AddVertex appends a new vertex labelled label and returns its handle.
// Every call creates a distinct vertex, even when label was seen before.
//
// Errors: ErrEmptyLabel.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(label string) (Handle, error) {
	if label == "" {
		return 0, ErrEmptyLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	h := Handle(len(g.vertices))
	g.vertices = append(g.vertices, &Vertex{Handle: h, Label: label})

	return h, nil
}

// HasVertex reports whether h addresses a vertex of g.
func (g *Graph) HasVertex(h Handle) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.has(h)
}

// has is the lock-free form of HasVertex; callers must hold mu.
func (g *Graph) has(h Handle) bool {
	return h >= 0 && int(h) < len(g.vertices)
}

// Vertex returns the vertex addressed by h.
func (g *Graph) Vertex(h Handle) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(h) {
		return nil, fmt.Errorf("%w: handle %d", ErrVertexNotFound, h)
	}

	return g.vertices[h], nil
}

// Label returns the label of h, or "" when h is not in the graph.
func (g *Graph) Label(h Handle) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(h) {
		return ""
	}

	return g.vertices[h].Label
}

// Vertices returns a snapshot of all vertices in creation order.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Handles returns 0..V-1.
func (g *Graph) Handles() []Handle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Handle, len(g.vertices))
	for i := range out {
		out[i] = Handle(i)
	}

	return out
}

// Lookup returns every handle whose vertex carries label, ascending.
// Complexity: O(V).
func (g *Graph) Lookup(label string) []Handle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Handle
	for _, v := range g.vertices {
		if v.Label == label {
			out = append(out, v.Handle)
		}
	}

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
