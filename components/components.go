package components

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/incarcnet/bfs"
	"github.com/katalvlaran/incarcnet/core"
	"github.com/katalvlaran/incarcnet/dfs"
)

var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("components: graph is nil")

	// ErrDirectedGraph is returned for directed graphs, where reachability is
	// not symmetric and "connected" is ambiguous.
	ErrDirectedGraph = errors.New("components: graph must be undirected")
)

// Connected returns the connected components of the undirected graph g.
func Connected(g *core.Graph) ([][]core.Handle, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	seen := make([]bool, g.VertexCount())
	var comps [][]core.Handle
	for _, h := range g.Handles() {
		if seen[h] {
			continue
		}
		res, err := bfs.BFS(g, h)
		if err != nil {
			return nil, fmt.Errorf("components: bfs from %d: %w", h, err)
		}
		comp := make([]core.Handle, len(res.Order))
		copy(comp, res.Order)
		for _, v := range comp {
			seen[v] = true
		}
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		comps = append(comps, comp)
	}

	return comps, nil
}

// Strong returns the strongly connected components of g. Each component is
// sorted by handle and components are ordered by their smallest handle. On an
// undirected graph the result equals Connected.
func Strong(g *core.Graph) ([][]core.Handle, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// Pass 1: finish order over the whole graph.
	first, err := dfs.DFS(g, 0, dfs.WithFullTraversal())
	if err != nil {
		return nil, fmt.Errorf("components: forward pass: %w", err)
	}
	roots := make([]core.Handle, len(first.Order))
	for i, h := range first.Order {
		roots[len(roots)-1-i] = h
	}

	// Pass 2: each tree of the transpose, rooted in decreasing finish order,
	// is one component.
	second, err := dfs.DFS(g, 0, dfs.WithReverse(), dfs.WithRoots(roots))
	if err != nil {
		return nil, fmt.Errorf("components: reverse pass: %w", err)
	}

	comps := make([][]core.Handle, 0, len(second.Forest))
	for _, tree := range second.Forest {
		comp := make([]core.Handle, len(tree))
		copy(comp, tree)
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		comps = append(comps, comp)
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	return comps, nil
}

// Labels maps each component to its vertex labels, preserving order.
func Labels(g *core.Graph, comps [][]core.Handle) [][]string {
	out := make([][]string, len(comps))
	for i, comp := range comps {
		labels := make([]string, len(comp))
		for j, h := range comp {
			labels[j] = g.Label(h)
		}
		out[i] = labels
	}

	return out
}

// Clusters is Connected followed by Labels.
func Clusters(g *core.Graph) ([][]string, error) {
	comps, err := Connected(g)
	if err != nil {
		return nil, err
	}

	return Labels(g, comps), nil
}

// Membership returns comp[h] = index of the component holding h.
func Membership(comps [][]core.Handle) map[core.Handle]int {
	out := make(map[core.Handle]int)
	for i, comp := range comps {
		for _, h := range comp {
			out[h] = i
		}
	}

	return out
}
