package kcore

import (
	"github.com/katalvlaran/incarcnet/centrality"
	"github.com/katalvlaran/incarcnet/core"
)

// FilterByMinDegree returns the labels of vertices whose out-degree is >= k,
// in vertex creation order with duplicate labels collapsed.
//
// Complexity: O(V).
func FilterByMinDegree(g *core.Graph, k int) []string {
	var keep []core.Handle
	for _, s := range centrality.OutDegree(g) {
		if s.Degree >= k {
			keep = append(keep, s.Handle)
		}
	}

	return labels(g, keep)
}

// Peel returns the labels of the k-core of g (total degree, loops counted
// twice on undirected graphs), in creation order with duplicates collapsed.
//
// Complexity: O(V + E).
func Peel(g *core.Graph, k int) []string {
	return labels(g, peel(g, k))
}

// PeelGraph returns the k-core of g as a new graph. g is not modified.
func PeelGraph(g *core.Graph, k int) *core.Graph {
	return core.InducedSubgraph(g, peel(g, k))
}

// peel runs the queue-based removal and returns surviving handles ascending.
func peel(g *core.Graph, k int) []core.Handle {
	if g == nil {
		return nil
	}
	scores := centrality.TotalDegree(g)
	deg := make([]int, len(scores))
	removed := make([]bool, len(scores))
	var queue []core.Handle
	for _, s := range scores {
		deg[s.Handle] = s.Degree
		if s.Degree < k {
			removed[s.Handle] = true
			queue = append(queue, s.Handle)
		}
	}

	// Each edge touching a removed vertex lowers the other endpoint once.
	// Directed graphs expose incoming edges only through the edge list, so
	// build a per-vertex incidence index first.
	incident := make([][]*core.Edge, len(scores))
	for _, e := range g.Edges() {
		incident[e.From] = append(incident[e.From], e)
		if e.To != e.From {
			incident[e.To] = append(incident[e.To], e)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, e := range incident[u] {
			v := e.Other(u)
			if v == u || removed[v] {
				continue
			}
			deg[v]--
			if deg[v] < k {
				removed[v] = true
				queue = append(queue, v)
			}
		}
	}

	var out []core.Handle
	for h, gone := range removed {
		if !gone {
			out = append(out, core.Handle(h))
		}
	}

	return out
}

func labels(g *core.Graph, hs []core.Handle) []string {
	seen := make(map[string]bool, len(hs))
	out := make([]string, 0, len(hs))
	for _, h := range hs {
		l := g.Label(h)
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}

	return out
}
