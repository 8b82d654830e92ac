package centrality

import "github.com/katalvlaran/incarcnet/core"

// Score is the centrality of one vertex.
type Score struct {
	Handle core.Handle
	Label  string
	Degree int
}

// OutDegree returns one Score per vertex in creation order, counting the
// edges each vertex is the source of (incident edges for undirected graphs).
// The result is empty only for an empty graph.
//
// Complexity: O(V).
func OutDegree(g *core.Graph) []Score {
	return collect(g, func(h core.Handle) int {
		d, _ := g.OutDegree(h)
		return d
	})
}

// TotalDegree returns one Score per vertex in creation order counting every
// incident edge: in + out on directed graphs, loops twice on undirected ones.
//
// Complexity: O(V + E).
func TotalDegree(g *core.Graph) []Score {
	return collect(g, func(h core.Handle) int {
		in, out, und, _ := g.Degree(h)
		return in + out + und
	})
}

// collect handles are valid by construction, so degree lookups cannot fail.
func collect(g *core.Graph, degree func(core.Handle) int) []Score {
	if g == nil {
		return nil
	}
	vs := g.Vertices()
	out := make([]Score, 0, len(vs))
	for _, v := range vs {
		out = append(out, Score{Handle: v.Handle, Label: v.Label, Degree: degree(v.Handle)})
	}

	return out
}

// Sum returns the sum of Degree over scores.
func Sum(scores []Score) int {
	total := 0
	for _, s := range scores {
		total += s.Degree
	}

	return total
}
