// Package dijkstra computes single-source shortest paths over a core.Graph
// with non-negative float64 edge weights.
//
// Overview:
//
//   - Dijkstra expands vertices in order of increasing distance using a
//     container/heap min-queue with lazy decrease-key: improved distances are
//     pushed again and stale entries are skipped when popped.
//   - Directed graphs are walked along edge orientation; undirected graphs in
//     both directions. Parallel edges are fine; the cheapest one wins.
//   - Results are dense slices indexed by core.Handle.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Options:
//
//	– Source(h)                  required starting vertex.
//	– WithReturnPath()           also return the predecessor slice.
//	– WithMaxDistance(d)         do not settle vertices farther than d (d ≥ 0).
//	– WithInfEdgeThreshold(t)    treat edges with weight ≥ t as impassable (t > 0).
//
// Errors (sentinel):
//
//	– ErrNoSource        Source was not supplied.
//	– ErrNilGraph        graph pointer is nil.
//	– ErrVertexNotFound  source handle is not in the graph.
//	– ErrNegativeWeight  an edge with negative weight exists (O(E) pre-scan).
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(h), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	path := dijkstra.PathTo(prev, target)
package dijkstra
