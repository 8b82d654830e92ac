package paths

import (
	"fmt"
	"math"

	"github.com/katalvlaran/incarcnet/core"
	"github.com/katalvlaran/incarcnet/dijkstra"
)

// Stats is the outcome of an all-sources shortest-path sweep.
type Stats struct {
	// Sum of every finite distance, self distances included (they are 0).
	Sum float64

	// ReachablePairs counts (source, target) pairs with a finite distance,
	// including the V pairs (v, v).
	ReachablePairs int

	// DistinctPairs counts reachable pairs with source != target.
	DistinctPairs int
}

// Inclusive returns Sum / ReachablePairs, or 0 when there are none.
func (s Stats) Inclusive() float64 {
	if s.ReachablePairs == 0 {
		return 0
	}

	return s.Sum / float64(s.ReachablePairs)
}

// Distinct returns Sum / DistinctPairs, or 0 when there are none.
func (s Stats) Distinct() float64 {
	if s.DistinctPairs == 0 {
		return 0
	}

	return s.Sum / float64(s.DistinctPairs)
}

// Summary runs Dijkstra from every vertex of g and accumulates the result.
//
// Complexity: O(V · (V + E) log V).
func Summary(g *core.Graph) (Stats, error) {
	var s Stats
	if g == nil {
		return s, dijkstra.ErrNilGraph
	}

	for _, src := range g.Handles() {
		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
		if err != nil {
			return Stats{}, fmt.Errorf("paths: from %d (%s): %w", src, g.Label(src), err)
		}
		for v, d := range dist {
			if math.IsInf(d, 1) {
				continue
			}
			s.Sum += d
			s.ReachablePairs++
			if core.Handle(v) != src {
				s.DistinctPairs++
			}
		}
	}

	return s, nil
}

// AverageShortestPath returns the mean of all finite shortest-path distances
// from every vertex, self distances included. An empty graph yields 0.
func AverageShortestPath(g *core.Graph) (float64, error) {
	s, err := Summary(g)
	if err != nil {
		return 0, err
	}

	return s.Inclusive(), nil
}

// MeanDistinctDistance is AverageShortestPath over pairs with distinct
// endpoints only.
func MeanDistinctDistance(g *core.Graph) (float64, error) {
	s, err := Summary(g)
	if err != nil {
		return 0, err
	}

	return s.Distinct(), nil
}
