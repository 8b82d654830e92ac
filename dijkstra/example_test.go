// Package dijkstra_test provides runnable examples for the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/incarcnet/core"
	"github.com/katalvlaran/incarcnet/dijkstra"
)

// ExampleDijkstra walks a small directed rate-gap graph.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithDirected(true))
	ohio, _ := g.AddVertex("Ohio")
	iowa, _ := g.AddVertex("Iowa")
	utah, _ := g.AddVertex("Utah")
	g.AddEdge(ohio, iowa, 12)
	g.AddEdge(iowa, utah, 8)
	g.AddEdge(ohio, utah, 30)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(ohio), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Ohio→Utah: %.0f via", dist[utah])
	for _, h := range dijkstra.PathTo(prev, ohio, utah) {
		fmt.Printf(" %s", g.Label(h))
	}
	fmt.Println()

	// Output: Ohio→Utah: 20 via Ohio Iowa Utah
}
