package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/incarcnet/bfs"
	"github.com/katalvlaran/incarcnet/core"
)

// ExampleBFS layers a small similarity neighbourhood by hop count.
func ExampleBFS() {
	g := core.NewGraph()
	for _, l := range []string{"Ohio", "Iowa", "Utah", "Maine"} {
		g.AddVertex(l)
	}
	g.AddEdge(0, 1, 0.9)
	g.AddEdge(1, 2, 0.8)

	res, _ := bfs.BFS(g, 0)
	for _, h := range res.Order {
		fmt.Printf("%s@%d ", g.Label(h), res.Depth[h])
	}
	fmt.Println()

	// Output: Ohio@0 Iowa@1 Utah@2
}
