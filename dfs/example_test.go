package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/incarcnet/core"
	"github.com/katalvlaran/incarcnet/dfs"
)

// ExampleDFS walks a diamond-shaped directed graph in post-order.
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
func ExampleDFS() {
	g := core.NewGraph(core.WithDirected(true))
	h := make(map[string]core.Handle)
	for _, l := range []string{"A", "B", "C", "D", "E", "F"} {
		h[l], _ = g.AddVertex(l)
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"D", "F"}} {
		g.AddEdge(h[e[0]], h[e[1]], 1)
	}

	res, _ := dfs.DFS(g, h["A"])

	post := make([]string, len(res.Order))
	for i, v := range res.Order {
		post[i] = g.Label(v)
	}
	fmt.Println("post-order:", strings.Join(post, " "))
	fmt.Println("depth of F:", res.Depth[h["F"]])

	// Output:
	// post-order: E F D B C A
	// depth of F: 3
}
