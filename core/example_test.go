package core_test

import (
	"fmt"

	"github.com/katalvlaran/incarcnet/core"
)

// ExampleGraph builds a small directed multigraph and inspects it.
func ExampleGraph() {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())

	ohio, _ := g.AddVertex("Ohio")
	iowa, _ := g.AddVertex("Iowa")
	g.AddEdge(ohio, iowa, 12.5)
	g.AddEdge(ohio, iowa, 30)

	out, _ := g.OutDegree(ohio)
	fmt.Println("vertices:", g.VertexCount(), "edges:", g.EdgeCount())
	fmt.Println("out-degree of", g.Label(ohio)+":", out)

	// Output:
	// vertices: 2 edges: 2
	// out-degree of Ohio: 2
}
