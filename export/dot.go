// SPDX-License-Identifier: MIT
//
// File: dot.go
// Role: DOT encoding of core graphs, plain and cluster-coloured.
// Determinism:
//   - Nodes are emitted by handle, lines by (from, to, edge ID).

package export

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/multi"

	"github.com/katalvlaran/incarcnet/core"
)

// weightDigits is the significant-digit budget of edge labels. Rates are
// derived by division, so gaps carry float noise below this precision.
const weightDigits = 10

// ClusterColors is the colour cycle applied to clusters in order.
var ClusterColors = []string{"red", "blue", "green", "yellow", "purple", "orange"}

// dotNode is a vertex as seen by the DOT encoder.
type dotNode struct {
	id    int64
	attrs []encoding.Attribute
}

func (n dotNode) ID() int64                        { return n.id }
func (n dotNode) Attributes() []encoding.Attribute { return n.attrs }

// dotLine is one core edge. Parallel edges keep distinct IDs.
type dotLine struct {
	from, to graph.Node
	id       int64
	attrs    []encoding.Attribute
}

func (l dotLine) From() graph.Node                 { return l.from }
func (l dotLine) To() graph.Node                   { return l.to }
func (l dotLine) ID() int64                        { return l.id }
func (l dotLine) Attributes() []encoding.Attribute { return l.attrs }
func (l dotLine) ReversedLine() graph.Line {
	l.from, l.to = l.to, l.from
	return l
}

// lineSetter is satisfied by both multi.DirectedGraph and multi.UndirectedGraph.
type lineSetter interface {
	graph.Multigraph
	AddNode(graph.Node)
	SetLine(graph.Line)
}

// MarshalGraph encodes g as a DOT digraph (directed) or graph (undirected)
// named name. Node labels are the vertex labels; each edge is labelled with
// its weight, the rate gap or similarity score.
func MarshalGraph(g *core.Graph, name string) ([]byte, error) {
	return marshal(g, name, nil)
}

// MarshalClusters encodes g with every vertex of clusters[i] filled in
// ClusterColors[i%len(ClusterColors)]. Vertices absent from clusters are
// emitted uncoloured; handles outside g are ignored.
func MarshalClusters(g *core.Graph, clusters [][]core.Handle, name string) ([]byte, error) {
	color := make(map[core.Handle]string)
	for i, members := range clusters {
		c := ClusterColors[i%len(ClusterColors)]
		for _, h := range members {
			if _, seen := color[h]; !seen {
				color[h] = c
			}
		}
	}

	return marshal(g, name, color)
}

// FormatWeight renders w with weightDigits significant digits, dropping
// trailing zeros: 19.999999999999986 becomes "20".
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', weightDigits, 64)
}

func marshal(g *core.Graph, name string, color map[core.Handle]string) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("export: marshal %q: nil graph", name)
	}

	var dst lineSetter
	if g.Directed() {
		dst = multi.NewDirectedGraph()
	} else {
		dst = multi.NewUndirectedGraph()
	}

	nodes := make(map[core.Handle]dotNode, g.VertexCount())
	for _, v := range g.Vertices() {
		n := dotNode{
			id:    int64(v.Handle),
			attrs: []encoding.Attribute{{Key: "label", Value: v.Label}},
		}
		if c, ok := color[v.Handle]; ok {
			n.attrs = append(n.attrs,
				encoding.Attribute{Key: "color", Value: c},
				encoding.Attribute{Key: "style", Value: "filled"},
			)
		}
		nodes[v.Handle] = n
		dst.AddNode(n)
	}

	for _, e := range g.Edges() {
		dst.SetLine(dotLine{
			from:  nodes[e.From],
			to:    nodes[e.To],
			id:    int64(e.ID),
			attrs: []encoding.Attribute{{Key: "label", Value: FormatWeight(e.Weight)}},
		})
	}

	b, err := dot.MarshalMulti(dst, name, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("export: marshal %q: %w", name, err)
	}

	return b, nil
}
