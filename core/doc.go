// Package core provides the in-memory Graph shared by every analysis package
// in incarcnet.
//
// A Graph is a tagged structure: one type, two variants selected at
// construction time.
//
//   - Directed (WithDirected(true)): adjacency[h] holds the edges leaving h.
//   - Undirected (default): adjacency[h] holds every edge incident to h, with
//     each edge mirrored into both endpoint lists.
//
// Vertices are addressed by a small integer Handle assigned in creation order
// (0, 1, 2, ...). Each vertex carries a Label, normally a jurisdiction name.
// Labels are NOT required to be unique: the similarity graph creates one
// vertex per record, so a jurisdiction observed in several years yields several
// vertices sharing a label. Use Lookup to find all handles for a label.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)   orientation of every edge.
//	– WithMultiEdges()              permit parallel edges between the same endpoints.
//	– WithLoops()                   permit self-loops (from == to).
//
// Core Methods:
//
//	AddVertex(label string) (Handle, error)               // O(1)
//	AddEdge(from, to Handle, w float64) (*Edge, error)     // O(1), O(deg) without multi-edges
//	Vertices() []*Vertex                                   // creation order
//	Edges() []*Edge                                        // insertion order
//	Neighbors(h Handle) ([]*Edge, error)                   // outgoing (directed) / incident (undirected)
//	Incoming(h Handle) ([]*Edge, error)                    // entering (directed) / incident (undirected)
//	Degree(h Handle) (in, out, undirected int, err error)
//	Lookup(label string) []Handle
//	InducedSubgraph(g, keep) *Graph
//
// Errors:
//
//	ErrEmptyLabel          – zero-length vertex label
//	ErrVertexNotFound      – handle outside the graph
//	ErrBadWeight           – NaN or infinite weight
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// Graphs are built once and then only read. A single sync.RWMutex guards the
// storage so concurrent readers (for example two pipeline stages analysing the
// same graph) are safe; concurrent mutation is supported only in the sense
// that it will not corrupt memory, and no ordering between writers is promised.
package core
