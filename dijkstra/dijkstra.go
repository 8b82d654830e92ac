package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/incarcnet/core"
)

// Dijkstra computes shortest distances from the Source vertex to every vertex
// of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance from Source to v, +Inf if
//     unreachable (or beyond MaxDistance).
//   - prev: predecessor slice if ReturnPath was requested, nil otherwise.
//     prev[v] == NoPredecessor for the source and for unreachable v.
//   - err:  sentinel error on invalid input.
//
// Preconditions and validation (in order):
//  1. Source supplied (ErrNoSource).
//  2. g non-nil (ErrNilGraph).
//  3. g contains Source (ErrVertexNotFound).
//  4. No negative edge weight (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) ([]float64, []core.Handle, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.HasSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: handle %d", ErrVertexNotFound, cfg.Source)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]core.Handle, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the vertex sequence source→…→target from a prev slice.
// It returns nil when target is unreachable or out of range.
func PathTo(prev []core.Handle, source, target core.Handle) []core.Handle {
	if target < 0 || int(target) >= len(prev) {
		return nil
	}
	var path []core.Handle
	for cur := target; ; cur = prev[cur] {
		path = append(path, cur)
		if cur == source {
			break
		}
		if prev[cur] == NoPredecessor {
			return nil
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []float64
	prev    []core.Handle
	visited []bool
	pq      nodePQ
}

// init sets every distance to +Inf, every predecessor to NoPredecessor and
// pushes the source with distance 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = NoPredecessor
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unsettled vertex until the heap is empty or the
// next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of u.
func (r *runner) relax(u core.Handle) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, e := range neighbors {
		v := e.Other(u)
		w := e.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   core.Handle
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Ties break on handle so
// the settle order is deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
