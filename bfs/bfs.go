package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/incarcnet/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	h     core.Handle
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or a wrapped OnVisit error.
func BFS(g *core.Graph, start core.Handle, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]core.Handle, 0, n),
			Depth:  make(map[core.Handle]int, n),
			Parent: make(map[core.Handle]core.Handle, n),
		},
	}

	w.enqueue(start, 0, start, true)

	return w.res, w.loop()
}

// enqueue marks h visited at depth d, records its parent and queues it.
func (w *walker) enqueue(h core.Handle, d int, parent core.Handle, root bool) {
	w.visited[h] = true
	w.res.Depth[h] = d
	if !root {
		w.res.Parent[h] = parent
	}
	w.opts.OnEnqueue(h, d)
	w.queue = append(w.queue, queueItem{h: h, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.h, item.depth)

	return item
}

func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.h)
	if err := w.opts.OnVisit(item.h, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.h, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues unseen neighbors.
func (w *walker) enqueueNeighbors(item queueItem) error {
	edges, err := w.graph.Neighbors(item.h)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.h, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, e := range edges {
		nbr := e.Other(item.h)
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.h, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.h, false)
	}

	return nil
}
