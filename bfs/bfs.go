package bfs

import (
	"fmt"

	"github.com/katalvlaran/flowmatch/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state for one call.
type walker struct {
	graph   *core.ResidualGraph
	opts    Options
	queue   []queueItem
	visited []bool
	parent  ParentMap
}

func newWalker(g *core.ResidualGraph, opts []Option) *walker {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.NodeCount()
	return &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		parent:  newParentMap(n),
	}
}

// FindPath runs breadth-first search from source over edges with residual > 0
// and returns the parent map as soon as sink is first reached.
//
// Returns ErrGraphNil, a core.ErrInvalidNodeID wrap for out-of-range ids, or
// ErrPathNotFound when the frontier empties without reaching sink. When
// source == sink there is nothing to augment and ErrPathNotFound is returned.
func FindPath(g *core.ResidualGraph, source, sink int, opts ...Option) (ParentMap, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("bfs: source %d: %w", source, core.ErrInvalidNodeID)
	}
	if !g.HasNode(sink) {
		return nil, fmt.Errorf("bfs: sink %d: %w", sink, core.ErrInvalidNodeID)
	}

	w := newWalker(g, opts)
	w.enqueue(source, 0, None)
	if w.loop(sink) {
		return w.parent, nil
	}

	return nil, ErrPathNotFound
}

// Reachable marks every node reachable from start through positive-residual
// edges (start included).
func Reachable(g *core.ResidualGraph, start int, opts ...Option) ([]bool, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("bfs: start %d: %w", start, core.ErrInvalidNodeID)
	}

	w := newWalker(g, opts)
	w.enqueue(start, 0, None)
	w.loop(None)

	return w.visited, nil
}

// enqueue marks node visited, records its parent and queues it.
func (w *walker) enqueue(node, depth, parent int) {
	w.visited[node] = true
	w.parent[node] = parent
	w.opts.OnEnqueue(node, depth)
	w.queue = append(w.queue, queueItem{node: node, depth: depth})
}

// loop drains the queue; it returns true as soon as target is enqueued.
// A target of None explores the whole residual component.
func (w *walker) loop(target int) bool {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.node, item.depth)

		for _, e := range w.graph.Neighbors(item.node) {
			if w.visited[e.To] || e.Residual() <= 0 {
				continue
			}
			w.enqueue(e.To, item.depth+1, item.node)
			if e.To == target {
				return true
			}
		}
	}

	return false
}
