package dfs

import (
	"fmt"

	"github.com/katalvlaran/flowmatch/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.ResidualGraph
	opts  Options
	res   *Result
}

// DFS performs depth-first search from start, following edges in insertion
// order. On a hook or context error the partial Result is returned with the
// error and Order cleared.
func DFS(g *core.ResidualGraph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("dfs: start %d: %w", start, core.ErrInvalidNodeID)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	v := g.NodeCount()
	res := &Result{
		Order:   make([]int, 0, v),
		Depth:   make([]int, v),
		Parent:  make([]int, v),
		Visited: make([]bool, v),
	}
	for i := 0; i < v; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	w := &walker{graph: g, opts: o, res: res}
	if err := w.traverse(start, 0); err != nil {
		res.Order = nil
		return res, err
	}
	return res, nil
}

// traverse visits node at depth and recurses into unvisited neighbors.
func (w *walker) traverse(node, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[node] = true
	w.res.Depth[node] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(node, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", node, err)
		}
	}

	for _, e := range w.graph.Neighbors(node) {
		if w.res.Visited[e.To] || (w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth) {
			continue
		}
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(node, e) {
			continue
		}
		w.res.Parent[e.To] = node
		if err := w.traverse(e.To, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(node); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", node, err)
		}
	}
	w.res.Order = append(w.res.Order, node)

	return nil
}
