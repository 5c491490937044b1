package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flowmatch/core"
)

// errReachedSink stops a search as soon as the sink is discovered.
var errReachedSink = errors.New("dfs: sink reached")

// Decompose splits the positive flow on g into source-to-sink paths.
//
// Each round runs DFS from source over edges with remaining flow, stops at
// the sink, peels off the minimum remaining flow along the found path and
// repeats until the sink is unreachable. Paths are found in insertion order,
// so the result is deterministic. The flows of the returned paths sum to the
// net outflow of source. Only Ctx and OnVisit of opts are honoured.
func Decompose(g *core.ResidualGraph, source, sink int, opts ...Option) ([]FlowPath, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(sink) {
		return nil, fmt.Errorf("dfs: sink %d: %w", sink, core.ErrInvalidNodeID)
	}
	if source == sink {
		return nil, nil
	}

	remaining := make(map[*core.Edge]int64)
	for _, ref := range g.FlowEdges() {
		remaining[ref.Edge] = ref.Flow
	}

	user := DefaultOptions()
	for _, fn := range opts {
		fn(&user)
	}

	var paths []FlowPath
	for {
		res, err := DFS(g, source,
			WithContext(user.Ctx),
			WithFilterEdge(func(_ int, e *core.Edge) bool { return remaining[e] > 0 }),
			WithOnVisit(func(node, depth int) error {
				if user.OnVisit != nil {
					if err := user.OnVisit(node, depth); err != nil {
						return err
					}
				}
				if node == sink {
					return errReachedSink
				}
				return nil
			}))
		if err != nil && !errors.Is(err, errReachedSink) {
			return nil, err
		}
		if !res.Visited[sink] {
			return paths, nil
		}

		nodes := []int{sink}
		for n := sink; n != source; n = res.Parent[n] {
			nodes = append(nodes, res.Parent[n])
		}
		for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		}

		edges := make([]*core.Edge, len(nodes)-1)
		amount := int64(-1)
		for i := range edges {
			e, _ := g.FindEdge(nodes[i], nodes[i+1])
			edges[i] = e
			if amount < 0 || remaining[e] < amount {
				amount = remaining[e]
			}
		}
		for _, e := range edges {
			remaining[e] -= amount
		}
		paths = append(paths, FlowPath{Nodes: nodes, Flow: amount})
	}
}
