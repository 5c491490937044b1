package flow

import (
	"github.com/katalvlaran/flowmatch/bfs"
	"github.com/katalvlaran/flowmatch/core"
)

// Cut is an s-t cut read off a solved residual graph.
type Cut struct {
	// SourceSide[v] is true when v is reachable from the source through
	// positive-residual edges.
	SourceSide []bool

	// Edges are the edges with positive original capacity leaving the
	// source side, in node then insertion order.
	Edges []FlowEdge

	// Capacity is the summed original capacity of Edges.
	Capacity int64
}

// MinCut returns the cut induced by residual reachability from source. After
// a complete solve its Capacity equals the maximum flow.
// Complexity: O(V + E).
func MinCut(g *core.ResidualGraph, source int) (*Cut, error) {
	side, err := bfs.Reachable(g, source)
	if err != nil {
		return nil, err
	}
	cut := &Cut{SourceSide: side}
	for u := range side {
		if !side[u] {
			continue
		}
		for _, e := range g.Neighbors(u) {
			if side[e.To] || e.Capacity <= 0 {
				continue
			}
			cut.Edges = append(cut.Edges, FlowEdge{From: u, To: e.To, Flow: e.Flow, Capacity: e.Capacity})
			cut.Capacity += e.Capacity
		}
	}

	return cut, nil
}
