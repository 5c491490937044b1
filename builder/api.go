// SPDX-License-Identifier: MIT
// Package: flowmatch/builder
//
// api.go - public entry points for the builder package.
//
// Contract:
//   - One orchestrator: BuildNetwork(v, gopts, cons...). Creates g, runs cons in
//     order, pairs reverse edges.
//   - Determinism: same inputs and constructor order ⇒ identical graphs.
//   - Safety: never panic; return wrapped core sentinels.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flowmatch/core"
)

// ErrConstructFailed indicates a nil constructor was passed to BuildNetwork.
var ErrConstructFailed = errors.New("builder: construction failed")

// Constructor appends edges to g in a deterministic order.
type Constructor func(g *core.ResidualGraph) error

// EdgeSpec describes one directed input edge.
type EdgeSpec struct {
	From, To int
	Capacity int64
}

// BuildNetwork creates a graph with v nodes, applies constructors in order and
// then pairs every edge with its reverse. Any error aborts the build.
//
// Complexity: O(V + E).
func BuildNetwork(v int, gopts []core.GraphOption, cons ...Constructor) (*core.ResidualGraph, error) {
	g, err := core.NewResidualGraph(v, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}
	g.EnsureReverseEdges()

	return g, nil
}

// FromEdges builds a paired network with v nodes from an edge list.
func FromEdges(v int, specs []EdgeSpec, gopts ...core.GraphOption) (*core.ResidualGraph, error) {
	return BuildNetwork(v, gopts, Edges(specs))
}

// Edges returns a Constructor adding each EdgeSpec in slice order.
func Edges(specs []EdgeSpec) Constructor {
	return func(g *core.ResidualGraph) error {
		for i, s := range specs {
			if err := g.AddEdge(s.From, s.To, s.Capacity); err != nil {
				return fmt.Errorf("Edges: edge #%d: %w", i, err)
			}
		}
		return nil
	}
}
