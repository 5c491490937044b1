// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
)

// NodeCount returns V.
func (g *ResidualGraph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of stored edges, reverse edges included.
func (g *ResidualGraph) EdgeCount() int { return g.edges }

// ParallelPolicy reports the policy the graph was built with.
func (g *ResidualGraph) ParallelPolicy() ParallelPolicy { return g.parallel }

// HasNode reports whether id lies in [0, V).
func (g *ResidualGraph) HasNode(id int) bool { return id >= 0 && id < len(g.adj) }

// AddEdge appends u→v with the given capacity and zero flow.
//
// A second u→v edge is folded into the first (ParallelAggregate) or refused
// with ErrDuplicateEdge (ParallelReject). Errors are *EdgeError values wrapping
// ErrInvalidNodeID, ErrInvalidCapacity, ErrDuplicateEdge or ErrCapacityOverflow
// (aggregated capacity beyond math.MaxInt64); the graph is left unchanged on error.
// Complexity: O(1) amortized.
func (g *ResidualGraph) AddEdge(u, v int, capacity int64) error {
	if !g.HasNode(u) || !g.HasNode(v) {
		return &EdgeError{From: u, To: v, Cap: capacity, Err: ErrInvalidNodeID}
	}
	if capacity < 0 {
		return &EdgeError{From: u, To: v, Cap: capacity, Err: ErrInvalidCapacity}
	}
	if e, ok := g.index[u][v]; ok {
		if g.parallel == ParallelReject {
			return &EdgeError{From: u, To: v, Cap: capacity, Err: ErrDuplicateEdge}
		}
		if capacity > math.MaxInt64-e.Capacity {
			return &EdgeError{From: u, To: v, Cap: capacity, Err: ErrCapacityOverflow}
		}
		e.Capacity += capacity
		return nil
	}
	g.appendEdge(u, v, capacity)

	return nil
}

func (g *ResidualGraph) appendEdge(u, v int, capacity int64) *Edge {
	e := &Edge{To: v, Capacity: capacity}
	g.adj[u] = append(g.adj[u], e)
	if g.index[u] == nil {
		g.index[u] = make(map[int]*Edge)
	}
	g.index[u][v] = e
	g.edges++
	return e
}

// EnsureReverseEdge adds v→u with capacity 0 and flow 0 unless it exists.
// Complexity: O(1).
func (g *ResidualGraph) EnsureReverseEdge(u, v int) error {
	if !g.HasNode(u) || !g.HasNode(v) {
		return &EdgeError{From: u, To: v, Err: ErrInvalidNodeID}
	}
	if _, ok := g.index[v][u]; !ok {
		g.appendEdge(v, u, 0)
	}

	return nil
}

// EnsureReverseEdges pairs every edge present at call time with its reverse.
// Edges are visited in node order, then insertion order, so the reverse edges
// are appended deterministically. Must run before solving.
// Complexity: O(V + E).
func (g *ResidualGraph) EnsureReverseEdges() {
	for u := range g.adj {
		// Snapshot the length: reverse edges appended to adj[u] itself (self-loops
		// never add any) are already paired.
		n := len(g.adj[u])
		for i := 0; i < n; i++ {
			v := g.adj[u][i].To
			if _, ok := g.index[v][u]; !ok {
				g.appendEdge(v, u, 0)
			}
		}
	}
}

// FindEdge returns the u→v edge handle, if present.
// Complexity: O(1).
func (g *ResidualGraph) FindEdge(u, v int) (*Edge, bool) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return nil, false
	}
	e, ok := g.index[u][v]
	return e, ok
}

// Neighbors returns the edges leaving u in insertion order. The slice is the
// graph's own storage; callers must not append to it. Out-of-range u yields nil.
func (g *ResidualGraph) Neighbors(u int) []*Edge {
	if !g.HasNode(u) {
		return nil
	}
	return g.adj[u]
}

// PushFlow adds amount to flow(u→v) and sets flow(v→u) to its negation,
// keeping both residuals consistent.
//
// Returns ErrEdgeNotFound if either direction is missing, ErrCapacityExceeded
// if amount is negative, exceeds residual(u→v), or u == v. Nothing is mutated
// on error.
// Complexity: O(1).
func (g *ResidualGraph) PushFlow(u, v int, amount int64) error {
	fwd, ok := g.FindEdge(u, v)
	if !ok {
		return &EdgeError{From: u, To: v, Err: ErrEdgeNotFound}
	}
	back, ok := g.FindEdge(v, u)
	if !ok {
		return &EdgeError{From: v, To: u, Err: ErrEdgeNotFound}
	}
	if u == v || amount < 0 || amount > fwd.Residual() {
		return fmt.Errorf("%w: push %d on %d→%d with residual %d",
			ErrCapacityExceeded, amount, u, v, fwd.Residual())
	}
	fwd.Flow += amount
	back.Flow = -fwd.Flow

	return nil
}

// Edges returns every edge in node order, then insertion order.
func (g *ResidualGraph) Edges() []EdgeRef {
	out := make([]EdgeRef, 0, g.edges)
	for u, list := range g.adj {
		for _, e := range list {
			out = append(out, EdgeRef{From: u, Edge: e})
		}
	}
	return out
}

// FlowEdges returns the edges carrying strictly positive flow, in the same
// order as Edges.
func (g *ResidualGraph) FlowEdges() []EdgeRef {
	var out []EdgeRef
	for u, list := range g.adj {
		for _, e := range list {
			if e.Flow > 0 {
				out = append(out, EdgeRef{From: u, Edge: e})
			}
		}
	}
	return out
}
