// SPDX-License-Identifier: MIT

// Package builder assembles paired core.ResidualGraph networks from edge lists
// and from bipartite matching instances.
//
// A build runs in two phases, mirroring the residual graph's lifecycle:
//
//  1. Constructors append edges in a fixed, documented order.
//  2. core.ResidualGraph.EnsureReverseEdges pairs every edge.
//
// Because breadth-first tie-breaking follows insertion order, the constructor
// order is part of each function's contract: the same inputs always produce
// the same graph and therefore the same augmenting paths.
//
// Constructors:
//
//	Edges(specs)              – each EdgeSpec in slice order.
//	SourceFan(layout)         – source→left_1 … source→left_X, capacity 1.
//	Matches(layout, pairs)    – left_a→right_b for each pair, capacity 1.
//	CompleteBipartite(layout) – every left→right pair, capacity 1.
//	SinkFan(layout)           – right_1→sink … right_Y→sink, capacity 1.
//
// Entry points:
//
//	BuildNetwork(v, gopts, cons...)   – generic orchestrator.
//	FromEdges(v, specs, gopts...)     – plain max-flow networks.
//	Bipartite(x, y, pairs, gopts...)  – the matching reduction network.
//
// Errors from core (ErrInvalidNodeID, ErrInvalidCapacity, ErrDuplicateEdge,
// ErrInvalidSize) are wrapped with the constructor name; no graph is returned
// on error.
package builder
