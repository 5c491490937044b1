// Package flow computes maximum flows on a core.ResidualGraph with the
// Edmonds–Karp algorithm and checks the result against the max-flow/min-cut
// theorem.
//
// # Algorithm
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search (package bfs) for the shortest (fewest-edge)
//     augmenting path; push the path's bottleneck; repeat until no path exists.
//
//   - Time:   O(V · E²).
//
//   - Memory: O(V) per search, on top of the graph itself.
//
// Each solve walks the state machine
//
//	SEARCHING → AUGMENTING → SEARCHING → … → DONE
//
// and stops only when the sink is unreachable in the residual graph. The
// reachable set at that point is the source side of a minimum cut, so the
// reported total equals the cut capacity.
//
// # API
//
//	e := flow.NewEngine(flow.WithLogger(logger), flow.WithVerify(true))
//	res, err := e.Solve(g, source, sink)
//
//	// or, with default options:
//	res, err := flow.EdmondsKarp(g, source, sink)
//
// The graph must have been paired with core.ResidualGraph.EnsureReverseEdges
// (package builder does this). Solve mutates g in place: after it returns, the
// edges carry the final flow and res.Edges lists every edge with Flow > 0.
//
// Determinism: with identical construction order, two solves yield identical
// augmentation sequences, flows and totals.
//
// # Errors
//
//	core.ErrInvalidNodeID - source or sink outside [0, V).
//	bfs.ErrGraphNil       - nil graph.
//	core.ErrEdgeNotFound  - a path step lacks its reverse edge (graph not paired).
//	ErrVerification       - WithVerify(true) and a sanity check failed.
//
// Well-formed input never fails: a disconnected network yields a total of 0.
package flow
