// Package dfs implements depth-first search over a core.ResidualGraph and
// uses it to decompose a solved flow into source-to-sink paths.
//
// What:
//
//   - DFS: explores as far as possible along each edge before backtracking.
//     Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Edge filtering (e.g. only edges with positive flow)
//   - Decompose: splits the flow on a solved network into paths, each
//     carrying the minimum remaining flow along it. Flow on directed cycles
//     that reach neither terminal is not part of any path and is left out.
//
// Complexity:
//
//   - DFS:       Time O(V+E), Memory O(V)
//   - Decompose: Time O(P·(V+E)) for P paths, P ≤ number of flow edges
//
// Errors:
//
//   - ErrGraphNil            graph pointer is nil
//   - core.ErrInvalidNodeID  start, source or sink out of range
//   - context.Canceled       DFS canceled via context
//   - hook errors            propagated from OnVisit or OnExit
//
// Functions:
//
//   - DFS(g, start, opts...) (*Result, error)
//   - Decompose(g, source, sink, opts...) ([]FlowPath, error)
//   - DefaultOptions(), WithContext(), WithOnVisit(), WithOnExit(),
//     WithMaxDepth(), WithFilterEdge()
package dfs
