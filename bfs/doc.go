// Package bfs finds augmenting paths in a core.ResidualGraph by breadth-first
// search over edges with strictly positive residual capacity.
//
// What
//
//   - FindPath explores from the source in non-decreasing hop count and stops
//     the moment the sink is first reached. It returns a ParentMap from which
//     ParentMap.Path rebuilds the source→sink Path.
//   - Reachable returns the set of nodes reachable from a node through
//     positive-residual edges; after a max-flow solve this is the source side
//     of a minimum cut.
//   - Hooks observe the traversal:
//   - OnEnqueue (a node is discovered and queued)
//   - OnDequeue (a node is about to have its edges scanned)
//
// Determinism
//
//	Edges are scanned in each node's insertion order (core.Neighbors), and a
//	node is enqueued only the first time it is reached. Among several shortest
//	augmenting paths the one reachable through earlier-inserted edges wins, so
//	identical graph construction yields identical paths.
//
// Complexity (V nodes, E edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, the visited set and the parent map.
//
// Usage
//
//	parent, err := bfs.FindPath(g, source, sink)
//	if errors.Is(err, bfs.ErrPathNotFound) {
//		// max flow reached
//	}
//	path, _ := parent.Path(source, sink)
package bfs
