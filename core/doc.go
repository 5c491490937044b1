// Package core defines the ResidualGraph, the mutable network every flow
// computation in flowmatch runs on.
//
// A ResidualGraph G = (V,E) has a fixed node count V chosen at construction;
// nodes are the integers 0..V-1 and carry no attributes. Each directed Edge
// stores its destination, its capacity and its current flow; the residual
// capacity is derived as Capacity - Flow.
//
// Lifecycle:
//
//	g, _ := core.NewResidualGraph(4)     // construction phase
//	g.AddEdge(0, 1, 3)                    // append u→v, flow 0
//	g.EnsureReverseEdges()                // pair every edge with v→u (capacity 0 if new)
//	g.PushFlow(0, 1, 2)                   // solving phase: flow(0→1)=2, flow(1→0)=-2
//
// Invariants maintained once EnsureReverseEdges has run:
//
//   - every edge u→v has a partner v→u;
//   - flow(u→v) == -flow(v→u);
//   - 0 ≤ residual(u→v) for every edge.
//
// Configuration Options (GraphOption):
//
//	– WithParallelEdges(policy)
//	    ParallelAggregate (default): a repeated AddEdge(u,v,c) adds c to the
//	    existing u→v edge.
//	    ParallelReject: a repeated AddEdge(u,v,c) returns ErrDuplicateEdge.
//
// Either way at most one edge exists per ordered pair, so FindEdge is exact.
//
// Edge lookup is O(1): besides the insertion-ordered adjacency slices the graph
// keeps, per node, an index from neighbor id to edge handle. Neighbors always
// reports insertion order, which is what breadth-first tie-breaking depends on.
//
// A ResidualGraph is not safe for concurrent use. One solve owns one graph;
// use Clone to run a second, independent solve.
//
// Errors:
//
//	ErrInvalidSize       - node count negative or above MaxNodes.
//	ErrInvalidNodeID     - node id outside [0, V).
//	ErrInvalidCapacity   - negative capacity.
//	ErrDuplicateEdge     - parallel edge under ParallelReject.
//	ErrEdgeNotFound      - PushFlow on a missing edge or missing partner.
//	ErrCapacityExceeded  - PushFlow beyond residual capacity (or negative amount).
//	ErrCapacityOverflow  - aggregated parallel capacity beyond math.MaxInt64.
package core
