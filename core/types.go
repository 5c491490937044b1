package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for residual graph operations.
var (
	// ErrInvalidSize indicates a node count outside [0, MaxNodes].
	ErrInvalidSize = errors.New("core: invalid node count")

	// ErrInvalidNodeID indicates an edge or query referenced a node outside [0, V).
	ErrInvalidNodeID = errors.New("core: node id out of range")

	// ErrInvalidCapacity indicates a negative edge capacity.
	ErrInvalidCapacity = errors.New("core: negative capacity")

	// ErrDuplicateEdge indicates a parallel edge was added under ParallelReject.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrCapacityExceeded indicates a push that would violate 0 ≤ residual.
	ErrCapacityExceeded = errors.New("core: capacity exceeded")

	// ErrCapacityOverflow indicates aggregated capacity or flow beyond math.MaxInt64.
	ErrCapacityOverflow = errors.New("core: capacity overflows int64")
)

// MaxNodes bounds the node count accepted by NewResidualGraph.
const MaxNodes = 1 << 24

// EdgeError describes a rejected edge. It unwraps to the sentinel that
// classifies the failure, so callers branch with errors.Is.
type EdgeError struct {
	From, To int
	Cap      int64
	Err      error
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("%v: edge %d→%d (capacity %d)", e.Err, e.From, e.To, e.Cap)
}

// Unwrap returns the classifying sentinel.
func (e *EdgeError) Unwrap() error { return e.Err }

// Edge is a directed residual edge. It belongs to exactly one source node's
// adjacency list; the source is implied by that list.
type Edge struct {
	// To is the destination node id.
	To int

	// Capacity is the original capacity (0 for a pure reverse edge).
	Capacity int64

	// Flow is the current flow; negative on the partner of a loaded edge.
	Flow int64
}

// Residual returns Capacity - Flow.
func (e *Edge) Residual() int64 { return e.Capacity - e.Flow }

// EdgeRef pairs an edge handle with the node it leaves.
type EdgeRef struct {
	From int
	*Edge
}

// ParallelPolicy decides what AddEdge does with a second u→v edge.
type ParallelPolicy int

const (
	// ParallelAggregate sums the capacities of parallel edges into the first one.
	ParallelAggregate ParallelPolicy = iota

	// ParallelReject refuses parallel edges with ErrDuplicateEdge.
	ParallelReject
)

// String returns the policy name as used in configuration files.
func (p ParallelPolicy) String() string {
	switch p {
	case ParallelAggregate:
		return "aggregate"
	case ParallelReject:
		return "reject"
	default:
		return fmt.Sprintf("ParallelPolicy(%d)", int(p))
	}
}

// ParseParallelPolicy maps "aggregate" or "reject" to a policy.
func ParseParallelPolicy(s string) (ParallelPolicy, error) {
	switch s {
	case "aggregate", "":
		return ParallelAggregate, nil
	case "reject":
		return ParallelReject, nil
	default:
		return 0, fmt.Errorf("core: unknown parallel edge policy %q", s)
	}
}

// GraphOption configures a ResidualGraph before creation.
type GraphOption func(g *ResidualGraph)

// WithParallelEdges selects how repeated u→v edges are handled.
func WithParallelEdges(p ParallelPolicy) GraphOption {
	return func(g *ResidualGraph) { g.parallel = p }
}

// ResidualGraph is an adjacency-list network with paired forward/backward edges.
//
// adj[u] holds u's outgoing edges in insertion order; index[u][v] points at the
// single u→v edge. Both reference the same *Edge.
type ResidualGraph struct {
	parallel ParallelPolicy

	adj   [][]*Edge
	index []map[int]*Edge
	edges int
}

// NewResidualGraph creates a graph with v nodes and no edges.
// Complexity: O(V).
func NewResidualGraph(v int, opts ...GraphOption) (*ResidualGraph, error) {
	if v < 0 || v > MaxNodes {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, v)
	}
	g := &ResidualGraph{
		adj:   make([][]*Edge, v),
		index: make([]map[int]*Edge, v),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
