package dfs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/flowmatch/core"
)

// ErrGraphNil is returned when a nil *core.ResidualGraph is passed in.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit is invoked on discovery (pre-order). An error aborts traversal.
	OnVisit func(node, depth int) error

	// OnExit is invoked after all descendants are explored (post-order).
	OnExit func(node int) error

	// MaxDepth, if non-negative, limits recursion depth. Default -1.
	MaxDepth int

	// FilterEdge decides whether edge from→e.To may be followed.
	// Nil follows every edge.
	FilterEdge func(from int, e *core.Edge) bool
}

// DefaultOptions returns background context, no hooks, no depth limit and
// no filter.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context checked before every node. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(node int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the start node.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterEdge restricts which edges are followed.
func WithFilterEdge(fn func(from int, e *core.Edge) bool) Option {
	return func(o *Options) { o.FilterEdge = fn }
}

// Result captures the outcome of a depth-first traversal. Slices are indexed
// by node id.
type Result struct {
	// Order records nodes in post-order.
	Order []int

	// Depth is the discovery depth, -1 for unvisited nodes.
	Depth []int

	// Parent is the discovering node, -1 for the start and unvisited nodes.
	Parent []int

	Visited []bool
}

// FlowPath is one source-to-sink path of a flow decomposition.
type FlowPath struct {
	Nodes []int
	Flow  int64
}

// String formats the path as "0→2→3 +4".
func (p FlowPath) String() string {
	parts := make([]string, len(p.Nodes))
	for i, n := range p.Nodes {
		parts[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("%s +%d", strings.Join(parts, "→"), p.Flow)
}
