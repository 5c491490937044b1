package bfs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for path search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrPathNotFound is returned when the sink is unreachable through
	// positive-residual edges.
	ErrPathNotFound = errors.New("bfs: no augmenting path")
)

// None marks a node without a BFS predecessor.
const None = -1

// Option configures FindPath and Reachable via functional arguments.
type Option func(*Options)

// Options holds traversal hooks. Zero hooks are no-ops.
type Options struct {
	// OnEnqueue is called when a node is discovered, with its hop distance
	// from the start.
	OnEnqueue func(node, depth int)

	// OnDequeue is called immediately before a node's edges are scanned.
	OnDequeue func(node, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Step is one edge of a path.
type Step struct {
	From, To int
}

// Path is an ordered source→sink sequence of steps.
type Path []Step

// Nodes returns the visited node sequence, source first.
func (p Path) Nodes() []int {
	if len(p) == 0 {
		return nil
	}
	out := make([]int, 0, len(p)+1)
	out = append(out, p[0].From)
	for _, s := range p {
		out = append(out, s.To)
	}
	return out
}

// String renders the path as "3→2→4→1".
func (p Path) String() string {
	nodes := p.Nodes()
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, "→")
}

// ParentMap maps each node id to its BFS predecessor, or None.
type ParentMap []int

// newParentMap returns a map of size v with every entry set to None.
func newParentMap(v int) ParentMap {
	p := make(ParentMap, v)
	for i := range p {
		p[i] = None
	}
	return p
}

// Path follows predecessors from sink back to source and returns the steps in
// source→sink order. Returns ErrPathNotFound if the chain does not lead back
// to source.
func (p ParentMap) Path(source, sink int) (Path, error) {
	if sink < 0 || sink >= len(p) || source < 0 || source >= len(p) {
		return nil, ErrPathNotFound
	}
	var rev Path
	for cur := sink; cur != source; {
		prev := p[cur]
		// A chain longer than V means a cycle; a None means a dead end.
		if prev == None || len(rev) >= len(p) {
			return nil, fmt.Errorf("%w: broken parent chain at node %d", ErrPathNotFound, cur)
		}
		rev = append(rev, Step{From: prev, To: cur})
		cur = prev
	}
	// reverse to get source → sink
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}
