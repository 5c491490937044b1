package matching

import (
	"fmt"

	"github.com/katalvlaran/flowmatch/builder"
	"github.com/katalvlaran/flowmatch/core"
	"github.com/katalvlaran/flowmatch/flow"
)

// Pair is a matched edge in network ids, U < V.
type Pair struct {
	U, V int
}

// Result is a maximum matching.
type Result struct {
	Left, Right int
	Pairs       []Pair
	TotalFlow   int64

	// Flow is the underlying solve, kept for logging and rendering.
	Flow *flow.Result
}

// Size returns the number of matched pairs.
func (r *Result) Size() int { return len(r.Pairs) }

// Options configures MaxMatching.
type Options struct {
	Graph []core.GraphOption
	Flow  []flow.Option
}

// Option configures MaxMatching via functional arguments.
type Option func(*Options)

// WithGraphOptions forwards options to the reduction network.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *Options) { o.Graph = append(o.Graph, opts...) }
}

// WithFlowOptions forwards options to the flow engine.
func WithFlowOptions(opts ...flow.Option) Option {
	return func(o *Options) { o.Flow = append(o.Flow, opts...) }
}

// MaxMatching solves the instance and extracts the matching. It also returns
// the solved network so callers can inspect or render it.
func MaxMatching(left, right int, pairs [][2]int, opts ...Option) (*Result, *core.ResidualGraph, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	g, l, err := builder.Bipartite(left, right, pairs, o.Graph...)
	if err != nil {
		return nil, nil, fmt.Errorf("matching: %w", err)
	}
	fr, err := flow.EdmondsKarp(g, l.Source(), l.Sink(), o.Flow...)
	if err != nil {
		return nil, nil, fmt.Errorf("matching: %w", err)
	}

	res := &Result{
		Left:      left,
		Right:     right,
		Pairs:     Extract(l, fr.Edges),
		TotalFlow: fr.TotalFlow,
		Flow:      fr,
	}
	if int64(res.Size()) != res.TotalFlow {
		return nil, nil, fmt.Errorf("matching: %d pairs for flow %d: %w",
			res.Size(), res.TotalFlow, flow.ErrVerification)
	}

	return res, g, nil
}

// Extract picks the unit-flow edges between interior nodes of l.
func Extract(l builder.Layout, edges []flow.FlowEdge) []Pair {
	var out []Pair
	for _, e := range edges {
		if e.Flow != 1 || !l.IsInterior(e.From) || !l.IsInterior(e.To) {
			continue
		}
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		out = append(out, Pair{U: u, V: v})
	}
	return out
}
