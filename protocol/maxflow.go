package protocol

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/flowmatch/builder"
	"github.com/katalvlaran/flowmatch/core"
	"github.com/katalvlaran/flowmatch/flow"
)

// FlowProblem is a max-flow request with 1-indexed node ids.
type FlowProblem struct {
	V, Source, Sink int
	Edges           []builder.EdgeSpec
}

// FlowLine is one positive-flow edge of a FlowSolution, 1-indexed.
type FlowLine struct {
	From, To int
	Flow     int64
}

// FlowSolution is a max-flow response with 1-indexed node ids.
type FlowSolution struct {
	V, Source, Sink int
	MaxFlow         int64
	Edges           []FlowLine
}

// ReadFlowProblem parses `V source sink E` followed by E `u v capacity` lines.
func ReadFlowProblem(r io.Reader) (FlowProblem, error) {
	t := newTokens(r)
	v, err := t.readSize("V")
	if err != nil {
		return FlowProblem{}, err
	}
	st, err := t.readInts("source", "sink")
	if err != nil {
		return FlowProblem{}, err
	}
	e, err := t.readCount("E")
	if err != nil {
		return FlowProblem{}, err
	}

	p := FlowProblem{V: v, Source: st[0], Sink: st[1], Edges: make([]builder.EdgeSpec, 0, min(e, maxPrealloc))}
	for i := 0; i < e; i++ {
		uv, err := t.readInts("u", "v")
		if err != nil {
			return FlowProblem{}, fmt.Errorf("edge #%d: %w", i+1, err)
		}
		c, err := t.readInt64("capacity")
		if err != nil {
			return FlowProblem{}, fmt.Errorf("edge #%d: %w", i+1, err)
		}
		p.Edges = append(p.Edges, builder.EdgeSpec{From: uv[0], To: uv[1], Capacity: c})
	}

	return p, nil
}

// WriteFlowProblem writes p with each edge on its own line.
func WriteFlowProblem(w io.Writer, p FlowProblem) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d %d %d\n", p.V, p.Source, p.Sink, len(p.Edges))
	for _, e := range p.Edges {
		fmt.Fprintf(&sb, "%d %d %d\n", e.From, e.To, e.Capacity)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// ReadFlowSolution parses a max-flow response.
func ReadFlowSolution(r io.Reader) (FlowSolution, error) {
	t := newTokens(r)
	v, err := t.readSize("V")
	if err != nil {
		return FlowSolution{}, err
	}
	st, err := t.readInts("source", "sink")
	if err != nil {
		return FlowSolution{}, err
	}
	total, err := t.readInt64("max_flow")
	if err != nil {
		return FlowSolution{}, err
	}
	n, err := t.readCount("edge_count")
	if err != nil {
		return FlowSolution{}, err
	}

	s := FlowSolution{V: v, Source: st[0], Sink: st[1], MaxFlow: total, Edges: make([]FlowLine, 0, min(n, maxPrealloc))}
	for i := 0; i < n; i++ {
		uv, err := t.readInts("u", "v")
		if err != nil {
			return FlowSolution{}, fmt.Errorf("edge #%d: %w", i+1, err)
		}
		f, err := t.readInt64("flow")
		if err != nil {
			return FlowSolution{}, fmt.Errorf("edge #%d: %w", i+1, err)
		}
		s.Edges = append(s.Edges, FlowLine{From: uv[0], To: uv[1], Flow: f})
	}

	return s, nil
}

// WriteFlowSolution writes s in the max-flow response format.
func WriteFlowSolution(w io.Writer, s FlowSolution) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n%d %d %d\n%d\n", s.V, s.Source, s.Sink, s.MaxFlow, len(s.Edges))
	for _, e := range s.Edges {
		fmt.Fprintf(&sb, "%d %d %d\n", e.From, e.To, e.Flow)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Network builds the 0-indexed residual graph for p.
func (p FlowProblem) Network(gopts ...core.GraphOption) (*core.ResidualGraph, error) {
	specs := make([]builder.EdgeSpec, len(p.Edges))
	for i, e := range p.Edges {
		specs[i] = builder.EdgeSpec{From: e.From - 1, To: e.To - 1, Capacity: e.Capacity}
	}
	return builder.FromEdges(p.V, specs, gopts...)
}

// SolveFlow solves p and returns the 1-indexed solution together with the
// solved network.
func SolveFlow(p FlowProblem, gopts []core.GraphOption, fopts ...flow.Option) (FlowSolution, *core.ResidualGraph, error) {
	g, err := p.Network(gopts...)
	if err != nil {
		return FlowSolution{}, nil, fmt.Errorf("protocol: %w", err)
	}
	res, err := flow.EdmondsKarp(g, p.Source-1, p.Sink-1, fopts...)
	if err != nil {
		return FlowSolution{}, nil, fmt.Errorf("protocol: %w", err)
	}

	return NewFlowSolution(p.V, res), g, nil
}

// NewFlowSolution converts an engine result into the 1-indexed response.
func NewFlowSolution(v int, res *flow.Result) FlowSolution {
	s := FlowSolution{
		V:       v,
		Source:  res.Source + 1,
		Sink:    res.Sink + 1,
		MaxFlow: res.TotalFlow,
		Edges:   make([]FlowLine, 0, len(res.Edges)),
	}
	for _, e := range res.Edges {
		s.Edges = append(s.Edges, FlowLine{From: e.From + 1, To: e.To + 1, Flow: e.Flow})
	}
	return s
}
