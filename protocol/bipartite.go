package protocol

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/flowmatch/builder"
	"github.com/katalvlaran/flowmatch/core"
	"github.com/katalvlaran/flowmatch/matching"
)

// MatchingProblem is a bipartite matching request. Pairs hold {a, b} with a in
// 1..X and b in 1..Y.
type MatchingProblem struct {
	X, Y  int
	Pairs [][2]int
}

// MatchingSolution is a bipartite matching response in network ids.
type MatchingSolution struct {
	X, Y  int
	Pairs []matching.Pair
}

// ReadMatchingProblem parses `X Y E` followed by E `a b` lines.
func ReadMatchingProblem(r io.Reader) (MatchingProblem, error) {
	t := newTokens(r)
	x, err := t.readSize("X")
	if err != nil {
		return MatchingProblem{}, err
	}
	y, err := t.readSize("Y")
	if err != nil {
		return MatchingProblem{}, err
	}
	if x+y+2 > core.MaxNodes {
		return MatchingProblem{}, fmt.Errorf("X=%d Y=%d exceeds %d network nodes: %w", x, y, core.MaxNodes, ErrMalformedInput)
	}
	e, err := t.readCount("E")
	if err != nil {
		return MatchingProblem{}, err
	}

	p := MatchingProblem{X: x, Y: y, Pairs: make([][2]int, 0, min(e, maxPrealloc))}
	for i := 0; i < e; i++ {
		ab, err := t.readInts("a", "b")
		if err != nil {
			return MatchingProblem{}, fmt.Errorf("edge #%d: %w", i+1, err)
		}
		p.Pairs = append(p.Pairs, [2]int{ab[0], ab[1]})
	}

	return p, nil
}

// WriteMatchingProblem writes p with each pair on its own line.
func WriteMatchingProblem(w io.Writer, p MatchingProblem) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d %d\n", p.X, p.Y, len(p.Pairs))
	for _, ab := range p.Pairs {
		fmt.Fprintf(&sb, "%d %d\n", ab[0], ab[1])
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// ReadMatchingSolution parses a matching response.
func ReadMatchingSolution(r io.Reader) (MatchingSolution, error) {
	t := newTokens(r)
	x, err := t.readSize("X")
	if err != nil {
		return MatchingSolution{}, err
	}
	y, err := t.readSize("Y")
	if err != nil {
		return MatchingSolution{}, err
	}
	if x+y+2 > core.MaxNodes {
		return MatchingSolution{}, fmt.Errorf("X=%d Y=%d exceeds %d network nodes: %w", x, y, core.MaxNodes, ErrMalformedInput)
	}
	n, err := t.readCount("matching_size")
	if err != nil {
		return MatchingSolution{}, err
	}

	s := MatchingSolution{X: x, Y: y, Pairs: make([]matching.Pair, 0, min(n, maxPrealloc))}
	for i := 0; i < n; i++ {
		uv, err := t.readInts("u", "v")
		if err != nil {
			return MatchingSolution{}, fmt.Errorf("pair #%d: %w", i+1, err)
		}
		s.Pairs = append(s.Pairs, matching.Pair{U: uv[0], V: uv[1]})
	}

	return s, nil
}

// WriteMatchingSolution writes s in the matching response format.
func WriteMatchingSolution(w io.Writer, s MatchingSolution) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d\n%d\n", s.X, s.Y, len(s.Pairs))
	for _, p := range s.Pairs {
		fmt.Fprintf(&sb, "%d %d\n", p.U, p.V)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// SolveMatching solves p and returns the solution with the solved network.
func SolveMatching(p MatchingProblem, opts ...matching.Option) (MatchingSolution, *core.ResidualGraph, error) {
	res, g, err := matching.MaxMatching(p.X, p.Y, p.Pairs, opts...)
	if err != nil {
		return MatchingSolution{}, nil, fmt.Errorf("protocol: %w", err)
	}
	return MatchingSolution{X: p.X, Y: p.Y, Pairs: res.Pairs}, g, nil
}

// ToFlowProblem reduces p to a 1-indexed max-flow problem: source 1, left
// 2..X+1, right X+2..X+Y+1, sink X+Y+2, every capacity 1. Edges are emitted
// source fan first, then the pairs in input order, then the sink fan.
func ToFlowProblem(p MatchingProblem) FlowProblem {
	v := p.X + p.Y + 2
	fp := FlowProblem{V: v, Source: 1, Sink: v, Edges: make([]builder.EdgeSpec, 0, min(p.X+p.Y+len(p.Pairs), maxPrealloc))}
	for a := 1; a <= p.X; a++ {
		fp.Edges = append(fp.Edges, builder.EdgeSpec{From: 1, To: a + 1, Capacity: 1})
	}
	for _, ab := range p.Pairs {
		fp.Edges = append(fp.Edges, builder.EdgeSpec{From: ab[0] + 1, To: p.X + ab[1] + 1, Capacity: 1})
	}
	for b := 1; b <= p.Y; b++ {
		fp.Edges = append(fp.Edges, builder.EdgeSpec{From: p.X + b + 1, To: v, Capacity: 1})
	}
	return fp
}

// ToMatchingSolution recovers a matching from a max-flow solution produced for
// ToFlowProblem: edges touching the source or sink are dropped, unit-flow edges
// are shifted down by one and ordered smaller id first.
func ToMatchingSolution(x, y int, s FlowSolution) (MatchingSolution, error) {
	if s.V != x+y+2 {
		return MatchingSolution{}, fmt.Errorf("flow network has %d nodes, want %d for X=%d Y=%d: %w",
			s.V, x+y+2, x, y, ErrMalformedInput)
	}
	l := builder.Layout{Left: x, Right: y}

	out := MatchingSolution{X: x, Y: y}
	for _, e := range s.Edges {
		if e.From == s.Source || e.From == s.Sink || e.To == s.Source || e.To == s.Sink || e.Flow != 1 {
			continue
		}
		u, v := e.From-1, e.To-1
		if !l.IsInterior(u) || !l.IsInterior(v) {
			return MatchingSolution{}, fmt.Errorf("edge %d %d: %w", e.From, e.To, core.ErrInvalidNodeID)
		}
		if u > v {
			u, v = v, u
		}
		out.Pairs = append(out.Pairs, matching.Pair{U: u, V: v})
	}
	return out, nil
}
