// SPDX-License-Identifier: MIT
// Package: flowmatch/builder
//
// impl_bipartite.go — the source/sink reduction network for bipartite matching.
//
// Contract:
//   • Node 0 is the source, 1..X the left side, X+1..X+Y the right side,
//     X+Y+1 the sink; V = X+Y+2.
//   • Emission order: source→left (ascending), left→right (input order),
//     right→sink (ascending); then reverse edges.
//   • Every capacity is 1.
//   • Pair endpoints are 1-indexed within their own side.
//
// Complexity:
//   • Time: O(X + Y + E).

package builder

import (
	"fmt"

	"github.com/katalvlaran/flowmatch/core"
)

const unitCapacity = 1

// Layout maps bipartite sides onto network node ids.
type Layout struct {
	Left, Right int
}

// NewLayout validates the side sizes.
func NewLayout(left, right int) (Layout, error) {
	if left < 0 || right < 0 || left > core.MaxNodes || right > core.MaxNodes || left+right+2 > core.MaxNodes {
		return Layout{}, fmt.Errorf("NewLayout: left=%d, right=%d: %w", left, right, core.ErrInvalidSize)
	}
	return Layout{Left: left, Right: right}, nil
}

// NodeCount returns X+Y+2.
func (l Layout) NodeCount() int { return l.Left + l.Right + 2 }

// Source returns the source node id (0).
func (l Layout) Source() int { return 0 }

// Sink returns the sink node id (X+Y+1).
func (l Layout) Sink() int { return l.Left + l.Right + 1 }

// LeftNode maps a 1-indexed left vertex to its node id.
func (l Layout) LeftNode(a int) (int, error) {
	if a < 1 || a > l.Left {
		return 0, fmt.Errorf("left vertex %d not in [1,%d]: %w", a, l.Left, core.ErrInvalidNodeID)
	}
	return a, nil
}

// RightNode maps a 1-indexed right vertex to its node id.
func (l Layout) RightNode(b int) (int, error) {
	if b < 1 || b > l.Right {
		return 0, fmt.Errorf("right vertex %d not in [1,%d]: %w", b, l.Right, core.ErrInvalidNodeID)
	}
	return l.Left + b, nil
}

// IsInterior reports whether n lies strictly between source and sink.
func (l Layout) IsInterior(n int) bool { return n > l.Source() && n < l.Sink() }

// SourceFan adds source→left edges in ascending order.
func SourceFan(l Layout) Constructor {
	return func(g *core.ResidualGraph) error {
		for a := 1; a <= l.Left; a++ {
			if err := g.AddEdge(l.Source(), a, unitCapacity); err != nil {
				return fmt.Errorf("SourceFan: %w", err)
			}
		}
		return nil
	}
}

// SinkFan adds right→sink edges in ascending order.
func SinkFan(l Layout) Constructor {
	return func(g *core.ResidualGraph) error {
		for b := 1; b <= l.Right; b++ {
			if err := g.AddEdge(l.Left+b, l.Sink(), unitCapacity); err != nil {
				return fmt.Errorf("SinkFan: %w", err)
			}
		}
		return nil
	}
}

// Matches adds one left→right edge per pair, in input order. Each pair is
// {a, b} with a in [1,X] and b in [1,Y].
func Matches(l Layout, pairs [][2]int) Constructor {
	return func(g *core.ResidualGraph) error {
		for i, p := range pairs {
			u, err := l.LeftNode(p[0])
			if err != nil {
				return fmt.Errorf("Matches: pair #%d: %w", i, err)
			}
			v, err := l.RightNode(p[1])
			if err != nil {
				return fmt.Errorf("Matches: pair #%d: %w", i, err)
			}
			if err := g.AddEdge(u, v, unitCapacity); err != nil {
				return fmt.Errorf("Matches: pair #%d: %w", i, err)
			}
		}
		return nil
	}
}

// CompleteBipartite adds every left→right edge, left ascending, then right
// ascending.
func CompleteBipartite(l Layout) Constructor {
	return func(g *core.ResidualGraph) error {
		for a := 1; a <= l.Left; a++ {
			for b := 1; b <= l.Right; b++ {
				if err := g.AddEdge(a, l.Left+b, unitCapacity); err != nil {
					return fmt.Errorf("CompleteBipartite: %w", err)
				}
			}
		}
		return nil
	}
}

// Bipartite builds the paired reduction network for a matching instance.
func Bipartite(left, right int, pairs [][2]int, gopts ...core.GraphOption) (*core.ResidualGraph, Layout, error) {
	l, err := NewLayout(left, right)
	if err != nil {
		return nil, Layout{}, fmt.Errorf("Bipartite: %w", err)
	}
	g, err := BuildNetwork(l.NodeCount(), gopts, SourceFan(l), Matches(l, pairs), SinkFan(l))
	if err != nil {
		return nil, Layout{}, fmt.Errorf("Bipartite: %w", err)
	}

	return g, l, nil
}
