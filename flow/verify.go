package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flowmatch/bfs"
	"github.com/katalvlaran/flowmatch/core"
)

// Verify runs sanity checks against a graph whose flow has been computed:
//
//   - every edge has residual ≥ 0 and a partner carrying the negated flow;
//   - inflow equals outflow at every node other than source and sink;
//   - the source's net outflow equals total;
//   - no augmenting path remains;
//   - the residual min-cut capacity equals total.
//
// Failures wrap ErrVerification.
func Verify(g *core.ResidualGraph, source, sink int, total int64) error {
	if g == nil {
		return bfs.ErrGraphNil
	}
	if !g.HasNode(source) || !g.HasNode(sink) {
		return fmt.Errorf("flow: verify: %w", core.ErrInvalidNodeID)
	}

	net := make([]int64, g.NodeCount())
	for _, ref := range g.Edges() {
		if ref.Residual() < 0 {
			return fmt.Errorf("%w: flow %d exceeds capacity %d on edge %d→%d",
				ErrVerification, ref.Flow, ref.Capacity, ref.From, ref.To)
		}
		back, ok := g.FindEdge(ref.To, ref.From)
		if !ok {
			return fmt.Errorf("%w: edge %d→%d has no reverse edge", ErrVerification, ref.From, ref.To)
		}
		if ref.From != ref.To && back.Flow != -ref.Flow {
			return fmt.Errorf("%w: flow(%d→%d)=%d but flow(%d→%d)=%d",
				ErrVerification, ref.From, ref.To, ref.Flow, ref.To, ref.From, back.Flow)
		}
		net[ref.From] += ref.Flow
	}

	if source == sink {
		return checkTotal(total, 0)
	}
	for v, diff := range net {
		if v != source && v != sink && diff != 0 {
			return fmt.Errorf("%w: node %d does not have its inflow equal to its outflow", ErrVerification, v)
		}
	}
	if err := checkTotal(total, net[source]); err != nil {
		return err
	}

	if _, err := bfs.FindPath(g, source, sink); !errors.Is(err, bfs.ErrPathNotFound) {
		return fmt.Errorf("%w: an augmenting path remains; flow is not maximum", ErrVerification)
	}
	cut, err := MinCut(g, source)
	if err != nil {
		return err
	}
	if cut.Capacity != total {
		return fmt.Errorf("%w: min-cut capacity %d differs from flow %d", ErrVerification, cut.Capacity, total)
	}

	return nil
}

func checkTotal(total, outflow int64) error {
	if total != outflow {
		return fmt.Errorf("%w: reported flow %d but source emits %d", ErrVerification, total, outflow)
	}
	return nil
}
