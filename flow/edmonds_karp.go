package flow

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/flowmatch/bfs"
	"github.com/katalvlaran/flowmatch/core"
)

// Engine runs Edmonds–Karp solves. An Engine holds only configuration and may
// be reused; each Solve owns its graph exclusively for the duration of the call.
type Engine struct {
	opts Options
}

// NewEngine creates an Engine with the given options applied over DefaultOptions.
func NewEngine(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{opts: o}
}

// EdmondsKarp is shorthand for NewEngine(opts...).Solve(g, source, sink).
func EdmondsKarp(g *core.ResidualGraph, source, sink int, opts ...Option) (*Result, error) {
	return NewEngine(opts...).Solve(g, source, sink)
}

// Solve computes the maximum flow from source to sink, mutating g in place.
//
// Steps:
//  1. Validate g, source and sink.
//  2. Loop: bfs.FindPath; on ErrPathNotFound stop (DONE).
//  3. Rebuild the path from the parent map, take the minimum residual over its
//     steps as the bottleneck, push it along every step, add it to the total.
//  4. Collect edges with positive flow; optionally Verify.
//
// Complexity: O(V · E²) time; O(V + path) extra memory per iteration.
func (e *Engine) Solve(g *core.ResidualGraph, source, sink int) (*Result, error) {
	if g == nil {
		return nil, bfs.ErrGraphNil
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("flow: source %d: %w", source, core.ErrInvalidNodeID)
	}
	if !g.HasNode(sink) {
		return nil, fmt.Errorf("flow: sink %d: %w", sink, core.ErrInvalidNodeID)
	}

	res := &Result{RunID: uuid.NewString(), Source: source, Sink: sink}
	logger := e.opts.Logger.With("run", res.RunID)
	logger.Debug("solve started", "nodes", g.NodeCount(), "edges", g.EdgeCount(),
		"source", source, "sink", sink)

	for {
		e.transition(logger, StateSearching)
		parent, err := bfs.FindPath(g, source, sink)
		if errors.Is(err, bfs.ErrPathNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}

		e.transition(logger, StateAugmenting)
		aug, err := plan(g, parent, source, sink)
		if err != nil {
			return nil, err
		}
		if aug.Bottleneck > math.MaxInt64-res.TotalFlow {
			return nil, fmt.Errorf("flow: total %d + %d along %s: %w",
				res.TotalFlow, aug.Bottleneck, aug.Path, core.ErrCapacityOverflow)
		}
		if err := push(g, aug); err != nil {
			return nil, err
		}
		res.TotalFlow += aug.Bottleneck
		res.Augmentations = append(res.Augmentations, aug)
		logger.Debug("augmented", "path", aug.Path.String(),
			"bottleneck", aug.Bottleneck, "total", res.TotalFlow)
		e.opts.OnAugment(aug)
	}
	e.transition(logger, StateDone)

	for _, ref := range g.FlowEdges() {
		res.Edges = append(res.Edges, FlowEdge{
			From: ref.From, To: ref.To, Flow: ref.Flow, Capacity: ref.Capacity,
		})
	}

	if e.opts.Verify {
		if err := Verify(g, source, sink, res.TotalFlow); err != nil {
			return nil, err
		}
	}
	logger.Debug("solve finished", "max_flow", res.TotalFlow,
		"augmentations", len(res.Augmentations), "flow_edges", len(res.Edges))

	return res, nil
}

func (e *Engine) transition(l *log.Logger, s State) {
	l.Debug("state", "state", s)
	e.opts.OnState(s)
}

// plan reconstructs the path and computes its bottleneck without mutating g.
func plan(g *core.ResidualGraph, parent bfs.ParentMap, source, sink int) (Augmentation, error) {
	path, err := parent.Path(source, sink)
	if err != nil {
		return Augmentation{}, err
	}
	bottleneck, err := Bottleneck(g, path)
	if err != nil {
		return Augmentation{}, err
	}
	return Augmentation{Path: path, Bottleneck: bottleneck}, nil
}

// push applies a planned augmentation. Bottleneck has already checked every
// step and its reverse edge, so PushFlow cannot stop halfway.
func push(g *core.ResidualGraph, aug Augmentation) error {
	for _, s := range aug.Path {
		if err := g.PushFlow(s.From, s.To, aug.Bottleneck); err != nil {
			return fmt.Errorf("flow: push along %s: %w", aug.Path, err)
		}
	}
	return nil
}

// Bottleneck returns the minimum residual capacity over the steps of path,
// looking each step up in g. An empty path has no bottleneck and yields 0.
// A step whose forward or reverse edge is missing yields ErrEdgeNotFound.
func Bottleneck(g *core.ResidualGraph, path bfs.Path) (int64, error) {
	if len(path) == 0 {
		return 0, nil
	}
	minCap := int64(math.MaxInt64)
	for _, s := range path {
		edge, ok := g.FindEdge(s.From, s.To)
		if !ok {
			return 0, &core.EdgeError{From: s.From, To: s.To, Err: core.ErrEdgeNotFound}
		}
		if _, ok := g.FindEdge(s.To, s.From); !ok {
			return 0, &core.EdgeError{From: s.To, To: s.From, Err: core.ErrEdgeNotFound}
		}
		minCap = min(minCap, edge.Residual())
	}
	return minCap, nil
}
