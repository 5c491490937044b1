package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowmatch/core"
)

// ResidualGraphSuite groups construction and mutation tests.
type ResidualGraphSuite struct {
	suite.Suite
	g *core.ResidualGraph
}

func (s *ResidualGraphSuite) SetupTest() {
	g, err := core.NewResidualGraph(4)
	require.NoError(s.T(), err)
	s.g = g
}

func (s *ResidualGraphSuite) TestNegativeSize() {
	_, err := core.NewResidualGraph(-1)
	require.ErrorIs(s.T(), err, core.ErrInvalidSize)
}

// TestOversizedGraph: a node count beyond MaxNodes is refused before allocating.
func (s *ResidualGraphSuite) TestOversizedGraph() {
	_, err := core.NewResidualGraph(core.MaxNodes + 1)
	require.ErrorIs(s.T(), err, core.ErrInvalidSize)
	_, err = core.NewResidualGraph(math.MaxInt)
	require.ErrorIs(s.T(), err, core.ErrInvalidSize)
}

func (s *ResidualGraphSuite) TestEmptyGraph() {
	g, err := core.NewResidualGraph(0)
	require.NoError(s.T(), err)
	require.Zero(s.T(), g.NodeCount())
	require.Empty(s.T(), g.Edges())
}

func (s *ResidualGraphSuite) TestAddEdgeValidation() {
	err := s.g.AddEdge(0, 4, 1)
	require.ErrorIs(s.T(), err, core.ErrInvalidNodeID)

	err = s.g.AddEdge(-1, 2, 1)
	require.ErrorIs(s.T(), err, core.ErrInvalidNodeID)

	err = s.g.AddEdge(0, 1, -3)
	require.ErrorIs(s.T(), err, core.ErrInvalidCapacity)

	var ee *core.EdgeError
	require.True(s.T(), errors.As(err, &ee))
	require.Equal(s.T(), 0, ee.From)
	require.Equal(s.T(), 1, ee.To)
	require.Equal(s.T(), int64(-3), ee.Cap)

	require.Zero(s.T(), s.g.EdgeCount(), "rejected edges must not be stored")
}

func (s *ResidualGraphSuite) TestNeighborsInsertionOrder() {
	require.NoError(s.T(), s.g.AddEdge(0, 3, 1))
	require.NoError(s.T(), s.g.AddEdge(0, 1, 2))
	require.NoError(s.T(), s.g.AddEdge(0, 2, 3))

	var got []int
	for _, e := range s.g.Neighbors(0) {
		got = append(got, e.To)
	}
	require.Equal(s.T(), []int{3, 1, 2}, got)
	require.Nil(s.T(), s.g.Neighbors(9))
}

func (s *ResidualGraphSuite) TestEnsureReverseEdges() {
	require.NoError(s.T(), s.g.AddEdge(0, 1, 5))
	require.NoError(s.T(), s.g.AddEdge(1, 2, 4))
	require.NoError(s.T(), s.g.AddEdge(2, 1, 2)) // antiparallel original edge
	s.g.EnsureReverseEdges()

	back, ok := s.g.FindEdge(1, 0)
	require.True(s.T(), ok)
	require.Zero(s.T(), back.Capacity)

	// 2→1 already existed, so no zero-capacity duplicate is created.
	e, ok := s.g.FindEdge(2, 1)
	require.True(s.T(), ok)
	require.Equal(s.T(), int64(2), e.Capacity)
	require.Equal(s.T(), 4, s.g.EdgeCount())

	// Idempotent.
	s.g.EnsureReverseEdges()
	require.Equal(s.T(), 4, s.g.EdgeCount())
}

func (s *ResidualGraphSuite) TestEnsureReverseEdgeSingle() {
	require.NoError(s.T(), s.g.AddEdge(0, 1, 5))
	require.NoError(s.T(), s.g.EnsureReverseEdge(0, 1))
	require.NoError(s.T(), s.g.EnsureReverseEdge(0, 1))
	require.Equal(s.T(), 2, s.g.EdgeCount())
	require.ErrorIs(s.T(), s.g.EnsureReverseEdge(0, 7), core.ErrInvalidNodeID)
}

func (s *ResidualGraphSuite) TestPushFlowKeepsSkewSymmetry() {
	require.NoError(s.T(), s.g.AddEdge(0, 1, 5))
	s.g.EnsureReverseEdges()

	require.NoError(s.T(), s.g.PushFlow(0, 1, 3))
	fwd, _ := s.g.FindEdge(0, 1)
	back, _ := s.g.FindEdge(1, 0)
	require.Equal(s.T(), int64(3), fwd.Flow)
	require.Equal(s.T(), int64(-3), back.Flow)
	require.Equal(s.T(), int64(2), fwd.Residual())
	require.Equal(s.T(), int64(3), back.Residual())

	// Cancel part of the flow through the reverse edge.
	require.NoError(s.T(), s.g.PushFlow(1, 0, 2))
	require.Equal(s.T(), int64(1), fwd.Flow)
	require.Equal(s.T(), int64(-1), back.Flow)
}

func (s *ResidualGraphSuite) TestPushFlowErrors() {
	require.NoError(s.T(), s.g.AddEdge(0, 1, 5))
	require.ErrorIs(s.T(), s.g.PushFlow(0, 1, 1), core.ErrEdgeNotFound, "reverse edge missing")

	s.g.EnsureReverseEdges()
	require.ErrorIs(s.T(), s.g.PushFlow(2, 3, 1), core.ErrEdgeNotFound)
	require.ErrorIs(s.T(), s.g.PushFlow(0, 1, 6), core.ErrCapacityExceeded)
	require.ErrorIs(s.T(), s.g.PushFlow(0, 1, -1), core.ErrCapacityExceeded)

	fwd, _ := s.g.FindEdge(0, 1)
	require.Zero(s.T(), fwd.Flow, "failed pushes must not mutate")
}

func (s *ResidualGraphSuite) TestFlowEdges() {
	require.NoError(s.T(), s.g.AddEdge(0, 1, 5))
	require.NoError(s.T(), s.g.AddEdge(1, 2, 5))
	s.g.EnsureReverseEdges()
	require.NoError(s.T(), s.g.PushFlow(0, 1, 2))

	refs := s.g.FlowEdges()
	require.Len(s.T(), refs, 1)
	require.Equal(s.T(), 0, refs[0].From)
	require.Equal(s.T(), 1, refs[0].To)
	require.Equal(s.T(), int64(2), refs[0].Flow)
}

func (s *ResidualGraphSuite) TestCloneIsIndependent() {
	require.NoError(s.T(), s.g.AddEdge(0, 1, 5))
	s.g.EnsureReverseEdges()
	c := s.g.Clone()

	require.NoError(s.T(), c.PushFlow(0, 1, 5))
	orig, _ := s.g.FindEdge(0, 1)
	cp, _ := c.FindEdge(0, 1)
	require.Zero(s.T(), orig.Flow)
	require.Equal(s.T(), int64(5), cp.Flow)
	require.Equal(s.T(), s.g.EdgeCount(), c.EdgeCount())

	c.ResetFlow()
	require.Zero(s.T(), cp.Flow)
}

func TestResidualGraphSuite(t *testing.T) {
	suite.Run(t, new(ResidualGraphSuite))
}

// TestParallelEdges documents both parallel-edge policies.
func TestParallelEdges(t *testing.T) {
	agg, err := core.NewResidualGraph(2)
	require.NoError(t, err)
	require.NoError(t, agg.AddEdge(0, 1, 2))
	require.NoError(t, agg.AddEdge(0, 1, 3))
	e, ok := agg.FindEdge(0, 1)
	require.True(t, ok)
	require.Equal(t, int64(5), e.Capacity, "aggregate sums capacities")
	require.Len(t, agg.Neighbors(0), 1)

	rej, err := core.NewResidualGraph(2, core.WithParallelEdges(core.ParallelReject))
	require.NoError(t, err)
	require.NoError(t, rej.AddEdge(0, 1, 2))
	require.ErrorIs(t, rej.AddEdge(0, 1, 3), core.ErrDuplicateEdge)
	e, _ = rej.FindEdge(0, 1)
	require.Equal(t, int64(2), e.Capacity)
}

// TestAggregateOverflow: folding parallel capacities never wraps past MaxInt64.
func TestAggregateOverflow(t *testing.T) {
	g, err := core.NewResidualGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, math.MaxInt64))

	err = g.AddEdge(0, 1, math.MaxInt64)
	require.ErrorIs(t, err, core.ErrCapacityOverflow)
	var ee *core.EdgeError
	require.True(t, errors.As(err, &ee))
	require.Equal(t, 0, ee.From)
	require.Equal(t, 1, ee.To)

	e, ok := g.FindEdge(0, 1)
	require.True(t, ok)
	require.Equal(t, int64(math.MaxInt64), e.Capacity, "graph unchanged on error")
	require.Equal(t, int64(math.MaxInt64), e.Residual())

	require.ErrorIs(t, g.AddEdge(0, 1, 1), core.ErrCapacityOverflow)
	require.NoError(t, g.AddEdge(0, 1, 0), "zero still fits")
}

func TestParseParallelPolicy(t *testing.T) {
	cases := map[string]core.ParallelPolicy{
		"":          core.ParallelAggregate,
		"aggregate": core.ParallelAggregate,
		"reject":    core.ParallelReject,
	}
	for in, want := range cases {
		got, err := core.ParseParallelPolicy(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := core.ParseParallelPolicy("merge")
	require.Error(t, err)
	require.Equal(t, "reject", core.ParallelReject.String())
}
