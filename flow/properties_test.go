package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowmatch/bfs"
	"github.com/katalvlaran/flowmatch/core"
	"github.com/katalvlaran/flowmatch/flow"
)

// randomEdges returns a deterministic random edge list over v nodes where each
// ordered pair u≠v is present with probability p and capacity in [1, maxCap].
func randomEdges(v int, p float64, maxCap int, seed int64) [][3]int {
	r := rand.New(rand.NewSource(seed))
	var edges [][3]int
	for u := 0; u < v; u++ {
		for w := 0; w < v; w++ {
			if u == w {
				continue
			}
			if r.Float64() < p {
				edges = append(edges, [3]int{u, w, r.Intn(maxCap) + 1})
			}
		}
	}
	return edges
}

// TestProperties checks conservation, capacity respect and max-flow/min-cut
// equality on a batch of random networks.
func TestProperties(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		v := 4 + int(seed%9)
		edges := randomEdges(v, 0.35, 20, seed)
		g := build(t, v, edges...)

		res, err := flow.EdmondsKarp(g, 0, v-1)
		require.NoError(t, err, "seed %d", seed)

		// capacity respect on every reported edge
		for _, e := range res.Edges {
			assert.LessOrEqual(t, e.Flow, e.Capacity, "seed %d edge %d→%d", seed, e.From, e.To)
			assert.Positive(t, e.Flow)
		}

		// conservation
		net := make([]int64, v)
		for _, e := range res.Edges {
			net[e.From] -= e.Flow
			net[e.To] += e.Flow
		}
		for n := 1; n < v-1; n++ {
			assert.Zero(t, net[n], "seed %d node %d", seed, n)
		}
		assert.Equal(t, res.TotalFlow, net[v-1], "seed %d sink inflow", seed)

		// max-flow/min-cut equality
		cut, err := flow.MinCut(g, 0)
		require.NoError(t, err)
		assert.Equal(t, res.TotalFlow, cut.Capacity, "seed %d", seed)
		assert.True(t, cut.SourceSide[0])
		assert.False(t, cut.SourceSide[v-1])

		require.NoError(t, flow.Verify(g, 0, v-1, res.TotalFlow), "seed %d", seed)
	}
}

// TestDeterminism: two identically built graphs produce identical paths and flows.
func TestDeterminism(t *testing.T) {
	edges := randomEdges(15, 0.3, 9, 7)
	a := build(t, 15, edges...)
	b := build(t, 15, edges...)

	ra, err := flow.EdmondsKarp(a, 0, 14)
	require.NoError(t, err)
	rb, err := flow.EdmondsKarp(b, 0, 14)
	require.NoError(t, err)

	require.Equal(t, ra.TotalFlow, rb.TotalFlow)
	require.Equal(t, ra.Augmentations, rb.Augmentations)
	require.Equal(t, ra.Edges, rb.Edges)
	require.NotEqual(t, ra.RunID, rb.RunID)
}

// TestCloneSolve: a clone taken before solving reproduces the same result.
func TestCloneSolve(t *testing.T) {
	g := build(t, 10, randomEdges(10, 0.4, 5, 3)...)
	c := g.Clone()

	r1, err := flow.EdmondsKarp(g, 0, 9)
	require.NoError(t, err)
	r2, err := flow.EdmondsKarp(c, 0, 9)
	require.NoError(t, err)
	require.Equal(t, r1.Augmentations, r2.Augmentations)

	// Solving an already solved graph finds nothing more.
	r3, err := flow.EdmondsKarp(g, 0, 9)
	require.NoError(t, err)
	require.Zero(t, r3.TotalFlow)

	g.ResetFlow()
	r4, err := flow.EdmondsKarp(g, 0, 9)
	require.NoError(t, err)
	require.Equal(t, r1.TotalFlow, r4.TotalFlow)
}

// TestParallelEdgesAggregate: parallel edges add up under the default policy.
func TestParallelEdgesAggregate(t *testing.T) {
	g := build(t, 2, [3]int{0, 1, 2}, [3]int{0, 1, 3})
	res, err := flow.EdmondsKarp(g, 0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(5), res.TotalFlow)
	require.Len(t, res.Edges, 1)
}

func TestVerifyDetectsBrokenFlow(t *testing.T) {
	g := build(t, 3, [3]int{0, 1, 2}, [3]int{1, 2, 2})

	// Conservation broken at node 1.
	require.NoError(t, g.PushFlow(0, 1, 2))
	err := flow.Verify(g, 0, 2, 2)
	require.ErrorIs(t, err, flow.ErrVerification)

	// Valid but not maximum.
	h := build(t, 3, [3]int{0, 1, 2}, [3]int{1, 2, 2})
	require.NoError(t, h.PushFlow(0, 1, 1))
	require.NoError(t, h.PushFlow(1, 2, 1))
	err = flow.Verify(h, 0, 2, 1)
	require.ErrorIs(t, err, flow.ErrVerification)

	// Wrong total.
	res, err := flow.EdmondsKarp(h, 0, 2)
	require.NoError(t, err)
	require.Equal(t, int64(1), res.TotalFlow, "one more unit on top of the preloaded one")
	require.ErrorIs(t, flow.Verify(h, 0, 2, 1), flow.ErrVerification)
	require.NoError(t, flow.Verify(h, 0, 2, 2))

	// Skew symmetry.
	e, _ := h.FindEdge(2, 1)
	e.Flow = 0
	require.ErrorIs(t, flow.Verify(h, 0, 2, 2), flow.ErrVerification)

	require.ErrorIs(t, flow.Verify(h, 0, 5, 2), core.ErrInvalidNodeID)
}

func TestMinCutEdges(t *testing.T) {
	g := build(t, 4, [3]int{0, 1, 4}, [3]int{1, 2, 1}, [3]int{2, 3, 6}, [3]int{0, 2, 2})
	res, err := flow.EdmondsKarp(g, 0, 3)
	require.NoError(t, err)
	require.Equal(t, int64(3), res.TotalFlow)

	cut, err := flow.MinCut(g, 0)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, false, false}, cut.SourceSide)
	require.Equal(t, []flow.FlowEdge{
		{From: 0, To: 2, Flow: 2, Capacity: 2},
		{From: 1, To: 2, Flow: 1, Capacity: 1},
	}, cut.Edges)
	require.Equal(t, int64(3), cut.Capacity)
}

func TestBottleneck(t *testing.T) {
	g := build(t, 3, [3]int{0, 1, 4}, [3]int{1, 2, 1})
	b, err := flow.Bottleneck(g, nil)
	require.NoError(t, err)
	require.Zero(t, b)

	_, err = flow.Bottleneck(g, bfs.Path{{From: 0, To: 2}})
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	unpaired, err := core.NewResidualGraph(2)
	require.NoError(t, err)
	require.NoError(t, unpaired.AddEdge(0, 1, 3))
	_, err = flow.Bottleneck(unpaired, bfs.Path{{From: 0, To: 1}})
	var ee *core.EdgeError
	require.ErrorAs(t, err, &ee)
	require.Equal(t, core.EdgeError{From: 1, To: 0, Err: core.ErrEdgeNotFound}, *ee)
}
