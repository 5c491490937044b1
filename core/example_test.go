package core_test

import (
	"fmt"

	"github.com/katalvlaran/flowmatch/core"
)

// ExampleResidualGraph_PushFlow shows the paired update of forward and
// reverse edges.
func ExampleResidualGraph_PushFlow() {
	g, _ := core.NewResidualGraph(2)
	_ = g.AddEdge(0, 1, 4)
	g.EnsureReverseEdges()
	_ = g.PushFlow(0, 1, 3)

	fwd, _ := g.FindEdge(0, 1)
	back, _ := g.FindEdge(1, 0)
	fmt.Println(fwd.Flow, fwd.Residual())
	fmt.Println(back.Flow, back.Residual())
	// Output:
	// 3 1
	// -3 3
}
