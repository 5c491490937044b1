package flow_test

import (
	"testing"

	"github.com/katalvlaran/flowmatch/flow"
)

// BenchmarkEdmondsKarp measures solves on random networks of increasing size.
// Graph construction is excluded from the timing.
func BenchmarkEdmondsKarp(b *testing.B) {
	cases := []struct {
		name  string
		nodes int
		prob  float64
	}{
		{"Small", 50, 0.10},
		{"Medium", 200, 0.05},
		{"Dense", 100, 0.30},
	}
	for _, tc := range cases {
		edges := randomEdges(tc.nodes, tc.prob, 100, 42)
		b.Run(tc.name, func(b *testing.B) {
			proto := build(b, tc.nodes, edges...)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				g := proto.Clone()
				b.StartTimer()
				if _, err := flow.EdmondsKarp(g, 0, tc.nodes-1); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
