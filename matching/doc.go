// Package matching computes maximum bipartite matchings by reduction to
// maximum flow.
//
// The instance is X left vertices, Y right vertices and a list of left→right
// pairs, each 1-indexed within its side. builder.Bipartite lays the network
// out as
//
//	0            source
//	1..X         left side
//	X+1..X+Y     right side
//	X+Y+1        sink
//
// with capacity 1 on every edge, and flow.Engine saturates it. Every forward
// edge that carries one unit of flow and has both endpoints strictly inside
// (source and sink excluded) is a matched pair. Pairs are reported with network
// ids, smaller id first, in node then insertion order.
//
// Because all capacities are 1 the size of the matching equals the total flow
// and no vertex occurs in two pairs.
package matching
