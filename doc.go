// Package flowmatch computes maximum flows with the Edmonds–Karp algorithm and
// maximum bipartite matchings by reduction to flow.
//
// 🚀 What is flowmatch?
//
//	A small, deterministic flow toolkit that brings together:
//		• Residual graphs: paired forward/reverse edges with O(1) lookup
//		• Augmenting paths: breadth-first search over positive residuals
//		• Max flow: Edmonds–Karp, min-cut extraction, sanity verification
//		• Matching: source/sink reduction of bipartite graphs
//		• Flow decomposition: depth-first peeling of source-to-sink paths
//		• Text protocols: max-flow and matching request/response formats
//		• Rendering: Graphviz DOT and SVG of solved networks
//
// ✨ Guarantees
//
//   - Deterministic – breadth-first tie-breaking follows edge insertion
//     order, so identical inputs give identical augmenting paths and flows
//   - Checked – flow.Verify confirms conservation, capacity bounds and
//     max-flow/min-cut equality on demand
//   - Single-owner graphs – one solve owns one ResidualGraph; Clone for more
//
// Packages:
//
//	core/       — ResidualGraph, Edge and the structural error sentinels
//	bfs/        — augmenting path search and residual reachability
//	dfs/        — depth-first traversal and flow decomposition
//	flow/       — Edmonds–Karp engine, MinCut, Verify
//	builder/    — edge lists and the bipartite reduction network
//	matching/   — maximum bipartite matching
//	protocol/   — text formats and the toflow/fromflow converters
//	render/     — Graphviz output
//	config/     — TOML settings for the command-line tool
//
// The flowmatch command (cmd/flowmatch) exposes all of the above:
//
//	flowmatch maxflow  < network.txt
//	flowmatch match    < bipartite.txt
//	flowmatch toflow   < bipartite.txt | flowmatch maxflow | flowmatch fromflow --left X --right Y
//	flowmatch dot --format svg -o network.svg < network.txt
//
// Quick example:
//
//	g, _ := builder.FromEdges(4, []builder.EdgeSpec{
//		{From: 0, To: 1, Capacity: 3}, {From: 0, To: 2, Capacity: 2},
//		{From: 1, To: 3, Capacity: 2}, {From: 2, To: 3, Capacity: 3},
//	})
//	res, _ := flow.EdmondsKarp(g, 0, 3)
//	fmt.Println(res.TotalFlow) // 4
package flowmatch
