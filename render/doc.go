// Package render draws flow networks as Graphviz diagrams.
//
// ToDOT emits one node per network node and one arrow per original edge
// (capacity > 0); reverse edges are bookkeeping and are never drawn. Each arrow
// is labelled flow/capacity. Edges carrying flow are drawn solid and coloured,
// saturated edges bold, and idle edges dashed grey. The source and sink are
// double circles. When a source side is supplied (typically flow.MinCut), its
// nodes are filled so the cut is visible.
//
// RenderSVG lays the DOT text out in-process with [github.com/goccy/go-graphviz];
// no Graphviz installation is needed.
package render
