// Package shortpath computes single-pair shortest paths on weighted graphs
// with non-negative integer edge weights.
//
// Packages:
//
//	core/    : insertion-ordered adjacency Graph, builders, YAML decoding
//	dijkstra/: Finder with validation, relaxation and path reconstruction
//	builder/ : deterministic fixtures (Path, Cycle, Grid, Complete, RandomSparse)
//	metrics/ : Prometheus collector fed by dijkstra.Observer
//	cmd/dijkstra-demo: fixed-graph demo printing one query
//
// Quick example:
//
//	    A──1──B
//	    │     │
//	    4     2
//	    │     │
//	    C─────┘
//
//	g, _ := core.ParseYAML([]byte("A: {B: 1, C: 4}\nB: {A: 1, C: 2}\nC: {A: 4, B: 2}\n"))
//	res, err := dijkstra.NewFinder(g).FindShortestPath("A", "C")
//	// res.String() == "Distance: 3, Path: A -> B -> C"
package shortpath
