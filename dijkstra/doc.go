// Package dijkstra finds the shortest path between two vertices of a
// core.Graph whose edge weights are non-negative integers.
//
// Overview:
//
//   - NewFinder wraps a graph; FindShortestPath(start, end) validates the
//     request, runs Dijkstra's relaxation loop and rebuilds the vertex path.
//   - The result carries the total distance and the ordered path start…end.
//   - Equal-distance candidates are resolved by vertex insertion order, so a
//     given graph always yields the same path.
//
// Validation and errors (sentinel, wrapped with context; use errors.Is):
//
//   - ErrNilGraph:         the Finder has no graph.
//   - ErrUnknownVertex:    end is not a declared vertex.
//   - ErrNoOutgoingPath:   start has no outgoing edges and differs from end.
//   - ErrNegativeWeight:   some edge anywhere in the graph is negative;
//     detected before traversal, regardless of reachability.
//   - ErrNoPath:           end is unreachable from start.
//   - ErrDistanceOverflow: a path length would exceed math.MaxInt64.
//
// ErrorKind maps these to short labels for metrics.
//
// Loop termination:
//
//	The loop stops at the first selected vertex whose distance is still
//	infinite. If that vertex is end the search fails with ErrNoPath; otherwise
//	the remaining vertices are unreachable and ignored. A never-reached end is
//	still reported as ErrNoPath, never as a sentinel distance.
//
// Strategies:
//
//   - StrategyLinearScan (default): O(V² + E), scans unvisited vertices in order.
//   - StrategyHeap: O((V + E) log V), heap keyed by (distance, insertion index)
//     with lazy decrease-key; selects exactly the same vertices.
//
// Thread safety:
//
//   - A Finder keeps no per-search state, so concurrent FindShortestPath calls
//     are safe as long as the graph is not mutated during the calls.
//
// Example:
//
//	g := core.MustFromAdjacency(
//	    core.VertexSpec{ID: "A", Edges: []core.Neighbor{{To: "B", Weight: 5}, {To: "C", Weight: 1}}},
//	    core.VertexSpec{ID: "B", Edges: []core.Neighbor{{To: "A", Weight: 5}, {To: "C", Weight: 2}}},
//	    core.VertexSpec{ID: "C", Edges: []core.Neighbor{{To: "A", Weight: 1}, {To: "B", Weight: 2}}},
//	)
//	res, err := dijkstra.NewFinder(g).FindShortestPath("A", "B")
//	// res.Distance == 3, res.Path == [A C B]
package dijkstra
