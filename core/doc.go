// Package core provides the insertion-ordered, thread-safe adjacency Graph used by
// the shortest-path finder.
//
// The Graph G = (V,E) is a mapping vertex → ordered (neighbor → weight):
//
//   - Directed by default; WithUndirected() mirrors every AddEdge.
//   - Vertices() and Neighbors() return entries in insertion order, so
//     "first minimum wins" tie-breaking in algorithms is reproducible.
//   - A neighbor that is never registered with AddVertex (directed graphs)
//     is a dangling reference, not a vertex: HasVertex reports false for it.
//   - Weights are int64 and stored verbatim, negatives included.
//   - A single sync.RWMutex guards the catalog; all queries take the read lock
//     and return copies.
//
// Construction:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 5)   // registers A only
//	_ = g.AddVertex("B")
//
//	// or, from an ordered literal:
//	g, err := core.FromAdjacency(
//	    core.VertexSpec{ID: "A", Edges: []core.Neighbor{{To: "B", Weight: 5}}},
//	    core.VertexSpec{ID: "B"},
//	)
//
//	// or, from YAML with document order preserved:
//	g, err := core.ParseYAML([]byte("A: {B: 5}\nB: {}\n"))
//
// Core Methods:
//
//	AddVertex(id string) error               // O(1)
//	AddEdge(from, to string, w int64) error  // O(1) amortized
//	HasVertex(id string) bool                // O(1)
//	Vertices() []string                      // O(V)
//	Neighbors(id string) ([]Edge, error)     // O(deg)
//	Weight(from, to string) (int64, bool)    // O(1)
//	OutDegree(id string) int                 // O(1)
//	Edges() []Edge                           // O(V+E)
//	Clone() *Graph                           // O(V+E)
package core
