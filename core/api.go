// File: api.go
// Role: Constructors and read-only getters on top of the core types.
package core

// FromAdjacency builds a directed Graph from an ordered adjacency description.
// Vertices and their edges are inserted in the order given, so the resulting
// iteration order matches the literal.
//
//	g, err := core.FromAdjacency(
//	    core.VertexSpec{ID: "A", Edges: []core.Neighbor{{"B", 5}, {"C", 1}}},
//	    core.VertexSpec{ID: "C"},
//	)
//
// Returns ErrEmptyVertexID if any vertex or neighbor ID is empty.
// Complexity: O(V + E)
func FromAdjacency(vertices ...VertexSpec) (*Graph, error) {
	g := NewGraph()
	for _, v := range vertices {
		if err := g.AddVertex(v.ID); err != nil {
			return nil, err
		}
		for _, n := range v.Edges {
			if err := g.AddEdge(v.ID, n.To, n.Weight); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// MustFromAdjacency is FromAdjacency that panics on error.
// Intended for fixed graphs in tests, examples and demos.
func MustFromAdjacency(vertices ...VertexSpec) *Graph {
	g, err := FromAdjacency(vertices...)
	if err != nil {
		panic(err)
	}

	return g
}

// Undirected reports whether AddEdge mirrors edges.
func (g *Graph) Undirected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.undirected
}

// Clone returns a deep copy of g with identical ordering and options.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		undirected: g.undirected,
		order:      make([]string, len(g.order)),
		adj:        make(map[string]*adjacency, len(g.adj)),
	}
	copy(c.order, g.order)
	for id, a := range g.adj {
		ca := &adjacency{
			edges: make([]Edge, len(a.edges)),
			index: make(map[string]int, len(a.index)),
		}
		copy(ca.edges, a.edges)
		for k, v := range a.index {
			ca.index[k] = v
		}
		c.adj[id] = ca
	}

	return c
}
