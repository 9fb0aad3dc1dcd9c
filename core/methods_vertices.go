// File: methods_vertices.go
// Role: Vertex registration & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order, never sorted.
package core

// AddVertex registers id as a top-level vertex if missing (idempotent).
//
// Returns ErrEmptyVertexID if id == "".
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// ensureVertex registers id if absent. Caller must hold the write lock.
func (g *Graph) ensureVertex(id string) *adjacency {
	if a, ok := g.adj[id]; ok {
		return a
	}
	a := &adjacency{index: make(map[string]int)}
	g.adj[id] = a
	g.order = append(g.order, id)

	return a
}

// HasVertex reports whether id is a top-level vertex (empty ID ⇒ false).
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]

	return ok
}

// Vertices returns a copy of all vertex IDs in insertion order.
// Complexity: O(V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of top-level vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// OutDegree returns the number of outgoing entries of id.
// Absent vertices have degree 0; no error is reported for them.
func (g *Graph) OutDegree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if a, ok := g.adj[id]; ok {
		return len(a.edges)
	}

	return 0
}
