// File: methods_edges.go
// Role: Edge insertion & adjacency queries.
//
// Determinism:
//   - Neighbors() preserves per-vertex insertion order.
//   - Edges() walks vertices in insertion order, then neighbors in insertion order.
package core

import "fmt"

// AddEdge inserts (or re-weights) the edge from→to.
//
// Behavior:
//   - from is registered as a vertex if missing.
//   - to is registered only when the graph was built WithUndirected();
//     in a directed graph a neighbor that is never added as a vertex stays
//     a dangling reference.
//   - Re-adding an existing from→to keeps its position and replaces the weight.
//   - Undirected graphs also write the mirror to→from with the same weight.
//
// Returns ErrEmptyVertexID if either endpoint is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from).set(from, to, weight)
	if g.undirected {
		g.ensureVertex(to).set(to, from, weight)
	}

	return nil
}

// set upserts the entry from→to.
func (a *adjacency) set(from, to string, weight int64) {
	if i, ok := a.index[to]; ok {
		a.edges[i].Weight = weight
		return
	}
	a.index[to] = len(a.edges)
	a.edges = append(a.edges, Edge{From: from, To: to, Weight: weight})
}

// Neighbors returns a copy of the outgoing edges of id in insertion order.
//
// Returns ErrVertexNotFound (wrapped with the ID) if id is not a vertex.
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Edge, len(a.edges))
	copy(out, a.edges)

	return out, nil
}

// Weight returns the weight of from→to and whether that entry exists.
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a, ok := g.adj[from]
	if !ok {
		return 0, false
	}
	i, ok := a.index[to]
	if !ok {
		return 0, false
	}

	return a.edges[i].Weight, true
}

// Edges returns every adjacency entry of the graph.
// An undirected edge appears twice, once per direction.
// Complexity: O(V + E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var n int
	for _, a := range g.adj {
		n += len(a.edges)
	}
	out := make([]Edge, 0, n)
	for _, id := range g.order {
		out = append(out, g.adj[id].edges...)
	}

	return out
}

// EdgeCount returns the number of adjacency entries.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var n int
	for _, a := range g.adj {
		n += len(a.edges)
	}

	return n
}
