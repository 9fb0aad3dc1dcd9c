// Package core defines the ordered adjacency Graph consumed by the shortest-path
// finder, together with its Edge type, construction options and sentinel errors.
//
// A Graph maps each vertex ID to an ordered set of outgoing (neighbor, weight)
// entries. Both the vertex catalog and every neighbor list remember insertion
// order, so algorithms that break ties "by first encountered" are reproducible
// across runs.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrInvalidYAML     - a YAML document does not describe an adjacency mapping.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrInvalidYAML indicates a YAML document could not be decoded into a Graph.
	ErrInvalidYAML = errors.New("core: invalid adjacency document")
)

// Edge is a single outgoing adjacency entry From→To with an integer Weight.
//
// Weight is stored exactly as given. Negative values are representable on
// purpose; rejecting them is the responsibility of the algorithm.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID. It need not be a registered vertex.
	To string

	// Weight is the traversal cost.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithUndirected makes AddEdge insert the mirror edge To→From as well and
// register both endpoints as vertices.
func WithUndirected() GraphOption {
	return func(g *Graph) { g.undirected = true }
}

// adjacency is the ordered neighbor list of one vertex.
// index[to] is the position of "to" inside edges.
type adjacency struct {
	edges []Edge
	index map[string]int
}

// Graph is an in-memory, insertion-ordered adjacency mapping.
//
// mu guards every field below it. Reads take the read lock, so a single
// Graph may be shared by concurrent readers.
type Graph struct {
	mu sync.RWMutex

	undirected bool

	order []string              // vertex IDs in insertion order
	adj   map[string]*adjacency // vertex ID → ordered neighbors
}

// NewGraph creates an empty Graph. By default edges are directed.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adj: make(map[string]*adjacency),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// VertexSpec describes one top-level entry of an adjacency mapping:
// a vertex ID and its outgoing edges in order.
type VertexSpec struct {
	ID    string
	Edges []Neighbor
}

// Neighbor is a (vertex, weight) pair inside a VertexSpec.
type Neighbor struct {
	To     string
	Weight int64
}
