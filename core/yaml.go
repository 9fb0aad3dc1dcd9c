// File: yaml.go
// Role: Order-preserving YAML decoding of adjacency mappings.
//
// Accepted shape:
//
//	A: {B: 5, C: 1}
//	B: {A: 5}
//	C: {}     # or "C:" with a null value
//
// Decoding goes through yaml.Node rather than map[string]... so that the
// document order of vertices and neighbors survives into the Graph.
package core

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML adjacency mapping into a new Graph.
// opts are applied before any edge is inserted.
func ParseYAML(data []byte, opts ...GraphOption) (*Graph, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	g := NewGraph(opts...)
	if err := g.decodeNode(&doc); err != nil {
		return nil, err
	}

	return g, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The receiver should be empty;
// decoded vertices are appended to whatever it already holds.
func (g *Graph) UnmarshalYAML(value *yaml.Node) error {
	g.mu.Lock()
	if g.adj == nil {
		g.adj = make(map[string]*adjacency)
	}
	g.mu.Unlock()

	return g.decodeNode(value)
}

func (g *Graph) decodeNode(n *yaml.Node) error {
	n = resolve(n)
	switch n.Kind {
	case 0:
		return nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return g.decodeNode(n.Content[0])
	case yaml.MappingNode:
	default:
		if isNull(n) {
			return nil
		}
		return fmt.Errorf("%w: line %d: expected a mapping of vertices", ErrInvalidYAML, n.Line)
	}

	seen := make(map[string]struct{}, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := resolve(n.Content[i]), resolve(n.Content[i+1])
		id := key.Value
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: line %d: duplicate vertex %q", ErrInvalidYAML, key.Line, id)
		}
		seen[id] = struct{}{}
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidYAML, key.Line, err)
		}
		if err := g.decodeNeighbors(id, val); err != nil {
			return err
		}
	}

	return nil
}

func (g *Graph) decodeNeighbors(from string, n *yaml.Node) error {
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: neighbors of %q must be a mapping", ErrInvalidYAML, n.Line, from)
	}

	seen := make(map[string]struct{}, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := resolve(n.Content[i]), resolve(n.Content[i+1])
		to := key.Value
		if _, dup := seen[to]; dup {
			return fmt.Errorf("%w: line %d: duplicate edge %s→%s", ErrInvalidYAML, key.Line, from, to)
		}
		seen[to] = struct{}{}

		if val.Kind != yaml.ScalarNode || val.ShortTag() != "!!int" {
			return fmt.Errorf("%w: line %d: weight of %s→%s must be an integer, got %q", ErrInvalidYAML, val.Line, from, to, val.Value)
		}
		var w int64
		if err := val.Decode(&w); err != nil {
			return fmt.Errorf("%w: line %d: weight of %s→%s: %v", ErrInvalidYAML, val.Line, from, to, err)
		}
		if err := g.AddEdge(from, to, w); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidYAML, key.Line, err)
		}
	}

	return nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
