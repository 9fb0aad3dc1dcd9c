// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Vertices idFn(0..n-1) are added first, in index order.
//   - Path emits i→i+1; Cycle additionally emits (n-1)→0.
//   - Directed graphs get one arc per step; WithUndirected graphs mirror it.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	minPathVertex  = 1
	minCycleVertex = 3
)

// Path returns a Constructor that builds the chain 0→1→…→n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertex {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertex, ErrTooFewVertices)
		}

		return chain(methodPath, g, cfg, n, false)
	}
}

// Cycle returns a Constructor that builds the ring 0→1→…→n-1→0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleVertex {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertex, ErrTooFewVertices)
		}

		return chain(methodCycle, g, cfg, n, true)
	}
}

func chain(method string, g *core.Graph, cfg builderConfig, n int, closed bool) error {
	if err := addVertices(method, g, cfg, n); err != nil {
		return err
	}
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
		if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
		}
	}

	return nil
}

// addVertices registers idFn(0..n-1) in index order.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}
