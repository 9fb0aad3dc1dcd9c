// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_complete.go - Complete(n) constructor: every ordered pair i≠j gets i→j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodComplete  = "Complete"
	minCompleteSize = 1
)

// Complete returns a Constructor that builds K_n with one arc per ordered pair.
// In an undirected graph the second arc of each pair overwrites the mirror of
// the first, so the last draw wins.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteSize, ErrTooFewVertices)
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				u, v := cfg.idFn(i), cfg.idFn(j)
				if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodComplete, u, v, err)
				}
			}
		}

		return nil
	}
}
