// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like directed sampling.
//
// Contract:
//   - n ≥ 1, p ∈ [0,1]; an RNG is required only when 0 < p < 1.
//   - Ordered pairs (i,j), i≠j, are visited i asc then j asc; each is kept
//     with probability p. Weights are drawn right after a pair is kept.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples a random directed graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				switch {
				case p == 0:
					continue
				case p < 1 && cfg.rng.Float64() >= p:
					continue
				}
				v := cfg.idFn(j)
				if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomSparse, u, v, err)
				}
			}
		}

		return nil
	}
}
