// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Model:
//   - 2D orthogonal grid, 4-neighborhood.
//   - Vertex IDs use the fixed scheme "r,c" (row-major); cfg.idFn is ignored
//     so coordinates stay explicit.
//   - For each cell, Right then Bottom neighbors are connected in both
//     directions, each arc with its own weightFn draw.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID Grid assigns to cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, GridID(r, c), err)
				}
			}
		}

		link := func(u, v string) error {
			if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodGrid, u, v, err)
			}
			if err := g.AddEdge(v, u, cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodGrid, v, u, err)
			}

			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
