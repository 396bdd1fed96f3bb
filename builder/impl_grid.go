// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighborhood lattice.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex IDs are cfg.idFn(r*cols+c) in row-major order.
//   - For each cell, the right edge is emitted before the bottom edge.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				here := cfg.idFn(r*cols + c)
				if c+1 < cols {
					if err := addEdge(g, methodGrid, here, cfg.idFn(r*cols+c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, here, cfg.idFn((r+1)*cols+c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
