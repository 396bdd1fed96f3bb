// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// impl_star.go - Star(n): hub "Center" plus n-1 leaves.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is added first with the fixed ID "Center"; leaves use
//     cfg.idFn(1..n-1), so no leaf collides with index 0 of another
//     constructor sharing the default scheme.
//   - Spokes Center—leaf[i] in ascending i.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, centerVertexID, err)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodStar, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
