// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// impl_path.go - Path(n): the simple path P_n.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices cfg.idFn(0..n-1); edges i—(i+1) for i asc.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
