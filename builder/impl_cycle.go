// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// impl_cycle.go - Cycle(n): the simple cycle C_n.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices cfg.idFn(0..n-1); edges i—(i+1) mod n for i asc, so the
//     closing edge (n-1)—0 comes last.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
