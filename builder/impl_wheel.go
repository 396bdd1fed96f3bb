// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// impl_wheel.go - Wheel(n): W_n = C_{n-1} + "Center".
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices); the rim C_{n-1} needs 3 vertices.
//   - Rim built by Cycle(n-1), then the hub, then spokes Center—rim[i], i asc.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, centerVertexID, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodWheel, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
