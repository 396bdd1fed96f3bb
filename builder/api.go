// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs,
//     including vertex order, which is what the rankers tie-break on.
//   - Safety: never panic at runtime; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// emit vertices and edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge inserts u—v and tolerates an already present edge, so constructors
// compose on a shared graph without tripping core.ErrMultiEdgeNotAllowed.
func addEdge(g *core.Graph, method, u, v string) error {
	if g.HasEdge(u, v) {
		return nil
	}
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s): %w", method, u, v, err)
	}

	return nil
}

// addVertices inserts cfg.idFn(0..n-1) in ascending order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}
