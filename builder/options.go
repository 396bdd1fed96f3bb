// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// options.go - functional options for BuildGraph.
//
// Option constructors panic on programmer error (nil function, nil RNG), the
// same way the standard library treats nil callbacks.

package builder

import "math/rand"

// BuilderOption mutates builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID scheme. Panics if fn is nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand injects the random source for stochastic constructors.
// Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
