// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// config.go - resolved builder configuration.

package builder

import "math/rand"

// centerVertexID is the fixed hub ID used by Star and Wheel.
const centerVertexID = "Center"

// builderConfig is the immutable result of applying BuilderOptions.
type builderConfig struct {
	// idFn maps a zero-based vertex index to its ID.
	idFn IDFn

	// rng drives stochastic constructors; nil unless WithRand/WithSeed is set.
	rng *rand.Rand
}

// newBuilderConfig applies opts over the defaults (decimal IDs, no RNG).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
