// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// errors.go - sentinel errors. Callers branch with errors.Is; context is
// attached with %w by the constructor that failed.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind indicates ByName was given a topology it does not know.
var ErrUnknownKind = errors.New("builder: unknown topology kind")
