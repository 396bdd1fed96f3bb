// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the seeding package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, never by redefining sentinels.

package seeding

import (
	"errors"

	"github.com/katalvlaran/pandemaniac/centrality"
)

// ErrConfiguration indicates unusable run parameters: an unknown strategy
// tag, a non-positive seed budget or round count, a missing random source or
// a malformed game file name. It is never retried.
var ErrConfiguration = errors.New("seeding: configuration error")

// ErrInsufficientNodes indicates a ranker or the random sampler was asked for
// more seeds than the graph has nodes. It is the same value as
// centrality.ErrInsufficientNodes so either can be used with errors.Is.
var ErrInsufficientNodes = centrality.ErrInsufficientNodes

// ErrFallbackExhausted indicates the completion policy ran out of fallback
// nodes before reaching the seed budget, i.e. the graph is smaller than k.
var ErrFallbackExhausted = errors.New("seeding: fallback order exhausted")

// ErrCandidateOverflow indicates a candidate set already larger than the
// seed budget was handed to the completion policy.
var ErrCandidateOverflow = errors.New("seeding: candidate set exceeds seed budget")
