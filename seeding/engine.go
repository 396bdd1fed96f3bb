// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: Strategy execution and round replication.
//
// Pipeline per strategy:
//
//	Dispatch → Compute → Complete (extractors only) → Replicate → Done
//
// Every failing stage aborts the strategy with a wrapped sentinel; nothing is
// partially emitted.

package seeding

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pandemaniac/centrality"
	"github.com/katalvlaran/pandemaniac/core"
	"github.com/katalvlaran/pandemaniac/extract"
	"github.com/katalvlaran/pandemaniac/prim_kruskal"
)

// DefaultIterations is the number of rounds in a game.
const DefaultIterations = 50

// Schedule is the flat output of one strategy: iterations × k node IDs, round
// after round.
type Schedule []string

// Rounds splits the schedule back into rounds of k seeds. A trailing partial
// chunk is dropped; k <= 0 yields nil.
func (s Schedule) Rounds(k int) []SeedRound {
	if k <= 0 {
		return nil
	}
	out := make([]SeedRound, 0, len(s)/k)
	for i := 0; i+k <= len(s); i += k {
		out = append(out, SeedRound(s[i:i+k]))
	}

	return out
}

// Engine executes strategies against one graph with a fixed seed budget.
// An Engine only reads its graph, so strategies may run concurrently when the
// random source is not shared (rand.Rand is not safe for concurrent use).
type Engine struct {
	graph      *core.Graph
	k          int
	iterations int
	rng        *rand.Rand
	scoreOpts  map[Strategy][]centrality.Option
	mstOpts    []prim_kruskal.Option
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRand injects the random source used by the random strategy. Without it
// the random strategy fails with ErrConfiguration.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithCentralityOptions passes numeric options to the ranker behind s
// (tolerance and iteration budget for eigenvector, alpha/beta for Katz).
func WithCentralityOptions(s Strategy, opts ...centrality.Option) Option {
	return func(e *Engine) {
		e.scoreOpts[s] = append(e.scoreOpts[s], opts...)
	}
}

// WithSpanningForest configures the MST extractor (method, root).
func WithSpanningForest(opts ...prim_kruskal.Option) Option {
	return func(e *Engine) { e.mstOpts = append(e.mstOpts, opts...) }
}

// NewEngine validates the run parameters and returns an Engine.
//
// Errors:
//   - core.ErrNilGraph if g is nil.
//   - ErrConfiguration if k or iterations is not positive.
func NewEngine(g *core.Graph, k, iterations int, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: seed budget must be positive (%d)", ErrConfiguration, k)
	}
	if iterations <= 0 {
		return nil, fmt.Errorf("%w: iterations must be positive (%d)", ErrConfiguration, iterations)
	}

	e := &Engine{
		graph:      g,
		k:          k,
		iterations: iterations,
		scoreOpts:  make(map[Strategy][]centrality.Option),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	return e, nil
}

// K returns the seed budget.
func (e *Engine) K() int { return e.k }

// Iterations returns the number of rounds per schedule.
func (e *Engine) Iterations() int { return e.iterations }

// Round computes a single seed set for s. For the random strategy each call
// draws a fresh sample.
func (e *Engine) Round(s Strategy) (SeedRound, error) {
	p, ok := plans[s]
	if !ok {
		return nil, fmt.Errorf("%w: unknown strategy %d", ErrConfiguration, int(s))
	}

	switch p.kind {
	case kindRandom:
		return randomRound(e.rng, e.graph.VertexCount(), e.k)
	case kindRanker:
		ids, err := centrality.Rank(e.graph, p.score, e.k, e.scoreOpts[s]...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.name, err)
		}
		return SeedRound(ids), nil
	default:
		return e.extractRound(p)
	}
}

// extractRound runs reduce → rank reduced graph → pad from whole-graph degree.
func (e *Engine) extractRound(p plan) (SeedRound, error) {
	reduced, err := p.reduce(e.mstOpts)(e.graph)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}
	partial, err := extract.Candidates(reduced, e.k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}
	fallback, err := FallbackOrder(e.graph)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}
	round, err := Complete(partial, e.k, fallback)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}

	return round, nil
}

// Schedule produces iterations rounds for s, concatenated. Deterministic
// strategies compute once and replicate; the random strategy samples every
// round independently from the injected source.
func (e *Engine) Schedule(s Strategy) (Schedule, error) {
	if !s.Deterministic() {
		if _, ok := plans[s]; !ok {
			return nil, fmt.Errorf("%w: unknown strategy %d", ErrConfiguration, int(s))
		}
		out := make(Schedule, 0, e.iterations*e.k)
		for i := 0; i < e.iterations; i++ {
			round, err := e.Round(s)
			if err != nil {
				return nil, err
			}
			out = append(out, round...)
		}
		return out, nil
	}

	round, err := e.Round(s)
	if err != nil {
		return nil, err
	}

	return Replicate(round, e.iterations), nil
}

// Replicate repeats one round n times.
func Replicate(round SeedRound, n int) Schedule {
	if n <= 0 {
		return Schedule{}
	}
	out := make(Schedule, 0, n*len(round))
	for i := 0; i < n; i++ {
		out = append(out, round...)
	}

	return out
}
