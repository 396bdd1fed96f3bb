// SPDX-License-Identifier: MIT
//
// strategy.go — the strategy enum and its dispatch table.

package seeding

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pandemaniac/centrality"
	"github.com/katalvlaran/pandemaniac/core"
	"github.com/katalvlaran/pandemaniac/extract"
	"github.com/katalvlaran/pandemaniac/prim_kruskal"
)

// Strategy identifies one seed selection heuristic.
type Strategy int

// Supported strategies. The zero value is not a valid strategy.
const (
	Random Strategy = iota + 1
	Degree
	Eigenvector
	Betweenness
	Clustering
	Katz
	MST
	DominatingSet
	VertexCover
)

// kind tells the engine which pipeline a strategy runs through.
type kind int

const (
	kindRandom    kind = iota // fresh sample per round
	kindRanker                // top-k by score, never padded
	kindExtractor             // reduce, rank the reduced graph, then complete
)

// plan is everything needed to execute a strategy.
type plan struct {
	tag   string
	name  string
	kind  kind
	score centrality.Func
	// reduce builds the extractor; it receives the spanning forest options
	// so MST can honor the configured method.
	reduce func(mst []prim_kruskal.Option) extract.Func
}

func fixed(fn extract.Func) func([]prim_kruskal.Option) extract.Func {
	return func([]prim_kruskal.Option) extract.Func { return fn }
}

// plans is the dispatch table. Adding a strategy means adding a row here.
var plans = map[Strategy]plan{
	Random:        {tag: "r", name: "random", kind: kindRandom},
	Degree:        {tag: "d", name: "degree", kind: kindRanker, score: centrality.Degree},
	Eigenvector:   {tag: "e", name: "eigenvector", kind: kindRanker, score: centrality.Eigenvector},
	Betweenness:   {tag: "b", name: "betweenness", kind: kindRanker, score: centrality.Betweenness},
	Clustering:    {tag: "c", name: "clustering", kind: kindRanker, score: centrality.Clustering},
	Katz:          {tag: "k", name: "katz", kind: kindRanker, score: centrality.Katz},
	MST:           {tag: "m", name: "mst", kind: kindExtractor, reduce: func(o []prim_kruskal.Option) extract.Func { return extract.SpanningForest(o...) }},
	DominatingSet: {tag: "s", name: "dominating-set", kind: kindExtractor, reduce: fixed(extract.DominatingSet)},
	VertexCover:   {tag: "v", name: "vertex-cover", kind: kindExtractor, reduce: fixed(extract.VertexCover)},
}

// byTag indexes plans by their one-letter tag.
var byTag = func() map[string]Strategy {
	m := make(map[string]Strategy, len(plans))
	for s, p := range plans {
		m[p.tag] = s
	}
	return m
}()

// ParseStrategy maps a one-letter tag (case-insensitive, surrounding blanks
// ignored) to its Strategy. Unknown tags fail with ErrConfiguration.
func ParseStrategy(tag string) (Strategy, error) {
	s, ok := byTag[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown strategy tag %q", ErrConfiguration, tag)
	}

	return s, nil
}

// All returns every strategy in declaration order.
func All() []Strategy {
	return []Strategy{Random, Degree, Eigenvector, Betweenness, Clustering, Katz, MST, DominatingSet, VertexCover}
}

// Tag returns the one-letter lower-case tag, "" for an invalid strategy.
func (s Strategy) Tag() string { return plans[s].tag }

// String returns the strategy name.
func (s Strategy) String() string {
	if p, ok := plans[s]; ok {
		return p.name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Deterministic reports whether every round of the strategy is identical.
func (s Strategy) Deterministic() bool {
	p, ok := plans[s]
	return ok && p.kind != kindRandom
}

// Extracts reports whether the strategy runs through an extractor and the
// completion policy.
func (s Strategy) Extracts() bool { return plans[s].kind == kindExtractor && plans[s].reduce != nil }

// FallbackOrder returns every vertex of g ordered by descending whole-graph
// degree centrality, ties in graph order. It is the padding order used by
// Complete for extractor strategies.
func FallbackOrder(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	scores, err := centrality.Degree(g)
	if err != nil {
		return nil, err
	}

	return centrality.TopK(scores, len(scores)), nil
}
