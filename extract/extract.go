// SPDX-License-Identifier: MIT
//
// File: extract.go
// Role: Extractor type, the spanning-forest extractor and candidate ranking
//       over a reduced graph.

package extract

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/centrality"
	"github.com/katalvlaran/pandemaniac/core"
	"github.com/katalvlaran/pandemaniac/prim_kruskal"
)

// Func reduces a graph to a structure-determined subgraph. The vertex set of
// the returned graph is the extracted node subset, in the relative order of
// the input graph.
type Func func(g *core.Graph) (*core.Graph, error)

// SpanningForest returns an extractor yielding a minimum spanning forest of
// the input with unit edge costs (prim_kruskal.Forest). Every vertex of the
// input survives; only the edges are thinned to a forest, so degree ranking
// afterwards favors backbone hubs. The default method is Kruskal.
func SpanningForest(opts ...prim_kruskal.Option) Func {
	o := prim_kruskal.NewOptions(opts...)

	return func(g *core.Graph) (*core.Graph, error) {
		if g == nil {
			return nil, core.ErrNilGraph
		}
		forest, _, err := prim_kruskal.Forest(g, o)
		if err != nil {
			return nil, fmt.Errorf("extract: spanning forest (%s): %w", o.Method, err)
		}

		return forest, nil
	}
}

// Candidates ranks the vertices of a reduced graph by degree centrality
// computed on that graph and returns the best min(k, |V|).
//
// Errors:
//   - core.ErrNilGraph if reduced is nil.
//   - centrality.ErrOptionViolation if k < 0.
func Candidates(reduced *core.Graph, k int) ([]string, error) {
	if reduced == nil {
		return nil, core.ErrNilGraph
	}
	if n := reduced.VertexCount(); k > n {
		k = n
	}

	return centrality.Rank(reduced, centrality.Degree, k)
}

// keepSet turns a node list into the keep-map accepted by core.InducedSubgraph.
func keepSet(ids []string) map[string]bool {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}

	return keep
}
