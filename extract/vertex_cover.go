// SPDX-License-Identifier: MIT
//
// File: vertex_cover.go
// Role: Local-ratio 2-approximation of the minimum weighted vertex cover.

package extract

import "github.com/katalvlaran/pandemaniac/core"

// VertexCoverNodes returns a vertex cover of g whose weight is at most twice
// the minimum, every vertex weighing 1.
//
// Implementation (Bar-Yehuda & Even local ratio):
//   - Every vertex starts with residual cost 1.
//   - For each edge in g.Edges() order, subtract min(cost[u], cost[v]) from
//     both endpoints.
//   - The vertices whose residual cost reached 0 form the cover.
//
// With unit costs the first edge touching two fresh vertices puts both into
// the cover, which is why a path A-B-C yields {A, B}.
//
// The result is in graph order. Complexity: O(V + E).
func VertexCoverNodes(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	order := g.Vertices()
	cost := make(map[string]int, len(order))
	for _, v := range order {
		cost[v] = 1
	}
	for _, e := range g.Edges() {
		m := cost[e.From]
		if cost[e.To] < m {
			m = cost[e.To]
		}
		cost[e.From] -= m
		cost[e.To] -= m
	}

	out := make([]string, 0)
	for _, v := range order {
		if cost[v] == 0 {
			out = append(out, v)
		}
	}

	return out, nil
}

// VertexCover is the extractor form of VertexCoverNodes: the subgraph induced
// by the cover.
func VertexCover(g *core.Graph) (*core.Graph, error) {
	nodes, err := VertexCoverNodes(g)
	if err != nil {
		return nil, err
	}

	return core.InducedSubgraph(g, keepSet(nodes)), nil
}

// IsVertexCover reports whether every edge of g has an endpoint in set.
func IsVertexCover(g *core.Graph, set []string) bool {
	keep := keepSet(set)
	for _, e := range g.Edges() {
		if !keep[e.From] && !keep[e.To] {
			return false
		}
	}

	return true
}
