// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Forest algorithm.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/pandemaniac/core"
)

// Kruskal computes a minimum spanning forest of an undirected graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// A disconnected graph yields one tree per component; isolated vertices
// contribute no edges. An empty graph yields an empty forest.
//
// Error Conditions:
//   - ErrInvalidGraph: graph is nil.
//
// Steps:
//  1. Validate graph != nil; nil weight means Unit.
//  2. Collect edges via graph.Edges() (first-sighting order).
//  3. Stable sort by ascending weight; with Unit weights the order is untouched.
//  4. Initialize DSU maps parent[] and rank[] for each vertex.
//  5. For each edge (u,v), if find(u) != find(v), union and include the edge.
//  6. Stop early once |V|-1 edges are taken.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph, weight WeightFn) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	if weight == nil {
		weight = Unit
	}

	vertices := graph.Vertices()
	if len(vertices) <= 1 {
		return []core.Edge{}, 0, nil
	}

	edges := graph.Edges()
	costs := make([]int64, len(edges))
	for i, e := range edges {
		costs[i] = weight(e.From, e.To)
	}
	// Sort an index permutation so costs stay aligned with their edges.
	idx := make([]int, len(edges))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return costs[idx[a]] < costs[idx[b]]
	})

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
		rank[vid] = 0
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(u, v string) {
		rootU := find(u)
		rootV := find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	var (
		forest      = make([]core.Edge, 0, len(vertices)-1)
		totalWeight int64
		limit       = len(vertices) - 1
	)
	for _, i := range idx {
		e := edges[i]
		if find(e.From) != find(e.To) {
			union(e.From, e.To)
			forest = append(forest, e)
			totalWeight += costs[i]
			if len(forest) == limit {
				break
			}
		}
	}

	return forest, totalWeight, nil
}
