// SPDX-License-Identifier: MIT
//
// File: dominating.go
// Role: Greedy dominating set.

package extract

import "github.com/katalvlaran/pandemaniac/core"

// DominatingSetNodes returns a dominating set of g: every vertex outside the
// set has a neighbor inside it.
//
// Implementation:
//   - Stage 1: Take the first vertex, mark it and its neighbors dominated.
//   - Stage 2: Walk the remaining vertices in graph order; each one still
//     undominated joins the set and dominates its neighbors.
//
// The result is in graph order. An empty graph yields an empty set.
//
// Complexity: O(V + E).
func DominatingSetNodes(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	order := g.Vertices()
	if len(order) == 0 {
		return []string{}, nil
	}

	inSet := make(map[string]bool)
	dominated := make(map[string]bool, len(order))
	take := func(v string) error {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return err
		}
		inSet[v] = true
		dominated[v] = true
		for _, u := range nbrs {
			dominated[u] = true
		}

		return nil
	}

	for _, v := range order {
		if dominated[v] {
			continue
		}
		if err := take(v); err != nil {
			return nil, err
		}
	}

	out := make([]string, 0, len(inSet))
	for _, v := range order {
		if inSet[v] {
			out = append(out, v)
		}
	}

	return out, nil
}

// DominatingSet is the extractor form of DominatingSetNodes: the subgraph
// induced by the dominating set.
func DominatingSet(g *core.Graph) (*core.Graph, error) {
	nodes, err := DominatingSetNodes(g)
	if err != nil {
		return nil, err
	}

	return core.InducedSubgraph(g, keepSet(nodes)), nil
}

// IsDominatingSet reports whether every vertex of g is in set or adjacent to
// a member of set.
func IsDominatingSet(g *core.Graph, set []string) bool {
	keep := keepSet(set)
	for _, v := range g.Vertices() {
		if keep[v] {
			continue
		}
		nbrs, _ := g.NeighborIDs(v)
		covered := false
		for _, u := range nbrs {
			if keep[u] {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}

	return true
}
