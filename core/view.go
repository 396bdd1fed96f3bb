// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (fresh graphs derived from a source graph).
// Determinism:
//   - Views keep the source's relative vertex order and adjacency order.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// Clone returns a deep copy of g.
// Complexity: O(V + E).
func Clone(g *Graph) *Graph {
	return InducedSubgraph(g, nil)
}

// InducedSubgraph returns a new Graph induced by the set keep: it contains
// the vertices v with keep[v] == true and every edge whose endpoints are both
// kept. A nil keep map keeps everything. The input graph is not mutated.
//
// Vertices keep their relative order, so a kept vertex's Index in the result
// is its position among the kept vertices.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	kept := func(id string) bool { return keep == nil || keep[id] }

	out := NewGraph()

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, id := range g.order {
		if !kept(id) {
			continue
		}
		out.vertices[id] = &Vertex{ID: id, Index: len(out.order)}
		out.order = append(out.order, id)
		out.adjSet[id] = make(map[string]struct{})
	}

	for _, id := range out.order {
		var nbrs []string
		for _, nbr := range g.adjacency[id] {
			if kept(nbr) {
				nbrs = append(nbrs, nbr)
				out.adjSet[id][nbr] = struct{}{}
			}
		}
		out.adjacency[id] = nbrs
		out.edgeCount += len(nbrs)
	}
	// Every undirected edge was counted from both endpoints.
	out.edgeCount /= 2

	return out
}

// SpanningSubgraph returns a new Graph holding every vertex of g (same order)
// and only the given edges, added in slice order.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrVertexNotFound if an edge endpoint is not a vertex of g.
//   - Any AddEdge error (loops, duplicates).
//
// Complexity: O(V + len(edges)).
func SpanningSubgraph(g *Graph, edges []Edge) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := NewGraph()
	for _, id := range g.Vertices() {
		if err := out.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if !out.HasVertex(e.From) || !out.HasVertex(e.To) {
			return nil, ErrVertexNotFound
		}
		if err := out.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}

	return out, nil
}
