// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() walks vertices in insertion order and, per vertex, neighbors in
//     adjacency order, reporting each unordered pair once at its first sighting.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

// AddEdge links from and to with an undirected edge, creating missing endpoints.
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a parallel edge, append both adjacency entries.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjSet[from][to]; exists {
		return ErrMultiEdgeNotAllowed
	}
	g.adjacency[from] = append(g.adjacency[from], to)
	g.adjSet[from][to] = struct{}{}
	g.adjacency[to] = append(g.adjacency[to], from)
	g.adjSet[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether from and to are adjacent. Missing vertices ⇒ false.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjSet[from][to]

	return ok
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// Edges returns every edge exactly once.
//
// Order: for each vertex u in insertion order, each neighbor v of u in
// adjacency order is reported as {From: u, To: v} unless v was already
// visited as an outer vertex. Spanning forest and vertex cover results depend
// on this order, so it is part of the contract.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func (g *Graph) Edges() []Edge {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	seen := make(map[string]struct{}, len(g.order))
	for _, u := range g.order {
		for _, v := range g.adjacency[u] {
			if _, done := seen[v]; done {
				continue
			}
			out = append(out, Edge{From: u, To: v})
		}
		seen[u] = struct{}{}
	}

	return out
}
