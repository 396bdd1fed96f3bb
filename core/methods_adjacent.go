// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries and adjacency snapshots.
// Determinism:
//   - Neighbor lists follow edge insertion order.

package core

// NeighborIDs returns the neighbors of id in edge insertion order.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d) where d is the degree of id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		if id == "" {
			return nil, ErrEmptyVertexID
		}
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]string, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// AdjacencyList returns a deep copy of the adjacency: vertex -> neighbors.
// Isolated vertices map to an empty (non-nil) slice.
//
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.order))
	for _, id := range g.order {
		nbrs := make([]string, len(g.adjacency[id]))
		copy(nbrs, g.adjacency[id])
		out[id] = nbrs
	}

	return out
}

// Snapshot is a dense, index-based copy of a graph used by numeric routines.
//
// IDs[i] is the vertex with Index i, and Adj[i] holds the indices of its
// neighbors in adjacency order.
type Snapshot struct {
	IDs []string
	Adj [][]int
}

// Snapshot builds an index-based view of g under a single pair of read locks.
//
// Complexity: O(V + E).
func (g *Graph) Snapshot() Snapshot {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	s := Snapshot{
		IDs: make([]string, len(g.order)),
		Adj: make([][]int, len(g.order)),
	}
	copy(s.IDs, g.order)
	for i, id := range g.order {
		nbrs := g.adjacency[id]
		row := make([]int, len(nbrs))
		for j, nbr := range nbrs {
			row[j] = g.vertices[nbr].Index
		}
		s.Adj[i] = row
	}

	return s
}
