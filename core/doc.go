// Package core provides the thread-safe, in-memory Graph that every seed
// strategy reads.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected and unweighted: an edge is an unordered pair {u,v}.
//   - Simple: self-loops return ErrLoopNotAllowed, parallel edges return
//     ErrMultiEdgeNotAllowed.
//   - Append-only: no vertex or edge removal, so Vertex.Index is stable.
//   - Insertion-ordered: Vertices(), NeighborIDs() and Edges() all follow the
//     order in which vertices and edges were added. Loaders that read an
//     adjacency document in document order therefore get the same node order
//     as the document, and equal centrality scores tie-break by it.
//   - Separate sync.RWMutex for vertices (muVert) and adjacency (muEdgeAdj),
//     always acquired in that order.
//
// Core Methods:
//
//	AddVertex(id string) error         // O(1), idempotent
//	AddEdge(from, to string) error     // O(1), creates endpoints
//	HasVertex(id) / HasEdge(from, to)  // O(1)
//	Vertex(id) (Vertex, error)         // O(1), copy with Index
//	Vertices() []string                // O(V), insertion order
//	NeighborIDs(id) ([]string, error)  // O(d), insertion order
//	Degree(id) (int, error)            // O(1)
//	Edges() []Edge                     // O(V+E), each pair once
//	AdjacencyList() map[string][]string
//	Snapshot() Snapshot                // dense index view for numeric code
//
// Views (never mutate the source):
//
//	Clone(g)                   // deep copy
//	InducedSubgraph(g, keep)   // kept vertices + edges between them
//	SpanningSubgraph(g, edges) // all vertices + the given edges
//
// Errors:
//
//	ErrNilGraph            – nil *Graph handed to a view
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – AddEdge(v, v)
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
package core
