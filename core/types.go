// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge and Graph declarations, sentinel errors and the constructor.
// Policy:
//   - The graph is undirected, unweighted and simple (no loops, no parallel edges).
//   - Vertex order is insertion order; every enumeration surface follows it.
//   - muVert guards the vertex catalog, muEdgeAdj guards adjacency. Lock order is
//     always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a node of the graph.
//
// Index is the 0-based insertion position of the vertex; it never changes
// because graphs do not support vertex removal.
type Vertex struct {
	ID    string
	Index int
}

// Edge is an unordered pair of vertex IDs. From is the endpoint that was
// enumerated first (see Graph.Edges).
type Edge struct {
	From string
	To   string
}

// Graph is an in-memory undirected, unweighted simple graph.
//
// A Graph is append-only: vertices and edges can be added but never removed,
// which keeps vertex indices stable. Once built it is typically shared
// read-only by every seed strategy.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, order
	muEdgeAdj sync.RWMutex // guards adjacency, adjSet, edgeCount

	vertices map[string]*Vertex // vertex ID -> Vertex
	order    []string           // vertex IDs in insertion order

	// adjacency[v] lists the neighbors of v in the order the edges were added;
	// adjSet mirrors it for O(1) membership.
	adjacency map[string][]string
	adjSet    map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string][]string),
		adjSet:    make(map[string]map[string]struct{}),
	}
}
