// Package bfs provides breadth-first search over a *core.Graph and the
// connected-component summary built on it.
//
// BFS(g, start, opts...) returns visit order, hop depths and parent links;
// WithMaxDepth, WithFilterNeighbor and WithContext tune the search.
// Components and Summarize split a graph into connected components, which the
// runner reports for every loaded game graph: a disconnected graph yields a
// spanning forest rather than a tree under the MST strategy.
package bfs
