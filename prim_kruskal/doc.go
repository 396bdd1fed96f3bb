// Package prim_kruskal computes minimum spanning trees and forests of a
// *core.Graph with Prim’s and Kruskal’s algorithms.
//
// What & Why
//
//   - Core graphs are unweighted; a WeightFn supplies edge costs. The default
//     Unit cost makes every spanning forest minimal, and the result is then
//     decided entirely by the deterministic enumeration order of core.Graph.
//
//   - The seed selection engine uses the forest as a sparse backbone of the
//     contact graph: nodes that keep many forest edges are hubs of the
//     backbone and make good candidates.
//
// Algorithms Provided
//
//   - Kruskal(g, weight) ([]core.Edge, int64, error)
//     Stable sort of g.Edges() by cost, then union-find. Works on disconnected
//     graphs and returns one tree per component.
//     Time O(E log E + α(V)·E), space O(V + E).
//
//   - Prim(g, root, weight) ([]core.Edge, int64, error)
//     Min-heap expansion from root; covers root's component only. Equal costs
//     pop in push order.
//     Time O(E log V), space O(V + E).
//
//   - Forest(g, opts) (*core.Graph, int64, error)
//     Either algorithm, returned as a graph with every vertex of g (isolated
//     vertices included) and only the forest edges.
//
// Error Conditions
//
//	- ErrInvalidGraph        — nil graph or unknown Method.
//	- ErrEmptyRoot           — Prim with root == "".
//	- core.ErrVertexNotFound — Prim root absent.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
