// Package extract reduces a *core.Graph to a structurally meaningful node
// subset and ranks what is left.
//
// Extractors (type Func) return a graph rather than a bare node list so that
// the follow-up ranking sees the reduced structure:
//
//	SpanningForest(opts...) – all vertices, forest edges only (prim_kruskal)
//	DominatingSet           – subgraph induced by a greedy dominating set
//	VertexCover             – subgraph induced by a local-ratio vertex cover
//
// Candidates(reduced, k) then ranks the reduced graph by its own degree
// centrality and keeps min(k, |V|) nodes. The result may be shorter than k;
// padding is the caller's job (see seeding.Complete).
//
// All results are deterministic: they only depend on the vertex and edge
// enumeration order of core.Graph.
package extract
