// Package pandemaniac picks seed nodes for a graph-infection tournament.
//
// A game hands every player the same undirected graph, named
// <players>.<seeds>.<id>.json, and each player submits k seed nodes per
// round. Strategies rank nodes by a centrality measure or reduce the graph to
// a structural core first, then the selection is written out for every round.
//
// Packages:
//
//	core/          — Graph with insertion-ordered vertices, RW-locked, induced subgraphs
//	centrality/    — degree, betweenness, eigenvector, Katz and clustering scores; TopK
//	prim_kruskal/  — unit-weight minimum spanning forest
//	extract/       — spanning forest, dominating set, vertex cover; candidate ranking
//	seeding/       — strategy tags, completion policy, Engine and schedules
//	bfs/           — breadth-first search and connected components
//	builder/       — deterministic synthetic graphs
//	graphio/       — adjacency JSON in, schedule files out
//	config/        — viper configuration, game-name parsing, logrus setup
//	runner/        — one game run, strategy by strategy
//	cmd/pandemaniac — cobra CLI: run, generate
//
// Quick ASCII example:
//
//	    A───B───C
//
//	k=3, strategy v: cover {A, B}, padded with C from the degree order,
//	so every round submits A, B, C.
//
//	go run ./cmd/pandemaniac run 2.3.1 d v
package pandemaniac
