// Package seeding turns a graph, a seed budget k and a strategy into the
// per-round seed lists submitted to a pandemaniac game.
//
// A Strategy is parsed from its one-letter tag (ParseStrategy) and executed by
// an Engine:
//
//	r  Random         k distinct node positions per round, from WithRand
//	d  Degree         ranker
//	e  Eigenvector    ranker
//	b  Betweenness    ranker
//	c  Clustering     ranker
//	k  Katz           ranker
//	m  MST            extractor (spanning forest)
//	s  DominatingSet  extractor
//	v  VertexCover    extractor
//
// Rankers return the top k by score and fail with ErrInsufficientNodes when
// the graph is too small. Extractors rank a reduced graph and may come up
// short; Complete then pads the round from the whole-graph degree order
// (FallbackOrder) and fails with ErrFallbackExhausted only when the graph
// itself has fewer than k nodes.
//
// Deterministic strategies compute one round and replicate it across all
// iterations. The random strategy draws every round afresh, so a seeded
// *rand.Rand makes a whole schedule reproducible.
package seeding
