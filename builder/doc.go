// Package builder generates deterministic synthetic graphs: test fixtures for
// the rankers and extractors, and stand-in tournament graphs for the
// generate command.
//
// Components:
//
//   - BuildGraph(opts, cons...) - the single orchestrator; applies
//     constructors in order on a fresh *core.Graph.
//   - Constructors: Complete, Path, Cycle, Star, Wheel, Grid, RandomSparse.
//     ByName/Kinds expose them by name.
//   - Options: WithIDScheme, WithSymbolIDs, WithExcelColumnIDs, WithSymbNumb,
//     WithRand, WithSeed.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs, vertex
//     order included.
//   - Constructors compose: an edge already present is skipped.
//   - Invalid sizes or probabilities return sentinels (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource); option constructors panic on
//     nil arguments.
package builder
