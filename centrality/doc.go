// Package centrality scores the vertices of a *core.Graph by structural
// importance and picks the best ones.
//
// Measures (all of type Func):
//
//	Degree       – deg(v)/(n-1)
//	Betweenness  – normalized Brandes shortest-path betweenness
//	Eigenvector  – principal eigenvector of A by power iteration on A+I
//	Katz         – attenuated walk counts, x = α·A·x + β
//	Clustering   – local clustering coefficient
//
// Every measure returns Scores in the vertex order of the input graph. Rank
// and TopK select the k best with a stable descending sort, so equal scores
// tie-break by that order; callers that want a different tie-break must
// reorder the vertices of the graph, not the scores.
//
// Eigenvector and Katz accept Options (WithTolerance, WithMaxIter, WithAlpha,
// WithBeta). Invalid options are recorded and reported as ErrOptionViolation
// when the measure runs.
//
// Errors:
//
//	ErrInsufficientNodes – Rank asked for more nodes than the graph holds
//	ErrNoConvergence     – power iteration exceeded MaxIter
//	ErrEmptyGraph        – eigenvector centrality of an empty graph
//	ErrOptionViolation   – bad option value or negative k
package centrality
