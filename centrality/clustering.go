package centrality

import "github.com/katalvlaran/pandemaniac/core"

// Clustering returns the local clustering coefficient of every vertex:
// the fraction of pairs of its neighbors that are themselves adjacent,
// 2·T(v) / (deg(v)·(deg(v)-1)). Vertices with degree < 2 score 0.
//
// Complexity: O(Σ deg(v)²) time, O(V) extra space.
func Clustering(g *core.Graph, _ ...Option) (Scores, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	snap := g.Snapshot()
	n := len(snap.IDs)
	out := make(Scores, n)

	// mark[u] == v+1 while u is a neighbor of the vertex v being scored.
	mark := make([]int, n)
	for v := 0; v < n; v++ {
		out[v] = Score{ID: snap.IDs[v]}
		deg := len(snap.Adj[v])
		if deg < 2 {
			continue
		}
		for _, u := range snap.Adj[v] {
			mark[u] = v + 1
		}
		// Each triangle through v is seen once from each of its two other corners.
		var links int
		for _, u := range snap.Adj[v] {
			for _, w := range snap.Adj[u] {
				if mark[w] == v+1 {
					links++
				}
			}
		}
		out[v].Value = float64(links) / float64(deg*(deg-1))
	}

	return out, nil
}
