package centrality

import "github.com/katalvlaran/pandemaniac/core"

// Degree returns the degree centrality of every vertex: the fraction of the
// other n-1 vertices it is adjacent to. When n <= 1 every vertex scores 1.
//
// Complexity: O(V + E).
func Degree(g *core.Graph, _ ...Option) (Scores, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	snap := g.Snapshot()
	n := len(snap.IDs)
	out := make(Scores, n)
	if n <= 1 {
		for i, id := range snap.IDs {
			out[i] = Score{ID: id, Value: 1}
		}
		return out, nil
	}

	scale := 1.0 / float64(n-1)
	for i, id := range snap.IDs {
		out[i] = Score{ID: id, Value: float64(len(snap.Adj[i])) * scale}
	}

	return out, nil
}
