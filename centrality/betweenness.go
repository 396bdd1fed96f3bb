package centrality

import "github.com/katalvlaran/pandemaniac/core"

// Betweenness returns the normalized shortest-path betweenness of every vertex
// (Brandes' algorithm, one BFS per source on the unweighted graph).
//
// Normalization divides the accumulated dependencies by (n-1)(n-2), so a
// vertex lying on every shortest path between all other pairs scores 1.
// Graphs with n <= 2 are left unscaled (all scores are 0 there anyway).
//
// Complexity: O(V·E) time, O(V + E) space.
func Betweenness(g *core.Graph, _ ...Option) (Scores, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	snap := g.Snapshot()
	n := len(snap.IDs)
	cb := make([]float64, n)

	var (
		stack = make([]int, 0, n)
		queue = make([]int, 0, n)
		preds = make([][]int, n)
		sigma = make([]float64, n)
		dist  = make([]int, n)
		delta = make([]float64, n)
	)
	for s := 0; s < n; s++ {
		stack = stack[:0]
		queue = queue[:0]
		for i := 0; i < n; i++ {
			preds[i] = preds[i][:0]
			sigma[i] = 0
			dist[i] = -1
			delta[i] = 0
		}
		sigma[s] = 1
		dist[s] = 0
		queue = append(queue, s)

		// Forward phase: count shortest paths.
		for head := 0; head < len(queue); head++ {
			v := queue[head]
			stack = append(stack, v)
			for _, w := range snap.Adj[v] {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					preds[w] = append(preds[w], v)
				}
			}
		}

		// Backward phase: accumulate dependencies in reverse BFS order.
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range preds[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				cb[w] += delta[w]
			}
		}
	}

	scale := 1.0
	if n > 2 {
		scale = 1.0 / float64((n-1)*(n-2))
	}
	out := make(Scores, n)
	for i, id := range snap.IDs {
		out[i] = Score{ID: id, Value: cb[i] * scale}
	}

	return out, nil
}
