package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pandemaniac/core"
)

// Eigenvector returns the eigenvector centrality of every vertex: the
// components of the principal eigenvector of the adjacency matrix A,
// approximated by power iteration.
//
// Implementation:
//   - Start from the uniform vector 1/n.
//   - Iterate x ← (A+I)·x; the identity shift keeps bipartite graphs from
//     oscillating and does not change the eigenvectors.
//   - L2-normalize every step; stop once Σ|x - xlast| < n·Tolerance.
//
// Options: WithTolerance (default 1e-6), WithMaxIter (default 100).
//
// Errors:
//   - ErrEmptyGraph on a graph without vertices.
//   - ErrNoConvergence after MaxIter iterations.
//
// Complexity: O(MaxIter·(V + E)).
func Eigenvector(g *core.Graph, opts ...Option) (Scores, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	o, err := resolve(Options{Tolerance: DefaultTolerance, MaxIter: DefaultEigenvectorMaxIter}, opts)
	if err != nil {
		return nil, err
	}
	snap := g.Snapshot()
	n := len(snap.IDs)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / float64(n)
	}
	xlast := make([]float64, n)
	for iter := 0; iter < o.MaxIter; iter++ {
		copy(xlast, x)
		for v := 0; v < n; v++ {
			for _, w := range snap.Adj[v] {
				x[w] += xlast[v]
			}
		}
		normalize(x)
		if l1Diff(x, xlast) < float64(n)*o.Tolerance {
			return toScores(snap.IDs, x), nil
		}
	}

	return nil, fmt.Errorf("%w: eigenvector after %d iterations", ErrNoConvergence, o.MaxIter)
}

// normalize scales x to unit L2 norm; a zero vector is left untouched.
func normalize(x []float64) {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return
	}
	for i := range x {
		x[i] /= norm
	}
}

func l1Diff(a, b []float64) float64 {
	var d float64
	for i := range a {
		d += math.Abs(a[i] - b[i])
	}

	return d
}

func toScores(ids []string, x []float64) Scores {
	out := make(Scores, len(ids))
	for i, id := range ids {
		out[i] = Score{ID: id, Value: x[i]}
	}

	return out
}
