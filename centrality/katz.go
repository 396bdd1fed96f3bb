package centrality

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
)

// Katz returns the Katz centrality of every vertex: an attenuated count of
// the walks ending at the vertex, x = α·A·x + β.
//
// Implementation:
//   - Start from the zero vector and iterate x ← α·A·xlast + β.
//   - Stop once Σ|x - xlast| < n·Tolerance, then L2-normalize the result.
//   - The series only converges for α < 1/λmax; a too large α surfaces as
//     ErrNoConvergence rather than as overflowed scores.
//
// Options: WithAlpha (default 0.1), WithBeta (default 1), WithTolerance
// (default 1e-6), WithMaxIter (default 1000).
//
// An empty graph yields empty Scores.
//
// Complexity: O(MaxIter·(V + E)).
func Katz(g *core.Graph, opts ...Option) (Scores, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	o, err := resolve(Options{
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultKatzMaxIter,
		Alpha:     DefaultKatzAlpha,
		Beta:      DefaultKatzBeta,
	}, opts)
	if err != nil {
		return nil, err
	}
	snap := g.Snapshot()
	n := len(snap.IDs)
	if n == 0 {
		return Scores{}, nil
	}

	x := make([]float64, n)
	xlast := make([]float64, n)
	for iter := 0; iter < o.MaxIter; iter++ {
		copy(xlast, x)
		for i := range x {
			x[i] = 0
		}
		for v := 0; v < n; v++ {
			for _, w := range snap.Adj[v] {
				x[w] += xlast[v]
			}
		}
		for i := range x {
			x[i] = o.Alpha*x[i] + o.Beta
		}
		if l1Diff(x, xlast) < float64(n)*o.Tolerance {
			normalize(x)
			return toScores(snap.IDs, x), nil
		}
	}

	return nil, fmt.Errorf("%w: katz (alpha=%g) after %d iterations", ErrNoConvergence, o.Alpha, o.MaxIter)
}
