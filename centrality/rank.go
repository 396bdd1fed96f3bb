package centrality

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pandemaniac/core"
)

// TopK returns the IDs of the min(k, len(s)) highest scores.
//
// Ties keep score-computation order: the sort is stable on descending value,
// so among equal scores the vertex enumerated first wins. The input is not
// modified. k <= 0 yields an empty slice.
//
// Complexity: O(n log n).
func TopK(s Scores, k int) []string {
	if k <= 0 {
		return []string{}
	}
	sorted := make(Scores, len(s))
	copy(sorted, s)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})
	if k > len(sorted) {
		k = len(sorted)
	}

	return sorted[:k].IDs()
}

// Rank scores every vertex of g with fn and returns the k best, see TopK.
//
// Errors:
//   - core.ErrNilGraph if g is nil.
//   - ErrOptionViolation if k < 0.
//   - ErrInsufficientNodes if g has fewer than k vertices.
//   - Any error from fn.
func Rank(g *core.Graph, fn Func, k int, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: negative seed count (%d)", ErrOptionViolation, k)
	}
	if n := g.VertexCount(); n < k {
		return nil, fmt.Errorf("%w: %d requested, graph has %d", ErrInsufficientNodes, k, n)
	}
	scores, err := fn(g, opts...)
	if err != nil {
		return nil, err
	}

	return TopK(scores, k), nil
}
