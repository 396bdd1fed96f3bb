package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/pandemaniac/core"         // core.Graph, core.Edge, and core error types
	"github.com/katalvlaran/pandemaniac/prim_kruskal" // package under test
	"github.com/stretchr/testify/assert"              // assertion library
	"github.com/stretchr/testify/require"
)

// triangleWeights gives A—B cost 1, B—C cost 2, A—C cost 3.
func triangleWeights(from, to string) int64 {
	key := from + to
	switch key {
	case "AB", "BA":
		return 1
	case "BC", "CB":
		return 2
	default:
		return 3
	}
}

// buildTriangle constructs the triangle A—B, B—C, A—C.
func buildTriangle() *core.Graph {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("A", "C")

	return g
}

// buildMediumGraph creates a connected graph with n vertices and edgesCount edges:
// a chain V0—V1—...—V(n-1) for connectivity, then random extra edges.
// The random number generator is seeded deterministically for reproducibility.
func buildMediumGraph(n, edgesCount int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("V%d", i))
	}
	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i))
	}
	for added := n - 1; added < edgesCount; {
		u, v := r.Intn(n), r.Intn(n)
		if err := g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v)); err == nil {
			added++ // loops and duplicates are rejected by core and not counted
		}
	}

	return g
}

// edgeNames normalizes undirected edges to "lo-hi" keys.
func edgeNames(edges []core.Edge) map[string]bool {
	names := make(map[string]bool, len(edges))
	for _, e := range edges {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		names[fmt.Sprintf("%s-%s", u, v)] = true
	}

	return names
}

// TestValidation verifies sentinel errors on bad input.
func TestValidation(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil, nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, _, err = prim_kruskal.Prim(nil, "A", nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	g := buildTriangle()
	_, _, err = prim_kruskal.Prim(g, "", nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)

	_, _, err = prim_kruskal.Prim(g, "Z", nil)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, _, err = prim_kruskal.Forest(g, prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

// TestWeightedTriangle ensures both algorithms pick {A—B, B—C} with total 3.
func TestWeightedTriangle(t *testing.T) {
	g := buildTriangle()

	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		opts := prim_kruskal.NewOptions(
			prim_kruskal.WithMethod(method),
			prim_kruskal.WithRoot("A"),
			prim_kruskal.WithWeight(triangleWeights),
		)
		mst, total, err := prim_kruskal.Compute(g, opts)
		require.NoError(t, err, method)
		assert.Equal(t, int64(3), total, method)
		names := edgeNames(mst)
		assert.True(t, names["A-B"], method)
		assert.True(t, names["B-C"], method)
	}
}

// TestUnitWeights_FollowsEnumerationOrder pins which tree is chosen when all costs tie.
func TestUnitWeights_FollowsEnumerationOrder(t *testing.T) {
	g := buildTriangle()

	mst, total, err := prim_kruskal.Kruskal(g, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	// Edges() order is A-B, A-C, B-C; the first two already span.
	assert.Equal(t, []core.Edge{{From: "A", To: "B"}, {From: "A", To: "C"}}, mst)

	tree, _, err := prim_kruskal.Prim(g, "B", prim_kruskal.Unit)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: "B", To: "A"}, {From: "B", To: "C"}}, tree)
}

// TestSingleAndEmptyGraph verifies the trivial cases.
func TestSingleAndEmptyGraph(t *testing.T) {
	empty := core.NewGraph()
	mst, total, err := prim_kruskal.Kruskal(empty, nil)
	assert.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, total)

	g := core.NewGraph()
	_ = g.AddVertex("X")
	mstP, totalP, errP := prim_kruskal.Prim(g, "X", nil)
	assert.NoError(t, errP)
	assert.Empty(t, mstP)
	assert.Zero(t, totalP)
}

// TestForest_Disconnected verifies one tree per component and that isolated vertices survive.
func TestForest_Disconnected(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")
	_ = g.AddEdge("D", "E")
	_ = g.AddVertex("F")

	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		forest, total, err := prim_kruskal.Forest(g, prim_kruskal.NewOptions(prim_kruskal.WithMethod(method)))
		require.NoError(t, err, method)
		assert.Equal(t, g.Vertices(), forest.Vertices(), method)
		assert.Equal(t, 3, forest.EdgeCount(), method) // (3-1) + (2-1) + 0
		assert.Equal(t, int64(3), total, method)
		assert.True(t, forest.HasEdge("D", "E"), method)
		d, _ := forest.Degree("F")
		assert.Zero(t, d, method)
	}
}

// TestForest_PrimRootFirst verifies that a configured root seeds its component's tree.
func TestForest_PrimRootFirst(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	forest, _, err := prim_kruskal.Forest(g, prim_kruskal.NewOptions(
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim),
		prim_kruskal.WithRoot("C"),
	))
	require.NoError(t, err)
	assert.True(t, forest.HasEdge("C", "B"))
	assert.True(t, forest.HasEdge("C", "A"))
	assert.False(t, forest.HasEdge("A", "B"))

	_, _, err = prim_kruskal.Forest(g, prim_kruskal.NewOptions(
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim),
		prim_kruskal.WithRoot("Z"),
	))
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestComparison_MediumGraph compares Prim vs. Kruskal on a larger random graph.
func TestComparison_MediumGraph(t *testing.T) {
	g := buildMediumGraph(10, 20)
	weight := func(from, to string) int64 { return int64(len(from) + len(to)) }

	mstK, totalK, errK := prim_kruskal.Kruskal(g, weight)
	require.NoError(t, errK)
	assert.Len(t, mstK, g.VertexCount()-1)

	mstP, totalP, errP := prim_kruskal.Prim(g, "V0", weight)
	require.NoError(t, errP)
	assert.Len(t, mstP, g.VertexCount()-1)

	assert.Equal(t, totalK, totalP, "Prim and Kruskal must agree on MST weight")
}
