// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/katalvlaran/pandemaniac/builder"
	"github.com/katalvlaran/pandemaniac/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilders_Functional runs table-driven checks for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []string{"0", "1", "2", "3"}, g.Vertices())
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("2", "3"))
				assert.False(t, g.HasEdge("0", "3"))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("4", "0"))
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, "Center", g.Vertices()[0])
				d, err := g.Degree("Center")
				require.NoError(t, err)
				assert.Equal(t, 4, d)
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree("0")
				require.NoError(t, err)
				assert.Equal(t, 3, d)
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0", "1"))
				assert.True(t, g.HasEdge("0", "3"))
				assert.False(t, g.HasEdge("2", "3"))
			},
		},
		{
			name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1), wantV: 5, wantE: 10,
		},
		{
			name: "RandomSparse(5,0)", ctor: builder.RandomSparse(5, 0), wantV: 5, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Grid(0,2)", builder.Grid(0, 2), builder.ErrTooFewVertices},
		{"RandomSparse(3,1.5)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(3,0.5) no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.BuildGraph(nil, tc.ctor)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	assert.Equal(t, a.Vertices(), b.Vertices())
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestBuildGraph_Compose(t *testing.T) {
	// K3 on A,B,C followed by a path over the same IDs adds nothing new.
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Complete(3),
		builder.Path(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestByName(t *testing.T) {
	for _, kind := range builder.Kinds() {
		ctor, err := builder.ByName(kind, 4, 1)
		require.NoError(t, err, kind)
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, ctor)
		require.NoError(t, err, kind)
		assert.Positive(t, g.VertexCount(), kind)
	}

	ctor, err := builder.ByName(" STAR ", 3, 0)
	require.NoError(t, err)
	g, err := builder.BuildGraph(nil, ctor)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())

	_, err = builder.ByName("hexagram", 3, 0)
	assert.ErrorIs(t, err, builder.ErrUnknownKind)
}
