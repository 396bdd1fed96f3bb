// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/pandemaniac/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// buildSquare returns the 4-cycle A-B-C-D-A, edges added in that order.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB))
	require.NoError(t, g.AddEdge(VertexB, VertexC))
	require.NoError(t, g.AddEdge(VertexC, VertexD))
	require.NoError(t, g.AddEdge(VertexD, VertexA))

	return g
}

func TestAddVertex_InsertionOrderAndIndex(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"z", "a", "m"} {
		require.NoError(t, g.AddVertex(id))
	}
	// Re-adding is a no-op and must not move the vertex.
	require.NoError(t, g.AddVertex("z"))

	assert.Equal(t, []string{"z", "a", "m"}, g.Vertices())
	assert.Equal(t, 3, g.VertexCount())

	v, err := g.Vertex("m")
	require.NoError(t, err)
	assert.Equal(t, 2, v.Index)

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	_, err = g.Vertex("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Vertex("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddEdge("", VertexB), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge(VertexA, VertexA), core.ErrLoopNotAllowed)

	require.NoError(t, g.AddEdge(VertexA, VertexB))
	assert.ErrorIs(t, g.AddEdge(VertexA, VertexB), core.ErrMultiEdgeNotAllowed)
	assert.ErrorIs(t, g.AddEdge(VertexB, VertexA), core.ErrMultiEdgeNotAllowed, "undirected mirror counts as parallel")

	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.True(t, g.HasEdge(VertexB, VertexA))
	assert.False(t, g.HasEdge(VertexA, VertexC))
}

func TestDegreeAndNeighbors(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.AddVertex("Lonely"))

	d, err := g.Degree(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	d, err = g.Degree("Lonely")
	require.NoError(t, err)
	assert.Zero(t, d)

	nbrs, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB, VertexD}, nbrs)

	_, err = g.Degree("nope")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestEdges_FirstSightingOrder(t *testing.T) {
	g := core.NewGraph()
	// Insert so that adjacency order differs from edge insertion order.
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexB))
	require.NoError(t, g.AddVertex(VertexC))
	require.NoError(t, g.AddEdge(VertexB, VertexC))
	require.NoError(t, g.AddEdge(VertexA, VertexC))
	require.NoError(t, g.AddEdge(VertexB, VertexA))

	want := []core.Edge{
		{From: VertexA, To: VertexC},
		{From: VertexA, To: VertexB},
		{From: VertexB, To: VertexC},
	}
	assert.Equal(t, want, g.Edges())
}

func TestAdjacencyListAndSnapshot(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.AddVertex("E"))

	adj := g.AdjacencyList()
	assert.Equal(t, []string{VertexA, VertexC}, adj[VertexB])
	assert.NotNil(t, adj["E"])
	assert.Empty(t, adj["E"])

	// Mutating the copy must not leak into the graph.
	adj[VertexB][0] = "X"
	nbrs, _ := g.NeighborIDs(VertexB)
	assert.Equal(t, VertexA, nbrs[0])

	s := g.Snapshot()
	assert.Equal(t, []string{VertexA, VertexB, VertexC, VertexD, "E"}, s.IDs)
	assert.Equal(t, []int{1, 3}, s.Adj[0])
	assert.Empty(t, s.Adj[4])
}

func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 1; i < 50; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("v%d", i-1), fmt.Sprintf("v%d", i)))
	}

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for r := 0; r < 32; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if len(g.Edges()) != 49 {
				errs <- fmt.Errorf("unexpected edge count")
			}
			if _, err := g.NeighborIDs("v10"); err != nil {
				errs <- err
			}
			_ = g.Snapshot()
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
