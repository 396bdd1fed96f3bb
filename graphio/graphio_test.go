// SPDX-License-Identifier: MIT
package graphio_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/pandemaniac/builder"
	"github.com/katalvlaran/pandemaniac/core"
	"github.com/katalvlaran/pandemaniac/graphio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGraph_DocumentOrder(t *testing.T) {
	g, err := graphio.ReadGraph(strings.NewReader(`{"2":["1","3"],"1":[2],"3":[]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1", "3"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("1", "2"))
	assert.True(t, g.HasEdge("3", "2"))
}

func TestReadGraph_UnlistedNeighborsAndSelfLoops(t *testing.T) {
	g, err := graphio.ReadGraph(strings.NewReader(`{"A":["Z","A"],"B":["A", true]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "Z", "true"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	assert.False(t, g.HasEdge("A", "A"))
}

func TestReadGraph_Malformed(t *testing.T) {
	docs := []string{
		`not json`,
		`[["A","B"]]`,
		`{"A":"B"}`,
		`{"A":[{"x":1}]}`,
		`{"A":[null]}`,
		`{"A":[""]}`,
		`{"":[]}`,
	}
	for _, doc := range docs {
		_, err := graphio.ReadGraph(strings.NewReader(doc))
		assert.ErrorIs(t, err, graphio.ErrMalformedGraph, doc)
	}
}

func TestGraph_RoundTrip(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a.b", "x*y"))
	require.NoError(t, g.AddEdge("x*y", "7"))
	require.NoError(t, g.AddEdge("c:d", "a.b"))
	require.NoError(t, g.AddVertex("lonely"))

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteGraph(&buf, g))

	back, err := graphio.ReadGraph(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())
	for _, e := range g.Edges() {
		assert.True(t, back.HasEdge(e.From, e.To), "%s-%s", e.From, e.To)
	}

	assert.ErrorIs(t, graphio.WriteGraph(&buf, nil), core.ErrNilGraph)
}

func TestSaveAndLoadGraph(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(5)}, builder.RandomSparse(25, 0.2))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "2.10.31.json")
	require.NoError(t, graphio.SaveGraph(path, g))

	back, err := graphio.LoadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())

	_, err = graphio.LoadGraph(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWriteSchedule(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteSchedule(&buf, []string{"3", "1", "3", "1"}))
	assert.Equal(t, "3\n1\n3\n1\n", buf.String())

	buf.Reset()
	require.NoError(t, graphio.WriteSchedule(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestSaveSchedule(t *testing.T) {
	dir := t.TempDir()
	path := graphio.OutputPath(dir, "graphs/2.10.31.json", "D")
	assert.Equal(t, filepath.Join(dir, "2.10.31_d.txt"), path)

	require.NoError(t, graphio.SaveSchedule(path, []string{"A", "B"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A\nB\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be renamed away")
}

func TestNames(t *testing.T) {
	assert.Equal(t, "2.10.31.json", graphio.GraphPath("2.10.31"))
	assert.Equal(t, "2.10.31.json", graphio.GraphPath("2.10.31.json"))
	assert.Equal(t, "2.10.31", graphio.GameName("some/dir/2.10.31.json"))
	assert.Equal(t, "2.10.31", graphio.GameName("2.10.31"))
}
