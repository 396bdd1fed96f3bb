// SPDX-License-Identifier: MIT
//
// File: read.go
// Role: adjacency-JSON decoding into *core.Graph.

package graphio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/pandemaniac/core"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// GraphExt is the extension of graph files.
const GraphExt = ".json"

// ErrMalformedGraph indicates a graph document that is not a JSON object of
// scalar arrays.
var ErrMalformedGraph = errors.New("graphio: malformed graph document")

// ReadGraph decodes an adjacency document.
//
// Rules:
//   - Every key becomes a vertex, in document order.
//   - Each listed neighbor becomes an undirected edge; a neighbor that is not
//     itself a key is appended after all keys, on first mention.
//   - Numbers and booleans are stringified with their JSON spelling.
//   - Self references and repeated edges (A lists B and B lists A) are
//     skipped.
//
// Errors: ErrMalformedGraph (wrapped with the offending key) or the reader's
// error.
func ReadGraph(r io.Reader) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read graph")
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedGraph)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object, got %s", ErrMalformedGraph, doc.Type)
	}

	g := core.NewGraph()

	// Pass 1: keys fix the vertex order.
	var perr error
	doc.ForEach(func(key, _ gjson.Result) bool {
		if perr = g.AddVertex(key.String()); perr != nil {
			perr = fmt.Errorf("%w: key %q: %v", ErrMalformedGraph, key.String(), perr)
			return false
		}
		return true
	})
	if perr != nil {
		return nil, perr
	}

	// Pass 2: edges in listing order.
	doc.ForEach(func(key, value gjson.Result) bool {
		from := key.String()
		if !value.IsArray() {
			perr = fmt.Errorf("%w: neighbors of %q must be an array, got %s", ErrMalformedGraph, from, value.Type)
			return false
		}
		value.ForEach(func(_, nb gjson.Result) bool {
			to, ok := scalar(nb)
			if !ok {
				perr = fmt.Errorf("%w: neighbor of %q must be a scalar, got %s", ErrMalformedGraph, from, nb.Raw)
				return false
			}
			if to == from || g.HasEdge(from, to) {
				return true
			}
			if err := g.AddEdge(from, to); err != nil {
				perr = fmt.Errorf("%w: edge %q-%q: %v", ErrMalformedGraph, from, to, err)
				return false
			}
			return true
		})
		return perr == nil
	})
	if perr != nil {
		return nil, perr
	}

	return g, nil
}

// scalar stringifies a JSON string, number or boolean.
func scalar(r gjson.Result) (string, bool) {
	switch r.Type {
	case gjson.String, gjson.Number, gjson.True, gjson.False:
		s := r.String()
		return s, s != ""
	default:
		return "", false
	}
}

// LoadGraph reads the graph file at path.
func LoadGraph(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open graph %s", path)
	}
	defer f.Close()

	g, err := ReadGraph(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load graph %s", path)
	}

	return g, nil
}

// GraphPath appends GraphExt to name unless it already ends with it, so both
// "2.10.31" and "2.10.31.json" name the same file.
func GraphPath(name string) string {
	if strings.HasSuffix(name, GraphExt) {
		return name
	}
	return name + GraphExt
}

// GameName returns the base name of a graph path without directory and
// GraphExt, e.g. "graphs/2.10.31.json" → "2.10.31".
func GameName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), GraphExt)
}
