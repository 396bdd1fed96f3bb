// SPDX-License-Identifier: MIT
//
// bfs.go — breadth-first search and connected components.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
)

// BFS runs breadth-first search on g from startID. Neighbors are expanded in
// edge insertion order, so the result is deterministic.
//
// Errors: core.ErrNilGraph, ErrStartVertexNotFound, ErrOptionViolation, or
// the context error when cancelled.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	res := &Result{
		Order:  []string{},
		Depth:  map[string]int{startID: 0},
		Parent: map[string]string{},
	}
	queue := []string{startID}
	for head := 0; head < len(queue); head++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		cur := queue[head]
		res.Order = append(res.Order, cur)

		next := res.Depth[cur] + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		nbrs, err := g.NeighborIDs(cur)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", cur, err)
		}
		for _, nb := range nbrs {
			if _, seen := res.Depth[nb]; seen || !o.FilterNeighbor(cur, nb) {
				continue
			}
			res.Depth[nb] = next
			res.Parent[nb] = cur
			queue = append(queue, nb)
		}
	}

	return res, nil
}

// Components returns the connected components of g. Components are ordered
// by their first vertex in graph order; each lists its vertices in BFS order
// from that vertex.
//
// Complexity: O(V + E).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// Stats summarizes the component structure of a graph.
type Stats struct {
	Components int
	Largest    int
	Isolated   int
}

// Summarize computes Stats for g.
func Summarize(g *core.Graph) (Stats, error) {
	comps, err := Components(g)
	if err != nil {
		return Stats{}, err
	}
	var s Stats
	s.Components = len(comps)
	for _, c := range comps {
		if len(c) > s.Largest {
			s.Largest = len(c)
		}
		if len(c) == 1 {
			s.Isolated++
		}
	}

	return s, nil
}
