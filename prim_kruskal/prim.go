// Package prim_kruskal provides an implementation of Prim’s spanning tree
// algorithm and a forest driver on top of both algorithms.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/pandemaniac/core"
)

// Prim grows a minimum spanning tree of root's connected component.
//
// Error Conditions:
//   - ErrInvalidGraph       : graph is nil.
//   - ErrEmptyRoot          : root == "".
//   - core.ErrVertexNotFound: root is not in graph.
//
// Equal-weight candidates leave the heap in push order, so with Unit weights
// the tree is the breadth-first tree of root following adjacency order.
//
// Complexity: O(E log V). Memory: O(V + E).
func Prim(graph *core.Graph, root string, weight WeightFn) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}
	if weight == nil {
		weight = Unit
	}

	visited := map[string]bool{root: true}
	tree := make([]core.Edge, 0)
	var totalWeight int64

	pq := &edgePQ{}
	heap.Init(pq)
	var seq int

	push := func(from string) error {
		nbrs, err := graph.NeighborIDs(from)
		if err != nil {
			return err
		}
		for _, to := range nbrs {
			if !visited[to] {
				heap.Push(pq, candidate{edge: core.Edge{From: from, To: to}, weight: weight(from, to), seq: seq})
				seq++
			}
		}

		return nil
	}

	if err := push(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 {
		c := heap.Pop(pq).(candidate)
		v := c.edge.To
		if visited[v] {
			continue
		}
		visited[v] = true
		tree = append(tree, c.edge)
		totalWeight += c.weight
		if err := push(v); err != nil {
			return nil, 0, err
		}
	}

	return tree, totalWeight, nil
}

// Forest returns a minimum spanning forest as a graph holding every vertex of
// graph and only the forest edges.
//
// With MethodKruskal it is Kruskal's forest. With MethodPrim, Prim is run from
// the first vertex (in graph order) of each component not yet covered;
// opts.Root, when set, is grown first.
//
// Error Conditions:
//   - ErrInvalidGraph: nil graph or unknown method.
//   - core.ErrVertexNotFound: opts.Root set but absent.
func Forest(graph *core.Graph, opts MSTOptions) (*core.Graph, int64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	w := opts.Weight
	if w == nil {
		w = Unit
	}

	var (
		edges []core.Edge
		total int64
	)
	switch opts.Method {
	case MethodKruskal:
		var err error
		if edges, total, err = Kruskal(graph, w); err != nil {
			return nil, 0, err
		}
	case MethodPrim:
		roots := graph.Vertices()
		if opts.Root != "" {
			if !graph.HasVertex(opts.Root) {
				return nil, 0, core.ErrVertexNotFound
			}
			roots = append([]string{opts.Root}, roots...)
		}
		covered := make(map[string]bool, len(roots))
		for _, r := range roots {
			if covered[r] {
				continue
			}
			tree, cost, err := Prim(graph, r, w)
			if err != nil {
				return nil, 0, err
			}
			covered[r] = true
			for _, e := range tree {
				covered[e.To] = true
			}
			edges = append(edges, tree...)
			total += cost
		}
	default:
		return nil, 0, ErrInvalidGraph
	}

	forest, err := core.SpanningSubgraph(graph, edges)
	if err != nil {
		return nil, 0, err
	}

	return forest, total, nil
}

// candidate is a heap entry: an edge leaving the tree, its cost and push sequence.
type candidate struct {
	edge   core.Edge
	weight int64
	seq    int
}

// edgePQ is a min-heap by (weight, seq).
type edgePQ []candidate

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
