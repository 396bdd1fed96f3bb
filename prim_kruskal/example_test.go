package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
	"github.com/katalvlaran/pandemaniac/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal’s algorithm on a weighted triangle.
// The MST is {A–B, B–C} with total weight = 3.
func ExampleKruskal() {
	// 1. Construct the triangle topology.
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("A", "C")

	// 2. Costs live outside the graph.
	cost := map[string]int64{"AB": 1, "BC": 2, "AC": 4}
	weight := func(from, to string) int64 {
		if c, ok := cost[from+to]; ok {
			return c
		}
		return cost[to+from]
	}

	// 3. Run Kruskal’s algorithm.
	edges, total, err := prim_kruskal.Kruskal(g, weight)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4. Print the total weight and the list of edges in the MST.
	fmt.Printf("Total: %d, Edges: ", total)
	for i, e := range edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 3, Edges: A-B B-C
}

// ExampleForest shows the unit-weight spanning forest of a disconnected graph.
func ExampleForest() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddVertex("C")

	forest, _, err := prim_kruskal.Forest(g, prim_kruskal.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(forest.Vertices(), forest.EdgeCount())
	// Output: [A B C] 1
}
