package core_test

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
)

// ExampleGraph demonstrates basic creation and ordered queries.
func ExampleGraph() {
	// 1) Create an undirected graph; AddEdge auto-adds vertices.
	g := core.NewGraph()
	_ = g.AddEdge("B", "A")
	_ = g.AddEdge("A", "C")
	_ = g.AddEdge("C", "B")

	// 2) Enumeration follows insertion order, not lexicographic order.
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge A-B exists?", g.HasEdge("A", "B"))
	fmt.Println("Edges:", g.Edges())

	// Output:
	// Vertices: [B A C]
	// Edge A-B exists? true
	// Edges: [{B A} {B C} {A C}]
}
