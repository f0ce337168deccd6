package core_test

import (
	"fmt"

	"github.com/katalvlaran/isingraph/core"
)

// ExampleGraph demonstrates building a small coupling graph and reading it back.
func ExampleGraph() {
	g := core.NewGraph()

	// Couple a triangle; vertices are auto-added in call order (sites 0,1,2).
	_, _ = g.AddEdge("A", "B", 1.5)
	_, _ = g.AddEdge("B", "C", -1)
	_, _ = g.AddEdge("C", "A", 0.25)

	fmt.Println("Sites:", g.Vertices())
	w, _ := g.Weight("B", "A")
	fmt.Println("J(A,B) =", w)
	nbrs, _ := g.NeighborIDs("C")
	fmt.Println("Neighbors of C:", nbrs)

	// Output:
	// Sites: [A B C]
	// J(A,B) = 1.5
	// Neighbors of C: [A B]
}
