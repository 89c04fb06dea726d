package elimorder_test

import (
	"fmt"

	"github.com/pgmgo/pgmgo/core"
	"github.com/pgmgo/pgmgo/elimorder"
)

// ExampleGreedyMetric orders a star graph: leaves first, hub last, with
// fill-in edges recorded in the returned working copy.
func ExampleGreedyMetric() {
	g := core.NewGraph()
	for _, id := range []string{"hub", "a", "b", "c"} {
		_ = g.AddVertex(id)
	}
	for _, leaf := range []string{"a", "b", "c"} {
		_ = g.AddEdge("hub", leaf)
	}

	ord, work, _ := elimorder.GreedyMetric(g, []string{"hub", "a", "b", "c"})
	fmt.Println("sequence:", ord.Sequence())
	fmt.Println("original edges:", g.EdgeCount())
	fmt.Println("working edges:", work.EdgeCount())
	// Output:
	// sequence: [a b c hub]
	// original edges: 3
	// working edges: 3
}
