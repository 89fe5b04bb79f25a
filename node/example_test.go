package node_test

import (
	"fmt"

	"github.com/katalvlaran/nodegraph/node"
)

// ExampleDirectedNode_Connect builds a tiny directed chain and walks it
// with IterOut.
func ExampleDirectedNode_Connect() {
	a := node.NewDirected[string, int, int64]("A", 0)
	b := node.NewDirected[string, int, int64]("B", 0)
	a.Connect(b, 5)

	for e := range a.IterOut() {
		fmt.Println(e.Target.Key(), e.Weight)
	}
	// Output:
	// B 5
}

// ExampleTranspose shows the inbound view of a directed node: walking B's
// transpose yields A, even though A→B is the only edge ever created.
func ExampleTranspose() {
	a := node.NewDirected[string, int, int64]("A", 0)
	b := node.NewDirected[string, int, int64]("B", 0)
	a.Connect(b, 0)

	for e := range node.Transpose(b).OutEdges() {
		fmt.Println(e.Target.Key())
	}
	// Output:
	// A
}
