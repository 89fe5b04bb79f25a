// File: transpose.go
// Role: adapt a DirectedNode's inbound adjacency into the Handle shape,
// giving the traversal engine an "inbound" view without a second engine.
package node

// transposeHandle wraps a DirectedNode so that OutEdges walks its inbound
// list instead of its outbound one, with Source/Target swapped so the
// traversal engine still sees edges pointing away from the current node.
type transposeHandle[K comparable, N any, E comparable] struct {
	*DirectedNode[K, N, E]
}

// Transpose returns a Handle over n's inbound adjacency: traversing it
// walks edges against their original direction. Grounded in spec §4.3's
// "inbound via a transpose view."
func Transpose[K comparable, N any, E comparable](n *DirectedNode[K, N, E]) Handle[K, N, E] {
	return transposeHandle[K, N, E]{n}
}

// OutEdges reports n's inbound edges with Source and Target swapped, so
// callers walking the transpose see a consistent forward direction. Each
// Target is itself a transpose view, so a traversal keeps walking inbound
// edges past the first hop.
func (t transposeHandle[K, N, E]) OutEdges() func(yield func(Edge[K, N, E]) bool) {
	return func(yield func(Edge[K, N, E]) bool) {
		for _, e := range t.DirectedNode.in {
			src := e.Source.(*DirectedNode[K, N, E])
			swapped := Edge[K, N, E]{Source: t, Target: transposeHandle[K, N, E]{src}, Weight: e.Weight}
			if !yield(swapped) {
				return
			}
		}
	}
}
