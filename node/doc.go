// Package node defines the connected-node graph model: self-contained
// vertices that carry their own adjacency and expose it directly, so a
// graph need not be mediated by any container.
//
// Two flavors share the same neighbor-selection capability (Handle) so the
// traversal engine in package search is oblivious to orientation:
//
//	DirectedNode[K,N,E]   — asymmetric adjacency: Connect appends to the
//	                        source's outbound list and the target's inbound
//	                        list independently.
//	UndirectedNode[K,N,E] — symmetric adjacency: Connect appends the same
//	                        logical edge to both endpoints' single list.
//
// K identifies a node (comparable), N is the opaque per-node payload, E is
// the opaque per-edge weight. Neither N nor E is interpreted by this
// package; callers needing interior mutability on N (e.g. a mutable
// distance cell for relaxation-style algorithms) should make N a pointer
// or otherwise reference type.
//
// Cyclic ownership: edges hold strong pointers in both directions. Unlike
// a reference-counted host language, Go's garbage collector reclaims
// cycles on its own, so no weak-handle bookkeeping is needed here —
// Disconnect removing a node from every adjacency list that mentions it is
// sufficient to make it collectible.
//
// Adjacency order is insertion order; iteration (IterOut, IterIn, Iter) is
// lazy, finite, and regenerable via the standard library's range-over-func
// iterators (package iter).
package node
