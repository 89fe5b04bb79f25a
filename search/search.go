// File: search.go
// Role: entry points constructing a Search over a given start node.
package search

import "github.com/katalvlaran/nodegraph/node"

// BFS starts a breadth-first Search from start. Visit order is
// non-decreasing in hop count; ties break in insertion order of outgoing
// edges; each node is enqueued at most once.
func BFS[K comparable, N any, E comparable](start node.Handle[K, N, E]) *Search[K, N, E] {
	return &Search[K, N, E]{start: start, strategy: strategyBFS}
}

// DFS starts a depth-first Search from start, preorder by default
// (chain .Postorder() for the postorder variant). Descends each outgoing
// edge in insertion order before advancing to the next sibling.
func DFS[K comparable, N any, E comparable](start node.Handle[K, N, E]) *Search[K, N, E] {
	return &Search[K, N, E]{start: start, strategy: strategyDFS}
}

// PFS starts a priority-first Search from start. priority projects a
// node's value onto an orderable quantity (e.g. a running shortest
// distance); the engine does not interpret N beyond that projection. Only
// a min-priority variant is exposed — negate the projection for a
// max-priority search.
func PFS[K comparable, N any, E comparable](start node.Handle[K, N, E], priority func(N) Priority) *Search[K, N, E] {
	return &Search[K, N, E]{start: start, strategy: strategyPFS, priority: priority}
}
