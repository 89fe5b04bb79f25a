// File: types.go
// Role: sentinel errors, the strategy tag, and the Search builder's fields.
package search

import (
	"errors"

	"github.com/katalvlaran/nodegraph/node"
)

// ErrNotFound is returned by Path when a target was configured and the
// traversal could not reach it.
var ErrNotFound = errors.New("search: target not reachable")

// Priority is the orderable quantity PFS extracts from a node's value to
// key its min-priority frontier. Fixed to float64 rather than a second
// generic type parameter: Go methods cannot introduce type parameters
// beyond the receiver's, and dijkstra.go in the teacher makes the same
// choice of a concrete numeric distance type.
type Priority = float64

// strategy tags which frontier discipline execute uses.
type strategy int

const (
	strategyBFS strategy = iota
	strategyDFS
	strategyPFS
)

// FilterFunc decides whether an edge may be admitted into the frontier.
type FilterFunc[K comparable, N any, E comparable] func(u, v node.Handle[K, N, E], weight E) bool

// MapFunc is invoked at the moment an edge is admitted into the frontier,
// before its target is finalized — the relaxation hook.
type MapFunc[K comparable, N any, E comparable] func(u, v node.Handle[K, N, E], weight E)

// Search is a lazy, chainable traversal builder. Chain methods return a
// new Search value (copy-on-write) so a partially configured Search can
// safely be forked into several final configurations; only the terminal
// operations (Search, Path, Nodes) do any work.
type Search[K comparable, N any, E comparable] struct {
	start    node.Handle[K, N, E]
	strategy strategy

	hasTarget bool
	target    K

	filter FilterFunc[K, N, E]
	mapFn  MapFunc[K, N, E]

	priority  func(N) Priority // PFS only
	postorder bool             // DFS only
}

// Target configures the traversal to stop once key is reached: when an
// edge to key is admitted under BFS and DFS, when key is finalized under
// PFS.
func (s Search[K, N, E]) Target(key K) *Search[K, N, E] {
	s.hasTarget = true
	s.target = key

	return &s
}

// Filter installs a per-edge admission predicate. Edges for which fn
// returns false are skipped entirely — never admitted, never mapped.
func (s Search[K, N, E]) Filter(fn FilterFunc[K, N, E]) *Search[K, N, E] {
	s.filter = fn

	return &s
}

// Map installs a side-effecting callback invoked at edge admission time.
func (s Search[K, N, E]) Map(fn MapFunc[K, N, E]) *Search[K, N, E] {
	s.mapFn = fn

	return &s
}

// Postorder switches a DFS's Nodes() result from preorder (the default)
// to postorder. No-op for BFS and PFS.
func (s Search[K, N, E]) Postorder() *Search[K, N, E] {
	s.postorder = true

	return &s
}
