package cnode

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/nodegraph/node"
)

// Node is a directed, concurrency-safe connected node. Its adjacency is
// guarded by mu; closed is reserved for ParallelBFS's own bookkeeping and
// must not be read or written by any caller outside this package.
type Node[K comparable, N any, E comparable] struct {
	key   K
	value N

	mu  sync.RWMutex
	out []node.Edge[K, N, E]

	closed atomic.Bool
}

// NewDirected constructs a Node with no adjacency.
func NewDirected[K comparable, N any, E comparable](key K, value N) *Node[K, N, E] {
	return &Node[K, N, E]{key: key, value: value}
}

// Key returns the node's identity.
func (n *Node[K, N, E]) Key() K { return n.key }

// Value returns the node's payload.
func (n *Node[K, N, E]) Value() N {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.value
}

// SetValue replaces the node's payload.
func (n *Node[K, N, E]) SetValue(v N) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.value = v
}

// Connect adds a directed edge from n to other. Safe to call concurrently
// with other Connect/Disconnect/OutEdges calls on either endpoint, though a
// mix of edges observed by concurrent readers is inherently racy in the
// "which edges does a given snapshot contain" sense, not in the data-race
// sense: the slice itself is always consistent.
func (n *Node[K, N, E]) Connect(other *Node[K, N, E], weight E) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.out = append(n.out, node.Edge[K, N, E]{Source: n, Target: other, Weight: weight})
}

// Disconnect removes every edge from n to other, reporting whether any was
// removed.
func (n *Node[K, N, E]) Disconnect(other *Node[K, N, E]) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	kept := n.out[:0]
	removed := false
	for _, e := range n.out {
		if e.Target.Key() == other.key {
			removed = true

			continue
		}
		kept = append(kept, e)
	}
	n.out = kept

	return removed
}

// OutEdges implements node.Handle by taking a point-in-time snapshot of the
// outbound adjacency under a read lock, then yielding from the snapshot —
// the lock is never held while a caller's yield func runs.
func (n *Node[K, N, E]) OutEdges() func(yield func(node.Edge[K, N, E]) bool) {
	n.mu.RLock()
	snapshot := make([]node.Edge[K, N, E], len(n.out))
	copy(snapshot, n.out)
	n.mu.RUnlock()

	return func(yield func(node.Edge[K, N, E]) bool) {
		for _, e := range snapshot {
			if !yield(e) {
				return
			}
		}
	}
}

// tryClaim atomically marks the node closed, reporting true only to the
// single caller that performed the transition. ParallelBFS uses this as
// its sole synchronization point between workers racing to admit the same
// node from different edges in the same wave.
func (n *Node[K, N, E]) tryClaim() bool {
	return n.closed.CompareAndSwap(false, true)
}

// reset clears the closed flag so the node can be traversed again by a
// future call to ParallelBFS.
func (n *Node[K, N, E]) reset() {
	n.closed.Store(false)
}
