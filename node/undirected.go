// File: undirected.go
// Role: the undirected connected-node: a single adjacency list, with
// Connect/Disconnect maintaining symmetric presence on both endpoints.
package node

// UndirectedNode is a self-contained undirected vertex. Unlike
// DirectedNode it keeps one adjacency list; Connect inserts the logical
// edge into both endpoints' lists so either side sees the same neighbor,
// while Disconnect removes it from both atomically.
type UndirectedNode[K comparable, N any, E comparable] struct {
	key   K
	value N

	adj []Edge[K, N, E]

	uniqueEdges      bool
	strictDisconnect bool
}

// UndirectedOption configures an UndirectedNode at construction time.
type UndirectedOption[K comparable, N any, E comparable] func(*UndirectedNode[K, N, E])

// WithUniqueUndirectedEdges is the undirected counterpart of
// node.WithUniqueEdges: rejects a Connect that would duplicate an
// existing (endpoint, weight) pair.
func WithUniqueUndirectedEdges[K comparable, N any, E comparable]() UndirectedOption[K, N, E] {
	return func(n *UndirectedNode[K, N, E]) { n.uniqueEdges = true }
}

// WithStrictUndirectedDisconnect is the undirected counterpart of
// node.WithStrictDisconnect.
func WithStrictUndirectedDisconnect[K comparable, N any, E comparable]() UndirectedOption[K, N, E] {
	return func(n *UndirectedNode[K, N, E]) { n.strictDisconnect = true }
}

// NewUndirected constructs an isolated undirected node with no adjacency.
func NewUndirected[K comparable, N any, E comparable](key K, value N, opts ...UndirectedOption[K, N, E]) *UndirectedNode[K, N, E] {
	n := &UndirectedNode[K, N, E]{key: key, value: value}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Key returns the node's identity.
func (n *UndirectedNode[K, N, E]) Key() K { return n.key }

// Value returns the node's payload. N is returned by value, so a
// non-pointer N is copied.
func (n *UndirectedNode[K, N, E]) Value() N { return n.value }

// SetValue replaces the node's payload.
func (n *UndirectedNode[K, N, E]) SetValue(v N) { n.value = v }

// Connect inserts the logical edge self—other once into each endpoint's
// adjacency list. A self-loop is appended once, not twice. Returns false
// only under WithUniqueUndirectedEdges when an identical edge already
// exists.
func (n *UndirectedNode[K, N, E]) Connect(other *UndirectedNode[K, N, E], weight E) bool {
	if n.uniqueEdges && n.hasEdge(other.key, weight) {
		return false
	}

	e := Edge[K, N, E]{Source: n, Target: other, Weight: weight}
	n.adj = append(n.adj, e)
	if other != n {
		// other's view of the same edge, reversed so OutEdges from other
		// still reports other as Source.
		other.adj = append(other.adj, Edge[K, N, E]{Source: other, Target: n, Weight: weight})
	}

	return true
}

// Disconnect removes the logical edge between n and other from both
// adjacency lists. Returns whether anything was removed.
func (n *UndirectedNode[K, N, E]) Disconnect(other *UndirectedNode[K, N, E]) (bool, error) {
	removed := removeByTargetUndirected(&n.adj, other.key)
	if other != n {
		removeByTargetUndirected(&other.adj, n.key)
	}

	if !removed && n.strictDisconnect {
		return false, ErrInvalidOperation
	}

	return removed, nil
}

// IsConnected reports whether n is adjacent to other, by key equality.
func (n *UndirectedNode[K, N, E]) IsConnected(other *UndirectedNode[K, N, E]) bool {
	for _, e := range n.adj {
		if e.Target.Key() == other.key {
			return true
		}
	}

	return false
}

// Iter yields n's incident edges in insertion order, each reported with n
// as Source.
func (n *UndirectedNode[K, N, E]) Iter() func(yield func(Edge[K, N, E]) bool) {
	return func(yield func(Edge[K, N, E]) bool) {
		for _, e := range n.adj {
			if !yield(e) {
				return
			}
		}
	}
}

// OutEdges implements Handle: for an UndirectedNode this is Iter.
func (n *UndirectedNode[K, N, E]) OutEdges() func(yield func(Edge[K, N, E]) bool) {
	return n.Iter()
}

func (n *UndirectedNode[K, N, E]) hasEdge(key K, weight E) bool {
	for _, e := range n.adj {
		if e.Target.Key() == key && e.Weight == weight {
			return true
		}
	}

	return false
}

func removeByTargetUndirected[K comparable, N any, E comparable](edges *[]Edge[K, N, E], other K) bool {
	kept := (*edges)[:0]
	removed := false
	for _, e := range *edges {
		if e.Target.Key() == other {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	*edges = kept

	return removed
}
