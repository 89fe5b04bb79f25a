// File: directed.go
// Role: the directed connected-node: asymmetric adjacency, outbound +
// inbound lists maintained independently by Connect/Disconnect.
package node

// DirectedNode is a self-contained directed vertex: it owns its outbound
// and inbound adjacency and exposes the full connect/disconnect/iterate
// API without any enclosing graph container.
//
// Complexity: Connect/Disconnect/IsConnected are O(deg) — adjacency is a
// plain slice, not a map, to preserve insertion order (spec invariant:
// "adjacency order is insertion order").
type DirectedNode[K comparable, N any, E comparable] struct {
	key   K
	value N

	out []Edge[K, N, E] // edges (self → other)
	in  []Edge[K, N, E] // edges (other → self)

	uniqueEdges      bool // reject duplicate (target,weight) pairs
	strictDisconnect bool // Disconnect of a missing edge returns ErrInvalidOperation
}

// Option configures a DirectedNode at construction time.
type Option[K comparable, N any, E comparable] func(*DirectedNode[K, N, E])

// WithUniqueEdges rejects a Connect call that would create a duplicate
// edge (same target and weight) instead of the default, which permits
// parallel edges. This is the duplicate-edge policy spec.md leaves to the
// implementer to pick and document.
func WithUniqueEdges[K comparable, N any, E comparable]() Option[K, N, E] {
	return func(n *DirectedNode[K, N, E]) { n.uniqueEdges = true }
}

// WithStrictDisconnect makes Disconnect return ErrInvalidOperation when
// nothing was removed, instead of the default silent false.
func WithStrictDisconnect[K comparable, N any, E comparable]() Option[K, N, E] {
	return func(n *DirectedNode[K, N, E]) { n.strictDisconnect = true }
}

// NewDirected constructs an isolated directed node with no adjacency.
// Complexity: O(1). Never fails.
func NewDirected[K comparable, N any, E comparable](key K, value N, opts ...Option[K, N, E]) *DirectedNode[K, N, E] {
	n := &DirectedNode[K, N, E]{key: key, value: value}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Key returns the node's identity.
func (n *DirectedNode[K, N, E]) Key() K { return n.key }

// Value returns the node's payload. N is returned by value, so a
// non-pointer N is copied.
func (n *DirectedNode[K, N, E]) Value() N { return n.value }

// SetValue replaces the node's payload. Useful when N is not itself a
// reference type and interior mutability isn't otherwise available.
func (n *DirectedNode[K, N, E]) SetValue(v N) { n.value = v }

// Connect adds an edge self → other with the given weight: appended to
// self's outbound list and other's inbound list. Returns false only when
// WithUniqueEdges is set and an identical (target, weight) edge already
// exists; the default policy permits parallel edges and always succeeds.
//
// Complexity: O(deg(self)) under WithUniqueEdges, O(1) amortized otherwise.
func (n *DirectedNode[K, N, E]) Connect(other *DirectedNode[K, N, E], weight E) bool {
	if n.uniqueEdges && n.hasOut(other.key, weight) {
		return false
	}

	e := Edge[K, N, E]{Source: n, Target: other, Weight: weight}
	n.out = append(n.out, e)
	other.in = append(other.in, e)

	return true
}

// Disconnect removes every edge between n and other from both n's
// outbound list and other's inbound list. Returns whether anything was
// removed; under WithStrictDisconnect, a no-op removal returns
// ErrInvalidOperation instead of a bare false.
//
// Complexity: O(deg(n) + deg(other)).
func (n *DirectedNode[K, N, E]) Disconnect(other *DirectedNode[K, N, E]) (bool, error) {
	removed := removeByTarget(&n.out, other.key)
	removeBySource(&other.in, n.key)

	if !removed && n.strictDisconnect {
		return false, ErrInvalidOperation
	}

	return removed, nil
}

// IsConnected reports whether n has an outbound edge to other, by key
// equality of the target.
//
// Complexity: O(deg(n)).
func (n *DirectedNode[K, N, E]) IsConnected(other *DirectedNode[K, N, E]) bool {
	for _, e := range n.out {
		if e.Target.Key() == other.key {
			return true
		}
	}

	return false
}

// IterOut yields n's outbound edges in insertion order. OutEdges, n's
// Handle method, returns this sequence so the traversal engine can walk n
// forward.
func (n *DirectedNode[K, N, E]) IterOut() func(yield func(Edge[K, N, E]) bool) {
	return func(yield func(Edge[K, N, E]) bool) {
		for _, e := range n.out {
			if !yield(e) {
				return
			}
		}
	}
}

// IterIn yields n's inbound edges in insertion order.
func (n *DirectedNode[K, N, E]) IterIn() func(yield func(Edge[K, N, E]) bool) {
	return func(yield func(Edge[K, N, E]) bool) {
		for _, e := range n.in {
			if !yield(e) {
				return
			}
		}
	}
}

// OutEdges implements Handle: for a DirectedNode this is IterOut.
func (n *DirectedNode[K, N, E]) OutEdges() func(yield func(Edge[K, N, E]) bool) {
	return n.IterOut()
}

// hasOut reports whether n already has an outbound edge to key with the
// given weight.
func (n *DirectedNode[K, N, E]) hasOut(key K, weight E) bool {
	for _, e := range n.out {
		if e.Target.Key() == key && e.Weight == weight {
			return true
		}
	}

	return false
}

// removeByTarget drops, in place, every edge in *edges whose Target key
// equals other. Used on the outbound side of Disconnect.
func removeByTarget[K comparable, N any, E comparable](edges *[]Edge[K, N, E], other K) bool {
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

// removeBySource drops, in place, every edge in *edges whose Source key
// equals other. Used on the inbound side of Disconnect.
func removeBySource[K comparable, N any, E comparable](edges *[]Edge[K, N, E], other K) bool {
	kept := (*edges)[:0]
	removed := false
	for _, e := range *edges {
		if e.Source.Key() == other {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	*edges = kept

	return removed
}
