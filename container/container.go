package container

import (
	"iter"

	"github.com/katalvlaran/nodegraph/node"
)

// Container is a keyed index over node handles. It owns no adjacency and
// enforces no graph invariant — it exists purely so a caller can look a
// node up by key, or iterate every node it has been told about, without
// walking adjacency from some arbitrary start node.
type Container[K comparable, N any, E comparable, H node.Handle[K, N, E]] struct {
	items map[K]H
}

// New returns an empty Container.
func New[K comparable, N any, E comparable, H node.Handle[K, N, E]]() *Container[K, N, E, H] {
	return &Container[K, N, E, H]{items: make(map[K]H)}
}

// Insert adds or replaces the entry for h.Key().
func (c *Container[K, N, E, H]) Insert(h H) {
	c.items[h.Key()] = h
}

// Remove deletes the entry for key, reporting whether it was present.
func (c *Container[K, N, E, H]) Remove(key K) bool {
	if _, ok := c.items[key]; !ok {
		return false
	}
	delete(c.items, key)

	return true
}

// Get looks up the handle stored under key.
func (c *Container[K, N, E, H]) Get(key K) (H, bool) {
	h, ok := c.items[key]

	return h, ok
}

// Contains reports whether key has an entry.
func (c *Container[K, N, E, H]) Contains(key K) bool {
	_, ok := c.items[key]

	return ok
}

// Len returns the number of entries.
func (c *Container[K, N, E, H]) Len() int {
	return len(c.items)
}

// Iter yields every (key, handle) pair. Iteration order is unspecified,
// matching Go map iteration.
func (c *Container[K, N, E, H]) Iter() iter.Seq2[K, H] {
	return func(yield func(K, H) bool) {
		for k, h := range c.items {
			if !yield(k, h) {
				return
			}
		}
	}
}
