package cnode

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nodegraph/node"
)

// ErrPoisoned is returned when a worker goroutine recovers a panic from a
// caller-supplied Filter or Map closure during ParallelBFS. Go's
// sync.RWMutex cannot be poisoned the way a Rust Mutex can after a panicking
// holder; this is the closest faithful analogue for a concurrent structure
// that a caller's callback has left in a state it can no longer vouch for.
var ErrPoisoned = errors.New("cnode: worker panicked, traversal aborted")

// ErrNotFound is returned by (*ParallelBFSResult).Path when a target was
// configured via WithTarget and the traversal could not reach it.
var ErrNotFound = errors.New("cnode: target not reachable")

// Verdict is the tri-state outcome of a Filter callback. Admit and Skip
// decide the fate of a single edge; Finish additionally sets the shared
// terminate flag, the client-settable half of ParallelBFS's cooperative
// cancellation (the other half is set internally the moment the configured
// target is claimed). Once terminate is set, workers still in flight may
// finish admitting edges they already started on, but no worker begins
// expanding a new node.
type Verdict int

const (
	Admit Verdict = iota
	Skip
	Finish
)

// FilterFunc decides whether an edge should be followed during ParallelBFS,
// and may additionally request early termination by returning Finish. It
// must be safe for concurrent use: distinct goroutines may call it for
// distinct edges in the same wave.
type FilterFunc[K comparable, N any, E comparable] func(u, v *Node[K, N, E], weight E) Verdict

// MapFunc runs as each edge is admitted into the result tree. Like
// FilterFunc it must be safe for concurrent use.
type MapFunc[K comparable, N any, E comparable] func(u, v *Node[K, N, E], weight E)

// Option configures a ParallelBFS call.
type Option[K comparable, N any, E comparable] func(*config[K, N, E])

type config[K comparable, N any, E comparable] struct {
	workers   int
	filter    FilterFunc[K, N, E]
	mapFn     MapFunc[K, N, E]
	hasTarget bool
	target    K
}

// WithWorkers bounds the number of frontier nodes expanded concurrently per
// wave; each node's outbound edges are walked by a single goroutine.
// The default is runtime.GOMAXPROCS(0).
func WithWorkers[K comparable, N any, E comparable](n int) Option[K, N, E] {
	return func(c *config[K, N, E]) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithFilter skips edges for which fn returns Skip, and requests early
// termination for edges where fn returns Finish.
func WithFilter[K comparable, N any, E comparable](fn FilterFunc[K, N, E]) Option[K, N, E] {
	return func(c *config[K, N, E]) { c.filter = fn }
}

// WithMap runs fn on every admitted edge.
func WithMap[K comparable, N any, E comparable](fn MapFunc[K, N, E]) Option[K, N, E] {
	return func(c *config[K, N, E]) { c.mapFn = fn }
}

// WithTarget stops the traversal cooperatively once key is first claimed:
// the internal terminate flag is set the instant a worker claims key, so
// other workers stop expanding new nodes, and (*ParallelBFSResult).Path
// becomes available.
func WithTarget[K comparable, N any, E comparable](key K) Option[K, N, E] {
	return func(c *config[K, N, E]) {
		c.hasTarget = true
		c.target = key
	}
}

// ParallelBFSResult is the outcome of a single ParallelBFS call: the
// admitted edges in wave order, and the nodes in the order they were
// claimed.
type ParallelBFSResult[K comparable, N any, E comparable] struct {
	Tree  []node.Edge[K, N, E]
	Order []*Node[K, N, E]

	start     *Node[K, N, E]
	hasTarget bool
	target    K
	found     bool
}

// Path reconstructs the edge path from start to the WithTarget key by
// backtracking the result tree, the same admission-order backtrack the
// sequential engine in package search uses. Returns ErrNotFound if no
// target was configured or the target was unreachable. Per spec invariant
// 8.8, this is a shortest edge-path of the same length a sequential BFS
// would return between the same endpoints, even though the specific path
// (which of several equal-length routes) may differ under concurrent
// discovery.
func (r *ParallelBFSResult[K, N, E]) Path() ([]node.Edge[K, N, E], error) {
	if !r.hasTarget {
		return nil, fmt.Errorf("%w: no target configured", ErrNotFound)
	}
	if !r.found {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, r.target)
	}
	if r.start.Key() == r.target {
		return nil, nil
	}

	return backtrack(r.Tree, r.start.Key(), r.target), nil
}

// backtrack walks tree from its tail, repeatedly picking the admitted edge
// whose Target equals the current key, until it reaches startKey, then
// reverses the collected edges into start→target order. Mirrors
// search.backtrack (both match node.Edge endpoints by key); duplicated
// rather than shared because cnode does not import search.
func backtrack[K comparable, N any, E comparable](tree []node.Edge[K, N, E], startKey, targetKey K) []node.Edge[K, N, E] {
	var path []node.Edge[K, N, E]
	current := targetKey

	for current != startKey {
		var step node.Edge[K, N, E]
		found := false
		for i := len(tree) - 1; i >= 0; i-- {
			if tree[i].Target.Key() == current {
				step = tree[i]
				found = true

				break
			}
		}
		if !found {
			break
		}

		path = append(path, step)
		current = step.Source.Key()
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
