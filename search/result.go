// File: result.go
// Role: terminal operations (Search, Path, Nodes) and result-tree
// backtracking shared by all three strategies.
package search

import (
	"fmt"

	"github.com/katalvlaran/nodegraph/node"
)

// execute runs the configured strategy once, returning the admitted-edge
// result tree, the visited nodes (preorder for DFS unless s.postorder is
// set), and whether the target was found.
func (s *Search[K, N, E]) execute() ([]node.Edge[K, N, E], []node.Handle[K, N, E], bool) {
	switch s.strategy {
	case strategyDFS:
		tree, pre, post, found := s.runDFS()
		if s.postorder {
			return tree, post, found
		}

		return tree, pre, found
	case strategyPFS:
		return s.runPFS()
	default:
		return s.runBFS()
	}
}

// Search executes the traversal and reports whether the target was found.
// With no target configured, it always reports true: graph-shape inputs
// (disconnected components, self-loops, duplicate edges, empty adjacency)
// never fail the engine.
func (s *Search[K, N, E]) Search() (bool, error) {
	_, _, found := s.execute()

	return found, nil
}

// Nodes executes the traversal and returns the visited nodes in order:
// BFS hop order, DFS pre- or postorder, or PFS finalization order.
// Duplicate-free by construction — each node is admitted at most once.
func (s *Search[K, N, E]) Nodes() ([]node.Handle[K, N, E], error) {
	_, order, _ := s.execute()

	return order, nil
}

// Path executes the traversal and reconstructs the edge path from start
// to the configured target by backtracking the result tree: repeatedly
// find the admitted edge whose Target matches the current frontier node,
// step to its Source, and stop at start. Returns ErrNotFound if no target
// was configured or the target was unreachable. The empty, zero-edge path
// is returned (with a nil error) when start equals target.
func (s *Search[K, N, E]) Path() ([]node.Edge[K, N, E], error) {
	if !s.hasTarget {
		return nil, fmt.Errorf("%w: no target configured", ErrNotFound)
	}

	tree, _, found := s.execute()
	if !found {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, s.target)
	}
	if s.start.Key() == s.target {
		return nil, nil
	}

	return backtrack(tree, s.start.Key(), s.target), nil
}

// backtrack walks tree from its tail, repeatedly picking the most
// recently admitted edge whose Target equals the current key — which
// under lazy decrease-key is the edge that actually produced the
// finalized distance — until it reaches startKey, then reverses the
// collected edges into start→target order.
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
