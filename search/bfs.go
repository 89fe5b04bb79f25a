// File: bfs.go
// Role: FIFO frontier traversal.
package search

import "github.com/katalvlaran/nodegraph/node"

// runBFS walks s.start breadth-first, returning the admitted edges in
// admission order, the visited nodes in visit order, and whether the
// target (if any) was found.
func (s *Search[K, N, E]) runBFS() ([]node.Edge[K, N, E], []node.Handle[K, N, E], bool) {
	visited := map[K]bool{s.start.Key(): true}
	order := []node.Handle[K, N, E]{s.start}
	var tree []node.Edge[K, N, E]

	if s.hasTarget && s.start.Key() == s.target {
		// Start equals target: empty path, success, per spec §4.2.
		return tree, order, true
	}

	queue := []node.Handle[K, N, E]{s.start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for e := range u.OutEdges() {
			v := e.Target
			if s.filter != nil && !s.filter(u, v, e.Weight) {
				continue
			}
			if visited[v.Key()] {
				continue
			}

			visited[v.Key()] = true
			if s.mapFn != nil {
				s.mapFn(u, v, e.Weight)
			}
			tree = append(tree, e)
			order = append(order, v)

			if s.hasTarget && v.Key() == s.target {
				return tree, order, true
			}

			queue = append(queue, v)
		}
	}

	return tree, order, !s.hasTarget
}
