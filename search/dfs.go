// File: dfs.go
// Role: recursive LIFO frontier traversal, preorder and postorder.
package search

import "github.com/katalvlaran/nodegraph/node"

// runDFS walks s.start depth-first. pre is discovery order (preorder);
// post is finish order (postorder); tree is the admitted edges in
// admission order. Both orderings are collected in the same pass so
// Nodes() can pick whichever s.postorder asks for without a second walk.
func (s *Search[K, N, E]) runDFS() ([]node.Edge[K, N, E], []node.Handle[K, N, E], []node.Handle[K, N, E], bool) {
	visited := map[K]bool{s.start.Key(): true}
	var tree []node.Edge[K, N, E]
	var pre, post []node.Handle[K, N, E]
	found := s.hasTarget && s.start.Key() == s.target

	if !found {
		s.dfsVisit(s.start, visited, &tree, &pre, &post, &found)
	} else {
		pre = append(pre, s.start)
		post = append(post, s.start)
	}

	return tree, pre, post, found || !s.hasTarget
}

// dfsVisit explores u's outgoing edges in insertion order, recursing into
// each unvisited, filter-admitted target before moving to the next
// sibling. Bails out as soon as *found flips true.
func (s *Search[K, N, E]) dfsVisit(
	u node.Handle[K, N, E],
	visited map[K]bool,
	tree *[]node.Edge[K, N, E],
	pre, post *[]node.Handle[K, N, E],
	found *bool,
) {
	*pre = append(*pre, u)

	for e := range u.OutEdges() {
		if *found {
			return
		}

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
		*tree = append(*tree, e)

		if s.hasTarget && v.Key() == s.target {
			*found = true
			*pre = append(*pre, v)
			*post = append(*post, v)
			return
		}

		s.dfsVisit(v, visited, tree, pre, post, found)
	}

	*post = append(*post, u)
}
