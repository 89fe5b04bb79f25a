// File: pfs.go
// Role: min-priority frontier traversal (Dijkstra-shaped), lazy
// decrease-key via a heap that tolerates stale entries.
package search

import (
	"container/heap"

	"github.com/katalvlaran/nodegraph/node"
)

// pqItem pairs a handle with its priority at push time, the edge that
// produced this push (nil for the start node), and a monotonic sequence
// number used to break ties in insertion order.
type pqItem[K comparable, N any, E comparable] struct {
	handle node.Handle[K, N, E]
	prio   Priority
	via    *node.Edge[K, N, E]
	seq    int
}

// nodePQ is a min-heap of *pqItem ordered by priority, ties broken by seq.
// Mirrors dijkstra.go's nodePQ: a lazy-decrease-key heap where stale
// entries are pushed rather than updated in place, and ignored on pop via
// a finalized-set check.
type nodePQ[K comparable, N any, E comparable] []*pqItem[K, N, E]

func (pq nodePQ[K, N, E]) Len() int { return len(pq) }
func (pq nodePQ[K, N, E]) Less(i, j int) bool {
	if pq[i].prio != pq[j].prio {
		return pq[i].prio < pq[j].prio
	}

	return pq[i].seq < pq[j].seq
}
func (pq nodePQ[K, N, E]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[K, N, E]) Push(x interface{}) {
	*pq = append(*pq, x.(*pqItem[K, N, E]))
}
func (pq *nodePQ[K, N, E]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// runPFS finalizes nodes in non-decreasing priority order. Map fires when
// an edge is admitted into the frontier, before the target's priority is
// read for its heap entry — the canonical relaxation hook.
//
// A node can be pushed more than once under lazy decrease-key (once per
// candidate predecessor), each push carrying the edge that produced it.
// Only the item that actually wins the pop — the smallest priority, hence
// the one read after the last successful relaxation — contributes its via
// edge to the result tree, so backtrack never has to guess which of
// several candidate edges was the real predecessor.
func (s *Search[K, N, E]) runPFS() ([]node.Edge[K, N, E], []node.Handle[K, N, E], bool) {
	finalized := map[K]bool{}
	var tree []node.Edge[K, N, E]
	var order []node.Handle[K, N, E]

	if s.hasTarget && s.start.Key() == s.target {
		return tree, append(order, s.start), true
	}

	pq := &nodePQ[K, N, E]{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &pqItem[K, N, E]{handle: s.start, prio: s.priority(s.start.Value()), seq: seq})
	seq++

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem[K, N, E])
		u := item.handle
		if finalized[u.Key()] {
			continue // stale lazy-decrease-key entry
		}

		finalized[u.Key()] = true
		order = append(order, u)
		if item.via != nil {
			tree = append(tree, *item.via)
		}

		if s.hasTarget && u.Key() == s.target {
			return tree, order, true
		}

		for e := range u.OutEdges() {
			v := e.Target
			if s.filter != nil && !s.filter(u, v, e.Weight) {
				continue
			}
			if finalized[v.Key()] {
				continue
			}

			if s.mapFn != nil {
				s.mapFn(u, v, e.Weight)
			}

			via := e
			heap.Push(pq, &pqItem[K, N, E]{handle: v, prio: s.priority(v.Value()), via: &via, seq: seq})
			seq++
		}
	}

	return tree, order, !s.hasTarget
}
