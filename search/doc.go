// Package search implements the traversal engine and the lazy, chainable
// Search Object that sits on top of package node.
//
// Three strategies share one admission/result-tree model:
//
//	BFS — FIFO frontier, non-decreasing hop count, optimal in hop count.
//	DFS — LIFO (recursive) frontier, preorder by default, optional postorder.
//	PFS — min-priority frontier keyed by a caller-supplied projection of the
//	      target node's value, finalizing nodes in non-decreasing priority
//	      order (classic Dijkstra shape).
//
// A Search is built by calling BFS/DFS/PFS with a starting node.Handle,
// then chaining .Target/.Filter/.Map, then calling one terminal operation:
//
//	.Search()      — bool: was the target found (or a success marker if
//	                 no target was configured).
//	.Path()        — the admitted edges from start to target, reconstructed
//	                 by backtracking the result tree; ErrNotFound if a
//	                 target was set and is unreachable.
//	.Nodes()       — the visited nodes in traversal order.
//
// Map is a side-effecting callback invoked the moment an edge is admitted
// into the frontier — before the target endpoint is finalized — which is
// how callers perform relaxation (Dijkstra-style distance updates) or any
// other bookkeeping keyed off edge admission.
//
// Grounded in the teacher's bfs/dfs/dijkstra packages: like
// dfs.DFS(g, startID, opts...) and dijkstra.Dijkstra(g, opts...), the
// entry points here are free functions taking the graph (here: a single
// connected node) rather than methods on the node type itself, which
// would otherwise force an import cycle between node and search.
package search
