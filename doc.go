// Package nodegraph is a graph data-structure library built around the
// connected node: a self-contained vertex that owns its own adjacency and
// exposes traversal directly, with no enclosing graph container required.
//
// Organized as:
//
//	node/      — DirectedNode, UndirectedNode, Edge, the Handle abstraction
//	search/    — BFS/DFS/PFS traversal engine and the Search builder
//	cnode/     — concurrency-safe node and parallel frontier BFS
//	container/ — optional keyed index over a set of nodes
//
// A node is fully functional on its own: Connect two nodes and call
// search.BFS/DFS/PFS directly on either one. container and cnode are
// opt-in collaborators for callers who want a keyed lookup or concurrent
// mutation, not requirements for basic graph use.
package nodegraph
