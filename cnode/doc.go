// Package cnode is the concurrency layer: a node type safe for concurrent
// Connect/Disconnect/iteration, and a parallel frontier-BFS that fans each
// wave of the frontier out across a bounded worker pool.
//
// Node guards its adjacency with a sync.RWMutex, following the same
// coarse-grained discipline core.Graph uses for its vertex and adjacency
// maps in the teacher repository. Every Node additionally carries an
// atomic.Bool "closed" flag: ParallelBFS uses a single CompareAndSwap on
// this flag per node to decide, race-free, which worker goroutine gets to
// admit that node into the result tree. Connect and Disconnect never touch
// the flag; it exists solely for the traversal's own bookkeeping and is
// reset once a traversal completes.
//
// Complexity: ParallelBFS visits each node and edge at most once, same as
// the sequential engine in package search; the parallelism only changes
// which goroutine does the work, not the asymptotic bound.
//
// WithTarget gives ParallelBFS the same target/path contract as
// package search: a shared terminate flag is set the instant a worker
// claims the target (or a Filter callback returns Finish), other workers
// check it cooperatively before expanding a new node, and
// (*ParallelBFSResult).Path backtracks the result tree exactly as
// search.Search.Path does. The path length matches what a sequential BFS
// would return between the same endpoints even though concurrent
// discovery order means the specific path may differ.
package cnode
