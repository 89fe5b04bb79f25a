package cnode

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/nodegraph/node"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// waveEdge is one edge admitted by a worker while processing a single wave.
type waveEdge[K comparable, N any, E comparable] struct {
	edge   node.Edge[K, N, E]
	target *Node[K, N, E]
}

// waveState collects every claim and admission made while processing one
// wave, guarded by a single mutex. Claims are recorded the instant
// tryClaim succeeds — before the edge's Map callback runs — so that a
// panic partway through a wave still leaves every already-claimed node
// visible for cleanup; admissions are recorded only once a node's Map
// callback has run to completion without panicking.
type waveState[K comparable, N any, E comparable] struct {
	mu       sync.Mutex
	claimed  []*Node[K, N, E]
	admitted []waveEdge[K, N, E]
}

func (w *waveState[K, N, E]) recordClaim(n *Node[K, N, E]) {
	w.mu.Lock()
	w.claimed = append(w.claimed, n)
	w.mu.Unlock()
}

func (w *waveState[K, N, E]) recordAdmission(e waveEdge[K, N, E]) {
	w.mu.Lock()
	w.admitted = append(w.admitted, e)
	w.mu.Unlock()
}

// resetClaims clears the closed flag on every node claimed during the
// wave. Called when a wave ends in error, so a poisoned traversal never
// leaves a node permanently unreachable to future calls.
func (w *waveState[K, N, E]) resetClaims() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, n := range w.claimed {
		n.reset()
	}
}

// ParallelBFS traverses the graph reachable from start breadth-first,
// processing every node in a wave concurrently across a worker pool bounded
// by WithWorkers (default runtime.GOMAXPROCS(0)). A node is admitted into
// the result tree exactly once: ties between two workers racing to reach
// the same node in the same wave are broken by Node.tryClaim's single
// atomic CompareAndSwap, so the result tree never contains two edges
// admitting the same target.
//
// Wave order is monotonic in hop count: every node at hop distance d from
// start is admitted before any node at hop distance d+1. Order within a
// wave is unspecified.
//
// WithTarget makes cancellation cooperative: the moment a worker claims the
// target, an internal terminate flag is set so other workers stop
// expanding new nodes (spec's "AtomicBool terminate flag"); a Filter
// callback can additionally request the same early stop by returning
// Finish. Workers already mid-wave when terminate is set may still finish
// admitting the edges they were already looking at — the engine tolerates
// these extra admissions and still reconstructs a shortest path via
// (*ParallelBFSResult).Path.
//
// If a Filter or Map callback panics, the owning goroutine recovers, every
// node claimed during the traversal has its closed flag reset (the failing
// wave's claims by processWave, earlier waves' by ParallelBFS itself), and
// the call returns a wrapped ErrPoisoned instead of crashing the process or
// leaking claims.
func ParallelBFS[K comparable, N any, E comparable](ctx context.Context, start *Node[K, N, E], opts ...Option[K, N, E]) (*ParallelBFSResult[K, N, E], error) {
	cfg := config[K, N, E]{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	start.reset()
	start.tryClaim()
	defer start.reset()

	result := &ParallelBFSResult[K, N, E]{
		Order:     []*Node[K, N, E]{start},
		start:     start,
		hasTarget: cfg.hasTarget,
		target:    cfg.target,
	}
	touched := []*Node[K, N, E]{start}
	frontier := []*Node[K, N, E]{start}

	if cfg.hasTarget && start.Key() == cfg.target {
		result.found = true

		return result, nil
	}

	var terminate atomic.Bool

	for len(frontier) > 0 && !terminate.Load() {
		next, edges, err := processWave(ctx, frontier, cfg, &terminate)
		if err != nil {
			for _, n := range touched {
				n.reset()
			}

			return nil, err
		}

		touched = append(touched, next...)
		result.Tree = append(result.Tree, edges...)
		result.Order = append(result.Order, next...)

		if cfg.hasTarget {
			for _, n := range next {
				if n.Key() == cfg.target {
					result.found = true

					break
				}
			}
		}

		frontier = next
	}

	for _, n := range touched {
		if n != start {
			n.reset()
		}
	}

	return result, nil
}

// processWave fans the current frontier out across cfg.workers goroutines
// and returns the nodes newly claimed this wave together with the edges
// that claimed them. On error, every node claimed during the wave is reset
// before returning, so the caller only ever has to clean up prior waves.
func processWave[K comparable, N any, E comparable](ctx context.Context, frontier []*Node[K, N, E], cfg config[K, N, E], terminate *atomic.Bool) ([]*Node[K, N, E], []node.Edge[K, N, E], error) {
	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(cfg.workers))
	state := &waveState[K, N, E]{}

	var acquireErr error
	for _, u := range frontier {
		u := u
		if err := sem.Acquire(gctx, 1); err != nil {
			acquireErr = err

			break
		}

		g.Go(func() (err error) {
			defer sem.Release(1)
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: %v", ErrPoisoned, r)
				}
			}()

			visitNode(u, cfg, terminate, state)

			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = acquireErr
	}
	if err != nil {
		state.resetClaims()

		return nil, nil, err
	}

	next := make([]*Node[K, N, E], 0, len(state.admitted))
	edges := make([]node.Edge[K, N, E], 0, len(state.admitted))
	for _, a := range state.admitted {
		next = append(next, a.target)
		edges = append(edges, a.edge)
	}

	return next, edges, nil
}

// visitNode walks u's outbound edges, applying cfg.filter and cfg.mapFn,
// and claims every target that is not already closed. Each claimed target
// is returned at most once across the whole traversal: tryClaim is the
// single point of truth. Bails out of its own loop as soon as terminate is
// observed set, whether by this goroutine's own Finish verdict, a target
// claim elsewhere in the wave, or another goroutine's.
func visitNode[K comparable, N any, E comparable](u *Node[K, N, E], cfg config[K, N, E], terminate *atomic.Bool, state *waveState[K, N, E]) {
	for e := range u.OutEdges() {
		if terminate.Load() {
			return
		}

		v := e.Target.(*Node[K, N, E])

		verdict := Admit
		if cfg.filter != nil {
			verdict = cfg.filter(u, v, e.Weight)
		}
		if verdict == Skip {
			continue
		}

		if !v.tryClaim() {
			if verdict == Finish {
				terminate.Store(true)
			}

			continue
		}
		state.recordClaim(v)

		if cfg.mapFn != nil {
			cfg.mapFn(u, v, e.Weight)
		}
		state.recordAdmission(waveEdge[K, N, E]{edge: e, target: v})

		if verdict == Finish || (cfg.hasTarget && v.Key() == cfg.target) {
			terminate.Store(true)
		}
	}
}
