package cnode_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/nodegraph/cnode"
	"github.com/katalvlaran/nodegraph/node"
	"github.com/katalvlaran/nodegraph/search"
	"github.com/stretchr/testify/require"
)

func TestConnectIsConcurrencySafe(t *testing.T) {
	hub := cnode.NewDirected[string, int, int64]("hub", 0)

	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(id int) {
			defer wg.Done()
			leaf := cnode.NewDirected[string, int, int64](fmt.Sprintf("v%d", id), id)
			hub.Connect(leaf, 0)
		}(i)
	}
	wg.Wait()

	count := 0
	for range hub.OutEdges() {
		count++
	}
	require.Equal(t, n, count)
}

func TestDisconnectRemovesEdge(t *testing.T) {
	a := cnode.NewDirected[string, int, int64]("A", 0)
	b := cnode.NewDirected[string, int, int64]("B", 0)
	a.Connect(b, 1)

	require.True(t, a.Disconnect(b))
	require.False(t, a.Disconnect(b))

	count := 0
	for range a.OutEdges() {
		count++
	}
	require.Zero(t, count)
}

func TestParallelBFSVisitsEveryReachableNode(t *testing.T) {
	a := cnode.NewDirected[string, int, int64]("A", 0)
	b := cnode.NewDirected[string, int, int64]("B", 0)
	c := cnode.NewDirected[string, int, int64]("C", 0)
	d := cnode.NewDirected[string, int, int64]("D", 0)
	a.Connect(b, 0)
	a.Connect(c, 0)
	b.Connect(d, 0)
	c.Connect(d, 0)

	result, err := cnode.ParallelBFS[string, int, int64](context.Background(), a, cnode.WithWorkers[string, int, int64](4))
	require.NoError(t, err)

	var keys []string
	for _, n := range result.Order {
		keys = append(keys, n.Key())
	}
	require.ElementsMatch(t, []string{"A", "B", "C", "D"}, keys)
	require.Len(t, result.Tree, 3, "D is claimed exactly once even though two edges reach it")
}

func TestParallelBFSFilterSkipsEdges(t *testing.T) {
	a := cnode.NewDirected[string, int, int64]("A", 0)
	b := cnode.NewDirected[string, int, int64]("B", 0)
	c := cnode.NewDirected[string, int, int64]("C", 0)
	a.Connect(b, 0)
	a.Connect(c, 0)

	result, err := cnode.ParallelBFS[string, int, int64](
		context.Background(),
		a,
		cnode.WithFilter[string, int, int64](func(u, v *cnode.Node[string, int, int64], _ int64) cnode.Verdict {
			if v.Key() == "C" {
				return cnode.Skip
			}

			return cnode.Admit
		}),
	)
	require.NoError(t, err)

	var keys []string
	for _, n := range result.Order {
		keys = append(keys, n.Key())
	}
	require.ElementsMatch(t, []string{"A", "B"}, keys)
}

func TestParallelBFSMapFiresOnAdmission(t *testing.T) {
	a := cnode.NewDirected[string, int, int64]("A", 0)
	b := cnode.NewDirected[string, int, int64]("B", 0)
	a.Connect(b, 7)

	var mu sync.Mutex
	var weights []int64
	_, err := cnode.ParallelBFS[string, int, int64](
		context.Background(),
		a,
		cnode.WithMap[string, int, int64](func(_, _ *cnode.Node[string, int, int64], w int64) {
			mu.Lock()
			weights = append(weights, w)
			mu.Unlock()
		}),
	)
	require.NoError(t, err)
	require.Equal(t, []int64{7}, weights)
}

func TestParallelBFSReusableAfterCompletion(t *testing.T) {
	a := cnode.NewDirected[string, int, int64]("A", 0)
	b := cnode.NewDirected[string, int, int64]("B", 0)
	a.Connect(b, 0)

	_, err := cnode.ParallelBFS[string, int, int64](context.Background(), a)
	require.NoError(t, err)

	// Closed flags must be reset so a second traversal from the same nodes
	// admits B again instead of finding it already claimed.
	result, err := cnode.ParallelBFS[string, int, int64](context.Background(), a)
	require.NoError(t, err)
	require.Len(t, result.Tree, 1)
}

func TestParallelBFSPoisonedOnPanic(t *testing.T) {
	a := cnode.NewDirected[string, int, int64]("A", 0)
	b := cnode.NewDirected[string, int, int64]("B", 0)
	a.Connect(b, 0)

	_, err := cnode.ParallelBFS[string, int, int64](
		context.Background(),
		a,
		cnode.WithMap[string, int, int64](func(_, _ *cnode.Node[string, int, int64], _ int64) {
			panic("boom")
		}),
	)
	require.ErrorIs(t, err, cnode.ErrPoisoned)
}

// TestParallelBFSResetsClaimsAfterPoisoning guards against the closed-flag
// leak: every node claimed during a wave that ends in ErrPoisoned must have
// its flag cleared before the call returns, so a later traversal over the
// same nodes isn't permanently short-circuited.
func TestParallelBFSResetsClaimsAfterPoisoning(t *testing.T) {
	a := cnode.NewDirected[string, int, int64]("A", 0)
	b := cnode.NewDirected[string, int, int64]("B", 0)
	c := cnode.NewDirected[string, int, int64]("C", 0)
	a.Connect(b, 0)
	a.Connect(c, 0)

	_, err := cnode.ParallelBFS[string, int, int64](
		context.Background(),
		a,
		cnode.WithMap[string, int, int64](func(_, v *cnode.Node[string, int, int64], _ int64) {
			if v.Key() == "C" {
				panic("boom")
			}
		}),
	)
	require.ErrorIs(t, err, cnode.ErrPoisoned)

	result, err := cnode.ParallelBFS[string, int, int64](context.Background(), a)
	require.NoError(t, err)

	var keys []string
	for _, n := range result.Order {
		keys = append(keys, n.Key())
	}
	require.ElementsMatch(t, []string{"A", "B", "C"}, keys, "B and C must both be claimable again after the poisoned wave")
}

func TestParallelBFSTargetStopsCooperatively(t *testing.T) {
	a := cnode.NewDirected[string, int, int64]("A", 0)
	b := cnode.NewDirected[string, int, int64]("B", 0)
	c := cnode.NewDirected[string, int, int64]("C", 0)
	d := cnode.NewDirected[string, int, int64]("D", 0)
	a.Connect(b, 0)
	a.Connect(c, 0)
	b.Connect(d, 0)

	result, err := cnode.ParallelBFS[string, int, int64](
		context.Background(),
		a,
		cnode.WithTarget[string, int, int64]("B"),
	)
	require.NoError(t, err)

	path, err := result.Path()
	require.NoError(t, err)
	require.Len(t, path, 1)
	require.Equal(t, "B", path[0].Target.Key())
}

func TestParallelBFSTargetUnreachable(t *testing.T) {
	a := cnode.NewDirected[string, int, int64]("A", 0)
	b := cnode.NewDirected[string, int, int64]("B", 0)
	a.Connect(b, 0)

	result, err := cnode.ParallelBFS[string, int, int64](
		context.Background(),
		a,
		cnode.WithTarget[string, int, int64]("Z"),
	)
	require.NoError(t, err)

	_, err = result.Path()
	require.ErrorIs(t, err, cnode.ErrNotFound)
}

func TestParallelBFSFilterFinishVerdictTerminates(t *testing.T) {
	a := cnode.NewDirected[string, int, int64]("A", 0)
	b := cnode.NewDirected[string, int, int64]("B", 0)
	c := cnode.NewDirected[string, int, int64]("C", 0)
	a.Connect(b, 0)
	a.Connect(c, 0)

	result, err := cnode.ParallelBFS[string, int, int64](
		context.Background(),
		a,
		cnode.WithFilter[string, int, int64](func(u, v *cnode.Node[string, int, int64], _ int64) cnode.Verdict {
			if v.Key() == "B" {
				return cnode.Finish
			}

			return cnode.Admit
		}),
	)
	require.NoError(t, err)

	var keys []string
	for _, n := range result.Order {
		keys = append(keys, n.Key())
	}
	require.Contains(t, keys, "B")
}

// TestParallelBFSPathMatchesSequentialLength is invariant 8.8: parallel and
// sequential BFS return paths of equal length between the same endpoints,
// even though the specific path may differ.
func TestParallelBFSPathMatchesSequentialLength(t *testing.T) {
	a := cnode.NewDirected[string, int, int64]("A", 0)
	b := cnode.NewDirected[string, int, int64]("B", 0)
	c := cnode.NewDirected[string, int, int64]("C", 0)
	d := cnode.NewDirected[string, int, int64]("D", 0)
	e := cnode.NewDirected[string, int, int64]("E", 0)
	a.Connect(b, 0)
	a.Connect(c, 0)
	b.Connect(d, 0)
	c.Connect(d, 0)
	d.Connect(e, 0)

	sa := node.NewDirected[string, int, int64]("A", 0)
	sb := node.NewDirected[string, int, int64]("B", 0)
	sc := node.NewDirected[string, int, int64]("C", 0)
	sd := node.NewDirected[string, int, int64]("D", 0)
	se := node.NewDirected[string, int, int64]("E", 0)
	sa.Connect(sb, 0)
	sa.Connect(sc, 0)
	sb.Connect(sd, 0)
	sc.Connect(sd, 0)
	sd.Connect(se, 0)

	result, err := cnode.ParallelBFS[string, int, int64](context.Background(), a, cnode.WithTarget[string, int, int64]("E"))
	require.NoError(t, err)
	parallelPath, err := result.Path()
	require.NoError(t, err)

	sequentialPath, err := search.BFS[string, int, int64](sa).Target("E").Path()
	require.NoError(t, err)

	require.Len(t, parallelPath, len(sequentialPath))
}
