package search_test

import (
	"testing"

	"github.com/katalvlaran/nodegraph/node"
	"github.com/katalvlaran/nodegraph/search"
	"github.com/stretchr/testify/require"
)

func TestPathWithoutTargetIsNotFound(t *testing.T) {
	a := node.NewDirected[string, int, int64]("A", 0)

	_, err := search.BFS[string, int, int64](a).Path()
	require.ErrorIs(t, err, search.ErrNotFound)
}

func TestEmptyAdjacencyYieldsSingletonTraversal(t *testing.T) {
	a := node.NewDirected[string, int, int64]("A", 0)

	nodes, err := search.BFS[string, int, int64](a).Nodes()
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Equal(t, "A", nodes[0].Key())
}

func TestChainingIsCopyOnWrite(t *testing.T) {
	ns := buildChain(t)
	base := search.BFS[int, struct{}, int64](ns[1])

	withTarget := base.Target(6)
	withoutTarget := base

	found, err := withoutTarget.Search()
	require.NoError(t, err)
	require.True(t, found, "un-targeted search always reports success")

	found, err = withTarget.Search()
	require.NoError(t, err)
	require.True(t, found)

	_, err = withoutTarget.Path()
	require.ErrorIs(t, err, search.ErrNotFound, "Target on a fork must not give the base Search a target")
}
