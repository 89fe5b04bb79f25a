package node_test

import (
	"testing"

	"github.com/katalvlaran/nodegraph/node"
	"github.com/stretchr/testify/require"
)

func TestUndirectedConnectIsSymmetric(t *testing.T) {
	a := node.NewUndirected[string, int, int64]("A", 0)
	b := node.NewUndirected[string, int, int64]("B", 0)

	require.True(t, a.Connect(b, 4))
	require.True(t, a.IsConnected(b))
	require.True(t, b.IsConnected(a))

	var aCount, bCount int
	for range a.Iter() {
		aCount++
	}
	for range b.Iter() {
		bCount++
	}
	require.Equal(t, 1, aCount)
	require.Equal(t, 1, bCount)
}

func TestUndirectedSelfLoopAppearsOnce(t *testing.T) {
	a := node.NewUndirected[string, int, int64]("A", 0)
	a.Connect(a, 1)

	var count int
	for range a.Iter() {
		count++
	}
	require.Equal(t, 1, count)
}

func TestUndirectedDisconnectBothSides(t *testing.T) {
	a := node.NewUndirected[string, int, int64]("A", 0)
	b := node.NewUndirected[string, int, int64]("B", 0)
	a.Connect(b, 1)

	removed, err := a.Disconnect(b)
	require.NoError(t, err)
	require.True(t, removed)
	require.False(t, a.IsConnected(b))
	require.False(t, b.IsConnected(a))
}

func TestUndirectedUniqueEdgesPolicy(t *testing.T) {
	a := node.NewUndirected[string, int, int64]("A", 0, node.WithUniqueUndirectedEdges[string, int, int64]())
	b := node.NewUndirected[string, int, int64]("B", 0)

	require.True(t, a.Connect(b, 2))
	require.False(t, a.Connect(b, 2))
}
