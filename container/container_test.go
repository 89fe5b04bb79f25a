package container_test

import (
	"testing"

	"github.com/katalvlaran/nodegraph/container"
	"github.com/katalvlaran/nodegraph/node"
	"github.com/stretchr/testify/require"
)

func TestInsertGetContains(t *testing.T) {
	c := container.New[string, int, int64, *node.DirectedNode[string, int, int64]]()
	a := node.NewDirected[string, int, int64]("A", 1)

	require.False(t, c.Contains("A"))
	c.Insert(a)
	require.True(t, c.Contains("A"))

	got, ok := c.Get("A")
	require.True(t, ok)
	require.Equal(t, 1, got.Value())
	require.Equal(t, 1, c.Len())
}

func TestRemove(t *testing.T) {
	c := container.New[string, int, int64, *node.DirectedNode[string, int, int64]]()
	a := node.NewDirected[string, int, int64]("A", 1)
	c.Insert(a)

	require.True(t, c.Remove("A"))
	require.False(t, c.Remove("A"))
	require.False(t, c.Contains("A"))
}

func TestIterVisitsEveryEntry(t *testing.T) {
	c := container.New[string, int, int64, *node.DirectedNode[string, int, int64]]()
	c.Insert(node.NewDirected[string, int, int64]("A", 1))
	c.Insert(node.NewDirected[string, int, int64]("B", 2))

	seen := make(map[string]int)
	for k, h := range c.Iter() {
		seen[k] = h.Value()
	}
	require.Equal(t, map[string]int{"A": 1, "B": 2}, seen)
}
