package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magictile/core"
)

func TestGraph_AddVertexAndEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("0"))
	require.NoError(t, g.AddVertex("0"), "re-adding is a no-op")
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddEdge("0", "1"))
	assert.True(t, g.HasVertex("1"), "AddEdge creates missing endpoints")
	assert.True(t, g.HasEdge("1", "0"), "edges are mirrored")
	assert.ErrorIs(t, g.AddEdge("1", "0"), core.ErrMultiEdgeNotAllowed)
	assert.ErrorIs(t, g.AddEdge("2", "2"), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge("", "2"), core.ErrEmptyVertexID)

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_Queries(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "c"}, {"a", "b"}, {"c", "d"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	nbrs, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, nbrs)
	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Vertices())

	_, err = g.NeighborIDs("z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = g.AddEdge("hub", string(rune('a'+i)))
		}(i)
	}
	wg.Wait()
	nbrs, err := g.NeighborIDs("hub")
	require.NoError(t, err)
	assert.Len(t, nbrs, 8)
	assert.Equal(t, 8, g.EdgeCount())
}
