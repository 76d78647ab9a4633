package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/magictile/bfs"
	"github.com/katalvlaran/magictile/core"
)

// BFSSuite exercises BFS and Components on small graphs.
type BFSSuite struct {
	suite.Suite
	g *core.Graph
}

// SetupTest builds a path a-b-c-d plus a separate edge x-y.
func (s *BFSSuite) SetupTest() {
	s.g = core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"x", "y"}} {
		require.NoError(s.T(), s.g.AddEdge(e[0], e[1]))
	}
}

// TestOrderAndDepth checks visit order and distances.
func (s *BFSSuite) TestOrderAndDepth() {
	res, err := bfs.BFS(s.g, "b")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"b", "a", "c", "d"}, res.Order)
	require.Equal(s.T(), 2, res.Depth["d"])
	_, reached := res.Depth["x"]
	require.False(s.T(), reached)
}

// TestMaxDepth checks the depth limit is inclusive.
func (s *BFSSuite) TestMaxDepth() {
	res, err := bfs.BFS(s.g, "a", bfs.WithMaxDepth(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"a", "b", "c"}, res.Order)

	_, err = bfs.BFS(s.g, "a", bfs.WithMaxDepth(-1))
	require.ErrorIs(s.T(), err, bfs.ErrOptionViolation)
}

// TestInvalidInput checks nil graphs and missing start vertices.
func (s *BFSSuite) TestInvalidInput() {
	_, err := bfs.BFS(nil, "a")
	require.ErrorIs(s.T(), err, bfs.ErrGraphNil)
	_, err = bfs.BFS(s.g, "zz")
	require.ErrorIs(s.T(), err, bfs.ErrStartVertexNotFound)
	_, err = bfs.Components(nil)
	require.ErrorIs(s.T(), err, bfs.ErrGraphNil)
}

// TestCancelled checks a done context stops the walk.
func (s *BFSSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(s.g, "a", bfs.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestComponents checks the two islands are found.
func (s *BFSSuite) TestComponents() {
	comps, err := bfs.Components(s.g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][]string{{"a", "b", "c", "d"}, {"x", "y"}}, comps)
}

func TestBFSSuite(t *testing.T) {
	suite.Run(t, new(BFSSuite))
}
