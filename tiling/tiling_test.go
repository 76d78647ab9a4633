package tiling_test

import (
	"context"
	"fmt"
	"io"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/schuko/tracing"

	"github.com/katalvlaran/magictile/geometry"
	"github.com/katalvlaran/magictile/tiling"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  tiling.Config
		ok   bool
	}{
		{"heptagons", tiling.Config{P: 7, Q: 3, MaxTiles: 10}, true},
		{"digon", tiling.Config{P: 2, Q: 3, MaxTiles: 10}, false},
		{"q too small", tiling.Config{P: 4, Q: 2, MaxTiles: 10}, false},
		{"no tiles", tiling.Config{P: 4, Q: 4}, false},
		{"shrink above one", tiling.Config{P: 4, Q: 4, MaxTiles: 1, Shrink: 1.5}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tiling.ErrInvalidConfig)
		})
	}
}

func TestGenerateHeptagonal(t *testing.T) {
	cfg := tiling.Config{P: 7, Q: 3, MaxTiles: 1000}
	a, err := tiling.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, geometry.Hyperbolic, a.Geometry)
	assert.Equal(t, 7, a.First().Boundary.NumSides())
	assert.LessOrEqual(t, a.Count(), 1000)
	assert.Greater(t, a.Count(), 100)

	b, err := tiling.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, a.Count(), b.Count(), "generation is deterministic")

	for i, tile := range a.Tiles {
		idx, ok := a.TileAt(tile.Position())
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

func TestEdgeIncidenceSymmetry(t *testing.T) {
	for _, cfg := range []tiling.Config{
		{P: 7, Q: 3, MaxTiles: 200},
		{P: 4, Q: 4, MaxTiles: 41},
		{P: 3, Q: 5, MaxTiles: 100},
	} {
		tl, err := tiling.Generate(cfg)
		require.NoError(t, err)
		for i, tile := range tl.Tiles {
			assert.True(t, slices.IsSorted(tile.EdgeIncidences))
			assert.NotContains(t, tile.EdgeIncidences, i)
			assert.LessOrEqual(t, len(tile.EdgeIncidences), cfg.P)
			for _, j := range tile.EdgeIncidences {
				assert.Contains(t, tl.Tiles[j].EdgeIncidences, i, "tile %d lists %d but not vice versa", i, j)
				assert.NotContains(t, tile.VertexIncidences, j)
			}
		}
	}
}

func TestSquareDiamond(t *testing.T) {
	tl, err := tiling.Generate(tiling.Config{P: 4, Q: 4, MaxTiles: 41})
	require.NoError(t, err)
	require.Equal(t, 41, tl.Count())
	for _, tile := range tl.Tiles {
		c := tile.Position()
		x, y := real(c), imag(c)
		assert.InDelta(t, math.Round(x), x, 1e-9)
		assert.InDelta(t, math.Round(y), y, 1e-9)
		assert.LessOrEqual(t, math.Abs(x)+math.Abs(y), 4+1e-9)
	}
	home := tl.First()
	assert.Len(t, home.EdgeIncidences, 4)
	assert.Len(t, home.VertexIncidences, 4)
	assert.True(t, tl.Connected())

	idx, ok := tl.TileAt(2 - 1i)
	require.True(t, ok)
	assert.True(t, geometry.EqualPoints(2-1i, tl.Tiles[idx].Position()))
}

func TestCubeHasTileAtInfinity(t *testing.T) {
	tl, err := tiling.Generate(tiling.Config{P: 4, Q: 3, MaxTiles: 100})
	require.NoError(t, err)
	assert.Equal(t, geometry.Spherical, tl.Geometry)
	require.Equal(t, 6, tl.Count())

	far, ok := tl.TileAt(geometry.Infinity)
	require.True(t, ok)
	assert.True(t, tl.Tiles[far].VertexCircle.Inverted())
	assert.Len(t, tl.Tiles[far].EdgeIncidences, 4)
	assert.NotContains(t, tl.First().EdgeIncidences, far)
}

func TestIsometriesMapTilesHome(t *testing.T) {
	for _, cfg := range []tiling.Config{
		{P: 7, Q: 3, MaxTiles: 60},
		{P: 4, Q: 4, MaxTiles: 25},
		{P: 5, Q: 3, MaxTiles: 12},
	} {
		tl, err := tiling.Generate(cfg)
		require.NoError(t, err)
		home := tl.First().Boundary.Vertices()
		for i, tile := range tl.Tiles {
			for k, v := range tile.Boundary.Vertices() {
				assert.True(t, geometry.EqualPoints(home[k], tile.Isometry.Apply(v)), "tile %d vertex %d", i, k)
			}
			assert.True(t, geometry.EqualPoints(0, tile.Isometry.Apply(tile.Position())))
			assert.Equal(t, tl.WindingReflected(i), tile.Isometry.Reflected(), "tile %d", i)
		}
	}
}

func TestShrunkOutline(t *testing.T) {
	tl, err := tiling.Generate(tiling.Config{P: 6, Q: 3, MaxTiles: 7, Shrink: 0.8})
	require.NoError(t, err)
	for _, tile := range tl.Tiles {
		assert.Less(t, tile.Drawn.Area(), tile.Boundary.Area())
		assert.True(t, tile.Boundary.Contains(tile.Drawn.Vertices()[0]))
	}
}

func TestNeighborhood(t *testing.T) {
	tl, err := tiling.Generate(tiling.Config{P: 4, Q: 4, MaxTiles: 41})
	require.NoError(t, err)

	got, err := tl.Neighborhood(0, 1)
	require.NoError(t, err)
	assert.Len(t, got, 5)
	assert.Equal(t, 0, got[0])

	got, err = tl.Neighborhood(0, 2)
	require.NoError(t, err)
	assert.Len(t, got, 13)

	got, err = tl.Neighborhood(7, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, got)

	_, err = tl.Neighborhood(99, 1)
	assert.ErrorIs(t, err, tiling.ErrTileNotFound)

	g := tl.Graph()
	assert.Equal(t, 41, g.VertexCount())
	assert.Equal(t, 64, g.EdgeCount(), "a radius-4 diamond has 32 horizontal and 32 vertical shared edges")
	assert.True(t, tl.Connected())
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tiling.Generate(tiling.Config{P: 7, Q: 3, MaxTiles: 100}, tiling.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	//nolint:staticcheck // nil context is the case under test
	_, err = tiling.Generate(tiling.Config{P: 7, Q: 3, MaxTiles: 100}, tiling.WithContext(nil))
	assert.ErrorIs(t, err, tiling.ErrOptionViolation)
}

// errorTrace collects error records.
type errorTrace struct {
	errs []string
}

func (e *errorTrace) Debugf(string, ...interface{}) {}
func (e *errorTrace) Infof(string, ...interface{})  {}
func (e *errorTrace) Errorf(s string, args ...interface{}) {
	e.errs = append(e.errs, fmt.Sprintf(s, args...))
}
func (e *errorTrace) SetTraceLevel(tracing.TraceLevel)  {}
func (e *errorTrace) GetTraceLevel() tracing.TraceLevel { return tracing.LevelDebug }
func (e *errorTrace) SetOutput(io.Writer)               {}
func (e *errorTrace) P(string, interface{}) tracing.Trace {
	return e
}

func TestWindingAgreesWithParity(t *testing.T) {
	for _, cfg := range []tiling.Config{
		{P: 7, Q: 3, MaxTiles: 200},
		{P: 4, Q: 4, MaxTiles: 41},
		{P: 3, Q: 5, MaxTiles: 20},
		{P: 4, Q: 3, MaxTiles: 6},
	} {
		rec := &errorTrace{}
		_, err := tiling.Generate(cfg, tiling.WithTracer(rec))
		require.NoError(t, err)
		assert.Empty(t, rec.errs, "{%d,%d}", cfg.P, cfg.Q)
	}
}
