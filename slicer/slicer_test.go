package slicer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magictile/conformal"
	"github.com/katalvlaran/magictile/planar"
	"github.com/katalvlaran/magictile/slicer"
)

func square(half float64) planar.Polygon {
	h := complex(half, 0)
	hi := complex(0, half)
	v := []complex128{h + hi, -h + hi, -h - hi, h - hi}
	segs := make([]planar.Segment, 4)
	for i := range v {
		segs[i] = planar.NewLineSegment(v[i], v[(i+1)%4])
	}
	return planar.NewPolygon(segs)
}

func totalArea(ps []planar.Polygon) float64 {
	var sum float64
	for _, p := range ps {
		sum += p.SignedArea()
	}
	return sum
}

func TestSliceUnsliced(t *testing.T) {
	cases := []struct {
		name   string
		circle conformal.Circle
	}{
		{"incircle tangent at edge midpoints", conformal.NewCircle(0, 1)},
		{"strictly inside", conformal.NewCircle(0, 0.5)},
		{"strictly outside", conformal.NewCircle(0, 3)},
		{"through every vertex", conformal.NewCircle(0, math.Sqrt2)},
		{"far away", conformal.NewCircle(10, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pieces, err := slicer.SlicePolygon(square(1), tc.circle)
			require.NoError(t, err)
			require.Len(t, pieces, 1)
			assert.InDelta(t, 4, pieces[0].SignedArea(), 1e-9)
		})
	}
}

func TestSliceCornersOff(t *testing.T) {
	pieces, err := slicer.SlicePolygon(square(1), conformal.NewCircle(0, 1.2))
	require.NoError(t, err)
	require.Len(t, pieces, 5, "one inner piece and four corners")
	assert.InDelta(t, 4, totalArea(pieces), 1e-9)

	inner := 0
	for _, p := range pieces {
		assert.False(t, p.IsClockwise())
		assert.Greater(t, p.SignedArea(), 0.0)
		if p.Contains(0) {
			inner++
		}
	}
	assert.Equal(t, 1, inner)
}

func TestSliceThroughVertices(t *testing.T) {
	diagonal := conformal.NewLine(1+1i, -1-1i)
	pieces, err := slicer.SlicePolygon(square(1), diagonal)
	require.NoError(t, err)
	require.Len(t, pieces, 2)
	for _, p := range pieces {
		assert.InDelta(t, 2, p.SignedArea(), 1e-9)
		assert.Equal(t, 3, p.NumSides())
	}
}

func TestSliceClockwiseInput(t *testing.T) {
	sq := square(1)
	sq.Reverse()
	pieces, err := slicer.SlicePolygon(sq, conformal.NewLine(-2, 2))
	require.NoError(t, err)
	require.Len(t, pieces, 2)
	for _, p := range pieces {
		assert.False(t, p.IsClockwise())
		assert.InDelta(t, 2, p.Area(), 1e-9)
	}
}

func TestSliceByCircles(t *testing.T) {
	circles := []conformal.Circle{
		conformal.NewLine(-2, 2),
		conformal.NewLine(-2i, 2i),
	}
	pieces, err := slicer.SliceByCircles(square(1), circles)
	require.NoError(t, err)
	require.Len(t, pieces, 4)
	for _, p := range pieces {
		assert.InDelta(t, 1, p.Area(), 1e-9)
	}
}

func TestShrink(t *testing.T) {
	inner, err := slicer.Shrink(square(1), []conformal.Circle{conformal.NewCircle(0, 1.2)}, 0)
	require.NoError(t, err)
	assert.True(t, inner.Contains(0))
	assert.Less(t, inner.Area(), 4.0)
	assert.Equal(t, complex128(0), inner.Center)

	_, err = slicer.Shrink(square(1), nil, 5)
	assert.ErrorIs(t, err, slicer.ErrNoPieceContains)
}
