package neartree_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magictile/conformal"
	"github.com/katalvlaran/magictile/geometry"
	"github.com/katalvlaran/magictile/neartree"
)

func TestNearestPrefersCloser(t *testing.T) {
	tree, err := neartree.New[string](geometry.Euclidean)
	require.NoError(t, err)
	tree.Insert(5, "far")
	tree.Insert(1i, "near")

	got, ok := tree.FindNearestNeighbor(0, 10)
	require.True(t, ok)
	assert.Equal(t, "near", got.Value)

	_, ok = tree.FindNearestNeighbor(0, 0.5)
	assert.False(t, ok, "nothing within maxDist")
}

func TestEmptyTree(t *testing.T) {
	tree, err := neartree.New[int](geometry.Hyperbolic)
	require.NoError(t, err)
	_, ok := tree.FindNearestNeighbor(0, math.Inf(1))
	assert.False(t, ok)
	assert.Empty(t, tree.FindInRadius(0, 1))
	assert.Equal(t, 0, tree.Len())
}

func TestNewRejectsInvalidGeometry(t *testing.T) {
	_, err := neartree.New[int](geometry.Geometry(42))
	assert.ErrorIs(t, err, neartree.ErrInvalidGeometry)
}

// randomPoint returns a point safely inside the model of g.
func randomPoint(r *rand.Rand, g geometry.Geometry) complex128 {
	scale := 3.0
	if g == geometry.Hyperbolic {
		scale = 0.9
	}
	rad := scale * math.Sqrt(r.Float64())
	th := 2 * math.Pi * r.Float64()
	return complex(rad*math.Cos(th), rad*math.Sin(th))
}

func TestAgainstBruteForce(t *testing.T) {
	for _, g := range []geometry.Geometry{geometry.Spherical, geometry.Euclidean, geometry.Hyperbolic} {
		t.Run(g.String(), func(t *testing.T) {
			r := rand.New(rand.NewPCG(7, uint64(g)))
			tree, err := neartree.New[int](g)
			require.NoError(t, err)
			pts := make([]complex128, 300)
			for i := range pts {
				pts[i] = randomPoint(r, g)
				tree.Insert(pts[i], i)
			}
			require.Equal(t, len(pts), tree.Len())

			for k := 0; k < 50; k++ {
				q := randomPoint(r, g)
				bestD := math.Inf(1)
				for _, p := range pts {
					bestD = math.Min(bestD, conformal.Distance(g, q, p))
				}
				got, ok := tree.FindNearestNeighbor(q, math.Inf(1))
				require.True(t, ok)
				assert.InDelta(t, bestD, conformal.Distance(g, q, got.Location), 1e-12)

				radius := 0.5
				var want []int
				for i, p := range pts {
					if conformal.Distance(g, q, p) <= radius {
						want = append(want, i)
					}
				}
				var found []int
				for _, o := range tree.FindInRadius(q, radius) {
					found = append(found, o.Value)
				}
				sort.Ints(found)
				assert.Equal(t, want, found)
			}
		})
	}
}

func ExampleNearTree_FindNearestNeighbor() {
	tree, _ := neartree.New[string](geometry.Hyperbolic)
	tree.Insert(0.5, "east")
	tree.Insert(-0.5, "west")
	tree.Insert(0.5i, "north")

	got, _ := tree.FindNearestNeighbor(0.4+0.1i, 1)
	fmt.Println(got.Value)
	// Output: east
}
