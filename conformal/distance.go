package conformal

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/magictile/geometry"
)

// Distance returns the distance between a and b in geometry g. The point a is
// moved to the origin by an isometry of g and the model norm of the image of
// b is converted to a true distance.
func Distance(g geometry.Geometry, a, b complex128) float64 {
	if g == geometry.Spherical && (geometry.IsInfinite(a) || geometry.IsInfinite(b)) {
		return geometry.SphereAngle(a, b).Radians()
	}
	if geometry.IsInfinite(a) || geometry.IsInfinite(b) {
		return math.Inf(1)
	}
	if g == geometry.Euclidean {
		return cmplx.Abs(b - a)
	}
	v := IsometryMobius(g, 0, -a).Apply(b)
	if geometry.IsInfinite(v) {
		if g == geometry.Spherical {
			return math.Pi
		}
		return math.Inf(1)
	}
	r := cmplx.Abs(v)
	if g == geometry.Hyperbolic && r >= 1 {
		return math.Inf(1)
	}
	return g.ToNonEuclidean(r)
}
