package geometry

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"
)

// Geometry is one of the three constant-curvature 2-geometries.
type Geometry int

const (
	// Spherical has positive curvature (1/p + 1/q > 1/2).
	Spherical Geometry = iota
	// Euclidean is flat (1/p + 1/q = 1/2).
	Euclidean
	// Hyperbolic has negative curvature (1/p + 1/q < 1/2).
	Hyperbolic
)

// Tolerance is the absolute tolerance used for all point and length comparisons.
const Tolerance = 1e-6

// Infinity is the point at infinity of the extended complex plane.
var Infinity = cmplx.Inf()

// FromPQ returns the geometry of the regular {p,q} tiling.
// The comparison 1/p + 1/q vs 1/2 is done in integers: 2(p+q) vs pq.
func FromPQ(p, q int) Geometry {
	lhs, rhs := 2*(p+q), p*q
	switch {
	case lhs > rhs:
		return Spherical
	case lhs == rhs:
		return Euclidean
	default:
		return Hyperbolic
	}
}

// String implements fmt.Stringer.
func (g Geometry) String() string {
	switch g {
	case Spherical:
		return "spherical"
	case Euclidean:
		return "euclidean"
	case Hyperbolic:
		return "hyperbolic"
	default:
		return "unknown"
	}
}

// Valid reports whether g is one of the three known geometries.
func (g Geometry) Valid() bool {
	return g >= Spherical && g <= Hyperbolic
}

// metric is one row of the strategy table.
type metric struct {
	// toNE converts a Euclidean model radius to a true distance from the origin.
	toNE func(r float64) float64
	// fromNE converts a true distance from the origin to a model radius.
	fromNE func(d float64) float64
	// cSign is the sign applied to conj(P)·T in the c coefficient of an isometry.
	cSign float64
}

var metrics = [...]metric{
	Spherical: {
		toNE:   func(r float64) float64 { return 2 * math.Atan(r) },
		fromNE: func(d float64) float64 { return math.Tan(d / 2) },
		cSign:  -1,
	},
	Euclidean: {
		toNE:   func(r float64) float64 { return r },
		fromNE: func(d float64) float64 { return d },
		cSign:  0,
	},
	Hyperbolic: {
		toNE:   func(r float64) float64 { return 2 * math.Atanh(r) },
		fromNE: func(d float64) float64 { return math.Tanh(d / 2) },
		cSign:  1,
	},
}

// ToNonEuclidean converts a Euclidean model radius (distance of a point from
// the origin in the model) into the true distance in geometry g.
func (g Geometry) ToNonEuclidean(r float64) float64 {
	return metrics[g].toNE(r)
}

// FromNonEuclidean is the inverse of ToNonEuclidean.
func (g Geometry) FromNonEuclidean(d float64) float64 {
	return metrics[g].fromNE(d)
}

// IsometrySign is the sign of the conj(P)·T term in the c coefficient of the
// Möbius isometry moving the origin to P: -1 spherical, 0 Euclidean, +1 hyperbolic.
func (g Geometry) IsometrySign() float64 {
	return metrics[g].cSign
}

// Equal reports whether a and b differ by at most Tolerance.
func Equal(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Tolerance)
}

// EqualWithin reports whether a and b differ by at most tol.
func EqualWithin(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}

// Zero reports whether a is within Tolerance of zero.
func Zero(a float64) bool {
	return scalar.EqualWithinAbs(a, 0, Tolerance)
}

// IsInfinite reports whether z is the point at infinity (or not a number).
func IsInfinite(z complex128) bool {
	return cmplx.IsInf(z) || cmplx.IsNaN(z)
}

// EqualPoints compares two points of the extended plane. When either point is
// infinite the comparison is made between their sphere lifts, so a huge
// finite point equals infinity.
func EqualPoints(a, b complex128) bool {
	if IsInfinite(a) || IsInfinite(b) {
		return ToSphere(a).Sub(ToSphere(b)).Norm() <= Tolerance
	}
	return scalar.EqualWithinAbs(real(a), real(b), Tolerance) &&
		scalar.EqualWithinAbs(imag(a), imag(b), Tolerance)
}

// Cross returns the z component of the cross product of a and b viewed as
// plane vectors.
func Cross(a, b complex128) float64 {
	return real(a)*imag(b) - imag(a)*real(b)
}

// Orientation is positive when a→b→c turns counterclockwise.
func Orientation(a, b, c complex128) float64 {
	return Cross(b-a, c-a)
}
