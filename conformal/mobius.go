package conformal

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/magictile/geometry"
)

// Mobius is the map z ↦ (Az + B)/(Cz + D) of the extended complex plane,
// normalized so that AD − BC = 1. The zero value is not a valid map; use
// Identity or one of the constructors.
type Mobius struct {
	A, B, C, D complex128
}

// Identity returns the identity map.
func Identity() Mobius {
	return Mobius{A: 1, B: 0, C: 0, D: 1}
}

// NewMobius returns the map with the given coefficients, normalized.
func NewMobius(a, b, c, d complex128) Mobius {
	m := Mobius{A: a, B: b, C: c, D: d}
	m.normalize()
	return m
}

func (m *Mobius) normalize() {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return
	}
	k := cmplx.Sqrt(det)
	m.A /= k
	m.B /= k
	m.C /= k
	m.D /= k
}

// IsometryMobius rotates by angle about the origin and then moves the origin
// to P (and −P to the origin). Only the c coefficient depends on g.
func IsometryMobius(g geometry.Geometry, angle float64, p complex128) Mobius {
	t := cmplx.Rect(1, angle)
	c := complex(g.IsometrySign(), 0) * cmplx.Conj(p) * t
	return NewMobius(t, p, c, 1)
}

// Rotation rotates the plane by angle about the origin.
func Rotation(angle float64) Mobius {
	return NewMobius(cmplx.Rect(1, angle), 0, 0, 1)
}

// RotationAbout rotates by angle about center, measured in geometry g.
// A spherical rotation about a point outside the unit circle is built as the
// rotation about its antipode in the opposite sense; about infinity that is
// the origin.
func RotationAbout(g geometry.Geometry, center complex128, angle float64) Mobius {
	if g == geometry.Spherical && (geometry.IsInfinite(center) || cmplx.Abs(center) > 1) {
		return RotationAbout(g, geometry.Antipode(center), -angle)
	}
	if geometry.IsInfinite(center) {
		return Rotation(-angle)
	}
	to := IsometryMobius(g, 0, center)
	from := IsometryMobius(g, 0, -center)
	return to.Mul(Rotation(angle)).Mul(from)
}

// GeodesicTranslation moves p1 to p2 along the geodesic through both points,
// without any rotation about that geodesic.
func GeodesicTranslation(g geometry.Geometry, p1, p2 complex128) Mobius {
	toOrigin := IsometryMobius(g, 0, -p1)
	q := toOrigin.Apply(p2)
	return IsometryMobius(g, 0, p1).Mul(IsometryMobius(g, 0, q)).Mul(toOrigin)
}

// MapPointsToCanonical returns the map sending z1 → 0, z2 → 1, z3 → ∞.
// Any one of the inputs may be infinite.
func MapPointsToCanonical(z1, z2, z3 complex128) Mobius {
	switch {
	case geometry.IsInfinite(z1):
		return NewMobius(0, z2-z3, 1, -z3)
	case geometry.IsInfinite(z2):
		return NewMobius(1, -z1, 1, -z3)
	case geometry.IsInfinite(z3):
		return NewMobius(1, -z1, 0, z2-z1)
	}
	return NewMobius(z2-z3, -z1*(z2-z3), z2-z1, -z3*(z2-z1))
}

// MapPoints returns the map sending z1 → w1, z2 → w2, z3 → w3.
func MapPoints(z1, z2, z3, w1, w2, w3 complex128) Mobius {
	mz := MapPointsToCanonical(z1, z2, z3)
	mw := MapPointsToCanonical(w1, w2, w3)
	return mw.Inverse().Mul(mz)
}

// Apply evaluates the map at z.
func (m Mobius) Apply(z complex128) complex128 {
	if geometry.IsInfinite(z) {
		if m.C == 0 {
			return geometry.Infinity
		}
		return m.A / m.C
	}
	num := m.A*z + m.B
	den := m.C*z + m.D
	if cmplx.Abs(den) <= 1e-14*math.Max(1, cmplx.Abs(num)) {
		return geometry.Infinity
	}
	return num / den
}

// Inverse returns the inverse map.
func (m Mobius) Inverse() Mobius {
	return Mobius{A: m.D, B: -m.B, C: -m.C, D: m.A}
}

// Mul returns m ∘ o, the map applying o first.
func (m Mobius) Mul(o Mobius) Mobius {
	r := Mobius{
		A: m.A*o.A + m.B*o.C,
		B: m.A*o.B + m.B*o.D,
		C: m.C*o.A + m.D*o.C,
		D: m.C*o.B + m.D*o.D,
	}
	r.normalize()
	return r
}

// Equal reports whether m and o act identically, comparing their images of
// the canonical points.
func (m Mobius) Equal(o Mobius) bool {
	for _, z := range canonicalPoints {
		if !geometry.EqualPoints(m.Apply(z), o.Apply(z)) {
			return false
		}
	}
	return true
}

// Trace returns A + D. Since the map is normalized, the trace identifies the
// conjugacy class up to sign.
func (m Mobius) Trace() complex128 {
	return m.A + m.D
}
