package conformal

import (
	"github.com/katalvlaran/magictile/geometry"
)

// canonicalPoints are the three fixed points used to fit composite maps.
var canonicalPoints = [3]complex128{0, 1, 1i}

// realAxis is the reflection used when fitting orientation-reversing maps.
var realAxis = NewLine(0, 1)

// Isometry is a Möbius map optionally followed by a reflection in a
// generalized circle: z ↦ R(M(z)).
type Isometry struct {
	Mobius     Mobius
	Reflection *Circle
}

// NewIsometry wraps an orientation-preserving map.
func NewIsometry(m Mobius) Isometry {
	return Isometry{Mobius: m}
}

// IdentityIsometry returns the identity.
func IdentityIsometry() Isometry {
	return Isometry{Mobius: Identity()}
}

// ReflectionIsometry returns the reflection in mirror.
func ReflectionIsometry(mirror Circle) Isometry {
	return Isometry{Mobius: Identity(), Reflection: &mirror}
}

// Reflected reports whether i reverses orientation.
func (i Isometry) Reflected() bool {
	return i.Reflection != nil
}

// Apply evaluates i at z.
func (i Isometry) Apply(z complex128) complex128 {
	w := i.Mobius.Apply(z)
	if i.Reflection != nil {
		w = i.Reflection.ReflectPoint(w)
	}
	return w
}

// ApplyCircle returns the image of c under i.
func (i Isometry) ApplyCircle(c Circle) Circle {
	return c.TransformIsometry(i)
}

// FitIsometry returns the isometry sending from[k] to to[k]. When reflected
// is set the result reverses orientation.
func FitIsometry(from, to [3]complex128, reflected bool) Isometry {
	if !reflected {
		return Isometry{Mobius: MapPoints(from[0], from[1], from[2], to[0], to[1], to[2])}
	}
	// R ∘ M(from) = to  ⇔  M(from) = R(to), R being an involution.
	var w [3]complex128
	for k := range to {
		w[k] = realAxis.ReflectPoint(to[k])
	}
	mirror := realAxis
	return Isometry{
		Mobius:     MapPoints(from[0], from[1], from[2], w[0], w[1], w[2]),
		Reflection: &mirror,
	}
}

// fit re-derives a single isometry reproducing f on the canonical points.
func fit(f func(complex128) complex128, reflected bool) Isometry {
	var to [3]complex128
	for k, z := range canonicalPoints {
		to[k] = f(z)
	}
	return FitIsometry(canonicalPoints, to, reflected)
}

// Mul returns i ∘ o, the isometry applying o first. The result is reflected
// iff exactly one operand is.
func (i Isometry) Mul(o Isometry) Isometry {
	if !i.Reflected() && !o.Reflected() {
		return Isometry{Mobius: i.Mobius.Mul(o.Mobius)}
	}
	return fit(func(z complex128) complex128 { return i.Apply(o.Apply(z)) }, i.Reflected() != o.Reflected())
}

// Inverse returns the inverse isometry.
func (i Isometry) Inverse() Isometry {
	inv := i.Mobius.Inverse()
	if !i.Reflected() {
		return Isometry{Mobius: inv}
	}
	r := *i.Reflection
	return fit(func(z complex128) complex128 { return inv.Apply(r.ReflectPoint(z)) }, true)
}

// Equal reports whether i and o act identically on the canonical points and
// agree on orientation.
func (i Isometry) Equal(o Isometry) bool {
	if i.Reflected() != o.Reflected() {
		return false
	}
	for _, z := range canonicalPoints {
		if !geometry.EqualPoints(i.Apply(z), o.Apply(z)) {
			return false
		}
	}
	return true
}

// IsIdentity reports whether i is the identity within tolerance.
func (i Isometry) IsIdentity() bool {
	return i.Equal(IdentityIsometry())
}
