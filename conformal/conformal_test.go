package conformal_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magictile/conformal"
	"github.com/katalvlaran/magictile/geometry"
)

var allGeometries = []geometry.Geometry{geometry.Spherical, geometry.Euclidean, geometry.Hyperbolic}

func assertPoint(t *testing.T, want, got complex128, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, geometry.EqualPoints(want, got), "want %v, got %v %v", want, got, msgAndArgs)
}

func TestIsometryMobiusMovesOrigin(t *testing.T) {
	p := 0.3 - 0.2i
	for _, g := range allGeometries {
		m := conformal.IsometryMobius(g, 0, p)
		assertPoint(t, p, m.Apply(0), g)
		assertPoint(t, 0, m.Apply(-p), g)
	}
	// Scenario: Isometry(Euclidean, 0, P)(0) == P.
	assertPoint(t, 2+5i, conformal.IsometryMobius(geometry.Euclidean, 0, 2+5i).Apply(0))
}

func TestIsometryMobiusPreservesModel(t *testing.T) {
	m := conformal.IsometryMobius(geometry.Hyperbolic, 0.7, 0.4+0.1i)
	for _, z := range []complex128{1, 1i, cmplx.Rect(1, 2.5)} {
		assert.InDelta(t, 1, cmplx.Abs(m.Apply(z)), 1e-9, "unit circle is invariant")
	}
	// Spherical isometries preserve antipodal pairs.
	s := conformal.IsometryMobius(geometry.Spherical, 0.3, 0.5-0.5i)
	z := 0.2 + 0.7i
	assertPoint(t, geometry.Antipode(s.Apply(z)), s.Apply(geometry.Antipode(z)))
}

func TestMapPointsToCanonical(t *testing.T) {
	cases := [][3]complex128{
		{1, 2i, -3},
		{geometry.Infinity, 1, 2},
		{0, geometry.Infinity, 1i},
		{1 + 1i, 2, geometry.Infinity},
	}
	for _, c := range cases {
		m := conformal.MapPointsToCanonical(c[0], c[1], c[2])
		assertPoint(t, 0, m.Apply(c[0]), c)
		assertPoint(t, 1, m.Apply(c[1]), c)
		assert.True(t, geometry.IsInfinite(m.Apply(c[2])), "z3 must map to infinity for %v", c)
	}
}

func TestMapPoints(t *testing.T) {
	z := [3]complex128{0, 1, 1i}
	w := [3]complex128{2, geometry.Infinity, -1 + 0.5i}
	m := conformal.MapPoints(z[0], z[1], z[2], w[0], w[1], w[2])
	for k := range z {
		assertPoint(t, w[k], m.Apply(z[k]))
	}
	assert.InDelta(t, 1, cmplx.Abs(m.A*m.D-m.B*m.C), 1e-9, "normalized determinant")
}

func TestRotationAboutFixesCenter(t *testing.T) {
	for _, g := range allGeometries {
		c := 0.25 + 0.1i
		m := conformal.RotationAbout(g, c, math.Pi/3)
		assertPoint(t, c, m.Apply(c), g)
		// Order six: six applications return to the start.
		z := 0.1 - 0.05i
		w := z
		for k := 0; k < 6; k++ {
			w = m.Apply(w)
		}
		assertPoint(t, z, w, g)
	}
}

func TestGeodesicTranslation(t *testing.T) {
	for _, g := range allGeometries {
		p1, p2 := 0.1+0.2i, -0.3+0.1i
		m := conformal.GeodesicTranslation(g, p1, p2)
		assertPoint(t, p2, m.Apply(p1), g)
	}
}

func sampleIsometries() []conformal.Isometry {
	var out []conformal.Isometry
	for _, g := range allGeometries {
		m := conformal.IsometryMobius(g, 0.9, 0.3+0.25i)
		out = append(out, conformal.NewIsometry(m))
		refl := conformal.ReflectionIsometry(conformal.NewCircle(0.2, 0.8))
		out = append(out, refl.Mul(conformal.NewIsometry(m)))
	}
	out = append(out, conformal.ReflectionIsometry(conformal.NewLine(0, 1+1i)))
	return out
}

func TestIsometryInverseRoundTrip(t *testing.T) {
	for n, iso := range sampleIsometries() {
		inv := iso.Inverse()
		assert.Equal(t, iso.Reflected(), inv.Reflected(), "case %d", n)
		assert.True(t, iso.Mul(inv).IsIdentity(), "iso·inv, case %d", n)
		assert.True(t, inv.Mul(iso).IsIdentity(), "inv·iso, case %d", n)
		for _, z := range []complex128{0, 0.5, -0.25i, 0.1 + 0.1i} {
			assertPoint(t, z, inv.Apply(iso.Apply(z)), n)
		}
	}
}

func TestIsometryCompositionReflectionXOR(t *testing.T) {
	rot := conformal.NewIsometry(conformal.Rotation(0.4))
	refl := conformal.ReflectionIsometry(conformal.NewLine(0, 1i))

	assert.False(t, rot.Mul(rot).Reflected())
	assert.True(t, rot.Mul(refl).Reflected())
	assert.True(t, refl.Mul(rot).Reflected())
	assert.False(t, refl.Mul(refl).Reflected())
	assert.True(t, refl.Mul(refl).IsIdentity())

	// Composition agrees with sequential application.
	comp := refl.Mul(rot)
	for _, z := range []complex128{0.3, 2 - 1i, -0.7i} {
		assertPoint(t, refl.Apply(rot.Apply(z)), comp.Apply(z))
	}
}

func TestFitIsometry(t *testing.T) {
	from := [3]complex128{0.5 + 0.5i, -0.5 + 0.5i, -0.5 - 0.5i}
	// Mirror image across x = 0.5.
	to := [3]complex128{0.5 + 0.5i, 1.5 + 0.5i, 1.5 - 0.5i}
	iso := conformal.FitIsometry(from, to, true)
	require.True(t, iso.Reflected())
	for k := range from {
		assertPoint(t, to[k], iso.Apply(from[k]))
	}
	assertPoint(t, 1.5-0.5i, iso.Apply(-0.5-0.5i))
}

func TestCircleFromPoints(t *testing.T) {
	c := conformal.CircleFromPoints(1, 1i, -1)
	require.False(t, c.IsLine())
	assertPoint(t, 0, c.Center)
	assert.InDelta(t, 1, c.Radius, 1e-12)

	l := conformal.CircleFromPoints(0, 1, 2)
	assert.True(t, l.IsLine(), "collinear points fall back to a line")

	l = conformal.CircleFromPoints(0, geometry.Infinity, 1i)
	assert.True(t, l.IsLine())
	assert.True(t, l.IsPointOn(5i))
}

func TestCircleReflect(t *testing.T) {
	unit := conformal.NewCircle(0, 1)
	assertPoint(t, 2, unit.ReflectPoint(0.5))
	assert.True(t, geometry.IsInfinite(unit.ReflectPoint(0)))
	assertPoint(t, 0, unit.ReflectPoint(geometry.Infinity))

	line := conformal.NewLine(0.5, 0.5+1i)
	assertPoint(t, 1+0.25i, line.ReflectPoint(0.25i))

	// A circle through the center of inversion becomes a line.
	c := conformal.NewCircle(0.5, 0.5)
	img := c.Reflect(unit)
	require.True(t, img.IsLine())
	assert.True(t, img.IsPointOn(1+3i))
}

func TestCircleIntersections(t *testing.T) {
	a := conformal.NewCircle(0, 1)
	b := conformal.NewCircle(1, 1)
	pts := a.Intersections(b)
	require.Len(t, pts, 2)
	for _, p := range pts {
		assert.True(t, a.IsPointOn(p))
		assert.True(t, b.IsPointOn(p))
	}

	tangent := conformal.NewLine(1, 1+1i)
	assert.Len(t, a.Intersections(tangent), 1)

	secant := conformal.NewLine(-2+0.5i, 2+0.5i)
	pts = a.Intersections(secant)
	require.Len(t, pts, 2)
	for _, p := range pts {
		assert.InDelta(t, 0.5, imag(p), 1e-12)
	}

	assert.Empty(t, a.Intersections(conformal.NewCircle(5, 1)))
	assert.Len(t, conformal.NewLine(0, 1).Intersections(conformal.NewLine(1i, 1+2i)), 1)
}

func TestCircleNEContains(t *testing.T) {
	for _, g := range allGeometries {
		c := conformal.NewCircleNE(g, 0.2+0.1i, 0.3)
		assert.True(t, c.ContainsNE(0.2+0.1i), g)
		assert.False(t, c.ContainsNE(-0.6), g)
		onCircle := c.Circle.Center + complex(c.Radius, 0)
		assert.InDelta(t, 0.3, conformal.Distance(g, c.CenterNE, onCircle), 1e-9, g)
	}

	// The spherical circle about infinity contains infinity but not the origin.
	inf := conformal.NewCircleNE(geometry.Spherical, geometry.Infinity, 1)
	assert.True(t, inf.Inverted())
	assert.True(t, inf.ContainsNE(100))
	assert.False(t, inf.ContainsNE(0))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5, conformal.Distance(geometry.Euclidean, 0, 3+4i), 1e-12)
	assert.InDelta(t, 2*math.Atanh(0.5), conformal.Distance(geometry.Hyperbolic, 0, 0.5i), 1e-12)
	assert.InDelta(t, 2*math.Atan(2), conformal.Distance(geometry.Spherical, 0, -2), 1e-12)
	assert.InDelta(t, math.Pi, conformal.Distance(geometry.Spherical, 0, geometry.Infinity), 1e-9)

	// Isometries preserve distance.
	for _, g := range allGeometries {
		a, b := 0.1+0.3i, -0.2+0.05i
		m := conformal.IsometryMobius(g, 1.1, -0.3+0.2i)
		assert.InDelta(t, conformal.Distance(g, a, b), conformal.Distance(g, m.Apply(a), m.Apply(b)), 1e-9, g)
		assert.InDelta(t, conformal.Distance(g, a, b), conformal.Distance(g, b, a), 1e-9, g)
	}
}

func TestSphericalRotationAboutFarPoint(t *testing.T) {
	c := 3 + 4i
	m := conformal.RotationAbout(geometry.Spherical, c, math.Pi/2)
	assertPoint(t, c, m.Apply(c), geometry.Spherical)
	assertPoint(t, geometry.Antipode(c), m.Apply(geometry.Antipode(c)), geometry.Spherical)

	inf := conformal.RotationAbout(geometry.Spherical, geometry.Infinity, math.Pi/2)
	assertPoint(t, -1i, inf.Apply(1), geometry.Spherical)
}
