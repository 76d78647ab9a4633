package conformal

import (
	"math"
	"math/cmplx"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/magictile/geometry"
)

// Circle is a generalized circle: either a true circle (Center, Radius) or,
// when Radius is +Inf, the line through P1 and P2. Never both.
type Circle struct {
	Center complex128
	Radius float64
	P1, P2 complex128
}

// NewCircle returns the true circle with the given center and radius.
func NewCircle(center complex128, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// NewLine returns the line through p1 and p2.
func NewLine(p1, p2 complex128) Circle {
	return Circle{Radius: math.Inf(1), P1: p1, P2: p2}
}

// IsLine reports whether c is the infinite-radius limit.
func (c Circle) IsLine() bool {
	return math.IsInf(c.Radius, 1)
}

// CircleFromPoints returns the generalized circle through a, b and c.
// An infinite point or three collinear points yield a line.
func CircleFromPoints(a, b, c complex128) Circle {
	finite := make([]complex128, 0, 3)
	for _, z := range []complex128{a, b, c} {
		if !geometry.IsInfinite(z) {
			finite = append(finite, z)
		}
	}
	if len(finite) < 3 {
		if len(finite) < 2 {
			return NewLine(0, 1)
		}
		return NewLine(finite[0], finite[1])
	}

	d := 2 * geometry.Cross(b-a, c-a)
	if math.Abs(d) < geometry.Tolerance*geometry.Tolerance {
		if geometry.EqualPoints(a, b) {
			return NewLine(a, c)
		}
		return NewLine(a, b)
	}
	ba, ca := b-a, c-a
	nb, nc := real(ba)*real(ba)+imag(ba)*imag(ba), real(ca)*real(ca)+imag(ca)*imag(ca)
	ux := (imag(ca)*nb - imag(ba)*nc) / d
	uy := (real(ba)*nc - real(ca)*nb) / d
	center := a + complex(ux, uy)
	return NewCircle(center, cmplx.Abs(center-a))
}

// ReflectPoint reflects (inverts) z in c.
func (c Circle) ReflectPoint(z complex128) complex128 {
	if c.IsLine() {
		if geometry.IsInfinite(z) {
			return geometry.Infinity
		}
		d := c.P2 - c.P1
		return c.P1 + d/cmplx.Conj(d)*cmplx.Conj(z-c.P1)
	}
	if geometry.IsInfinite(z) {
		return c.Center
	}
	v := z - c.Center
	if cmplx.Abs(v) < 1e-14 {
		return geometry.Infinity
	}
	return c.Center + complex(c.Radius*c.Radius, 0)/cmplx.Conj(v)
}

// samples returns three distinct points on c.
func (c Circle) samples() [3]complex128 {
	if c.IsLine() {
		return [3]complex128{c.P1, c.P2, geometry.Infinity}
	}
	r := complex(c.Radius, 0)
	return [3]complex128{c.Center + r, c.Center + r*1i, c.Center - r}
}

// mapCircle returns the generalized circle through the images of three points of c.
func mapCircle(c Circle, f func(complex128) complex128) Circle {
	s := c.samples()
	return CircleFromPoints(f(s[0]), f(s[1]), f(s[2]))
}

// Transform returns the image of c under m.
func (c Circle) Transform(m Mobius) Circle {
	return mapCircle(c, m.Apply)
}

// TransformIsometry returns the image of c under i.
func (c Circle) TransformIsometry(i Isometry) Circle {
	return mapCircle(c, i.Apply)
}

// Reflect returns the image of c under reflection in mirror.
func (c Circle) Reflect(mirror Circle) Circle {
	return mapCircle(c, mirror.ReflectPoint)
}

// Side classifies z against c: -1 inside (left of the directed line P1→P2),
// 0 on c within Tolerance, +1 outside.
func (c Circle) Side(z complex128) int {
	if geometry.IsInfinite(z) {
		if c.IsLine() {
			return 0
		}
		return 1
	}
	var s float64
	if c.IsLine() {
		d := c.P2 - c.P1
		s = -geometry.Cross(d, z-c.P1) / cmplx.Abs(d)
	} else {
		s = cmplx.Abs(z-c.Center) - c.Radius
	}
	switch {
	case s < -geometry.Tolerance:
		return -1
	case s > geometry.Tolerance:
		return 1
	default:
		return 0
	}
}

// Contains reports whether z lies strictly inside c.
func (c Circle) Contains(z complex128) bool {
	return c.Side(z) < 0
}

// IsPointOn reports whether z lies on c.
func (c Circle) IsPointOn(z complex128) bool {
	return c.Side(z) == 0
}

// Equal compares two generalized circles.
func (c Circle) Equal(o Circle) bool {
	if c.IsLine() != o.IsLine() {
		return false
	}
	if c.IsLine() {
		return o.IsPointOn(c.P1) && o.IsPointOn(c.P2)
	}
	return geometry.EqualPoints(c.Center, o.Center) && geometry.Equal(c.Radius, o.Radius)
}

// Bounds returns the bounding rectangle of a true circle; lines are unbounded
// and report false.
func (c Circle) Bounds() (geom.Rect, bool) {
	if c.IsLine() {
		return geom.Rect{}, false
	}
	return geom.Rect{
		Min: geom.Coord{X: real(c.Center) - c.Radius, Y: imag(c.Center) - c.Radius},
		Max: geom.Coord{X: real(c.Center) + c.Radius, Y: imag(c.Center) + c.Radius},
	}, true
}

// Intersections returns the finite intersection points of c and o: none, one
// (tangency) or two. Coincident circles and parallel lines return none.
func (c Circle) Intersections(o Circle) []complex128 {
	switch {
	case c.IsLine() && o.IsLine():
		return lineLine(c, o)
	case c.IsLine():
		return lineCircle(c, o)
	case o.IsLine():
		return lineCircle(o, c)
	}
	return circleCircle(c, o)
}

func circleCircle(c, o Circle) []complex128 {
	v := o.Center - c.Center
	d := cmplx.Abs(v)
	if d < geometry.Tolerance {
		return nil
	}
	if d > c.Radius+o.Radius+geometry.Tolerance || d < math.Abs(c.Radius-o.Radius)-geometry.Tolerance {
		return nil
	}
	a := (c.Radius*c.Radius - o.Radius*o.Radius + d*d) / (2 * d)
	u := v / complex(d, 0)
	foot := c.Center + u*complex(a, 0)
	h := math.Sqrt(math.Max(c.Radius*c.Radius-a*a, 0))
	if h < geometry.Tolerance {
		return []complex128{foot}
	}
	off := u * complex(0, h)
	return []complex128{foot + off, foot - off}
}

func lineCircle(l, c Circle) []complex128 {
	d := l.P2 - l.P1
	u := d / complex(cmplx.Abs(d), 0)
	t := real(cmplx.Conj(u) * (c.Center - l.P1))
	foot := l.P1 + u*complex(t, 0)
	dist := cmplx.Abs(c.Center - foot)
	if dist > c.Radius+geometry.Tolerance {
		return nil
	}
	h := math.Sqrt(math.Max(c.Radius*c.Radius-dist*dist, 0))
	if h < geometry.Tolerance {
		return []complex128{foot}
	}
	off := u * complex(h, 0)
	return []complex128{foot - off, foot + off}
}

func lineLine(l, m Circle) []complex128 {
	u, v := l.P2-l.P1, m.P2-m.P1
	den := geometry.Cross(u, v)
	if math.Abs(den) < geometry.Tolerance*geometry.Tolerance {
		return nil
	}
	t := geometry.Cross(m.P1-l.P1, v) / den
	return []complex128{l.P1 + u*complex(t, 0)}
}

// CircleNE is a Euclidean circle together with its true center in the
// geometry it was built for. The true center decides which side of the
// Euclidean circle is the inside.
type CircleNE struct {
	Circle
	CenterNE complex128
}

// NewCircleNE returns the circle of non-Euclidean radius radiusNE centered at
// center in geometry g.
func NewCircleNE(g geometry.Geometry, center complex128, radiusNE float64) CircleNE {
	c := NewCircle(0, g.FromNonEuclidean(radiusNE))
	if geometry.IsInfinite(center) {
		// Spherical only: the circle about infinity is the inverted circle about the origin.
		c = NewCircle(0, 1/c.Radius)
		return CircleNE{Circle: c, CenterNE: geometry.Infinity}
	}
	if center != 0 {
		c = c.Transform(IsometryMobius(g, 0, center))
	}
	return CircleNE{Circle: c, CenterNE: center}
}

// Transform returns the image of c under m.
func (c CircleNE) Transform(m Mobius) CircleNE {
	return CircleNE{Circle: c.Circle.Transform(m), CenterNE: m.Apply(c.CenterNE)}
}

// TransformIsometry returns the image of c under i.
func (c CircleNE) TransformIsometry(i Isometry) CircleNE {
	return CircleNE{Circle: c.Circle.TransformIsometry(i), CenterNE: i.Apply(c.CenterNE)}
}

// Reflect returns the image of c under reflection in mirror.
func (c CircleNE) Reflect(mirror Circle) CircleNE {
	return CircleNE{Circle: c.Circle.Reflect(mirror), CenterNE: mirror.ReflectPoint(c.CenterNE)}
}

// ContainsNE reports whether z lies on the same side of the Euclidean circle
// as the true center.
func (c CircleNE) ContainsNE(z complex128) bool {
	inside := c.Circle.Contains(z)
	if c.Circle.Contains(c.CenterNE) {
		return inside
	}
	return !inside && !c.Circle.IsPointOn(z)
}

// Inverted reports whether the true center lies outside the Euclidean circle,
// as happens for spherical circles that enclose infinity.
func (c CircleNE) Inverted() bool {
	return !c.Circle.Contains(c.CenterNE)
}
