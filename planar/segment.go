package planar

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/magictile/conformal"
	"github.com/katalvlaran/magictile/geometry"
)

// SegmentType distinguishes straight segments from circular arcs.
type SegmentType int

const (
	// Line is a straight segment from P1 to P2.
	Line SegmentType = iota
	// Arc is a circular arc from P1 to P2 about Center.
	Arc
)

// Segment is a line or an arc from P1 to P2. Center and Clockwise are only
// meaningful for arcs.
type Segment struct {
	Type      SegmentType
	P1, P2    complex128
	Center    complex128
	Clockwise bool
}

// NewLineSegment returns the straight segment p1→p2.
func NewLineSegment(p1, p2 complex128) Segment {
	return Segment{Type: Line, P1: p1, P2: p2}
}

// ArcFromPoints returns the arc from p1 through mid to p2. Collinear points
// (or any infinite point) produce a line segment from p1 to p2.
func ArcFromPoints(p1, mid, p2 complex128) Segment {
	if geometry.IsInfinite(p1) || geometry.IsInfinite(mid) || geometry.IsInfinite(p2) {
		return NewLineSegment(p1, p2)
	}
	c := conformal.CircleFromPoints(p1, mid, p2)
	if c.IsLine() {
		return NewLineSegment(p1, p2)
	}
	return Segment{
		Type:      Arc,
		P1:        p1,
		P2:        p2,
		Center:    c.Center,
		Clockwise: geometry.Orientation(p1, mid, p2) < 0,
	}
}

// Radius returns the arc radius, or +Inf for lines.
func (s Segment) Radius() float64 {
	if s.Type == Line {
		return math.Inf(1)
	}
	return cmplx.Abs(s.P1 - s.Center)
}

// sweepFrom returns the angle swept from a to b in the arc's direction, in [0, 2π).
func (s Segment) sweepFrom(a, b complex128) float64 {
	a1, a2 := cmplx.Phase(a-s.Center), cmplx.Phase(b-s.Center)
	d := a2 - a1
	if s.Clockwise {
		d = -d
	}
	d = math.Mod(d, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// Angle returns the sweep of an arc in radians (always non-negative), or 0
// for lines.
func (s Segment) Angle() float64 {
	if s.Type == Line {
		return 0
	}
	return s.sweepFrom(s.P1, s.P2)
}

// Length returns the Euclidean length of s.
func (s Segment) Length() float64 {
	if s.Type == Line {
		return cmplx.Abs(s.P2 - s.P1)
	}
	return s.Radius() * s.Angle()
}

// pointAt returns the point reached after sweeping angle a from P1.
func (s Segment) pointAt(a float64) complex128 {
	if s.Clockwise {
		a = -a
	}
	return s.Center + (s.P1-s.Center)*cmplx.Rect(1, a)
}

// Midpoint returns the point halfway along s.
func (s Segment) Midpoint() complex128 {
	if s.Type == Line {
		if geometry.IsInfinite(s.P1) || geometry.IsInfinite(s.P2) {
			return geometry.Infinity
		}
		return (s.P1 + s.P2) / 2
	}
	return s.pointAt(s.Angle() / 2)
}

// HasInfinitePoints reports whether an endpoint is infinite.
func (s Segment) HasInfinitePoints() bool {
	return geometry.IsInfinite(s.P1) || geometry.IsInfinite(s.P2)
}

// Circle returns the generalized circle containing s.
func (s Segment) Circle() conformal.Circle {
	if s.Type == Line {
		return conformal.NewLine(s.P1, s.P2)
	}
	return conformal.NewCircle(s.Center, s.Radius())
}

// Reverse returns s traversed from P2 to P1.
func (s Segment) Reverse() Segment {
	r := s
	r.P1, r.P2 = s.P2, s.P1
	if s.Type == Arc {
		r.Clockwise = !s.Clockwise
	}
	return r
}

// mapSegment returns the segment through the images of P1, the midpoint and
// P2. The type may change: arcs become lines and lines become arcs.
func mapSegment(s Segment, f func(complex128) complex128) Segment {
	if s.HasInfinitePoints() {
		return NewLineSegment(f(s.P1), f(s.P2))
	}
	return ArcFromPoints(f(s.P1), f(s.Midpoint()), f(s.P2))
}

// Transform returns the image of s under m.
func (s Segment) Transform(m conformal.Mobius) Segment {
	return mapSegment(s, m.Apply)
}

// TransformIsometry returns the image of s under i.
func (s Segment) TransformIsometry(i conformal.Isometry) Segment {
	return mapSegment(s, i.Apply)
}

// Reflect returns the image of s under reflection in mirror.
func (s Segment) Reflect(mirror conformal.Circle) Segment {
	return mapSegment(s, mirror.ReflectPoint)
}

// IsPointOn reports whether z lies on s, endpoints included.
func (s Segment) IsPointOn(z complex128) bool {
	if geometry.IsInfinite(z) {
		return false
	}
	if geometry.EqualPoints(z, s.P1) || geometry.EqualPoints(z, s.P2) {
		return true
	}
	if s.Type == Line {
		d := s.P2 - s.P1
		l := cmplx.Abs(d)
		if math.Abs(geometry.Cross(d, z-s.P1))/l > geometry.Tolerance {
			return false
		}
		t := real(cmplx.Conj(d)*(z-s.P1)) / (l * l)
		return t >= 0 && t <= 1
	}
	if !geometry.Equal(cmplx.Abs(z-s.Center), s.Radius()) {
		return false
	}
	return s.sweepFrom(s.P1, z) <= s.Angle()+geometry.Tolerance/s.Radius()
}

// param orders points along s: distance for lines, swept angle for arcs.
func (s Segment) param(z complex128) float64 {
	if s.Type == Line {
		return cmplx.Abs(z - s.P1)
	}
	return s.sweepFrom(s.P1, z)
}

// Split cuts s at z, which must lie on s.
func (s Segment) Split(z complex128) (Segment, Segment) {
	a, b := s, s
	a.P2 = z
	b.P1 = z
	return a, b
}

// Intersections returns the points where c meets s, ordered from P1 to P2.
func (s Segment) Intersections(c conformal.Circle) []complex128 {
	var out []complex128
	for _, p := range s.Circle().Intersections(c) {
		if s.IsPointOn(p) {
			out = append(out, p)
		}
	}
	if len(out) == 2 && s.param(out[1]) < s.param(out[0]) {
		out[0], out[1] = out[1], out[0]
	}
	return out
}

// Subdivide returns n+1 points evenly spaced along s, P1 and P2 included.
func (s Segment) Subdivide(n int) []complex128 {
	if n < 1 {
		n = 1
	}
	out := make([]complex128, 0, n+1)
	for k := 0; k <= n; k++ {
		f := float64(k) / float64(n)
		if s.Type == Line {
			out = append(out, s.P1+(s.P2-s.P1)*complex(f, 0))
		} else {
			out = append(out, s.pointAt(f*s.Angle()))
		}
	}
	return out
}

// Tangent returns the unit direction of travel along s at z.
func (s Segment) Tangent(z complex128) complex128 {
	if s.Type == Line {
		d := s.P2 - s.P1
		return d / complex(cmplx.Abs(d), 0)
	}
	r := z - s.Center
	u := r / complex(cmplx.Abs(r), 0) * 1i
	if s.Clockwise {
		u = -u
	}
	return u
}

// Equal compares two segments structurally.
func (s Segment) Equal(o Segment) bool {
	return s.Type == o.Type &&
		geometry.EqualPoints(s.P1, o.P1) &&
		geometry.EqualPoints(s.P2, o.P2) &&
		geometry.EqualPoints(s.Midpoint(), o.Midpoint())
}
