package planar

import (
	"math/cmplx"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/magictile/conformal"
	"github.com/katalvlaran/magictile/geometry"
)

// arcSamples is the number of subdivisions per arc used by sampling
// operations (containment, bounds).
const arcSamples = 24

// Polygon is a cyclic sequence of contiguous segments:
// Segments[i].P2 ≈ Segments[i+1].P1. Center is a cached centroid
// approximation that is carried through transforms rather than recomputed.
type Polygon struct {
	Segments []Segment
	Center   complex128
}

// NewPolygon builds a polygon from segments and computes its center.
func NewPolygon(segs []Segment) Polygon {
	p := Polygon{Segments: segs}
	p.CalcCenter()
	return p
}

// NumSides returns the number of segments.
func (p Polygon) NumSides() int {
	return len(p.Segments)
}

// Vertices returns the start point of every segment.
func (p Polygon) Vertices() []complex128 {
	out := make([]complex128, len(p.Segments))
	for i, s := range p.Segments {
		out[i] = s.P1
	}
	return out
}

// EdgeMidpoints returns the midpoint of every segment.
func (p Polygon) EdgeMidpoints() []complex128 {
	out := make([]complex128, len(p.Segments))
	for i, s := range p.Segments {
		out[i] = s.Midpoint()
	}
	return out
}

// CalcCenter sets Center to the average of the vertices and edge midpoints.
// Infinite points are ignored.
func (p *Polygon) CalcCenter() {
	var sum complex128
	n := 0
	for _, s := range p.Segments {
		for _, z := range []complex128{s.P1, s.Midpoint()} {
			if geometry.IsInfinite(z) {
				continue
			}
			sum += z
			n++
		}
	}
	if n == 0 {
		p.Center = geometry.Infinity
		return
	}
	p.Center = sum / complex(float64(n), 0)
}

// SignedArea returns the area enclosed by p, positive when counterclockwise.
// Arc contributions are exact: ½(Im(conj(c)(P2−P1)) + r²Δ), with Δ the signed sweep.
func (p Polygon) SignedArea() float64 {
	var a float64
	for _, s := range p.Segments {
		if s.HasInfinitePoints() {
			continue
		}
		if s.Type == Line {
			a += imag(cmplx.Conj(s.P1) * s.P2)
			continue
		}
		r := s.Radius()
		sweep := s.Angle()
		if s.Clockwise {
			sweep = -sweep
		}
		a += imag(cmplx.Conj(s.Center)*(s.P2-s.P1)) + r*r*sweep
	}
	return a / 2
}

// Area returns the absolute enclosed area.
func (p Polygon) Area() float64 {
	a := p.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// IsClockwise reports whether p winds clockwise.
func (p Polygon) IsClockwise() bool {
	return p.SignedArea() < 0
}

// Reverse flips the traversal direction in place.
func (p *Polygon) Reverse() {
	n := len(p.Segments)
	out := make([]Segment, n)
	for i, s := range p.Segments {
		out[n-1-i] = s.Reverse()
	}
	p.Segments = out
}

// Clone returns a deep copy.
func (p Polygon) Clone() Polygon {
	segs := make([]Segment, len(p.Segments))
	copy(segs, p.Segments)
	return Polygon{Segments: segs, Center: p.Center}
}

func (p Polygon) mapPolygon(f func(complex128) complex128) Polygon {
	segs := make([]Segment, len(p.Segments))
	for i, s := range p.Segments {
		segs[i] = mapSegment(s, f)
	}
	return Polygon{Segments: segs, Center: f(p.Center)}
}

// Transform returns the image of p under m.
func (p Polygon) Transform(m conformal.Mobius) Polygon {
	return p.mapPolygon(m.Apply)
}

// TransformIsometry returns the image of p under i.
func (p Polygon) TransformIsometry(i conformal.Isometry) Polygon {
	return p.mapPolygon(i.Apply)
}

// Reflect returns the mirror image of p in mirror. Segment order is kept, so
// the result winds in the opposite direction.
func (p Polygon) Reflect(mirror conformal.Circle) Polygon {
	return p.mapPolygon(mirror.ReflectPoint)
}

// HasInfinitePoints reports whether any vertex is infinite.
func (p Polygon) HasInfinitePoints() bool {
	for _, s := range p.Segments {
		if s.HasInfinitePoints() {
			return true
		}
	}
	return false
}

// samplePoints returns a closed polyline approximation of the boundary.
func (p Polygon) samplePoints() []complex128 {
	var out []complex128
	for _, s := range p.Segments {
		if s.HasInfinitePoints() {
			continue
		}
		n := 1
		if s.Type == Arc {
			n = arcSamples
		}
		pts := s.Subdivide(n)
		out = append(out, pts[:len(pts)-1]...)
	}
	return out
}

// Contains reports whether z lies inside p, by crossing number over the
// sampled boundary. Points on the boundary may go either way.
func (p Polygon) Contains(z complex128) bool {
	if geometry.IsInfinite(z) {
		return false
	}
	pts := p.samplePoints()
	inside := false
	x, y := real(z), imag(z)
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		xi, yi := real(pts[i]), imag(pts[i])
		xj, yj := real(pts[j]), imag(pts[j])
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// InteriorPoint returns a point strictly inside p, found by stepping inward
// from an edge midpoint. Center is returned when no candidate qualifies.
func (p Polygon) InteriorPoint() complex128 {
	if p.Contains(p.Center) && !p.onBoundary(p.Center) {
		return p.Center
	}
	inward := complex(0, 1)
	if p.IsClockwise() {
		inward = -inward
	}
	for _, frac := range []float64{1e-2, 1e-3, 1e-4} {
		for _, s := range p.Segments {
			if s.HasInfinitePoints() {
				continue
			}
			m := s.Midpoint()
			step := complex(frac*s.Length(), 0)
			cand := m + s.Tangent(m)*inward*step
			if p.Contains(cand) {
				return cand
			}
		}
	}
	return p.Center
}

func (p Polygon) onBoundary(z complex128) bool {
	for _, s := range p.Segments {
		if s.IsPointOn(z) {
			return true
		}
	}
	return false
}

// Bounds returns the bounding rectangle of the sampled boundary.
func (p Polygon) Bounds() geom.Rect {
	r := geom.NilRect()
	for _, z := range p.samplePoints() {
		r.ExpandToContainCoord(geom.Coord{X: real(z), Y: imag(z)})
	}
	return r
}

// Equal compares polygons structurally, allowing a cyclic shift of the
// segment sequence.
func (p Polygon) Equal(o Polygon) bool {
	n := len(p.Segments)
	if n != len(o.Segments) {
		return false
	}
	if n == 0 {
		return true
	}
	for shift := 0; shift < n; shift++ {
		if !p.Segments[0].Equal(o.Segments[shift]) {
			continue
		}
		match := true
		for i := 1; i < n && match; i++ {
			match = p.Segments[i].Equal(o.Segments[(i+shift)%n])
		}
		if match {
			return true
		}
	}
	return false
}

// Overlaps reports whether the bounding rectangles of a and b intersect.
func Overlaps(a, b geom.Rect) bool {
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y
}
