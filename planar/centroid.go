package planar

import (
	"gonum.org/v1/gonum/integrate/quad"
)

// quadPoints is the Gauss–Legendre order used per segment.
const quadPoints = 16

// along returns the point and derivative of s at t in [0, 1].
func (s Segment) along(t float64) (z, dz complex128) {
	if s.Type == Line {
		d := s.P2 - s.P1
		return s.P1 + d*complex(t, 0), d
	}
	a := s.Angle()
	z = s.pointAt(t * a)
	w := complex(0, a)
	if s.Clockwise {
		w = -w
	}
	return z, w * (z - s.Center)
}

// Centroid returns the area centroid of p, integrating over the exact line
// and arc boundary by Green's theorem. Unlike Center, it does not depend on
// how the boundary is split into segments. Polygons with infinite points or
// zero area return Center.
func (p Polygon) Centroid() complex128 {
	if p.HasInfinitePoints() {
		return p.Center
	}
	a := p.SignedArea()
	if a == 0 {
		return p.Center
	}
	var mx, my float64
	for _, s := range p.Segments {
		mx += quad.Fixed(func(t float64) float64 {
			z, dz := s.along(t)
			return real(z) * real(z) * imag(dz)
		}, 0, 1, quadPoints, nil, 0)
		my += quad.Fixed(func(t float64) float64 {
			z, dz := s.along(t)
			return imag(z) * imag(z) * real(dz)
		}, 0, 1, quadPoints, nil, 0)
	}
	return complex(mx/(2*a), -my/(2*a))
}
