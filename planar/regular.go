package planar

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/magictile/geometry"
)

// Circumradius returns the true distance from the center of a {p,q} tile to
// its vertices. Euclidean tiles are scaled to unit edge length.
func Circumradius(p, q int) (float64, error) {
	if p < 3 || q < 3 {
		return 0, fmt.Errorf("planar: {%d,%d} is not a valid tiling", p, q)
	}
	g := geometry.FromPQ(p, q)
	cot := func(x float64) float64 { return 1 / math.Tan(x) }
	k := cot(math.Pi/float64(p)) * cot(math.Pi/float64(q))
	switch g {
	case geometry.Spherical:
		return math.Acos(k), nil
	case geometry.Hyperbolic:
		return math.Acosh(k), nil
	default:
		return 1 / (2 * math.Sin(math.Pi/float64(p))), nil
	}
}

// inradius returns the true distance from the center to an edge midpoint of
// a regular p-gon with circumradius r.
func inradius(g geometry.Geometry, p int, r float64) float64 {
	c := math.Cos(math.Pi / float64(p))
	switch g {
	case geometry.Spherical:
		return math.Atan(math.Tan(r) * c)
	case geometry.Hyperbolic:
		return math.Atanh(math.Tanh(r) * c)
	default:
		return r * c
	}
}

// RegularPolygon returns the fundamental tile of the {p,q} tiling, centered at
// the origin, with vertex k at angle π/p + 2πk/p. Edges are geodesics:
// straight in the Euclidean case, arcs otherwise.
func RegularPolygon(p, q int) (Polygon, error) {
	r, err := Circumradius(p, q)
	if err != nil {
		return Polygon{}, err
	}
	return RegularPolygonWithRadius(geometry.FromPQ(p, q), p, r), nil
}

// RegularPolygonWithRadius returns the regular p-gon of true circumradius r
// centered at the origin in geometry g.
func RegularPolygonWithRadius(g geometry.Geometry, p int, r float64) Polygon {
	vr := g.FromNonEuclidean(r)
	mr := g.FromNonEuclidean(inradius(g, p, r))
	step := 2 * math.Pi / float64(p)

	verts := make([]complex128, p)
	for k := range verts {
		verts[k] = cmplx.Rect(vr, step/2+step*float64(k))
	}
	segs := make([]Segment, p)
	for k := range segs {
		a, b := verts[k], verts[(k+1)%p]
		if g == geometry.Euclidean {
			segs[k] = NewLineSegment(a, b)
			continue
		}
		mid := cmplx.Rect(mr, step*float64(k+1))
		segs[k] = ArcFromPoints(a, mid, b)
	}
	return Polygon{Segments: segs, Center: 0}
}
