package planar

import (
	"iter"

	"github.com/katalvlaran/magictile/geometry"
)

// TextureCoordGenerator produces subdivision points for a polygon. The
// returned sequence is lazy, finite and may be ranged over more than once.
type TextureCoordGenerator interface {
	TextureCoords(p Polygon, g geometry.Geometry) iter.Seq[complex128]
}

// BoundarySampler walks the boundary of a polygon, emitting PerSegment points
// per segment (arcs) or the two endpoints (lines). Infinite points are skipped.
type BoundarySampler struct {
	PerSegment int
}

var _ TextureCoordGenerator = BoundarySampler{}

// TextureCoords implements TextureCoordGenerator.
func (b BoundarySampler) TextureCoords(p Polygon, _ geometry.Geometry) iter.Seq[complex128] {
	n := b.PerSegment
	if n < 1 {
		n = arcSamples
	}
	return func(yield func(complex128) bool) {
		for _, s := range p.Segments {
			if s.HasInfinitePoints() {
				continue
			}
			k := 1
			if s.Type == Arc {
				k = n
			}
			pts := s.Subdivide(k)
			for _, z := range pts[:len(pts)-1] {
				if !yield(z) {
					return
				}
			}
		}
	}
}
