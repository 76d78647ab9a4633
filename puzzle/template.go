package puzzle

import (
	"slices"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/magictile/conformal"
	"github.com/katalvlaran/magictile/geometry"
	"github.com/katalvlaran/magictile/planar"
)

// templateAxes returns the twist axes of the home tile: the face center,
// every edge midpoint and every vertex, each with its configured circles.
// Axes without circles are omitted.
func templateAxes(g geometry.Geometry, home planar.Polygon, q int, cfg SlicingConfig) []TemplateAxis {
	var out []TemplateAxis
	add := func(kind AxisKind, center complex128, order int, radii []float64) {
		if len(radii) == 0 {
			return
		}
		sorted := slices.Clone(radii)
		slices.Sort(sorted)
		ax := TemplateAxis{Kind: kind, Center: center, Order: order}
		for _, r := range sorted {
			ax.Circles = append(ax.Circles, conformal.NewCircleNE(g, center, r))
		}
		out = append(out, ax)
	}

	add(FaceAxis, 0, home.NumSides(), cfg.Face)
	for _, m := range home.EdgeMidpoints() {
		add(EdgeAxis, m, 2, cfg.Edge)
	}
	for _, v := range home.Vertices() {
		add(VertexAxis, v, q, cfg.Vertex)
	}
	return out
}

// mayReach is a bounding-box prefilter: false only when c cannot meet the
// region bounded by r. Lines and circles inverted about infinity always pass.
func mayReach(c conformal.CircleNE, r geom.Rect) bool {
	if c.Inverted() {
		return true
	}
	cb, ok := c.Bounds()
	if !ok {
		return true
	}
	return planar.Overlaps(cb, r)
}
