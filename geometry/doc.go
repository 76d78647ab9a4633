// Package geometry classifies the three constant-curvature 2-geometries and
// centralizes the per-geometry pieces every other package needs.
//
// What
//
//   - Geometry: Spherical, Euclidean or Hyperbolic, derived from a {p,q}
//     Schläfli pair via FromPQ.
//   - A strategy table indexed by Geometry holding the norm conversion between
//     a Euclidean model radius (stereographic, flat, or Poincaré disk) and the
//     true distance from the origin.
//   - Tolerance helpers built on gonum's scalar package.
//   - Sphere embedding (stereographic projection onto golang/geo r3 vectors),
//     antipodes and sphere angles.
//   - PointMap: a tolerance-bucketed map keyed by points of the extended
//     complex plane, including the point at infinity, bucketed by s2 cell.
//
// Complexity
//
//   - FromPQ, conversions, Antipode: O(1).
//   - PointMap Get/Set/Add: O(1) expected (an s2 cell and its up to eight
//     neighbors are probed).
//
// Usage
//
//	g := geometry.FromPQ(7, 3) // Hyperbolic
//	d := g.ToNonEuclidean(0.5) // 2·atanh(0.5)
//
//	m := geometry.NewPointMap[int]()
//	if _, ok := m.Add(z, 1); !ok {
//		// z was already present within Tolerance
//	}
package geometry
