// Package conformal implements the transformation algebra shared by every
// geometry: Möbius maps of the extended complex plane, generalized circles
// (a line is the infinite-radius limit) and isometries, which are Möbius maps
// optionally followed by a reflection in a generalized circle.
//
// What
//
//   - Mobius: normalized 2×2 complex matrices acting by z ↦ (Az+B)/(Cz+D).
//     The point at infinity is an ordinary input and output.
//   - IsometryMobius(g, angle, P): rotate about the origin, then move the
//     origin to P. The three geometries differ only in the c coefficient
//     (spherical −conj(P)·T, Euclidean 0, hyperbolic conj(P)·T).
//   - MapPointsToCanonical / MapPoints: fit the unique map between two
//     labeled point triples. Every alignment in the module goes through them.
//   - Circle / CircleNE: generalized circles, reflections, intersections and
//     the non-Euclidean inside test.
//   - Isometry: composition and inversion are done by fitting the images of
//     three canonical points, because reflections do not compose as matrix
//     products. A composite is reflected iff exactly one operand is.
//   - Distance: the geometry-aware metric used by the spatial index.
//
// Degenerate inputs (coincident or antipodal points in a triple) are not
// guarded; callers must pass distinct points.
//
// Complexity
//
//   - Every operation is O(1).
package conformal
