// Package planar provides the plane primitives the tiling and puzzle
// packages are built from: segments (line or circular arc) and polygons
// (cyclic segment loops).
//
// Transforming or reflecting a segment maps its endpoints and midpoint and
// rebuilds it from the three images, so a line may become an arc and vice
// versa. Polygons carry a cached Center that is transformed along with the
// boundary instead of being recomputed, which keeps centers of congruent
// polygons congruent.
//
// RegularPolygon builds the fundamental {p,q} tile in the model of its
// geometry (stereographic sphere, flat plane or Poincaré disk).
//
// The TextureCoordGenerator interface is the contract for texture and
// tessellation consumers; BoundarySampler is the only implementation here.
package planar
