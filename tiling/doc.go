// Package tiling generates regular {p,q} tilings of the sphere, the plane or
// the hyperbolic plane by repeated reflection of a fundamental polygon.
//
// What
//
//   - Generate(cfg) starts from the regular p-gon centered at the origin and
//     reflects tiles across their edges, breadth first, until no new
//     positions appear or Config.MaxTiles is reached.
//   - Each tile carries its boundary, a shrunken drawn outline, the circle
//     through its vertices (whose true center is the tile position), the
//     isometry taking it back onto the home tile, and its edge and vertex
//     neighbors.
//   - Positions are held in a tolerant point index, so TileAt(z) finds the
//     tile centered at z and regenerating the same Config yields the same
//     Count.
//   - Graph, Connected and Neighborhood expose the edge-adjacency structure
//     through gonum graphs.
//
// Geometry
//
//	2(p+q) > pq  → spherical (stereographic projection, infinity is a point)
//	2(p+q) = pq  → Euclidean (unit edge length)
//	2(p+q) < pq  → hyperbolic (Poincaré disk)
//
// Spherical tiles may have a vertex at infinity; such tiles are kept but not
// expanded further.
//
// Complexity (n = tiles, p = sides)
//
//   - Time:   O(n·p) reflections, each position test O(1) expected.
//   - Memory: O(n·p).
//
// Usage
//
//	t, err := tiling.Generate(tiling.Config{P: 7, Q: 3, MaxTiles: 1000},
//	    tiling.WithContext(ctx),
//	    tiling.WithTracer(gologadapter.New()),
//	)
//
// Errors
//
//   - ErrInvalidConfig   if p or q is below 3, MaxTiles is not positive or
//     Shrink is outside (0, 1].
//   - ErrOptionViolation for a nil context.
//   - ctx.Err() when the context is done mid-generation.
package tiling
