// Package render draws tilings and puzzles for inspection.
//
// Tiling plots the shrunken outline of every tile; Puzzle fills every
// sticker with the color its State entry holds, so a twist is visible as
// moved colors. Arcs are sampled with planar.BoundarySampler and handed to
// gonum/plot as polygons. Hyperbolic plots include the boundary of the
// Poincaré disk.
//
// Usage
//
//	f, _ := os.Create("tiling.svg")
//	err := render.Tiling(t, f, "svg", render.WithExtent(1.1))
//
// Errors
//
//   - ErrUnsupportedFormat for a format gonum/plot cannot write.
//   - ErrOptionViolation   for a non-positive size or extent, or fewer than
//     two samples per arc.
package render
