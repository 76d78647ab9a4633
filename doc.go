// Package magictile builds twisty puzzles on regular tilings of the sphere,
// the Euclidean plane and the hyperbolic plane.
//
// Everything is done with conformal maps of the extended complex plane: the
// sphere is its stereographic projection, the hyperbolic plane is the
// Poincaré disk, and every isometry is a Möbius transformation, possibly
// followed by a reflection.
//
// Subpackages, bottom up:
//
//	geometry/  the three geometries, tolerances, a tolerant point map
//	conformal/ Möbius maps, isometries, generalized circles
//	planar/    line and arc segments, polygons, regular polygons
//	slicer/    cutting polygons by circles
//	neartree/  nearest-neighbor search under the geometry's metric
//	tiling/    {p,q} tilings by reflection, with adjacency
//	puzzle/    cells, stickers, identified twists, state and history
//	render/    gonum/plot drawings of tilings and puzzles
//
// Quick example:
//
//	p, _ := puzzle.Build(puzzle.Config{
//	    Tiling:            tiling.Config{P: 4, Q: 4, MaxTiles: 41},
//	    ExpectedNumColors: 4,
//	    Identifications:   []puzzle.IdentificationConfig{{Edges: []int{3, 1}}, {Edges: []int{0, 2}}},
//	    Slicing:           puzzle.SlicingConfig{Face: []float64{0.6}},
//	})
//	_ = p.Twist(puzzle.SingleTwist{IdentifiedIndex: 0, SliceMask: puzzle.SliceMaskFor(0)})
//
// Runnable programs live under examples/.
package magictile
