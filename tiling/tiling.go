package tiling

import (
	"context"
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/katalvlaran/magictile/conformal"
	"github.com/katalvlaran/magictile/geometry"
	"github.com/katalvlaran/magictile/planar"
)

// Tiling is a generated set of tiles. Tile i is Tiles[i]; tile 0 is the home
// tile centered at the origin.
type Tiling struct {
	Config   Config
	Geometry geometry.Geometry
	Tiles    []Tile

	// index maps tile positions to tile indices.
	index *geometry.PointMap[int]
	// reflected records the reflection parity of each tile relative to home.
	reflected []bool
}

// generator encapsulates mutable generation state.
type generator struct {
	ctx   context.Context
	trace tracing.Trace
	t     *Tiling
	queue []int
}

// Generate builds the {P,Q} tiling described by cfg.
//
// Tiles are produced breadth first by reflecting across boundary segments.
// A reflection is only carried out when it would land on a new position.
// Tiles with a vertex at infinity are kept but not expanded.
func Generate(cfg Config, opts ...Option) (*Tiling, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	home, err := homeTile(cfg)
	if err != nil {
		return nil, err
	}
	t := &Tiling{
		Config:   cfg,
		Geometry: cfg.Geometry(),
		index:    geometry.NewPointMap[int](),
	}
	g := &generator{ctx: o.Ctx, trace: o.Tracer, t: t}
	g.add(home, false)

	// Main loop
	if err := g.loop(); err != nil {
		return nil, err
	}
	o.Tracer.P("geometry", t.Geometry).Debugf("{%d,%d}: %d tiles generated", cfg.P, cfg.Q, len(t.Tiles))

	t.fitIsometries(o.Tracer)
	t.buildIncidences()
	return t, nil
}

// homeTile returns the fundamental tile centered at the origin.
func homeTile(cfg Config) (Tile, error) {
	boundary, err := planar.RegularPolygon(cfg.P, cfg.Q)
	if err != nil {
		return Tile{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	drawn := boundary.Clone()
	if s := cfg.shrink(); s < 1 {
		r, _ := planar.Circumradius(cfg.P, cfg.Q)
		drawn = planar.RegularPolygonWithRadius(cfg.Geometry(), cfg.P, s*r)
	}
	v := boundary.Vertices()
	return Tile{
		Boundary:     boundary,
		Drawn:        drawn,
		VertexCircle: conformal.CircleNE{Circle: conformal.CircleFromPoints(v[0], v[1], v[2]), CenterNE: 0},
		Isometry:     conformal.IdentityIsometry(),
	}, nil
}

func (g *generator) add(tile Tile, reflected bool) {
	i := len(g.t.Tiles)
	g.t.index.Set(tile.Position(), i)
	g.t.Tiles = append(g.t.Tiles, tile)
	g.t.reflected = append(g.t.reflected, reflected)
	g.queue = append(g.queue, i)
}

// loop expands queued tiles until the queue drains, the cap is hit or the
// context is done.
func (g *generator) loop() error {
	limit := g.t.Config.MaxTiles
	for len(g.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-g.ctx.Done():
			return g.ctx.Err()
		default:
		}

		i := g.queue[0]
		g.queue = g.queue[1:]
		tile := g.t.Tiles[i]
		if tile.Boundary.HasInfinitePoints() {
			g.trace.P("tile", i).Debugf("tile reaches infinity, not expanded")
			continue
		}
		for _, seg := range tile.Boundary.Segments {
			if len(g.t.Tiles) >= limit {
				return nil
			}
			mirror := seg.Circle()
			// Cheap pre-test on the position before reflecting everything.
			if g.t.index.Has(mirror.ReflectPoint(tile.Position())) {
				continue
			}
			g.add(Tile{
				Boundary:     tile.Boundary.Reflect(mirror),
				Drawn:        tile.Drawn.Reflect(mirror),
				VertexCircle: tile.VertexCircle.Reflect(mirror),
			}, !g.t.reflected[i])
		}
	}
	return nil
}

// fitIsometries sets each tile's isometry to the home tile. Tiles whose
// winding disagrees with their reflection parity are traced as errors.
func (t *Tiling) fitIsometries(trace tracing.Trace) {
	hv := t.Tiles[0].Boundary.Vertices()
	to := [3]complex128{hv[0], hv[1], hv[2]}
	for i := 1; i < len(t.Tiles); i++ {
		v := t.Tiles[i].Boundary.Vertices()
		t.Tiles[i].Isometry = conformal.FitIsometry([3]complex128{v[0], v[1], v[2]}, to, t.reflected[i])
		if !t.Tiles[i].Boundary.HasInfinitePoints() && t.WindingReflected(i) != t.reflected[i] {
			trace.P("tile", i).Errorf("winding disagrees with reflection parity %v", t.reflected[i])
		}
	}
}

// WindingReflected infers whether tile i is a mirror image of the home tile
// from its winding. On the sphere, a tile whose vertex circle encloses
// infinity appears with flipped winding. The answer matches the parity of
// the reflections that produced the tile for every tile with finite vertices.
func (t *Tiling) WindingReflected(i int) bool {
	tile := t.Tiles[i]
	cw := tile.Boundary.IsClockwise() != t.Tiles[0].Boundary.IsClockwise()
	if t.Geometry == geometry.Spherical {
		return cw != tile.VertexCircle.Inverted()
	}
	return cw
}

// Count returns the number of tiles.
func (t *Tiling) Count() int { return len(t.Tiles) }

// First returns the home tile.
func (t *Tiling) First() Tile { return t.Tiles[0] }

// At returns tile i.
func (t *Tiling) At(i int) (Tile, error) {
	if i < 0 || i >= len(t.Tiles) {
		return Tile{}, fmt.Errorf("%w: %d", ErrTileNotFound, i)
	}
	return t.Tiles[i], nil
}

// TileAt returns the index of the tile positioned at z.
func (t *Tiling) TileAt(z complex128) (int, bool) {
	return t.index.Get(z)
}
