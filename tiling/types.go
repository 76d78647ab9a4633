// Package tiling provides configuration, options and error definitions for
// generating regular {p,q} tilings.
package tiling

import (
	"context"
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/katalvlaran/magictile/conformal"
	"github.com/katalvlaran/magictile/geometry"
	"github.com/katalvlaran/magictile/planar"
)

// Sentinel errors for tiling generation.
var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("tiling: invalid config")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tiling: invalid option supplied")

	// ErrTileNotFound is returned for an out-of-range tile index.
	ErrTileNotFound = errors.New("tiling: tile not found")
)

// Config describes a tiling to generate.
type Config struct {
	// P is the number of sides of each tile.
	P int `yaml:"p"`
	// Q is the number of tiles meeting at each vertex.
	Q int `yaml:"q"`
	// MaxTiles caps the number of generated tiles.
	MaxTiles int `yaml:"max_tiles"`
	// Shrink scales the drawn outline of each tile relative to its boundary,
	// in (0, 1]. Zero means 1.
	Shrink float64 `yaml:"shrink,omitempty"`
}

// Validate reports the first problem with c, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.P < 3:
		return fmt.Errorf("%w: p must be at least 3 (got %d)", ErrInvalidConfig, c.P)
	case c.Q < 3:
		return fmt.Errorf("%w: q must be at least 3 (got %d)", ErrInvalidConfig, c.Q)
	case c.MaxTiles < 1:
		return fmt.Errorf("%w: max tiles must be positive (got %d)", ErrInvalidConfig, c.MaxTiles)
	case c.Shrink < 0 || c.Shrink > 1:
		return fmt.Errorf("%w: shrink must be in (0, 1] (got %g)", ErrInvalidConfig, c.Shrink)
	}
	return nil
}

// Geometry returns the geometry the {P,Q} tiling lives in.
func (c Config) Geometry() geometry.Geometry {
	return geometry.FromPQ(c.P, c.Q)
}

func (c Config) shrink() float64 {
	if c.Shrink == 0 {
		return 1
	}
	return c.Shrink
}

// Tile is one copy of the fundamental polygon.
type Tile struct {
	// Boundary is the full tile outline.
	Boundary planar.Polygon
	// Drawn is the shrunken outline used for display.
	Drawn planar.Polygon
	// VertexCircle passes through the tile's vertices; its true center is the
	// tile's position.
	VertexCircle conformal.CircleNE
	// Isometry maps this tile onto the home tile, vertex k to vertex k.
	Isometry conformal.Isometry
	// EdgeIncidences lists tiles sharing an edge, ascending.
	EdgeIncidences []int
	// VertexIncidences lists tiles sharing only a vertex, ascending.
	VertexIncidences []int
}

// Position returns the true center of t.
func (t Tile) Position() complex128 {
	return t.VertexCircle.CenterNE
}

// Option configures generation via functional arguments.
type Option func(*Options)

// Options holds execution knobs for Generate.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Tracer receives progress records.
	Tracer tracing.Trace

	// internal error recorded during option parsing
	err error
}

// tracer traces to the "magictile.tiling" key.
func tracer() tracing.Trace {
	return tracing.Select("magictile.tiling")
}

// DefaultOptions returns a background context and the package tracer.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Tracer: tracer(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithTracer replaces the package tracer for progress records.
func WithTracer(t tracing.Trace) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}
