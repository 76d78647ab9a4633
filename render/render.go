package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"github.com/katalvlaran/magictile/geometry"
	"github.com/katalvlaran/magictile/planar"
	"github.com/katalvlaran/magictile/puzzle"
	"github.com/katalvlaran/magictile/tiling"
)

var formats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tif": true, "tiff": true,
}

// canvas wraps a plot with the sampler used for outlines.
type canvas struct {
	plot    *plot.Plot
	sampler planar.BoundarySampler
	geom    geometry.Geometry
	opts    Options
}

func newCanvas(g geometry.Geometry, format string, opts []Option) (*canvas, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !formats[strings.ToLower(format)] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.HideAxes()
	p.X.Min, p.X.Max = -o.Extent, o.Extent
	p.Y.Min, p.Y.Max = -o.Extent, o.Extent
	if g == geometry.Hyperbolic {
		disk, err := outline(unitCircle(4*o.Samples), color.Gray{Y: 160})
		if err != nil {
			return nil, err
		}
		p.Add(disk)
	}
	return &canvas{plot: p, sampler: planar.BoundarySampler{PerSegment: o.Samples}, geom: g, opts: o}, nil
}

// add draws poly, filled with fill when it is non-nil. Polygons with fewer
// than three finite samples are skipped.
func (c *canvas) add(poly planar.Polygon, fill color.Color) error {
	var xys plotter.XYs
	for z := range c.sampler.TextureCoords(poly, c.geom) {
		xys = append(xys, plotter.XY{X: real(z), Y: imag(z)})
	}
	if len(xys) < 3 {
		return nil
	}
	pg, err := outline(xys, color.Black)
	if err != nil {
		return err
	}
	pg.Color = fill
	c.plot.Add(pg)
	return nil
}

func (c *canvas) write(w io.Writer, format string) error {
	wt, err := c.plot.WriterTo(c.opts.Size, c.opts.Size, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

func outline(xys plotter.XYs, line color.Color) (*plotter.Polygon, error) {
	pg, err := plotter.NewPolygon(xys)
	if err != nil {
		return nil, err
	}
	pg.LineStyle.Color = line
	pg.LineStyle.Width = 0.5
	return pg, nil
}

func unitCircle(n int) plotter.XYs {
	arc := planar.ArcFromPoints(1, 1i, -1)
	top := arc.Subdivide(n)
	xys := make(plotter.XYs, 0, 2*len(top))
	for _, z := range top {
		xys = append(xys, plotter.XY{X: real(z), Y: imag(z)})
	}
	for i := len(top) - 2; i > 0; i-- {
		xys = append(xys, plotter.XY{X: real(top[i]), Y: -imag(top[i])})
	}
	return xys
}

// Tiling draws the Drawn outline of every tile to w in format ("svg",
// "png", "pdf", ...).
func Tiling(t *tiling.Tiling, w io.Writer, format string, opts ...Option) error {
	c, err := newCanvas(t.Geometry, format, opts)
	if err != nil {
		return err
	}
	for _, tile := range t.Tiles {
		if err := c.add(tile.Drawn, nil); err != nil {
			return err
		}
	}
	return c.write(w, format)
}

// Puzzle draws every sticker of every assigned cell, filled with the color
// its State entry holds. Unassigned cells are drawn as bare outlines.
func Puzzle(p *puzzle.Puzzle, w io.Writer, format string, opts ...Option) error {
	c, err := newCanvas(p.Geometry, format, opts)
	if err != nil {
		return err
	}
	for ci, cell := range p.Cells {
		stickers, colors := p.StickersOf(ci)
		if stickers == nil {
			if err := c.add(cell.Boundary, nil); err != nil {
				return err
			}
			continue
		}
		for i, s := range stickers {
			if err := c.add(s.Polygon, plotutil.Color(colors[i])); err != nil {
				return err
			}
		}
	}
	return c.write(w, format)
}
