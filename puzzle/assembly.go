package puzzle

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/katalvlaran/magictile/conformal"
	"github.com/katalvlaran/magictile/geometry"
	"github.com/katalvlaran/magictile/neartree"
	"github.com/katalvlaran/magictile/planar"
	"github.com/katalvlaran/magictile/slicer"
	"github.com/katalvlaran/magictile/tiling"
)

// Puzzle is an assembled puzzle. Cells, twist groups and the State are
// stored in arenas and referenced by index.
type Puzzle struct {
	Config   Config
	Geometry geometry.Geometry
	Tiling   *tiling.Tiling

	// Identifications map the home cell onto its identified copies.
	Identifications []conformal.Isometry
	Cells           []Cell
	// Masters lists the cell index of every master, by master index.
	Masters []int

	// Template holds the sticker pieces of the home tile.
	Template     []Sticker
	TemplateAxes []TemplateAxis
	Twists       []IdentifiedTwistData

	State   *State
	History TwistHistory

	cellTree *neartree.NearTree[int]
	axisTree *neartree.NearTree[AxisRef]
	trace    tracing.Trace
}

// assembler carries options through the build phases.
type assembler struct {
	opts Options
	p    *Puzzle
}

// Build assembles the puzzle described by cfg. A failed or cancelled build
// returns a nil Puzzle.
func Build(cfg Config, opts ...Option) (*Puzzle, error) {
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

	a := &assembler{
		opts: o,
		p:    &Puzzle{Config: cfg, Geometry: cfg.Tiling.Geometry(), trace: o.Tracer},
	}
	phases := []struct {
		name string
		run  func() error
	}{
		{PhaseTiling, a.generateTiling},
		{PhaseIdentifications, a.computeIdentifications},
		{PhaseCells, a.assembleCells},
		{PhaseStickers, a.sliceStickers},
		{PhaseTwistData, a.buildTwistData},
		{PhaseIndex, a.buildIndex},
	}
	for _, ph := range phases {
		// cancellation check (once per phase)
		select {
		case <-o.Ctx.Done():
			o.Status("build cancelled")
			return nil, o.Ctx.Err()
		default:
		}
		o.Status(ph.name)
		if err := ph.run(); err != nil {
			o.Status("build failed")
			o.Tracer.P("phase", ph.name).Errorf("puzzle build failed: %v", err)
			return nil, err
		}
	}
	o.Tracer.P("puzzle", cfg.Name).Infof("built %s puzzle: %d cells, %d masters, %d stickers, %d twists",
		a.p.Geometry, len(a.p.Cells), len(a.p.Masters), len(a.p.Template), len(a.p.Twists))
	return a.p, nil
}

func (a *assembler) generateTiling() error {
	t, err := tiling.Generate(a.p.Config.Tiling, tiling.WithContext(a.opts.Ctx), tiling.WithTracer(a.opts.Tracer))
	if err != nil {
		return err
	}
	a.p.Tiling = t
	return nil
}

func (a *assembler) computeIdentifications() error {
	ids, err := identifications(a.p.Config, a.p.Tiling.First().Boundary)
	if err != nil {
		return err
	}
	a.p.Identifications = ids
	a.opts.Tracer.Debugf("%d identifications", len(ids))
	return nil
}

// assembleCells walks the tiling in order, making a master of every
// unclaimed tile and spreading slaves from it through the identifications.
func (a *assembler) assembleCells() error {
	p := a.p
	home := p.Tiling.First().Boundary
	claimed := geometry.NewPointMap[int]()
	budget := p.Config.ExpectedNumColors

	for ti, tile := range p.Tiling.Tiles {
		if claimed.Has(tile.Position()) {
			continue
		}
		iso := tile.Isometry.Inverse()
		ci := len(p.Cells)
		claimed.Set(tile.Position(), ci)

		if budget > 0 && len(p.Masters) >= budget {
			a.opts.Tracer.P("tile", ti).Errorf("color budget of %d exceeded, cell left unassigned", budget)
			p.Cells = append(p.Cells, Cell{IndexOfMaster: -1, Tile: ti, Isometry: iso, Boundary: home.TransformIsometry(iso)})
			continue
		}

		master := len(p.Masters)
		p.Masters = append(p.Masters, ci)
		p.Cells = append(p.Cells, Cell{
			IndexOfMaster: master,
			IsMaster:      true,
			Tile:          ti,
			Isometry:      iso,
			Boundary:      home.TransformIsometry(iso),
		})
		a.spreadSlaves(master, iso, claimed)
	}
	a.opts.Tracer.Debugf("%d cells assembled, %d masters", len(p.Cells), len(p.Masters))
	if len(p.Masters) == 0 {
		return fmt.Errorf("%w: no master cells", ErrInvalidConfig)
	}
	return nil
}

// spreadSlaves runs a breadth-first search from a master, applying every
// identification in the frame of the cell it is applied to.
func (a *assembler) spreadSlaves(master int, root conformal.Isometry, claimed *geometry.PointMap[int]) {
	p := a.p
	home := p.Tiling.First().Boundary
	queue := []conformal.Isometry{root}
	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]
		for _, id := range p.Identifications {
			child := parent.Mul(id)
			pos := child.Apply(0)
			ti, ok := p.Tiling.TileAt(pos)
			if !ok || claimed.Has(pos) {
				continue
			}
			claimed.Set(pos, len(p.Cells))
			p.Cells = append(p.Cells, Cell{
				IndexOfMaster: master,
				Tile:          ti,
				Isometry:      child,
				Boundary:      home.TransformIsometry(child),
			})
			queue = append(queue, child)
		}
	}
}

// sliceStickers cuts the home tile into the sticker template and stamps it
// into every state-calc cell.
func (a *assembler) sliceStickers() error {
	p := a.p
	p.TemplateAxes = templateAxes(p.Geometry, p.Tiling.First().Boundary, p.Config.Tiling.Q, p.Config.Slicing)

	circles, err := a.templateCircles()
	if err != nil {
		return err
	}
	tmpl, err := sliceTemplate(p.Tiling.First().Boundary, circles)
	if err != nil {
		return err
	}
	p.Template = tmpl
	a.opts.Tracer.Debugf("template sliced by %d circles into %d stickers", len(circles), len(tmpl))

	a.markStateCalcCells()
	for ci := range p.Cells {
		if p.Cells[ci].StateCalc {
			p.Cells[ci].Stickers = stamp(p.Template, ci, p.Cells[ci].Isometry)
		}
	}
	return nil
}

// templateCircles gathers the slicing circles of every template axis placed
// in the tiles around home, keeping those that can reach the home tile.
func (a *assembler) templateCircles() ([]conformal.Circle, error) {
	p := a.p
	home := p.Tiling.First().Boundary
	near, err := p.Tiling.Neighborhood(0, neighborhoodDepth)
	if err != nil {
		return nil, err
	}
	hb := home.Bounds()
	var out []conformal.Circle
	for _, ti := range near {
		iso := p.Tiling.Tiles[ti].Isometry.Inverse()
		for _, ax := range p.TemplateAxes {
			for _, c := range ax.Circles {
				w := c.TransformIsometry(iso)
				if !mayReach(w, hb) || containsCircle(out, w.Circle) {
					continue
				}
				out = append(out, w.Circle)
			}
		}
	}
	return out, nil
}

// neighborhoodDepth is how many edge steps from home slicing circles are
// collected.
const neighborhoodDepth = 3

// sliceTemplate slices boundary and keeps pieces of non-negligible area.
func sliceTemplate(boundary planar.Polygon, circles []conformal.Circle) ([]Sticker, error) {
	pieces, err := slicer.SliceByCircles(boundary, circles)
	if err != nil {
		return nil, err
	}
	var out []Sticker
	for _, piece := range pieces {
		if piece.Area() < geometry.Tolerance {
			continue
		}
		out = append(out, Sticker{
			Cell:     -1,
			Index:    len(out),
			Polygon:  piece,
			Center:   piece.Centroid(),
			Interior: piece.InteriorPoint(),
		})
	}
	return out, nil
}

// stamp maps the template into cell ci.
func stamp(tmpl []Sticker, ci int, iso conformal.Isometry) []Sticker {
	out := make([]Sticker, len(tmpl))
	for i, s := range tmpl {
		out[i] = Sticker{
			Cell:     ci,
			Index:    s.Index,
			Polygon:  s.Polygon.TransformIsometry(iso),
			Center:   iso.Apply(s.Center),
			Interior: iso.Apply(s.Interior),
		}
	}
	return out
}

// markStateCalcCells flags masters and every cell with a sticker inside
// the outermost circle of an axis placed on a master.
func (a *assembler) markStateCalcCells() {
	p := a.p
	var outer []conformal.CircleNE
	for _, mi := range p.Masters {
		p.Cells[mi].StateCalc = true
		for _, ax := range p.TemplateAxes {
			if len(ax.Circles) > 0 {
				outer = append(outer, ax.Circles[len(ax.Circles)-1].TransformIsometry(p.Cells[mi].Isometry))
			}
		}
	}

	for ci := range p.Cells {
		c := &p.Cells[ci]
		if c.StateCalc || c.IndexOfMaster < 0 {
			continue
		}
		cb := c.Boundary.Bounds()
		for _, circ := range outer {
			if !mayReach(circ, cb) {
				continue
			}
			if anyStickerInside(p.Template, c.Isometry, circ) {
				c.StateCalc = true
				break
			}
		}
	}
}

func anyStickerInside(tmpl []Sticker, iso conformal.Isometry, c conformal.CircleNE) bool {
	for _, s := range tmpl {
		if c.ContainsNE(iso.Apply(s.Interior)) {
			return true
		}
	}
	return false
}

func containsCircle(set []conformal.Circle, c conformal.Circle) bool {
	for _, s := range set {
		if s.Equal(c) {
			return true
		}
	}
	return false
}
