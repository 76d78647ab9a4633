package puzzle

import (
	"math"
	"slices"

	"github.com/katalvlaran/magictile/neartree"
)

// buildIndex fills the cell and axis trees and allocates the State.
func (a *assembler) buildIndex() error {
	p := a.p
	cells, err := neartree.New[int](p.Geometry)
	if err != nil {
		return err
	}
	for ci, c := range p.Cells {
		cells.Insert(c.Position(), ci)
	}
	axes, err := neartree.New[AxisRef](p.Geometry)
	if err != nil {
		return err
	}
	for g, group := range p.Twists {
		for ai, td := range group.Axes {
			axes.Insert(td.Center, AxisRef{Group: g, Axis: ai})
		}
	}
	p.cellTree, p.axisTree = cells, axes
	p.State = NewState(len(p.Masters), len(p.Template))
	return nil
}

// ClosestCell returns the index of the cell centered nearest to z.
func (p *Puzzle) ClosestCell(z complex128) (int, bool) {
	obj, ok := p.cellTree.FindNearestNeighbor(z, math.Inf(1))
	if !ok {
		return 0, false
	}
	return obj.Value, true
}

// CellsWithin returns the indices of the cells centered within distance r
// of z, measured in the puzzle's geometry, in ascending order.
func (p *Puzzle) CellsWithin(z complex128, r float64) []int {
	objs := p.cellTree.FindInRadius(z, r)
	out := make([]int, 0, len(objs))
	for _, o := range objs {
		out = append(out, o.Value)
	}
	slices.Sort(out)
	return out
}

// ClosestTwistingCircles returns the twist axis nearest to z.
func (p *Puzzle) ClosestTwistingCircles(z complex128) (AxisRef, TwistData, bool) {
	obj, ok := p.axisTree.FindNearestNeighbor(z, math.Inf(1))
	if !ok {
		return AxisRef{}, TwistData{}, false
	}
	ref := obj.Value
	return ref, p.Twists[ref.Group].Axes[ref.Axis], true
}

// StickersOf returns the stickers of cell ci with their current colors,
// for rendering. Cells outside the state-calc set are stamped on demand.
func (p *Puzzle) StickersOf(ci int) ([]Sticker, []int) {
	c := p.Cells[ci]
	if c.IndexOfMaster < 0 {
		return nil, nil
	}
	if c.Stickers == nil {
		c.Stickers = stamp(p.Template, ci, c.Isometry)
	}
	colors := make([]int, len(c.Stickers))
	for i, s := range c.Stickers {
		colors[i] = p.State.Color(StickerID{Master: c.IndexOfMaster, Sticker: s.Index})
	}
	return c.Stickers, colors
}
