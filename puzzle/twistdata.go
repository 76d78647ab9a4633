package puzzle

import (
	"slices"

	"github.com/katalvlaran/magictile/conformal"
	"github.com/katalvlaran/magictile/geometry"
)

// axisKey names a template axis of a master. All instances of one key, in
// the master and its slaves, twist together.
type axisKey struct {
	master int
	axis   int
}

// parityUnionFind merges axis keys, tracking for every key whether its
// frame is mirrored relative to its root.
type parityUnionFind struct {
	parent map[axisKey]axisKey
	parity map[axisKey]bool
}

func newParityUnionFind() *parityUnionFind {
	return &parityUnionFind{parent: make(map[axisKey]axisKey), parity: make(map[axisKey]bool)}
}

func (u *parityUnionFind) add(k axisKey) {
	if _, ok := u.parent[k]; !ok {
		u.parent[k] = k
	}
}

// find returns the root of k and the parity of k relative to it.
func (u *parityUnionFind) find(k axisKey) (axisKey, bool) {
	p := u.parent[k]
	if p == k {
		return k, false
	}
	root, pp := u.find(p)
	u.parent[k] = root
	u.parity[k] = u.parity[k] != pp
	return root, u.parity[k]
}

// union records that a and b differ in parity by rel.
func (u *parityUnionFind) union(a, b axisKey, rel bool) {
	ra, pa := u.find(a)
	rb, pb := u.find(b)
	if ra == rb {
		return
	}
	u.parent[rb] = ra
	u.parity[rb] = pa != pb != rel
}

// physicalAxis is one distinct world axis and the first instance that
// produced it.
type physicalAxis struct {
	td         TwistData
	kind       AxisKind
	key        axisKey
	parity     bool
	fromMaster bool
}

// buildTwistData places every template axis in every assigned cell, merges
// instances at the same world point, and groups keys that share a world
// axis into identified twists.
func (a *assembler) buildTwistData() error {
	p := a.p
	phys := geometry.NewPointMap[int]()
	uf := newParityUnionFind()
	var axes []physicalAxis

	for _, c := range p.Cells {
		if c.IndexOfMaster < 0 {
			continue
		}
		parity := c.Isometry.Reflected()
		for ai, ax := range p.TemplateAxes {
			key := axisKey{master: c.IndexOfMaster, axis: ai}
			uf.add(key)
			center := c.Isometry.Apply(ax.Center)
			if idx, ok := phys.Get(center); ok {
				ph := &axes[idx]
				uf.union(ph.key, key, ph.parity != parity)
				ph.fromMaster = ph.fromMaster || c.IsMaster
				continue
			}
			circles := make([]conformal.CircleNE, len(ax.Circles))
			for i, circ := range ax.Circles {
				circles[i] = circ.TransformIsometry(c.Isometry)
			}
			phys.Set(center, len(axes))
			axes = append(axes, physicalAxis{
				td:         TwistData{Center: center, Order: ax.Order, Circles: circles},
				kind:       ax.Kind,
				key:        key,
				parity:     parity,
				fromMaster: c.IsMaster,
			})
		}
	}

	type slot struct{ group, axis int }
	groupOf := make(map[axisKey]int)
	refParity := make(map[int]bool)
	placed := make([]slot, len(axes))
	var twists []IdentifiedTwistData
	for idx, ph := range axes {
		placed[idx] = slot{-1, -1}
		if len(ph.td.Circles) == 0 {
			continue
		}
		root, rel := uf.find(ph.key)
		eff := ph.parity != rel
		g, ok := groupOf[root]
		if !ok {
			g = len(twists)
			groupOf[root] = g
			refParity[g] = eff
			twists = append(twists, IdentifiedTwistData{Index: g, Order: ph.td.Order, Kind: ph.kind})
		}
		td := ph.td
		td.Reverse = eff != refParity[g]
		placed[idx] = slot{g, len(twists[g].Axes)}
		if ph.fromMaster {
			twists[g].StateCalc = append(twists[g].StateCalc, len(twists[g].Axes))
		}
		twists[g].Axes = append(twists[g].Axes, td)
	}

	if p.Geometry == geometry.Spherical {
		appendAntipodes(twists, phys, axes, func(idx int) (int, int) { return placed[idx].group, placed[idx].axis })
	}

	p.Twists = twists
	a.opts.Tracer.Debugf("twist data built: %d physical axes in %d groups", len(axes), len(twists))
	return nil
}

// appendAntipodes adds to every spherical axis X the circles of the axis Y
// at its antipode, seen from X: same circles, true center X, reversed order
// so radii stay ascending. Orders must agree, and axes of the same group
// must share an orientation.
func appendAntipodes(twists []IdentifiedTwistData, phys *geometry.PointMap[int], axes []physicalAxis, where func(int) (int, int)) {
	own := make([][]conformal.CircleNE, len(axes))
	for idx := range axes {
		if g, ai := where(idx); g >= 0 {
			own[idx] = slices.Clone(twists[g].Axes[ai].Circles)
		}
	}
	for xi := range axes {
		gx, ax := where(xi)
		if gx < 0 {
			continue
		}
		x := &twists[gx].Axes[ax]
		yi, ok := phys.Get(geometry.Antipode(x.Center))
		if !ok || yi == xi {
			continue
		}
		gy, ay := where(yi)
		if gy < 0 {
			continue
		}
		y := twists[gy].Axes[ay]
		if x.Order != y.Order || (gx == gy && x.Reverse != y.Reverse) {
			continue
		}
		for i := len(own[yi]) - 1; i >= 0; i-- {
			c := own[yi][i]
			c.CenterNE = x.Center
			x.Circles = append(x.Circles, c)
		}
	}
}
