package slicer

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/magictile/conformal"
	"github.com/katalvlaran/magictile/geometry"
	"github.com/katalvlaran/magictile/planar"
)

// diced is a copy of a polygon with every intersection point spliced in as
// a vertex. Vertex i is segs[i].P1.
type diced struct {
	segs   []planar.Segment
	onCirc []bool
}

// chord is the piece of the slicing circle joining two paired crossings.
type chord struct {
	to  int
	seg planar.Segment
}

// SlicePolygon cuts p by c and returns the pieces, all counterclockwise.
//
// When c does not cross the boundary at least twice (including tangency and
// touching at a vertex) the polygon is returned unsliced. Pieces are not
// filtered by area.
func SlicePolygon(p planar.Polygon, c conformal.Circle) ([]planar.Polygon, error) {
	poly := p.Clone()
	if poly.IsClockwise() {
		poly.Reverse()
	}

	d, err := dice(poly, c)
	if err != nil {
		return nil, err
	}

	// Side of each diced segment, judged at its midpoint. A segment lying on
	// c means the polygon is already bounded by it.
	n := len(d.segs)
	sides := make([]int, n)
	for i, s := range d.segs {
		sides[i] = c.Side(s.Midpoint())
		if sides[i] == 0 && !s.HasInfinitePoints() {
			return []planar.Polygon{poly}, nil
		}
	}

	crossings, err := findCrossings(d.onCirc, sides)
	if err != nil {
		return nil, err
	}
	if len(crossings) <= 1 {
		return []planar.Polygon{poly}, nil
	}

	chords := pairUp(poly, c, d, crossings)
	pieces, err := walk(d, crossings, chords)
	if err != nil {
		return nil, err
	}
	return dedupe(pieces), nil
}

// findCrossings returns the diced vertices where the boundary passes from
// one side of the circle to the other. Vertex i sits between segments i-1
// and i.
func findCrossings(onCirc []bool, sides []int) ([]int, error) {
	n := len(sides)
	var crossings []int
	for i := 0; i < n; i++ {
		if onCirc[i] && sides[(i+n-1)%n] != sides[i] {
			crossings = append(crossings, i)
		}
	}
	if len(crossings) > 1 && len(crossings)%2 == 1 {
		return nil, fmt.Errorf("%w: %d crossings", ErrOddIntersections, len(crossings))
	}
	return crossings, nil
}

// dice splices the intersections of c with every segment of p into a copy.
func dice(p planar.Polygon, c conformal.Circle) (diced, error) {
	var d diced
	for i, s := range p.Segments {
		startsOn := !geometry.IsInfinite(s.P1) && c.Side(s.P1) == 0
		if err := d.splice(s, s.Intersections(c), startsOn); err != nil {
			return diced{}, fmt.Errorf("segment %d: %w", i, err)
		}
	}
	return d, nil
}

// splice appends s to d, cut at pts, which must lie on s in order from P1.
func (d *diced) splice(s planar.Segment, pts []complex128, startsOn bool) error {
	if len(pts) > 2 {
		return fmt.Errorf("%w: %d points", ErrTooManyIntersections, len(pts))
	}
	mark, cur := startsOn, s
	for _, z := range pts {
		if geometry.EqualPoints(z, cur.P1) || geometry.EqualPoints(z, cur.P2) {
			continue
		}
		a, b := cur.Split(z)
		d.segs = append(d.segs, a)
		d.onCirc = append(d.onCirc, mark)
		cur, mark = b, true
	}
	d.segs = append(d.segs, cur)
	d.onCirc = append(d.onCirc, mark)
	return nil
}

// interiorChord returns the part of c joining a and b that runs inside p.
func interiorChord(p planar.Polygon, c conformal.Circle, a, b complex128) (planar.Segment, bool) {
	if c.IsLine() {
		s := planar.NewLineSegment(a, b)
		return s, p.Contains(s.Midpoint())
	}
	r := complex(c.Radius, 0)
	ta, tb := cmplx.Phase(a-c.Center), cmplx.Phase(b-c.Center)
	sweep := math.Mod(tb-ta, 2*math.Pi)
	if sweep < 0 {
		sweep += 2 * math.Pi
	}
	ccwMid := c.Center + r*cmplx.Rect(1, ta+sweep/2)
	cwMid := c.Center + r*cmplx.Rect(1, ta+sweep/2+math.Pi)
	switch {
	case p.Contains(ccwMid):
		return planar.ArcFromPoints(a, ccwMid, b), true
	case p.Contains(cwMid):
		return planar.ArcFromPoints(a, cwMid, b), true
	}
	// Neither arc is clearly inside; take the minor one.
	if sweep <= math.Pi {
		return planar.ArcFromPoints(a, ccwMid, b), false
	}
	return planar.ArcFromPoints(a, cwMid, b), false
}

// pairUp pairs crossings in encounter order, rotating the pairing by one when
// the first candidate chord does not run inside p. It returns the chord
// leaving each crossing.
func pairUp(p planar.Polygon, c conformal.Circle, d diced, crossings []int) map[int]chord {
	k := len(crossings)
	at := func(i int) complex128 { return d.segs[crossings[i%k]].P1 }

	offset := 0
	if _, ok := interiorChord(p, c, at(0), at(1)); !ok && k > 2 {
		offset = 1
	}

	chords := make(map[int]chord, k)
	for i := offset; i < k+offset; i += 2 {
		ia, ib := crossings[i%k], crossings[(i+1)%k]
		seg, _ := interiorChord(p, c, at(i), at(i+1))
		chords[ia] = chord{to: ib, seg: seg}
		chords[ib] = chord{to: ia, seg: seg.Reverse()}
	}
	return chords
}

// walk traces every face of the cut polygon: from each crossing, follow the
// boundary forward and turn onto the chord at every crossing reached.
func walk(d diced, crossings []int, chords map[int]chord) ([]planar.Polygon, error) {
	n := len(d.segs)
	limit := 2 * (n + len(crossings))
	var out []planar.Polygon
	for _, start := range crossings {
		var segs []planar.Segment
		cur := start
		for steps := 0; ; steps++ {
			if steps > limit {
				return nil, fmt.Errorf("%w: from vertex %d", ErrWalkNotClosed, start)
			}
			segs = append(segs, d.segs[cur])
			cur = (cur + 1) % n
			if cur == start {
				break
			}
			if ch, ok := chords[cur]; ok {
				segs = append(segs, ch.seg)
				cur = ch.to
				if cur == start {
					break
				}
			}
		}
		out = append(out, planar.NewPolygon(segs))
	}
	return out, nil
}

// dedupe drops structurally equal polygons, keeping the first.
func dedupe(polys []planar.Polygon) []planar.Polygon {
	var out []planar.Polygon
	for _, p := range polys {
		dup := false
		for _, q := range out {
			if p.Equal(q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// SliceByCircles slices p by each circle in turn, accumulating the pieces.
func SliceByCircles(p planar.Polygon, circles []conformal.Circle) ([]planar.Polygon, error) {
	pieces := []planar.Polygon{p}
	for i, c := range circles {
		var next []planar.Polygon
		for _, piece := range pieces {
			res, err := SlicePolygon(piece, c)
			if err != nil {
				return nil, fmt.Errorf("circle %d: %w", i, err)
			}
			next = append(next, res...)
		}
		pieces = next
	}
	return pieces, nil
}

// Shrink slices p by every circle and returns the piece containing keep.
func Shrink(p planar.Polygon, circles []conformal.Circle, keep complex128) (planar.Polygon, error) {
	pieces, err := SliceByCircles(p, circles)
	if err != nil {
		return planar.Polygon{}, err
	}
	for _, piece := range pieces {
		if piece.Contains(keep) {
			piece.Center = keep
			return piece, nil
		}
	}
	return planar.Polygon{}, ErrNoPieceContains
}
