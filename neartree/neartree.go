// Package neartree is a nearest-neighbor index over points of a geometry,
// measured with the geometry's own distance.
package neartree

import (
	"errors"
	"math"

	"github.com/katalvlaran/magictile/conformal"
	"github.com/katalvlaran/magictile/geometry"
)

// ErrInvalidGeometry is returned by New for an unknown geometry.
var ErrInvalidGeometry = errors.New("neartree: invalid geometry")

// Object is one indexed point with its payload.
type Object[T any] struct {
	Location complex128
	Value    T
}

type node[T any] struct {
	left, right       *Object[T]
	maxLeft, maxRight float64
	leftBranch        *node[T]
	rightBranch       *node[T]
}

// NearTree indexes objects by location. It is not safe for concurrent
// mutation; concurrent queries after the last Insert are fine.
type NearTree[T any] struct {
	g    geometry.Geometry
	root node[T]
	n    int
}

// New returns an empty tree measuring distances in g.
func New[T any](g geometry.Geometry) (*NearTree[T], error) {
	if !g.Valid() {
		return nil, ErrInvalidGeometry
	}
	return &NearTree[T]{g: g, root: newNode[T]()}, nil
}

func newNode[T any]() node[T] {
	return node[T]{maxLeft: -1, maxRight: -1}
}

// Len returns the number of indexed objects.
func (t *NearTree[T]) Len() int { return t.n }

func (t *NearTree[T]) dist(a, b complex128) float64 {
	return conformal.Distance(t.g, a, b)
}

// Insert adds v at loc.
func (t *NearTree[T]) Insert(loc complex128, v T) {
	obj := &Object[T]{Location: loc, Value: v}
	n := &t.root
	for {
		switch {
		case n.left == nil:
			n.left = obj
			t.n++
			return
		case n.right == nil:
			n.right = obj
			t.n++
			return
		}

		dl, dr := t.dist(loc, n.left.Location), t.dist(loc, n.right.Location)
		if dl <= dr {
			if n.leftBranch == nil {
				b := newNode[T]()
				n.leftBranch = &b
			}
			n.maxLeft = math.Max(n.maxLeft, dl)
			n = n.leftBranch
		} else {
			if n.rightBranch == nil {
				b := newNode[T]()
				n.rightBranch = &b
			}
			n.maxRight = math.Max(n.maxRight, dr)
			n = n.rightBranch
		}
	}
}

// FindNearestNeighbor returns the object closest to q within maxDist.
func (t *NearTree[T]) FindNearestNeighbor(q complex128, maxDist float64) (Object[T], bool) {
	var best *Object[T]
	radius := maxDist
	t.nearest(&t.root, q, &radius, &best)
	if best == nil {
		return Object[T]{}, false
	}
	return *best, true
}

func (t *NearTree[T]) nearest(n *node[T], q complex128, radius *float64, best **Object[T]) {
	var dl, dr float64 = math.Inf(1), math.Inf(1)
	if n.left != nil {
		dl = t.dist(q, n.left.Location)
		if dl <= *radius {
			*radius, *best = dl, n.left
		}
	}
	if n.right != nil {
		dr = t.dist(q, n.right.Location)
		if dr <= *radius {
			*radius, *best = dr, n.right
		}
	}

	// Visit the nearer side first so the radius shrinks early.
	first, second := n.leftBranch, n.rightBranch
	df, ds := dl, dr
	mf, ms := n.maxLeft, n.maxRight
	if dr < dl {
		first, second = second, first
		df, ds = ds, df
		mf, ms = ms, mf
	}
	if first != nil && *radius+mf >= df {
		t.nearest(first, q, radius, best)
	}
	if second != nil && *radius+ms >= ds {
		t.nearest(second, q, radius, best)
	}
}

// FindInRadius returns every object within r of q, in no particular order.
func (t *NearTree[T]) FindInRadius(q complex128, r float64) []Object[T] {
	var out []Object[T]
	stack := []*node[T]{&t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.left != nil {
			d := t.dist(q, n.left.Location)
			if d <= r {
				out = append(out, *n.left)
			}
			if n.leftBranch != nil && r+n.maxLeft >= d {
				stack = append(stack, n.leftBranch)
			}
		}
		if n.right != nil {
			d := t.dist(q, n.right.Location)
			if d <= r {
				out = append(out, *n.right)
			}
			if n.rightBranch != nil && r+n.maxRight >= d {
				stack = append(stack, n.rightBranch)
			}
		}
	}
	return out
}
