package geometry

import (
	"github.com/golang/geo/s2"
)

// bucketLevel is the deepest s2 cell level whose cells are at least
// 4·Tolerance wide, so a match for a point always lies in its own cell or
// one of that cell's neighbors.
var bucketLevel = s2.MinWidthMetric.MaxLevel(4 * Tolerance)

type pointEntry[V any] struct {
	at    s2.Point
	point complex128
	value V
}

// PointMap is a map keyed by points of the extended plane, where two keys
// within Tolerance of each other are the same key.
//
// Keys are lifted onto the unit sphere (see ToSphere) and bucketed by s2
// cell, so the point at infinity is an ordinary key and far-away points
// compare with bounded rounding error. Insertion order is preserved by
// Values.
type PointMap[V any] struct {
	buckets map[s2.CellID][]int
	entries []pointEntry[V]
}

// NewPointMap returns an empty PointMap.
func NewPointMap[V any]() *PointMap[V] {
	return &PointMap[V]{buckets: make(map[s2.CellID][]int)}
}

func lift(z complex128) s2.Point {
	return s2.Point{Vector: ToSphere(z)}
}

func cellOf(p s2.Point) s2.CellID {
	return s2.CellFromPoint(p).ID().Parent(bucketLevel)
}

// find returns the entry index holding p, or -1.
func (m *PointMap[V]) find(p s2.Point) int {
	cell := cellOf(p)
	for _, c := range append([]s2.CellID{cell}, cell.AllNeighbors(bucketLevel)...) {
		for _, i := range m.buckets[c] {
			if m.entries[i].at.Vector.Sub(p.Vector).Norm() <= Tolerance {
				return i
			}
		}
	}
	return -1
}

// Get returns the value stored for z and whether it was present.
func (m *PointMap[V]) Get(z complex128) (V, bool) {
	if i := m.find(lift(z)); i >= 0 {
		return m.entries[i].value, true
	}
	var zero V
	return zero, false
}

// Has reports whether z is a key.
func (m *PointMap[V]) Has(z complex128) bool {
	return m.find(lift(z)) >= 0
}

// Set stores v under z, replacing any value already stored for an equal key.
func (m *PointMap[V]) Set(z complex128, v V) {
	at := lift(z)
	if i := m.find(at); i >= 0 {
		m.entries[i].value = v
		return
	}
	m.insert(at, z, v)
}

// Add stores v under z only when z is absent. It returns the value now stored
// for z and true if v was inserted.
func (m *PointMap[V]) Add(z complex128, v V) (V, bool) {
	at := lift(z)
	if i := m.find(at); i >= 0 {
		return m.entries[i].value, false
	}
	m.insert(at, z, v)
	return v, true
}

func (m *PointMap[V]) insert(at s2.Point, z complex128, v V) {
	k := cellOf(at)
	m.buckets[k] = append(m.buckets[k], len(m.entries))
	m.entries = append(m.entries, pointEntry[V]{at: at, point: z, value: v})
}

// Len returns the number of distinct keys.
func (m *PointMap[V]) Len() int {
	return len(m.entries)
}

// Values returns the stored values in insertion order.
func (m *PointMap[V]) Values() []V {
	out := make([]V, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.value
	}
	return out
}

// Keys returns the stored keys in insertion order.
func (m *PointMap[V]) Keys() []complex128 {
	out := make([]complex128, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.point
	}
	return out
}
