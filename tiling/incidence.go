package tiling

import (
	"slices"

	"github.com/katalvlaran/magictile/geometry"
)

// buildIncidences fills EdgeIncidences and VertexIncidences by bucketing
// tiles on shared edge midpoints and shared vertices.
func (t *Tiling) buildIncidences() {
	edges := geometry.NewPointMap[[]int]()
	verts := geometry.NewPointMap[[]int]()
	for i, tile := range t.Tiles {
		for _, s := range tile.Boundary.Segments {
			if s.HasInfinitePoints() {
				continue
			}
			bucket(edges, s.Midpoint(), i)
		}
		for _, v := range tile.Boundary.Vertices() {
			bucket(verts, v, i)
		}
	}

	for i := range t.Tiles {
		tile := &t.Tiles[i]
		tile.EdgeIncidences = gather(edges, edgeKeys(tile), i, nil)
		tile.VertexIncidences = gather(verts, tile.Boundary.Vertices(), i, tile.EdgeIncidences)
	}
}

func edgeKeys(tile *Tile) []complex128 {
	var out []complex128
	for _, s := range tile.Boundary.Segments {
		if !s.HasInfinitePoints() {
			out = append(out, s.Midpoint())
		}
	}
	return out
}

func bucket(m *geometry.PointMap[[]int], z complex128, i int) {
	cur, _ := m.Get(z)
	if !slices.Contains(cur, i) {
		m.Set(z, append(cur, i))
	}
}

// gather unions the buckets at keys, without self and without anything in
// exclude, sorted ascending.
func gather(m *geometry.PointMap[[]int], keys []complex128, self int, exclude []int) []int {
	var out []int
	for _, z := range keys {
		ids, _ := m.Get(z)
		for _, j := range ids {
			if j == self || slices.Contains(exclude, j) || slices.Contains(out, j) {
				continue
			}
			out = append(out, j)
		}
	}
	slices.Sort(out)
	return out
}
