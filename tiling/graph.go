package tiling

import (
	"strconv"

	"github.com/katalvlaran/magictile/bfs"
	"github.com/katalvlaran/magictile/core"
)

// tileID is the graph vertex ID of tile i.
func tileID(i int) string { return strconv.Itoa(i) }

// Graph returns the edge-adjacency graph of the tiling. Vertex IDs are tile
// indices in decimal.
func (t *Tiling) Graph() *core.Graph {
	g := core.NewGraph()
	for i := range t.Tiles {
		_ = g.AddVertex(tileID(i))
	}
	for i, tile := range t.Tiles {
		for _, j := range tile.EdgeIncidences {
			if j > i {
				_ = g.AddEdge(tileID(i), tileID(j))
			}
		}
	}
	return g
}

// Connected reports whether every tile is reachable from every other through
// shared edges.
func (t *Tiling) Connected() bool {
	comps, err := bfs.Components(t.Graph())
	return err == nil && len(comps) == 1
}

// Neighborhood returns the tiles within depth edge steps of tile i, i first,
// in breadth-first order.
func (t *Tiling) Neighborhood(i, depth int) ([]int, error) {
	if i < 0 || i >= len(t.Tiles) {
		return nil, ErrTileNotFound
	}
	if depth <= 0 {
		return []int{i}, nil
	}
	res, err := bfs.BFS(t.Graph(), tileID(i), bfs.WithMaxDepth(depth))
	if err != nil {
		return nil, err
	}
	out := make([]int, len(res.Order))
	for k, id := range res.Order {
		out[k], _ = strconv.Atoi(id)
	}
	return out, nil
}
