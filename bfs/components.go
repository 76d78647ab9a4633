package bfs

import "github.com/katalvlaran/magictile/core"

// Components finds the connected components of g. Components are listed in
// the order of their smallest vertex ID; each is in breadth-first order.
//
// Time:   O(V+E·log d).
// Memory: O(V) for visited flags and output.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		queue := []string{id}
		seen[id] = true
		for qi := 0; qi < len(queue); qi++ {
			nbrs, err := g.NeighborIDs(queue[qi])
			if err != nil {
				return nil, err
			}
			for _, v := range nbrs {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps, nil
}
