package core

import "sort"

// AddVertex inserts id if absent. Adding an existing vertex is a no-op.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.vertices[id] = struct{}{}
	return nil
}

// HasVertex reports whether id exists.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]
	return ok
}

// AddEdge links from and to, creating missing vertices.
// Steps:
//  1. Validate IDs and reject loops.
//  2. Ensure both vertices exist.
//  3. Under muAdj, reject a parallel edge, then store both mirrors.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	if _, ok := g.adjacency[from][to]; ok {
		return ErrMultiEdgeNotAllowed
	}
	g.ensureAdj(from)
	g.ensureAdj(to)
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}
	g.edges++
	return nil
}

// HasEdge reports whether from and to are adjacent.
// Complexity: O(1)
func (g *Graph) HasEdge(from, to string) bool {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	_, ok := g.adjacency[from][to]
	return ok
}

// NeighborIDs returns the sorted IDs adjacent to id.
// Complexity: O(d·log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	out := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Strings(out)
	return out, nil
}

// Vertices returns all vertex IDs, sorted.
// Complexity: O(V·log V)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// VertexCount returns |V|.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.vertices)
}

// EdgeCount returns |E|.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	return g.edges
}

// ensureAdj allocates the adjacency set of id. Caller holds muAdj.
func (g *Graph) ensureAdj(id string) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]struct{})
	}
}
