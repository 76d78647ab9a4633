// Package bfs implements breadth-first search on a core.Graph.
//
// What
//
//   - BFS(g, start, opts...) visits vertices in increasing edge distance from
//     start and reports the visit order and each vertex's depth.
//   - Components(g) splits g into connected components.
//
// Complexity
//
//   - Time:   O(V + E·log d), neighbor lists are sorted for determinism.
//   - Memory: O(V).
//
// Options
//
//   - WithContext(ctx)  cancellation, checked once per dequeued vertex.
//   - WithMaxDepth(d)   stop expanding past depth d (0 = unlimited).
//
// Usage
//
//	res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(2))
//	for _, id := range res.Order { ... }
//
// Errors
//
//   - ErrGraphNil            for a nil graph.
//   - ErrStartVertexNotFound if start is absent.
//   - ErrOptionViolation     for a negative depth.
//   - ErrNeighbors           if neighbor lookup fails.
package bfs
