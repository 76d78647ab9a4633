// Package core defines the undirected adjacency Graph used for tile
// neighborhoods, with thread-safe primitives for building and querying it.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop requested.
//	ErrMultiEdgeNotAllowed - second edge between the same vertices.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Graph is an undirected, unweighted simple graph keyed by string IDs.
//
// muVert protects vertices; muAdj protects the adjacency sets and the edge
// count.
type Graph struct {
	muVert sync.RWMutex
	muAdj  sync.RWMutex

	vertices map[string]struct{}
	// adjacency[a][b] exists iff edge {a,b} exists; mirrored for both ends.
	adjacency map[string]map[string]struct{}
	edges     int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]struct{}),
	}
}
