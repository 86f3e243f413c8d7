package core

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex name is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was requested. Connect never creates one.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadEpisode indicates an episode identifier that cannot be stored.
	ErrBadEpisode = errors.New("core: episode identifier out of range")

	// ErrNoEdges indicates a scan over the edge set of a graph that has none.
	ErrNoEdges = errors.New("core: graph has no edges")
)

// Vertex is a named entity together with the episodes it appears in.
type Vertex struct {
	// ID is the unique name of this Vertex within its Graph.
	ID string

	episodes *roaring.Bitmap
}

// Edge is one undirected connection as seen from From.
// Weight is the number of episodes From and To share.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// neighborhood is the adjacency bucket of one vertex.
// order lists neighbor IDs by first connection; weight holds the current weights.
type neighborhood struct {
	order  []string
	weight map[string]int64
}

// Graph is the in-memory episode graph.
type Graph struct {
	vertices map[string]*Vertex
	order    []string // vertex IDs by insertion

	// adjacency[a].weight[b] == adjacency[b].weight[a] for every connected pair
	adjacency map[string]*neighborhood
	edgeCount int
}

// NewGraph returns an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]*neighborhood),
	}
}
