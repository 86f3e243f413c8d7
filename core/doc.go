// Package core provides the episode graph: an undirected, weighted graph whose
// vertices are named entities carrying a set of episode identifiers.
//
// The weight of an edge is never supplied by the caller. Connect(a, b) derives
// it as the size of the intersection of both episode sets and writes it into
// both adjacency directions at once, so the adjacency is always symmetric:
//
//	w(a,b) = |episodes(a) ∩ episodes(b)| = w(b,a)
//
// A zero weight is a real edge: it exists structurally and is seen by
// traversals and spanning-tree builders like any other edge. Algorithms that
// attach a different meaning to zero (see package dijkstra) say so explicitly.
//
// Episode sets are roaring bitmaps (github.com/RoaringBitmap/roaring/v2), so
// union and intersection-cardinality are word-parallel operations.
//
// Determinism
//
//	Vertices() follows vertex insertion order, and NeighborIDs()/Neighbors()
//	follow the order in which edges were first connected. Every algorithm in
//	this module iterates through these methods, so results are reproducible
//	for a fixed construction sequence.
//
// Lifecycle
//
//	Vertices and edges are added during a population phase and never removed.
//	AddVertex on an existing name unions the new episodes into the old set.
//	Edge weights are computed when Connect runs; call Connect again after
//	merging episodes to refresh them.
//
// Concurrency
//
//	Graph is not synchronized. Callers that share a Graph across goroutines
//	must serialize AddVertex/Connect against every other call.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex name is the empty string.
//	ErrBadEpisode      - episode identifier outside [0, 2^32).
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrLoopNotAllowed  - Connect(a, a).
//	ErrNoEdges         - MaxWeightPairs on a graph without edges.
package core
