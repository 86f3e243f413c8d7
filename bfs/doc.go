// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus HopPath, the
// fewest-edges path between two vertices.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Edge weights are ignored entirely: a zero-weight edge is one hop like
//     any other.
//   - Returns a BFSResult containing:
//   - Order:  visit (dequeue) sequence
//   - Depth:  vertex → hop distance from start, for every discovered vertex
//   - Parent: vertex → predecessor in the BFS tree
//   - Options: WithContext, WithMaxDepth, WithOnVisit, WithStopAt.
//
// Determinism
//
//	Neighbors are enqueued in core.Graph.NeighborIDs order (connection
//	order), so visit order and parents are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	path, err := bfs.HopPath(g, "Yoda", "BB-8")
//	if err != nil {
//		// ErrGraphNil or ErrStartVertexNotFound
//	}
//	if len(path) == 0 {
//		// unreachable
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an invalid Option was supplied.
//   - ErrNeighbors            if neighbor lookup fails.
//   - Wrapped OnVisit errors and context errors.
package bfs
