// Package dijkstra finds "strongest" paths in a core.Graph with Dijkstra's
// algorithm over an inverted cost.
//
// Cost model
//
//	The weight of an edge counts shared episodes, so a larger weight is a
//	stronger link. Dijkstra minimizes the sum of per-edge costs where
//
//	  cost(w) = 1/w   for w > 0
//	  cost(0) = +Inf  (the edge is impassable and never relaxed)
//
//	This differs on purpose from package bfs (every edge is one hop) and from
//	package prim_kruskal (zero is the cheapest weight). StrongestPath and
//	bfs.HopPath can therefore disagree, and a pair joined only by zero-weight
//	edges is unreachable here while being one hop apart for BFS.
//
// Implementation
//
//   - Min-heap of (distance, vertex) with lazy decrease-key: improved
//     distances push a new entry; entries whose distance exceeds the best
//     known distance are skipped when popped.
//   - Equal distances pop in vertex-ID order; relaxation requires a strict
//     improvement, so the first parent found for a distance is kept.
//   - StrongestPath stops as soon as the target is popped.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Errors (sentinel):
//
//   - ErrNilGraph        if the provided graph pointer is nil.
//   - ErrEmptySource     if the source ID is empty.
//   - ErrVertexNotFound  if the source vertex does not exist.
package dijkstra
