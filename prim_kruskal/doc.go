// Package prim_kruskal computes minimum spanning trees over a *core.Graph.
//
// Algorithms Provided
//
//   - Prim(g, root) ([]core.Edge, int64, error)
//
//   - Strategy: grow one tree from root. A min-heap holds candidate edges
//     (weight, from, to); the smallest edge whose target is still outside the
//     tree is accepted, its target joins the tree, and the target's edges to
//     outside vertices are pushed. Stale candidates are discarded on pop.
//
//   - Output: edges in acceptance order. Each accepted edge was minimal
//     among the frontier at the time it was taken; the sequence as a whole
//     is not required to be sorted.
//
//   - Disconnected graphs: only the component reachable from root is
//     spanned. This is not an error.
//
//   - Kruskal(g) ([]core.Edge, int64, error)
//
//   - Strategy: sort all edges by weight (stable over core.Graph.Edges order)
//     and merge components with a disjoint-set forest. Produces a minimum
//     spanning forest when the graph is disconnected.
//
// Zero-weight edges are ordinary, cheapest-possible edges for both algorithms.
//
// Tie-breaking
//
//	Prim orders equal weights by (from, to) lexicographically. Kruskal keeps
//	core.Graph.Edges order among equal weights. Both are deterministic.
//
// Complexity
//
//   - Prim:    O(E log E) time, O(V + E) memory.
//   - Kruskal: O(E log E + α(V)·E) time, O(V + E) memory.
//
// Errors
//
//   - ErrNilGraph           if the graph pointer is nil.
//   - ErrEmptyRoot          if Prim receives an empty root.
//   - core.ErrVertexNotFound if the root is not in the graph.
//   - ErrUnknownMethod      if Compute receives an unknown method name.
package prim_kruskal
