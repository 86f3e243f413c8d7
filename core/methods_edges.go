package core

import "fmt"

// Connect links a and b with weight |episodes(a) ∩ episodes(b)| and writes
// that weight in both directions. Connecting an already linked pair
// recomputes the weight in place and keeps the neighbor order.
//
// Errors:
//   - ErrEmptyVertexID  if either name is empty.
//   - ErrLoopNotAllowed if a == b; nothing is written.
//   - ErrVertexNotFound if either endpoint is missing.
//
// Complexity: O(|episodes(a)| + |episodes(b)|) for the intersection, O(1) for the write.
func (g *Graph) Connect(a, b string) (int64, error) {
	if a == "" || b == "" {
		return 0, ErrEmptyVertexID
	}
	if a == b {
		return 0, fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}
	va, ok := g.vertices[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, a)
	}
	vb, ok := g.vertices[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, b)
	}

	w := va.Shared(vb)
	if _, linked := g.adjacency[a].weight[b]; !linked {
		g.edgeCount++
	}
	g.adjacency[a].set(b, w)
	g.adjacency[b].set(a, w)

	return w, nil
}

func (n *neighborhood) set(to string, w int64) {
	if _, ok := n.weight[to]; !ok {
		n.order = append(n.order, to)
	}
	n.weight[to] = w
}

// Weight returns the weight between a and b. The boolean is false when the
// pair is not connected (or either vertex is missing).
func (g *Graph) Weight(a, b string) (int64, bool) {
	n, ok := g.adjacency[a]
	if !ok {
		return 0, false
	}
	w, ok := n.weight[b]

	return w, ok
}

// NeighborIDs returns the neighbors of id in connection order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	n, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, len(n.order))
	copy(out, n.order)

	return out, nil
}

// Neighbors returns the edges leaving id (From == id) in connection order.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	n, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Edge, len(n.order))
	for i, to := range n.order {
		out[i] = Edge{From: id, To: to, Weight: n.weight[to]}
	}

	return out, nil
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Edges returns every undirected edge exactly once. The walk visits vertices
// in insertion order and their neighbors in connection order; an edge is
// reported from the endpoint that reaches it first.
//
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	g.eachEdge(func(e Edge) { out = append(out, e) })

	return out
}

// eachEdge calls fn once per undirected edge in Edges order.
func (g *Graph) eachEdge(fn func(e Edge)) {
	seen := make(map[pairKey]struct{}, g.edgeCount)
	for _, u := range g.order {
		n := g.adjacency[u]
		for _, v := range n.order {
			k := keyOf(u, v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			fn(Edge{From: u, To: v, Weight: n.weight[v]})
		}
	}
}

// pairKey identifies an unordered vertex pair; (a,b) and (b,a) share one key.
type pairKey [2]string

func keyOf(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{a, b}
}
