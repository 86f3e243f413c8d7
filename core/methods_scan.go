package core

// MaxWeightPairs scans every undirected edge once and returns the largest
// weight together with all edges that reach it, in Edges order.
//
// A graph without edges has no maximum: the result is (-1, nil, ErrNoEdges).
//
// Complexity: O(V + E).
func (g *Graph) MaxWeightPairs() (int64, []Edge, error) {
	best := int64(-1)
	var ties []Edge
	g.eachEdge(func(e Edge) {
		switch {
		case e.Weight > best:
			best = e.Weight
			ties = append(ties[:0], e)
		case e.Weight == best:
			ties = append(ties, e)
		}
	})
	if ties == nil {
		return -1, nil, ErrNoEdges
	}

	return best, ties, nil
}
