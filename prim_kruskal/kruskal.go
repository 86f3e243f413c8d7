package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvdex/core"
)

// Kruskal computes a minimum spanning forest of graph with a disjoint-set
// forest (path compression, union by rank).
//
// Steps:
//  1. Collect graph.Edges() and stable-sort them by ascending weight.
//  2. Accept each edge whose endpoints lie in different components and merge them.
//  3. Stop early once |V|-1 edges are accepted.
//
// On a connected graph the result is a spanning tree; otherwise one tree per component.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, ErrNilGraph
	}
	vertices := graph.Vertices()
	if len(vertices) < 2 {
		return []core.Edge{}, 0, nil
	}

	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	union := func(ru, rv string) {
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	mst := make([]core.Edge, 0, len(vertices)-1)
	var total int64
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		union(ru, rv)
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == len(vertices)-1 {
			break
		}
	}

	return mst, total, nil
}
