package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvdex/core"
)

// Prim grows a minimum spanning tree of graph from root.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root visited and push its edges.
//  3. Pop the smallest (weight, from, to) candidate; skip it if the target is
//     already visited, otherwise accept it, mark the target and push the
//     target's edges to unvisited vertices.
//  4. Stop when the heap is empty or every vertex is in the tree.
//
// Returns the accepted edges in acceptance order and their total weight.
// When root's component does not cover the graph, the result spans that
// component only.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, ErrNilGraph
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, fmt.Errorf("prim_kruskal: root %q: %w", root, core.ErrVertexNotFound)
	}

	n := graph.VertexCount()
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var total int64

	pq := &edgePQ{}
	heap.Init(pq)

	visited[root] = true
	if err := pushFrontier(graph, pq, visited, root); err != nil {
		return nil, 0, err
	}

	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		mst = append(mst, e)
		total += e.Weight

		if err := pushFrontier(graph, pq, visited, e.To); err != nil {
			return nil, 0, err
		}
	}

	return mst, total, nil
}

// pushFrontier pushes every edge from u to a vertex outside the tree.
func pushFrontier(graph *core.Graph, pq *edgePQ, visited map[string]bool, u string) error {
	edges, err := graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("prim_kruskal: neighbors of %q: %w", u, err)
	}
	for _, e := range edges {
		if !visited[e.To] {
			heap.Push(pq, e)
		}
	}

	return nil
}

// edgePQ is a min-heap of candidate edges ordered by (Weight, From, To).
type edgePQ []core.Edge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(core.Edge)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
