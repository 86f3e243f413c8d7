package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvdex/core"
)

// Dijkstra computes strongest-link distances from Options.Source to every vertex.
//
// Returns:
//
//   - dist: vertex ID → minimal summed cost (math.Inf(1) if unreachable).
//   - prev: predecessor map when WithReturnPath is set, nil otherwise.
//     prev[v] == "" for the source and for unreachable vertices.
//   - err:  ErrEmptySource, ErrNilGraph or ErrVertexNotFound.
//
// With WithTarget, vertices not yet settled when the target is popped keep
// their tentative distances.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// StrongestPath returns the path from a to b minimizing the summed cost
// (see Cost) together with that cost. When b cannot be reached through
// positive-weight edges the path is empty and the cost is +Inf.
// StrongestPath(g, a, a) is ([a], 0).
func StrongestPath(g *core.Graph, a, b string) ([]string, float64, error) {
	dist, prev, err := Dijkstra(g, Source(a), WithTarget(b), WithReturnPath())
	if err != nil {
		return nil, 0, err
	}
	d, ok := dist[b]
	if !ok || math.IsInf(d, 1) {
		return []string{}, math.Inf(1), nil
	}

	path := []string{}
	for cur := b; cur != ""; cur = prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, d, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	pq      nodePQ
}

// newRunner initializes distances to +Inf, the source to 0, and seeds the heap.
func newRunner(g *core.Graph, cfg Options) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[cfg.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: cfg.Source, dist: 0})

	return r
}

// process pops vertices in cost order until the heap drains or the target settles.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if item.dist > r.dist[item.id] {
			continue
		}
		if r.options.Target != "" && item.id == r.options.Target {
			return nil
		}
		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax improves neighbors of u reachable through positive-weight edges.
func (r *runner) relax(u string, d float64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	for _, e := range neighbors {
		c := Cost(e.Weight)
		if math.IsInf(c, 1) {
			continue
		}
		nd := d + c
		if nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		heap.Push(&r.pq, nodeItem{id: e.To, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
