package core

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// AddVertex creates the vertex id with the given episodes, or unions the
// episodes into the existing set when id is already present. Repeated
// identifiers are harmless; the set never shrinks.
//
// Errors: ErrEmptyVertexID, ErrBadEpisode. On error nothing is modified.
//
// Complexity: O(k) for k episodes (amortized bitmap insertion).
func (g *Graph) AddVertex(id string, episodes ...int) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	bm := roaring.New()
	for _, ep := range episodes {
		if ep < 0 || uint64(ep) > math.MaxUint32 {
			return fmt.Errorf("%w: %d for vertex %q", ErrBadEpisode, ep, id)
		}
		bm.Add(uint32(ep))
	}

	if v, ok := g.vertices[id]; ok {
		v.episodes.Or(bm)
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, episodes: bm}
	g.order = append(g.order, id)
	g.adjacency[id] = &neighborhood{weight: make(map[string]int64)}

	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// Vertices returns all vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Vertex returns the vertex id, or ErrVertexNotFound.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return v, nil
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.order) }

// Episodes returns the episode identifiers of id in ascending order.
func (g *Graph) Episodes(id string) ([]int, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return nil, err
	}

	return v.Episodes(), nil
}

// Episodes returns the vertex's episode identifiers in ascending order.
func (v *Vertex) Episodes() []int {
	raw := v.episodes.ToArray()
	out := make([]int, len(raw))
	for i, ep := range raw {
		out[i] = int(ep)
	}

	return out
}

// EpisodeCount returns the number of distinct episodes of the vertex.
func (v *Vertex) EpisodeCount() int { return int(v.episodes.GetCardinality()) }

// Shared returns how many episodes v and u have in common.
func (v *Vertex) Shared(u *Vertex) int64 {
	return int64(v.episodes.AndCardinality(u.episodes))
}

// VerticesWithEpisodeCount returns, in insertion order, the IDs of every
// vertex appearing in exactly n episodes.
//
// Complexity: O(V).
func (g *Graph) VerticesWithEpisodeCount(n int) []string {
	out := []string{}
	for _, id := range g.order {
		if g.vertices[id].EpisodeCount() == n {
			out = append(out, id)
		}
	}

	return out
}
