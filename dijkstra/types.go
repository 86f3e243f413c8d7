package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")
)

// Options configures a Dijkstra run.
//
// Source     – starting vertex ID (non-empty and present in the graph).
// Target     – optional; the run stops once Target's distance is final.
// ReturnPath – if true, the predecessor map is returned.
type Options struct {
	Source     string
	Target     string
	ReturnPath bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. It must be supplied.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithTarget stops the search as soon as id is settled.
func WithTarget(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// DefaultOptions returns Options for source with no target and no path map.
func DefaultOptions(source string) Options {
	return Options{Source: source}
}

// Cost converts a shared-episode weight into a traversal cost:
// 1/w for positive weights, +Inf for zero (and, defensively, negative) weights.
func Cost(w int64) float64 {
	if w <= 0 {
		return math.Inf(1)
	}

	return 1 / float64(w)
}
