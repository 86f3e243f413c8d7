// SPDX-License-Identifier: MIT
// Package: lvdex/builder
//
// api.go — public entry points: Constructor, BuildGraph, Member.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvdex/core"
)

// Constructor applies a deterministic mutation to g.
// Constructors validate early and return sentinel errors; they never panic.
type Constructor func(g *core.Graph) error

// Member is one vertex to be added by Cast: a name and its episodes.
type Member struct {
	Name     string
	Episodes []int
}

// BuildGraph creates an empty graph and applies cons in order.
// The first constructor error is wrapped with "BuildGraph: %w" and returned.
//
// Complexity: the sum of the constructors' costs.
func BuildGraph(cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
