// SPDX-License-Identifier: MIT
// Package: lvdex/builder
//
// impl_complete.go — Complete() constructor.
//
// Contract:
//   • Needs at least two vertices (else ErrTooFewVertices).
//   • Connects each unordered pair {i,j}, i<j, exactly once, in vertex
//     insertion order: (0,1), (0,2), …, (0,n-1), (1,2), …
//   • Weights come from core.Connect (shared-episode count); zero-weight
//     pairs are connected too.
//
// Complexity:
//   • Time: O(n²) connections, each O(episodes) for the intersection.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvdex/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor linking every pair of existing vertices.
func Complete() Constructor {
	return func(g *core.Graph) error {
		ids := g.Vertices()
		if len(ids) < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, len(ids), minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				if _, err := g.Connect(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: Connect(%s, %s): %w", methodComplete, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
