// SPDX-License-Identifier: MIT
// Package: lvdex/builder
//
// impl_cast.go — Cast(members) constructor.
//
// Contract:
//   • Adds members in slice order, so vertex insertion order equals slice order.
//   • A repeated name merges episodes (core.AddVertex semantics).
//   • Creates no edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvdex/core"
)

const methodCast = "Cast"

// Cast returns a Constructor adding every member as a vertex.
func Cast(members []Member) Constructor {
	return func(g *core.Graph) error {
		for _, m := range members {
			if err := g.AddVertex(m.Name, m.Episodes...); err != nil {
				return fmt.Errorf("%s: AddVertex(%q): %w", methodCast, m.Name, err)
			}
		}

		return nil
	}
}
