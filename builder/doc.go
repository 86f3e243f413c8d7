// SPDX-License-Identifier: MIT
// Package: lvdex/builder
//
// Package builder assembles episode graphs from composable constructors.
//
// A Constructor is a deterministic mutation of a *core.Graph. BuildGraph
// creates an empty graph and applies constructors in order, stopping at the
// first error:
//
//	g, err := builder.BuildGraph(
//		builder.Cast(members),  // add vertices with their episodes
//		builder.Complete(),     // connect every pair
//	)
//
// Saga returns the fixed twelve-character fixture used by tests, examples
// and the CLI. Its data is reproduced verbatim and must not be edited:
// fixture-based expectations elsewhere depend on it.
package builder
