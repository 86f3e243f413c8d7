// SPDX-License-Identifier: MIT
// Package: lvdex/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrConstructFailed indicates a nil constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrTooFewVertices indicates Complete was applied to a graph with fewer
// than two vertices, where no pair exists to connect.
var ErrTooFewVertices = errors.New("builder: too few vertices")
