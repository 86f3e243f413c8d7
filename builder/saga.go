// SPDX-License-Identifier: MIT
// Package: lvdex/builder
//
// saga.go — the fixed saga fixture.

package builder

import "github.com/katalvlaran/lvdex/core"

// fullRun returns all nine episodes.
func fullRun() []int { return []int{1, 2, 3, 4, 5, 6, 7, 8, 9} }

// SagaCast returns a fresh copy of the fixture members in their fixed order.
func SagaCast() []Member {
	return []Member{
		{Name: "C-3PO", Episodes: fullRun()},
		{Name: "R2-D2", Episodes: fullRun()},
		{Name: "Luke Skywalker", Episodes: []int{4, 5, 6, 7, 8, 9}},
		{Name: "Darth Vader", Episodes: []int{4, 5, 6}},
		{Name: "Yoda", Episodes: []int{2, 3, 5, 8, 9}},
		{Name: "Boba Fett", Episodes: []int{4, 5, 6}},
		{Name: "Leia", Episodes: []int{4, 5, 6, 7, 8, 9}},
		{Name: "Rey", Episodes: []int{7, 8, 9}},
		{Name: "Kylo Ren", Episodes: []int{7, 8, 9}},
		{Name: "Chewbacca", Episodes: []int{4, 5, 6, 7, 8, 9}},
		{Name: "Han Solo", Episodes: []int{4, 5, 6, 7}},
		{Name: "BB-8", Episodes: []int{7, 8, 9}},
	}
}

// Saga builds the complete graph over SagaCast.
// Every call returns a new, independently owned graph.
func Saga() (*core.Graph, error) {
	return BuildGraph(Cast(SagaCast()), Complete())
}
