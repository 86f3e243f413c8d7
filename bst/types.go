package bst

import (
	"cmp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// KeyFunc derives the ordering key of a value stored in a Tree.
type KeyFunc[K cmp.Ordered, V any] func(v V) K

// ItemIterator is called for each value during an ordered walk.
// Returning false stops the walk.
type ItemIterator[V any] func(v V) bool

// LabelCount pairs a normalized Group label with the number of values
// stored under it.
type LabelCount struct {
	Label string
	Count int
}

// Normalize lower-cases s using Unicode-aware case mapping.
// Every label entering or querying a Group passes through it.
func Normalize(s string) string {
	// a Caser keeps internal state; build one per call
	return cases.Lower(language.Und).String(s)
}
