// Package catalog implements a multi-index record catalog.
//
// A Catalog owns an append-only list of *Record values and keeps three
// derived indices in step with it on every Add:
//
//	by id    — bst.Tree[int, *Record]
//	by name  — bst.Tree[string, *Record], keyed by the lower-cased name
//	by type  — bst.Group[*Record], one entry per type tag a record carries
//
// Every index stores the same pointer that sits in the flat list; nothing is
// copied. Queries are read-only compositions over the indices and the list.
// "No result" is always a value: (nil, false) for point lookups and an empty
// slice for searches.
//
// Records may be loaded from YAML with LoadYAML:
//
//	- name: Bulbasaur
//	  id: 1
//	  types: [grass, poison]
//	  weaknesses: [fire, ice, flying, psychic]
//
// A Catalog is not safe for concurrent use.
package catalog
