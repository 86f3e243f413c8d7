// Package lvdex bundles two small in-memory engines behind one CLI.
//
// What is inside?
//
//	• bst/          — generic unbalanced BST (Tree) and grouped label index (Group)
//	• catalog/      — species-like records indexed by id, name and type; YAML loader
//	• core/         — weighted undirected graph whose weights count shared episodes
//	• builder/      — complete-graph wiring and the fixed saga fixture
//	• prim_kruskal/ — minimum spanning tree (Prim from a root, Kruskal forest)
//	• bfs/          — breadth-first traversal and fewest-hop paths
//	• dijkstra/     — strongest path: Dijkstra over 1/weight costs
//	• config/, logging/ — lvdex.yaml and slog construction for cmd/lvdex
//
// Nothing here is synchronized. Populate once, then query from a single
// goroutine or guard every call yourself.
//
// Quick ASCII example:
//
//	  C-3PO ──9── R2-D2
//	    │  ╲        │
//	    3   3       3
//	    │     ╲     │
//	   Rey ──3── BB-8
//
// Edge weights are |episodes(a) ∩ episodes(b)|; a heavier edge is a
// stronger link, which is why the strongest path inverts it into a cost.
//
//	go install github.com/katalvlaran/lvdex/cmd/lvdex@latest
package lvdex
