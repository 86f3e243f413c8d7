// Package bst provides the two ordered indices used by the catalog:
//
//	Tree[K,V] — an ordered map over a key derived from each value
//	Group[V]  — a label-keyed tree whose nodes hold lists of values
//
// Both are plain, unbalanced binary search trees. Nodes are linked through
// explicit left/right pointers; an empty tree is a nil root.
//
// What
//
//   - Insert descends from the root, creates a node on an empty slot and,
//     on an equal key, overwrites the value (Tree) or appends to the node's
//     list (Group). No rotation or rebalancing is ever performed.
//   - InOrder returns values by ascending key.
//   - LevelOrder returns values breadth-first, using a FIFO queue seeded with
//     the root. The result depends on tree shape, i.e. on insertion history,
//     and is intentionally NOT sorted.
//
// Complexity (n = number of keys, h = tree height)
//
//   - Insert / Find: O(h). h ≈ log n for random insertion order, h = n for
//     sorted or adversarial insertion order.
//   - InOrder / LevelOrder / Match: O(n).
//
// Concurrency
//
//	Trees are not synchronized. Callers must serialize Insert against every
//	other call, readers included.
//
// Usage
//
//	byID := bst.NewTree(func(r *Record) int { return r.ID })
//	byID.Insert(rec)
//	if r, ok := byID.Find(25); ok {
//		fmt.Println(r.Name)
//	}
//
//	byType := bst.NewGroup[*Record]()
//	byType.Insert("Fire", rec)
//	fmt.Println(byType.Counts()) // [{fire 1}]
package bst
