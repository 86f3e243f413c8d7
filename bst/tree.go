package bst

import "cmp"

// node is a single Tree entry. left holds strictly smaller keys,
// right strictly greater ones.
type node[K cmp.Ordered, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// Tree is an unbalanced binary search tree mapping a derived key to one value.
// On key collision the most recent value wins.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	key  KeyFunc[K, V]
	size int
}

// NewTree returns an empty Tree ordering values by key(v).
// It panics if key is nil, since no value could ever be placed.
func NewTree[K cmp.Ordered, V any](key KeyFunc[K, V]) *Tree[K, V] {
	if key == nil {
		panic("bst: nil key function")
	}

	return &Tree[K, V]{key: key}
}

// Insert places v at the position of key(v). An existing value with the same
// key is replaced (last write wins) and the node count is unchanged.
//
// Complexity: O(h).
func (t *Tree[K, V]) Insert(v V) {
	k := t.key(v)
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case k < n.key:
			link = &n.left
		case k > n.key:
			link = &n.right
		default:
			n.value = v
			return
		}
	}
	*link = &node[K, V]{key: k, value: v}
	t.size++
}

// Find returns the value stored under k. The boolean is false when k is absent.
//
// Complexity: O(h).
func (t *Tree[K, V]) Find(k K) (V, bool) {
	for n := t.root; n != nil; {
		switch {
		case k < n.key:
			n = n.left
		case k > n.key:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V

	return zero, false
}

// Len returns the number of distinct keys.
func (t *Tree[K, V]) Len() int { return t.size }

// Height returns the number of nodes on the longest root-to-leaf path
// (0 for an empty tree). A height equal to Len signals a degenerate,
// list-shaped tree.
func (t *Tree[K, V]) Height() int { return height(t.root) }

func height[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

// Ascend calls fn for every value in ascending key order until fn returns false.
func (t *Tree[K, V]) Ascend(fn ItemIterator[V]) {
	ascend(t.root, fn)
}

// ascend reports whether the walk should continue.
func ascend[K cmp.Ordered, V any](n *node[K, V], fn ItemIterator[V]) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(n.value) {
		return false
	}

	return ascend(n.right, fn)
}

// InOrder returns all values by ascending key: left subtree, node, right subtree.
func (t *Tree[K, V]) InOrder() []V {
	out := make([]V, 0, t.size)
	t.Ascend(func(v V) bool {
		out = append(out, v)
		return true
	})

	return out
}

// LevelOrder returns all values breadth-first. The queue is seeded with the
// root and every dequeued node enqueues its left child, then its right child.
// The order reflects tree shape, not key order.
func (t *Tree[K, V]) LevelOrder() []V {
	out := make([]V, 0, t.size)
	if t.root == nil {
		return out
	}
	queue := make([]*node[K, V], 0, t.size)
	queue = append(queue, t.root)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n.value)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}

	return out
}

// Match returns, in ascending key order, every value for which pred is true.
// It is a linear scan over the in-order sequence.
func (t *Tree[K, V]) Match(pred func(v V) bool) []V {
	var out []V
	t.Ascend(func(v V) bool {
		if pred(v) {
			out = append(out, v)
		}
		return true
	})

	return out
}
