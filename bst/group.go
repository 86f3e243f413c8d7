package bst

// groupNode holds every value filed under one normalized label.
// values is never empty once the node exists.
type groupNode[V any] struct {
	label  string
	values []V
	left   *groupNode[V]
	right  *groupNode[V]
}

// Group is an unbalanced binary search tree keyed by normalized label.
// A label may hold many values and a value may be filed under many labels.
type Group[V any] struct {
	root   *groupNode[V]
	labels int
}

// NewGroup returns an empty Group.
func NewGroup[V any]() *Group[V] { return &Group[V]{} }

// Insert appends v to the list under Normalize(label), creating the node
// if the label is new. Existing values are never replaced.
//
// Complexity: O(h) amortized.
func (g *Group[V]) Insert(label string, v V) {
	label = Normalize(label)
	link := &g.root
	for *link != nil {
		n := *link
		switch {
		case label < n.label:
			link = &n.left
		case label > n.label:
			link = &n.right
		default:
			n.values = append(n.values, v)
			return
		}
	}
	*link = &groupNode[V]{label: label, values: []V{v}}
	g.labels++
}

// Find returns the values under Normalize(label) in insertion order,
// or an empty slice when the label is unknown.
// The returned slice is a copy; mutating it does not affect the Group.
func (g *Group[V]) Find(label string) []V {
	label = Normalize(label)
	for n := g.root; n != nil; {
		switch {
		case label < n.label:
			n = n.left
		case label > n.label:
			n = n.right
		default:
			out := make([]V, len(n.values))
			copy(out, n.values)
			return out
		}
	}

	return []V{}
}

// Len returns the number of distinct labels.
func (g *Group[V]) Len() int { return g.labels }

// Counts returns (label, count) pairs by ascending label.
func (g *Group[V]) Counts() []LabelCount {
	out := make([]LabelCount, 0, g.labels)
	var walk func(n *groupNode[V])
	walk = func(n *groupNode[V]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, LabelCount{Label: n.label, Count: len(n.values)})
		walk(n.right)
	}
	walk(g.root)

	return out
}
