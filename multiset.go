package ostree

import "cmp"

// Multiset is a sorted multiset: values may repeat, and repeats of the same
// value are kept in stable first-occurrence order (spec.md §4.2 — equal
// values always descend right on insert, never replacing an existing
// occurrence).
type Multiset[T cmp.Ordered] struct {
	*tree[T]
}

// NewMultiset creates a sorted multiset, optionally pre-populated with
// items.
func NewMultiset[T cmp.Ordered](items ...T) *Multiset[T] {
	m := &Multiset[T]{tree: newTree(cmp.Compare[T])}
	m.Extend(items)
	return m
}

// Insert adds v as a new occurrence, even if v is already present, and
// returns v.
func (m *Multiset[T]) Insert(v T) T {
	return m.insert(v, true)
}

// Extend inserts every item from items as new occurrences.
func (m *Multiset[T]) Extend(items []T) {
	for _, v := range items {
		m.insert(v, true)
	}
}

// Compare implements the lexicographic order from spec.md §4.6.
func (m *Multiset[T]) Compare(other *Multiset[T]) int {
	return compareTrees(m.tree, other.tree)
}

// Equal reports whether m and other contain the same sequence of values,
// including multiplicity.
func (m *Multiset[T]) Equal(other *Multiset[T]) bool {
	return m.Compare(other) == 0
}
