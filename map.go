package ostree

import (
	"cmp"
	"fmt"
)

// entry is a Map's payload: compared by key only (Design Note §9 — "the
// map view is not a separate engine... prefer a generic tree parameterized
// by a comparator"), carrying value along for the ride.
type entry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// Map is a sorted map: entries ordered and deduplicated by key, each
// holding one associated value. Unlike Set and Multiset, Map does not embed
// the shared tree facade directly — its public methods take and return
// keys and values rather than raw entries, so it wraps the engine instead.
type Map[K cmp.Ordered, V any] struct {
	t *tree[entry[K, V]]
}

func entryLess[K cmp.Ordered, V any](a, b entry[K, V]) int {
	return cmp.Compare(a.key, b.key)
}

// NewMap creates an empty sorted map; entries are added via Insert or
// Extend.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{t: newTree(entryLess[K, V])}
}

// Insert sets key's value to v, returning the value previously stored at
// key (if any) and whether key was already present.
func (m *Map[K, V]) Insert(key K, v V) (V, bool) {
	old, existed := m.t.Find(entry[K, V]{key: key})
	m.t.insert(entry[K, V]{key: key, value: v}, false)
	return old.value, existed
}

// Extend inserts every (key, value) pair, in order, replacing on repeated
// keys.
func (m *Map[K, V]) Extend(keys []K, values []V) {
	n := len(keys)
	if len(values) < n {
		n = len(values)
	}
	for i := 0; i < n; i++ {
		m.Insert(keys[i], values[i])
	}
}

// Get returns the value stored at key, and whether key was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	e, ok := m.t.Find(entry[K, V]{key: key})
	return e.value, ok
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.t.Contains(entry[K, V]{key: key})
}

// Remove deletes key and returns its value, or ErrKeyMissing.
func (m *Map[K, V]) Remove(key K) (V, error) {
	e, err := m.t.Remove(entry[K, V]{key: key})
	return e.value, err
}

// At returns the key and value at rank i (negative indices count from the
// end), or ErrIndexOutOfRange.
func (m *Map[K, V]) At(i int) (K, V, error) {
	e, err := m.t.Get(i)
	if err != nil {
		var zk K
		var zv V
		return zk, zv, err
	}
	return e.key, e.value, nil
}

// IndexOf returns the rank of key, or ErrKeyMissing.
func (m *Map[K, V]) IndexOf(key K) (int, error) {
	return m.t.IndexOf(entry[K, V]{key: key})
}

// Len reports the number of entries.
func (m *Map[K, V]) Len() int {
	return m.t.Len()
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	m.t.Clear()
}

// Check verifies every red-black and subtree-size invariant.
func (m *Map[K, V]) Check() error {
	return m.t.Check()
}

// String renders the map as "(L,key:COLOR,R)" with leaves as ".". Values
// are not part of the rendering (matching the set/multiset String, which
// is a structural debugging aid keyed on the comparator's domain).
func (m *Map[K, V]) String() string {
	var render func(n *node[entry[K, V]]) string
	render = func(n *node[entry[K, V]]) string {
		if n == m.t.nilN {
			return "."
		}
		col := "R"
		if n.color == black {
			col = "B"
		}
		return "(" + render(n.left) + "," + fmt.Sprint(n.value.key) + ":" + col + "," + render(n.right) + ")"
	}
	return render(m.t.root)
}

// Dump renders the map as an indented diagram including keys and values.
func (m *Map[K, V]) Dump() string {
	return m.t.Dump()
}

// Hash computes a DJB2-style rolling hash over the in-order (key, value)
// pairs.
func (m *Map[K, V]) Hash() uint64 {
	if m.t.isEmpty() {
		return 0
	}
	h := uint64(5381)
	it := m.Entries()
	for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
		h = (h * 33) ^ valueHash(k)
		h = (h * 33) ^ valueHash(v)
	}
	return h
}

// Compare implements the lexicographic order from spec.md §4.6 over
// (key, value) pairs: shorter maps sort first; otherwise the first
// differing pair (by key, then by value's formatted form, since V need not
// be ordered) decides.
func (m *Map[K, V]) Compare(other *Map[K, V]) int {
	if m.Len() != other.Len() {
		return m.Len() - other.Len()
	}
	ai, bi := m.Entries(), other.Entries()
	for {
		ak, av, aok := ai.Next()
		bk, bv, bok := bi.Next()
		if !aok || !bok {
			return 0
		}
		if c := cmp.Compare(ak, bk); c != 0 {
			return c
		}
		as, bs := fmt.Sprint(av), fmt.Sprint(bv)
		if as != bs {
			if as < bs {
				return -1
			}
			return 1
		}
	}
}

// Equal reports whether m and other contain the same (key, value) pairs.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	return m.Compare(other) == 0
}

// EntryIterator walks a Map's (key, value) pairs in order.
type EntryIterator[K cmp.Ordered, V any] struct {
	it *Iterator[entry[K, V]]
}

// Next advances the iterator and reports whether it produced a pair.
func (it *EntryIterator[K, V]) Next() (K, V, bool) {
	e, ok := it.it.Next()
	if !ok {
		var zk K
		var zv V
		return zk, zv, false
	}
	return e.key, e.value, true
}

// Delete removes the entry the iterator is currently positioned on.
func (it *EntryIterator[K, V]) Delete() {
	it.it.Delete()
}

// Entries returns a forward iterator over (key, value) pairs.
func (m *Map[K, V]) Entries() *EntryIterator[K, V] {
	return &EntryIterator[K, V]{it: m.t.Iter()}
}

// ReverseEntries returns a reverse iterator over (key, value) pairs.
func (m *Map[K, V]) ReverseEntries() *EntryIterator[K, V] {
	return &EntryIterator[K, V]{it: m.t.ReverseIter()}
}

// Keys returns the map's keys in order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	it := m.Entries()
	for k, _, ok := it.Next(); ok; k, _, ok = it.Next() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the map's values in key order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.Len())
	it := m.Entries()
	for _, v, ok := it.Next(); ok; _, v, ok = it.Next() {
		values = append(values, v)
	}
	return values
}
